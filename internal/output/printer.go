// Package output renders tasks and status messages for the terminal. It is
// presentation-only: no state beyond the injected writer and styles, and the
// single place where the core produces user-facing output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/storage"
)

// Printer writes formatted output to a single destination.
type Printer struct {
	w      io.Writer
	styles *Styles
}

// NewPrinter creates a Printer writing to w with the given styles.
func NewPrinter(w io.Writer, styles *Styles) *Printer {
	return &Printer{w: w, styles: styles}
}

// Success writes a green success line.
func (p *Printer) Success(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", SymbolSuccess, p.styles.SuccessStyle.Render(msg))
}

// Error writes a red error line. These are user-facing soft failures, not
// process errors.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", SymbolError, p.styles.ErrorStyle.Render(msg))
}

// Info writes a blue informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", SymbolInfo, p.styles.InfoStyle.Render(msg))
}

// Header writes a bold section title with an underline rule.
func (p *Printer) Header(title string) {
	fmt.Fprintf(p.w, "\n%s %s\n", SymbolHeader, p.styles.HeaderStyle.Render(title))
	fmt.Fprintln(p.w, p.styles.HeaderRuleStyle.Render(strings.Repeat("=", len(title)+3)))
}

// Line writes a raw line.
func (p *Printer) Line(s string) {
	fmt.Fprintln(p.w, s)
}

// Blank writes an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

// RenderItem formats a single task for display.
// Layout: "{index}. [✓] text (created)". Completed text is struck through
// and muted; the checkbox is green when done, yellow while pending.
func (p *Printer) RenderItem(task storage.Task, displayIndex int) string {
	var checkbox, text string
	if task.Completed {
		checkbox = p.styles.CheckboxDoneStyle.Render("[✓]")
		text = p.styles.TextDoneStyle.Render(task.Text)
	} else {
		checkbox = p.styles.CheckboxPendingStyle.Render("[ ]")
		text = p.styles.TextPendingStyle.Render(task.Text)
	}

	index := p.styles.IndexStyle.Render(fmt.Sprintf("%d", displayIndex))
	created := p.styles.CreatedStyle.Render("(" + task.Created + ")")

	return fmt.Sprintf("%s. %s %s %s", index, checkbox, text, created)
}

// RenderSummary formats the closing counts line for a listing.
func (p *Printer) RenderSummary(total, completed, pending int) string {
	label := p.styles.SummaryLabelStyle.Render("Summary:")
	return fmt.Sprintf("%s %d total, %d completed, %d pending", label, total, completed, pending)
}

// PendingGroupLabel returns the styled heading for the pending section.
func (p *Printer) PendingGroupLabel() string {
	return fmt.Sprintf("%s %s", SymbolPending, p.styles.GroupPendingStyle.Render("Pending Tasks:"))
}

// DoneGroupLabel returns the styled heading for the completed section.
func (p *Printer) DoneGroupLabel() string {
	return fmt.Sprintf("%s %s", SymbolDone, p.styles.GroupDoneStyle.Render("Completed Tasks:"))
}

// Empty writes the empty-list notice.
func (p *Printer) Empty() {
	p.Info("No tasks found.")
	fmt.Fprintf(p.w, "%s %s\n", SymbolEmpty, p.styles.EmptyStyle.Render("Your todo list is empty!"))
}
