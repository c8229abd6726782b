// Package ui provides the optional full-screen interactive mode: a single
// task list with vim-style navigation, built on the Bubble Tea architecture.
package ui

import (
	"fmt"
	"strings"

	"todo/internal/output"
	"todo/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// App is the interactive task list model.
type App struct {
	store  *storage.Storage
	styles *output.Styles

	tasks  []storage.Task
	cursor int

	adding bool
	input  textinput.Model

	status    string
	statusErr bool

	width  int
	height int

	quitting bool
	fatal    error // save failure; surfaced after the program exits

	keys      ListKeyMap
	inputKeys InputKeyMap
}

// NewApp creates the interactive model. Data loading is deferred to Init()
// to keep the constructor non-blocking.
func NewApp(store *storage.Storage, styles *output.Styles) *App {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200
	ti.Width = 40

	return &App{
		store:     store,
		styles:    styles,
		input:     ti,
		keys:      DefaultListKeyMap(),
		inputKeys: DefaultInputKeyMap(),
	}
}

// Init loads the task list asynchronously.
func (a *App) Init() tea.Cmd {
	return loadTasksCmd(a.store)
}

// Update handles all messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		a.tasks = msg.tasks
		if a.cursor >= len(a.tasks) {
			a.cursor = max(0, len(a.tasks)-1)
		}
		return a, nil

	case taskAddedMsg:
		if msg.err != nil {
			return a.quitFatal(msg.err)
		}
		a.setStatus("Added: "+msg.text, false)
		return a, loadTasksCmd(a.store)

	case taskCompletedMsg:
		switch {
		case msg.err != nil:
			return a.quitFatal(msg.err)
		case msg.stale:
			a.setStatus("List changed on disk, reloading", true)
		case msg.alreadyDone:
			a.setStatus("Already completed: "+msg.text, true)
		default:
			a.setStatus("Completed: "+msg.text, false)
		}
		return a, loadTasksCmd(a.store)

	case taskRemovedMsg:
		switch {
		case msg.err != nil:
			return a.quitFatal(msg.err)
		case msg.stale:
			a.setStatus("List changed on disk, reloading", true)
		default:
			a.setStatus("Removed: "+msg.text, false)
		}
		return a, loadTasksCmd(a.store)

	case completedClearedMsg:
		switch {
		case msg.err != nil:
			return a.quitFatal(msg.err)
		case msg.cleared == 0:
			a.setStatus("No completed tasks to clear", true)
		default:
			a.setStatus(fmt.Sprintf("Cleared %d completed task(s)", msg.cleared), false)
		}
		return a, loadTasksCmd(a.store)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = max(10, a.width-6)
		return a, nil

	case tea.KeyMsg:
		if a.adding {
			return a.updateInput(msg)
		}
		return a.updateList(msg)
	}

	return a, nil
}

func (a *App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.inputKeys.Confirm):
		text := strings.TrimSpace(a.input.Value())
		a.adding = false
		a.input.Reset()
		if text == "" {
			return a, nil
		}
		return a, addTaskCmd(a.store, text)

	case key.Matches(msg, a.inputKeys.Cancel):
		a.adding = false
		a.input.Reset()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if len(a.tasks) > 0 {
			a.cursor = min(a.cursor+1, len(a.tasks)-1)
		}

	case key.Matches(msg, a.keys.Up):
		if len(a.tasks) > 0 {
			a.cursor = max(a.cursor-1, 0)
		}

	case key.Matches(msg, a.keys.Top):
		a.cursor = 0

	case key.Matches(msg, a.keys.Bottom):
		if len(a.tasks) > 0 {
			a.cursor = len(a.tasks) - 1
		}

	case key.Matches(msg, a.keys.Add):
		a.adding = true
		a.input.Focus()
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Complete):
		if len(a.tasks) > 0 && a.cursor < len(a.tasks) {
			return a, completeTaskCmd(a.store, a.cursor)
		}

	case key.Matches(msg, a.keys.Delete):
		if len(a.tasks) > 0 && a.cursor < len(a.tasks) {
			return a, removeTaskCmd(a.store, a.cursor)
		}

	case key.Matches(msg, a.keys.Clear):
		return a, clearCompletedCmd(a.store)
	}

	return a, nil
}

func (a *App) quitFatal(err error) (tea.Model, tea.Cmd) {
	a.fatal = err
	a.quitting = true
	return a, tea.Quit
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

// View renders the task list.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Render("📝 todo")
	b.WriteString(title)
	b.WriteString("\n")

	sepWidth := a.width - 2
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(a.styles.HeaderRuleStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")

	if len(a.tasks) == 0 && !a.adding {
		b.WriteString(a.styles.EmptyStyle.Render("  No tasks yet. Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		b.WriteString(a.renderTasks())
	}

	if a.adding {
		b.WriteString("\n")
		b.WriteString(a.styles.IndexStyle.Render("+ "))
		b.WriteString(a.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.renderFooter())

	return b.String()
}

func (a *App) renderTasks() string {
	var b strings.Builder

	// Window the list so the cursor stays visible on short terminals.
	maxRows := a.height - 6
	if maxRows < 3 {
		maxRows = 5
	}
	start := 0
	if a.cursor >= maxRows {
		start = a.cursor - maxRows + 1
	}

	completed := 0
	for i, t := range a.tasks {
		if t.Completed {
			completed++
		}
		if i < start || i >= start+maxRows {
			continue
		}

		var checkbox, text string
		if t.Completed {
			checkbox = a.styles.CheckboxDoneStyle.Render("[✓]")
			text = a.styles.TextDoneStyle.Render(a.truncate(t.Text))
		} else {
			checkbox = a.styles.CheckboxPendingStyle.Render("[ ]")
			text = a.styles.TextPendingStyle.Render(a.truncate(t.Text))
		}
		created := a.styles.CreatedStyle.Render("(" + t.Created + ")")

		marker := "  "
		if i == a.cursor && !a.adding {
			marker = a.styles.IndexStyle.Render("> ")
		}

		fmt.Fprintf(&b, "%s%s %s %s\n", marker, checkbox, text, created)
	}

	b.WriteString("\n")
	summary := fmt.Sprintf("%d/%d complete", completed, len(a.tasks))
	b.WriteString("  " + a.styles.EmptyStyle.Render(summary))
	b.WriteString("\n")

	return b.String()
}

func (a *App) truncate(text string) string {
	// Leave room for marker, checkbox, and the created timestamp.
	avail := a.width - 28
	if avail < 10 {
		avail = 40
	}
	return runewidth.Truncate(text, avail, "..")
}

func (a *App) renderFooter() string {
	if a.status != "" {
		if a.statusErr {
			return a.styles.ErrorStyle.Render(a.status)
		}
		return a.styles.SuccessStyle.Render(a.status)
	}

	if a.adding {
		return a.styles.EmptyStyle.Render("[enter] save  [esc] cancel")
	}
	return a.styles.EmptyStyle.Render("[a] add  [d/space] complete  [x] remove  [c] clear done  [j/k] nav  [q] quit")
}

// Run starts the interactive program. A storage save failure inside the
// session is returned as an error so the caller can exit non-zero.
func Run(store *storage.Storage, styles *output.Styles) error {
	app := NewApp(store, styles)
	p := tea.NewProgram(app, tea.WithAltScreen())
	model, err := p.Run()
	if err != nil {
		return err
	}
	if final, ok := model.(*App); ok && final.fatal != nil {
		return fmt.Errorf("save tasks: %w", final.fatal)
	}
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
