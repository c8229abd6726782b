package output

import (
	"todo/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Display symbols. These are fixed constants owned by the formatter; the
// colors around them come from the theme.
const (
	SymbolSuccess = "✅"
	SymbolError   = "❌"
	SymbolInfo    = "📋"
	SymbolHeader  = "📝"
	SymbolEmpty   = "📭"
	SymbolPending = "⏳"
	SymbolDone    = "☑️"
)

// Styles holds all output styles, initialized from theme configuration.
type Styles struct {
	// Colors
	ColorSuccess lipgloss.Color
	ColorError   lipgloss.Color
	ColorInfo    lipgloss.Color
	ColorWarning lipgloss.Color
	ColorAccent  lipgloss.Color
	ColorMuted   lipgloss.Color

	// Status line styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	InfoStyle    lipgloss.Style

	// Header styles
	HeaderStyle     lipgloss.Style
	HeaderRuleStyle lipgloss.Style

	// Task item styles
	IndexStyle           lipgloss.Style
	CheckboxDoneStyle    lipgloss.Style
	CheckboxPendingStyle lipgloss.Style
	TextDoneStyle        lipgloss.Style
	TextPendingStyle     lipgloss.Style
	CreatedStyle         lipgloss.Style

	// Group label styles
	GroupPendingStyle lipgloss.Style
	GroupDoneStyle    lipgloss.Style

	// Summary styles
	SummaryLabelStyle lipgloss.Style
	EmptyStyle        lipgloss.Style
}

// NewStyles creates a Styles instance from the given theme.
// A nil theme or empty theme colors fall back to built-in defaults.
func NewStyles(theme *config.ThemeConfig) *Styles {
	if theme == nil {
		theme = &config.ThemeConfig{}
	}
	s := &Styles{}

	s.ColorSuccess = colorOrDefault(theme.Success, "#10B981")
	s.ColorError = colorOrDefault(theme.Error, "#EF4444")
	s.ColorInfo = colorOrDefault(theme.Info, "#3B82F6")
	s.ColorWarning = colorOrDefault(theme.Warning, "#F59E0B")
	s.ColorAccent = colorOrDefault(theme.Accent, "#A855F7")
	s.ColorMuted = colorOrDefault(theme.Muted, "#6B7280")

	s.initComponentStyles()

	return s
}

func colorOrDefault(hex, defaultHex string) lipgloss.Color {
	if hex != "" {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(defaultHex)
}

func (s *Styles) initComponentStyles() {
	s.SuccessStyle = lipgloss.NewStyle().Foreground(s.ColorSuccess)
	s.ErrorStyle = lipgloss.NewStyle().Foreground(s.ColorError).Bold(true)
	s.InfoStyle = lipgloss.NewStyle().Foreground(s.ColorInfo)

	s.HeaderStyle = lipgloss.NewStyle().Bold(true)
	s.HeaderRuleStyle = lipgloss.NewStyle().Foreground(s.ColorMuted)

	s.IndexStyle = lipgloss.NewStyle().Foreground(s.ColorAccent)
	s.CheckboxDoneStyle = lipgloss.NewStyle().Foreground(s.ColorSuccess)
	s.CheckboxPendingStyle = lipgloss.NewStyle().Foreground(s.ColorWarning)
	s.TextDoneStyle = lipgloss.NewStyle().Foreground(s.ColorMuted).Strikethrough(true)
	s.TextPendingStyle = lipgloss.NewStyle()
	s.CreatedStyle = lipgloss.NewStyle().Foreground(s.ColorInfo)

	s.GroupPendingStyle = lipgloss.NewStyle().Foreground(s.ColorWarning).Bold(true)
	s.GroupDoneStyle = lipgloss.NewStyle().Foreground(s.ColorSuccess).Bold(true)

	s.SummaryLabelStyle = lipgloss.NewStyle().Bold(true)
	s.EmptyStyle = lipgloss.NewStyle().Foreground(s.ColorMuted).Italic(true)
}
