package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Role classifies an output line for styling
type Role string

const (
	// RoleBanner is the first line of every command's output
	RoleBanner Role = "banner"
	// RoleDetail is an informational line
	RoleDetail Role = "detail"
	// RoleResult is the closing line reporting the outcome
	RoleResult Role = "result"
)

// Palette colours
var (
	bannerColor = lipgloss.Color("#4ccbf1")
	resultColor = lipgloss.Color("#4dca7d")
)

// Style renders output lines for a single writer
type Style struct {
	enabled bool
	banner  lipgloss.Style
	result  lipgloss.Style
}

// NewStyle creates a Style for w. Styling is enabled only when w is a
// terminal and colour is not disabled through NO_COLOR or CLICOLOR=0.
func NewStyle(w io.Writer) *Style {
	enabled := isTerminal(w) && !termenv.NewOutput(w).EnvNoColor()
	return newStyle(w, enabled)
}

func newStyle(w io.Writer, enabled bool) *Style {
	renderer := lipgloss.NewRenderer(w)
	if !enabled {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Style{
		enabled: enabled,
		banner:  renderer.NewStyle().Bold(true).Foreground(bannerColor),
		result:  renderer.NewStyle().Foreground(resultColor),
	}
}

// Enabled reports whether Render decorates text
func (s *Style) Enabled() bool {
	return s != nil && s.enabled
}

// Render styles text according to role. Plain text is returned unchanged
// when styling is disabled.
func (s *Style) Render(role Role, text string) string {
	if !s.Enabled() {
		return text
	}

	switch role {
	case RoleBanner:
		return s.banner.Render(text)
	case RoleResult:
		return s.result.Render(text)
	default:
		return text
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
