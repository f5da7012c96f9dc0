package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cargodeps/pkg/deps"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan    = lipgloss.Color("36")  // Teal - labels, target deps
	colorGreen   = lipgloss.Color("35")  // Green - normal deps, enabled features
	colorYellow  = lipgloss.Color("220") // Amber - upgrades, selection
	colorBlue    = lipgloss.Color("75")  // Light blue - dev deps
	colorMagenta = lipgloss.Color("170") // Magenta - build deps
	colorWhite   = lipgloss.Color("255") // Bright white - values
	colorGray    = lipgloss.Color("245") // Gray - secondary text
	colorDim     = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// roleStyles maps semantic roles of rendered lines to terminal styles.
// RolePlain and unknown roles render unstyled.
var roleStyles = map[deps.Role]lipgloss.Style{
	deps.RoleSuccess:   lipgloss.NewStyle().Foreground(colorGreen),
	deps.RoleInfo:      lipgloss.NewStyle().Foreground(colorBlue),
	deps.RoleAccent:    lipgloss.NewStyle().Foreground(colorMagenta),
	deps.RoleHighlight: lipgloss.NewStyle().Foreground(colorCyan),
	deps.RoleMuted:     lipgloss.NewStyle().Foreground(colorGray),
	deps.RoleUpgrade:   lipgloss.NewStyle().Foreground(colorYellow).Bold(true),
	deps.RoleHeading:   lipgloss.NewStyle().Bold(true),
	deps.RoleLabel:     lipgloss.NewStyle().Foreground(colorCyan),
}

func roleStyle(r deps.Role) lipgloss.Style {
	if s, ok := roleStyles[r]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// renderLine styles each span of l by its role.
func renderLine(l deps.Line) string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(roleStyle(s.Role).Render(s.Text))
	}
	return b.String()
}

func renderLines(lines []deps.Line) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = renderLine(l)
	}
	return strings.Join(out, "\n")
}

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}
