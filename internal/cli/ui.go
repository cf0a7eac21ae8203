package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey    = lipgloss.NewStyle().Foreground(colorDim)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	styleYes    = lipgloss.NewStyle().Foreground(colorGreen)
	styleNo     = lipgloss.NewStyle().Foreground(colorRed)
)

// printTitle writes a bold heading line.
func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

// printKV writes an aligned "key  value" line.
func printKV(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "  %s %s\n", styleKey.Render(fmt.Sprintf("%-12s", key)), renderValue(value))
}

func renderValue(v any) string {
	switch x := v.(type) {
	case bool:
		if x {
			return styleYes.Render("yes")
		}
		return styleNo.Render("no")
	case int, float64:
		return styleNumber.Render(fmt.Sprint(x))
	default:
		return fmt.Sprint(x)
	}
}
