package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvpath/dijkstra"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - numbers
	colorGreen = lipgloss.Color("35")  // Green - success
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - labels
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan).Align(lipgloss.Right)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
	iconInf     = "∞"

	colNode = 6
	colDist = 10
)

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// printTitle prints a section heading.
func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(value))
}

// printRow prints one table row: right-aligned node and number columns
// followed by free-form text.
func printRow(w io.Writer, node, num, text string) {
	fmt.Fprintln(w, styleNumber.Width(colNode).Render(node)+" "+
		styleNumber.Width(colDist).Render(num)+"   "+text)
}

// formatPath renders a node sequence as "1 → 3 → 2".
func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " "+iconArrow+" ")
}

// formatDistance renders a distance, with ∞ for unreachable nodes.
func formatDistance(d int64) string {
	if d == dijkstra.Unreachable {
		return iconInf
	}
	return strconv.FormatInt(d, 10)
}

// dim renders muted text.
func dim(s string) string {
	return styleDim.Render(s)
}

// printPathRow prints the distance and path of one node of res.
func printPathRow(w io.Writer, res *dijkstra.Result, v int) error {
	d, err := res.Distance(v)
	if err != nil {
		return err
	}
	path, ok, err := res.PathTo(v)
	if err != nil {
		return err
	}
	text := dim("no path")
	if ok {
		text = formatPath(path)
	}
	printRow(w, strconv.Itoa(v), formatDistance(d), text)
	return nil
}
