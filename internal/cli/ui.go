package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // teal - primary actions
	colorGreen = lipgloss.Color("35")  // green - success
	colorRed   = lipgloss.Color("167") // soft red - errors
	colorWhite = lipgloss.Color("255") // bright white - values
	colorDim   = lipgloss.Color("240") // dim gray - muted text
)

var (
	styleValue       = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim         = lipgloss.NewStyle().Foreground(colorDim)
	styleNumber      = lipgloss.NewStyle().Foreground(colorCyan)
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + styleDim.Render(iconArrow) + " " + styleValue.Render(path))
}

// printStats prints a node/edge count line.
func printStats(nodes, edges int) {
	fmt.Println("  " + styleDim.Render("graph") + " " +
		styleNumber.Render(fmt.Sprintf("%d", nodes)) + styleDim.Render(" nodes, ") +
		styleNumber.Render(fmt.Sprintf("%d", edges)) + styleDim.Render(" edges"))
}
