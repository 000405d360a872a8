package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	aoc "github.com/aestallon/advent-of-code-2023"
)

var (
	colorStar  = lipgloss.Color("#FFFF66")
	colorGreen = lipgloss.Color("#009900")
	colorRed   = lipgloss.Color("#E74C3C")
	colorMuted = lipgloss.Color("#666666")
)

var styles = struct {
	Day    lipgloss.Style
	Title  lipgloss.Style
	Part   lipgloss.Style
	Answer lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
}{
	Day:    lipgloss.NewStyle().Bold(true).Foreground(colorGreen).Width(8),
	Title:  lipgloss.NewStyle().Foreground(colorGreen),
	Part:   lipgloss.NewStyle().Foreground(colorMuted).Width(8),
	Answer: lipgloss.NewStyle().Bold(true).Foreground(colorStar),
	Muted:  lipgloss.NewStyle().Foreground(colorMuted),
	Error:  lipgloss.NewStyle().Foreground(colorRed),
}

// printResult writes one result line and reports whether the part
// succeeded.
func printResult(w io.Writer, res aoc.Result) bool {
	day := styles.Day.Render(fmt.Sprintf("Day %02d", res.Day))
	part := styles.Part.Render(res.Part.String())
	if res.Err != nil {
		fmt.Fprintln(w, day, part, styles.Error.Render(res.Err.Error()))
		return false
	}
	fmt.Fprintln(w, day, part, styles.Answer.Render(fmt.Sprint(res.Answer)),
		styles.Muted.Render("("+res.Duration.Round(time.Microsecond).String()+")"))
	return true
}

func printPuzzle(w io.Writer, p aoc.Puzzle) {
	fmt.Fprintln(w, styles.Day.Render(fmt.Sprintf("Day %02d", p.Day)), styles.Title.Render(p.Title))
}
