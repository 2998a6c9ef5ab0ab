package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tagpicker/internal/ui/theme"
)

// Host styles are rebuilt from the active theme on every render so a theme
// switch takes effect immediately.

func styleLabel() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted()).Bold(true)
}

func styleStatus() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text())
}

func styleStatusValue() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Primary())
}

func styleSuccessToast() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Success()).
		Foreground(t.Text()).
		Padding(0, 1)
}

func styleErrorToast() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Error()).
		Foreground(t.Error()).
		Padding(0, 1)
}

// buildMarkdownRenderer returns a glamour renderer for the given style name,
// falling back to plain word wrapping for "plain" or when glamour fails.
func buildMarkdownRenderer(format string, width int) func(string) string {
	if width < 10 {
		width = 10
	}
	fallback := func(input string) string {
		return wordwrap.String(strings.TrimSpace(input), width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == "" || style == "rich" || style == "dark" {
		style = "dark"
	}
	if style == "plain" {
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.Trim(out, "\n")
	}
}
