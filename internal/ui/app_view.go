package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tagpicker/internal/domain"
)

// View implements tea.Model. The dropdown is drawn over the status and help
// lines instead of pushing them down.
func (m *App) View() string {
	x, y := m.pickerOrigin()
	trigger := m.picker.TriggerView()

	indent := strings.Repeat(" ", appMargin)
	body := strings.Join([]string{
		m.header,
		"",
		indent + m.labelLine(),
		indentBlock(trigger, appMargin),
		"",
		indent + m.statusLine(),
		indent + m.help.View(m.keys),
	}, "\n")

	height := m.height
	if height <= 0 {
		height = lipgloss.Height(body)
	}
	if dropdown := m.picker.DropdownView(); dropdown != "" {
		if need := y + lipgloss.Height(trigger) + lipgloss.Height(dropdown); need > height {
			height = need
		}
	}

	canvas := NewCanvas(m.width, height)
	canvas.DrawStringAt(0, 0, body)
	if dropdown := m.picker.DropdownView(); dropdown != "" {
		canvas.OverlayAt(x, y+lipgloss.Height(trigger), dropdown)
	}
	if m.toast != nil {
		style := styleSuccessToast()
		if m.toast.kind == toastError {
			style = styleErrorToast()
		}
		canvas.OverlayBottomRight(style.Render(m.toast.text), 1)
	}
	return canvas.Render()
}

func (m *App) labelLine() string {
	label := styleLabel().Render("Tags")
	if m.version != "" {
		label += " " + styleStatus().Faint(true).Render("v"+m.version)
	}
	return label
}

func (m *App) statusLine() string {
	values := domain.Values(m.store.Selected())
	text := "(none)"
	if len(values) > 0 {
		text = strings.Join(values, ", ")
	}
	return styleStatus().Render(fmt.Sprintf("Selected (%d): ", len(values))) + styleStatusValue().Render(text)
}

func indentBlock(block string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
