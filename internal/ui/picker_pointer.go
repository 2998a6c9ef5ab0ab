package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Boundary reports whether a screen cell belongs to a widget.
type Boundary interface {
	Contains(x, y int) bool
}

// Bounds is a screen rectangle in cells.
type Bounds struct {
	X, Y          int
	Width, Height int
}

// Contains implements Boundary.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// isOutside reports whether a pointer event at x,y landed outside b.
func isOutside(b Boundary, x, y int) bool {
	return b == nil || !b.Contains(x, y)
}

// Bounds is the rectangle the picker covers as currently rendered: the
// trigger, plus the dropdown while open.
func (p Picker) Bounds() Bounds {
	view := p.View()
	return Bounds{
		X:      p.originX,
		Y:      p.originY,
		Width:  lipgloss.Width(view),
		Height: lipgloss.Height(view),
	}
}

func (p Picker) handleMouse(msg tea.MouseMsg) (Picker, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return p, nil
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return p.HandlePointer(msg.X, msg.Y)
	case tea.MouseButtonWheelUp:
		if p.state == PickerOpen && p.Bounds().Contains(msg.X, msg.Y) {
			p.scroll(-1)
		}
	case tea.MouseButtonWheelDown:
		if p.state == PickerOpen && p.Bounds().Contains(msg.X, msg.Y) {
			p.scroll(1)
		}
	}
	return p, nil
}

// HandlePointer reacts to a primary pointer press at screen cell x,y. A press
// outside the picker closes and blurs it; a press inside opens it, focuses the
// search field and activates whichever dropdown row it hit.
func (p Picker) HandlePointer(x, y int) (Picker, tea.Cmd) {
	if isOutside(p.Bounds(), x, y) {
		p.close("outside click")
		p.Blur()
		return p, nil
	}

	s := p.Styles()
	wasOpen := p.state == PickerOpen
	var cmd tea.Cmd
	if wasOpen {
		if line, ok := p.dropdownLineAt(s, y-p.originY); ok {
			switch line.kind {
			case lineMoreAbove:
				p.scroll(-1)
			case lineMoreBelow:
				p.scroll(1)
			default:
				cmd = p.activateRow(line.row)
			}
		}
	}

	p.focused = true
	p.open("click")
	p.cursor = searchCursor
	var focus tea.Cmd
	if !p.search.Focused() {
		focus = p.search.Focus()
	}
	return p, tea.Batch(cmd, focus)
}

// activateRow runs a row's action as if its key had been pressed.
func (p *Picker) activateRow(i int) tea.Cmd {
	row, ok := p.rowAt(i)
	if !ok {
		return nil
	}
	if row.create {
		next, cmd := p.requestTag()
		*p = next
		return cmd
	}
	return p.toggle(row.item)
}

// dropdownLineAt maps a y offset relative to the picker's origin onto a
// dropdown content line.
func (p Picker) dropdownLineAt(s PickerStyles, relY int) (dropdownLine, bool) {
	top := lipgloss.Height(p.renderTrigger(s)) + s.Dropdown.GetBorderTopSize() + s.Dropdown.GetPaddingTop()
	idx := relY - top
	lines := p.dropdownLines()
	if len(p.rows()) == 0 || idx < 0 || idx >= len(lines) {
		return dropdownLine{}, false
	}
	return lines[idx], true
}
