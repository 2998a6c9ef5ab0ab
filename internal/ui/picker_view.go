package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tagpicker/internal/domain"
	"tagpicker/internal/ui/theme"
)

const (
	chevronClosed = "▾"
	chevronOpen   = "▴"
	checkMark     = "✓"
	createHint    = "Press enter to add"
	moreAbove     = "▲ more above"
	moreBelow     = "▼ more below"
)

// PickerStyles are the lipgloss styles one picker render uses. Classes
// adjust a copy built from the current theme.
type PickerStyles struct {
	Trigger     lipgloss.Style // Closed trigger box
	TriggerOpen lipgloss.Style // Trigger box while the dropdown is open
	Summary     lipgloss.Style // Closed-state selection summary
	Placeholder lipgloss.Style
	Chevron     lipgloss.Style
	Dropdown    lipgloss.Style // Panel around the rows
	Row         lipgloss.Style
	RowCursor   lipgloss.Style // Row holding the keyboard cursor
	RowSelected lipgloss.Style
	Check       lipgloss.Style
	Create      lipgloss.Style
	Hint        lipgloss.Style
}

// PickerClass adjusts styles, the way a CSS class would.
type PickerClass func(*PickerStyles)

var (
	pickerClassesMu sync.RWMutex
	pickerClasses   = map[string]PickerClass{
		"compact": func(s *PickerStyles) {
			s.Trigger = withoutBorder(s.Trigger)
			s.TriggerOpen = withoutBorder(s.TriggerOpen).Underline(true)
			s.Dropdown = withoutBorder(s.Dropdown).Background(theme.Current().BackgroundDarker())
		},
		"accent": func(s *PickerStyles) {
			accent := theme.Current().Accent()
			s.TriggerOpen = s.TriggerOpen.BorderForeground(accent)
			s.Dropdown = s.Dropdown.BorderForeground(accent)
			s.RowCursor = s.RowCursor.Foreground(accent)
		},
		"plain": func(s *PickerStyles) {
			s.Check = s.Check.UnsetForeground()
			s.RowSelected = s.RowSelected.UnsetBold()
			s.Create = s.Create.UnsetItalic()
		},
	}
)

func withoutBorder(st lipgloss.Style) lipgloss.Style {
	return st.BorderTop(false).BorderRight(false).BorderBottom(false).BorderLeft(false)
}

// RegisterPickerClass makes a class available to WithClassName. Registering
// an existing name replaces it.
func RegisterPickerClass(name string, class PickerClass) {
	pickerClassesMu.Lock()
	defer pickerClassesMu.Unlock()
	pickerClasses[name] = class
}

func lookupPickerClass(name string) (PickerClass, bool) {
	pickerClassesMu.RLock()
	defer pickerClassesMu.RUnlock()
	class, ok := pickerClasses[name]
	return class, ok
}

func basePickerStyles() PickerStyles {
	t := theme.Current()
	return PickerStyles{
		Trigger: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderDim()).
			Padding(0, 1),
		TriggerOpen: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocused()).
			Padding(0, 1),
		Summary:     lipgloss.NewStyle().Foreground(t.Text()),
		Placeholder: lipgloss.NewStyle().Foreground(t.TextMuted()),
		Chevron:     lipgloss.NewStyle().Foreground(t.TextMuted()),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderNormal()),
		Row: lipgloss.NewStyle().Foreground(t.Text()),
		RowCursor: lipgloss.NewStyle().
			Foreground(t.Secondary()).
			Background(t.BackgroundSecondary()).
			Bold(true),
		RowSelected: lipgloss.NewStyle().Foreground(t.Text()).Bold(true),
		Check:       lipgloss.NewStyle().Foreground(t.Success()),
		Create:      lipgloss.NewStyle().Foreground(t.Accent()).Italic(true),
		Hint:        lipgloss.NewStyle().Foreground(t.TextMuted()),
	}
}

// Styles resolves the base styles plus every known class in ClassNames.
// Unknown class names are ignored.
func (p Picker) Styles() PickerStyles {
	s := basePickerStyles()
	for _, name := range p.ClassNames {
		if class, ok := lookupPickerClass(name); ok {
			class(&s)
		}
	}
	return s
}

// View renders the trigger and, when open, the dropdown beneath it.
func (p Picker) View() string {
	s := p.Styles()
	trigger := p.renderTrigger(s)
	if p.state != PickerOpen {
		return trigger
	}
	return lipgloss.JoinVertical(lipgloss.Left, trigger, p.renderDropdown(s))
}

// TriggerView renders only the trigger; hosts that float the dropdown over
// other content draw DropdownView separately.
func (p Picker) TriggerView() string {
	return p.renderTrigger(p.Styles())
}

// DropdownView renders only the dropdown, or "" while closed.
func (p Picker) DropdownView() string {
	if p.state != PickerOpen {
		return ""
	}
	return p.renderDropdown(p.Styles())
}

func (p Picker) renderTrigger(s PickerStyles) string {
	box := s.Trigger
	chevron := chevronClosed
	if p.state == PickerOpen {
		box = s.TriggerOpen
		chevron = chevronOpen
	}
	inner := p.Width - box.GetHorizontalFrameSize()
	if inner < 3 {
		inner = 3
	}
	textWidth := inner - 2

	var text string
	if p.state == PickerOpen {
		text = p.search.View()
	} else if label := p.DisplayLabel(); label != "" {
		text = s.Summary.Render(ansi.Truncate(label, textWidth, "…"))
	} else {
		text = s.Placeholder.Render(ansi.Truncate(p.Placeholder, textWidth, "…"))
	}
	text = ansi.Truncate(text, textWidth, "")
	line := text + pad(textWidth-lipgloss.Width(text)) + " " + s.Chevron.Render(chevron)
	return box.Render(line)
}

// dropdownLineKind tags each rendered dropdown line for hit testing.
type dropdownLineKind int

const (
	lineRow dropdownLineKind = iota
	lineMoreAbove
	lineMoreBelow
)

type dropdownLine struct {
	kind dropdownLineKind
	row  int
}

// dropdownLines lays out the dropdown's content lines. View and pointer hit
// testing both go through it so they cannot disagree.
func (p Picker) dropdownLines() []dropdownLine {
	n := len(p.rows())
	start, end := p.window()
	lines := make([]dropdownLine, 0, end-start+2)
	if start > 0 {
		lines = append(lines, dropdownLine{kind: lineMoreAbove})
	}
	for i := start; i < end; i++ {
		lines = append(lines, dropdownLine{kind: lineRow, row: i})
	}
	if end < n {
		lines = append(lines, dropdownLine{kind: lineMoreBelow})
	}
	return lines
}

func (p Picker) renderDropdown(s PickerStyles) string {
	rows := p.rows()
	inner := p.Width - s.Dropdown.GetHorizontalFrameSize()
	if inner < 4 {
		inner = 4
	}

	lines := p.dropdownLines()
	if len(rows) == 0 {
		return s.Dropdown.Width(inner).Render(s.Hint.Render(ansi.Truncate("  No matches", inner, "…")))
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		switch line.kind {
		case lineMoreAbove:
			out = append(out, s.Hint.Render("  "+moreAbove))
		case lineMoreBelow:
			out = append(out, s.Hint.Render("  "+moreBelow))
		default:
			out = append(out, p.renderRow(s, rows[line.row], line.row == p.cursor, inner))
		}
	}
	return s.Dropdown.Width(inner).Render(strings.Join(out, "\n"))
}

func (p Picker) renderRow(s PickerStyles, row pickerRow, atCursor bool, width int) string {
	prefix := "  "
	if atCursor {
		prefix = "▸ "
	}
	avail := width - lipgloss.Width(prefix)

	var body string
	if row.create {
		hint := "  " + createHint
		termWidth := avail - 2 - lipgloss.Width(hint)
		if termWidth < 1 {
			hint = ""
			termWidth = avail - 2
		}
		if termWidth < 1 {
			termWidth = 1
		}
		body = s.Create.Render("+ "+ansi.Truncate(row.term, termWidth, "…")) + s.Hint.Render(hint)
	} else {
		selected := domain.Contains(p.selected, row.item)
		labelStyle := s.Row
		if selected {
			labelStyle = s.RowSelected
		}
		labelWidth := avail - 2
		if labelWidth < 1 {
			labelWidth = 1
		}
		label := labelStyle.Render(ansi.Truncate(row.item.Label, labelWidth, "…"))
		mark := " "
		if selected {
			mark = s.Check.Render(checkMark)
		}
		body = label + pad(labelWidth-lipgloss.Width(label)) + " " + mark
	}

	line := prefix + body
	line += pad(width - lipgloss.Width(line))
	if atCursor {
		return s.RowCursor.Render(line)
	}
	return line
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
