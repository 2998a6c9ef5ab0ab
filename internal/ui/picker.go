package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tagpicker/internal/debug"
	"tagpicker/internal/domain"
)

// PickerState is the open/closed state of the dropdown.
type PickerState int

const (
	// PickerClosed - summary label shown, no dropdown.
	PickerClosed PickerState = iota
	// PickerOpen - search field live, dropdown visible.
	PickerOpen
)

func (s PickerState) String() string {
	if s == PickerOpen {
		return "open"
	}
	return "closed"
}

const (
	// DefaultPickerMaxHeight caps the dropdown, in lines.
	DefaultPickerMaxHeight = 600
	// DefaultPickerWidth is the rendered width of the picker, in cells.
	DefaultPickerWidth = 40

	searchPlaceholder = "Search or add a tag"
	// searchCursor marks the search field as the keyboard target.
	searchCursor = -1
)

// SelectionChangedMsg carries the selection the host should adopt after a
// row was toggled. The picker never applies it itself.
type SelectionChangedMsg struct {
	Items []domain.Item
}

// TagRequestedMsg asks the host to create a tag labelled Term (already
// trimmed) and add it to both the items and the selection.
type TagRequestedMsg struct {
	Term string
}

// PickerKeyMap holds the picker's key bindings.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Create key.Binding
	Close  key.Binding
}

// DefaultPickerKeyMap returns the picker's default bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "Move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↑/↓", "Move"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "Next row"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "Previous row"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("Space", "Toggle item"),
		),
		Create: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Add tag"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Close"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Toggle, k.Create, k.Close}
}

// FullHelp implements help.KeyMap.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Toggle, k.Create, k.Close},
	}
}

// pickerRow is one dropdown entry: either the create-tag row or an item.
type pickerRow struct {
	create bool
	term   string
	item   domain.Item
}

// Picker is a searchable multi-select with on-the-fly tag creation. It is a
// controlled component: items and selection belong to the host, which
// receives SelectionChangedMsg / TagRequestedMsg and pushes new data back via
// SetItems / SetSelected.
type Picker struct {
	// Configuration
	Placeholder string   // Shown when closed with an empty selection
	MaxHeight   int      // Max dropdown lines (default 600)
	Width       int      // Rendered width (default 40)
	ClassNames  []string // Style classes applied on top of the base styles
	Keys        PickerKeyMap

	// Host-owned data, never mutated here
	items    []domain.Item
	selected []domain.Item

	// Transient state
	state        PickerState
	search       textinput.Model
	cursor       int // searchCursor or a row index
	scrollOffset int
	focused      bool
	originX      int
	originY      int
}

// NewPicker creates a closed picker over items with the given selection.
func NewPicker(items, selected []domain.Item) Picker {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = searchPlaceholder
	ti.CharLimit = 100

	p := Picker{
		MaxHeight: DefaultPickerMaxHeight,
		Width:     DefaultPickerWidth,
		Keys:      DefaultPickerKeyMap(),
		items:     items,
		selected:  selected,
		state:     PickerClosed,
		search:    ti,
		cursor:    searchCursor,
	}
	p.search.Width = p.searchWidth()
	return p
}

// WithPlaceholder sets the placeholder shown while closed with nothing selected.
func (p Picker) WithPlaceholder(s string) Picker {
	p.Placeholder = s
	return p
}

// WithMaxHeight caps the dropdown at n lines. Non-positive n restores the default.
func (p Picker) WithMaxHeight(n int) Picker {
	if n <= 0 {
		n = DefaultPickerMaxHeight
	}
	p.MaxHeight = n
	return p
}

// WithWidth sets the display width.
func (p Picker) WithWidth(w int) Picker {
	if w <= 0 {
		w = DefaultPickerWidth
	}
	p.Width = w
	p.search.Width = p.searchWidth()
	return p
}

// WithClassName appends style classes; see RegisterPickerClass.
func (p Picker) WithClassName(classes ...string) Picker {
	for _, class := range classes {
		for _, name := range strings.Fields(class) {
			p.ClassNames = append(p.ClassNames, name)
		}
	}
	return p
}

// SetItems replaces the item store the picker renders.
func (p *Picker) SetItems(items []domain.Item) {
	p.items = items
	p.clampCursor()
}

// SetSelected replaces the selection the picker renders.
func (p *Picker) SetSelected(selected []domain.Item) {
	p.selected = selected
}

// SetOrigin records where the host draws the picker, for pointer hit testing.
func (p *Picker) SetOrigin(x, y int) {
	p.originX = x
	p.originY = y
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update handles key and mouse input.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Closed, the picker only reopens through a click or Focus.
		if !p.focused || p.state == PickerClosed {
			return p, nil
		}
		return p.handleOpenKey(msg)

	case tea.MouseMsg:
		return p.handleMouse(msg)
	}

	// Cursor blink and friends.
	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	return p, cmd
}

func (p Picker) handleOpenKey(msg tea.KeyMsg) (Picker, tea.Cmd) {
	if key.Matches(msg, p.Keys.Close) {
		p.close("escape")
		return p, nil
	}
	if p.cursor == searchCursor {
		return p.handleSearchKey(msg)
	}
	return p.handleRowKey(msg)
}

// handleSearchKey runs while the search field has keyboard focus.
func (p Picker) handleSearchKey(msg tea.KeyMsg) (Picker, tea.Cmd) {
	switch {
	case key.Matches(msg, p.Keys.Create):
		return p.requestTag()
	case key.Matches(msg, p.Keys.Down), key.Matches(msg, p.Keys.Next):
		p.moveCursor(1)
		return p, nil
	case key.Matches(msg, p.Keys.Up), key.Matches(msg, p.Keys.Prev):
		return p, nil
	}
	return p.typeIntoSearch(msg)
}

// handleRowKey runs while a dropdown row has keyboard focus.
func (p Picker) handleRowKey(msg tea.KeyMsg) (Picker, tea.Cmd) {
	switch {
	case key.Matches(msg, p.Keys.Down), key.Matches(msg, p.Keys.Next):
		p.moveCursor(1)
		return p, nil
	case key.Matches(msg, p.Keys.Up), key.Matches(msg, p.Keys.Prev):
		p.moveCursor(-1)
		return p, nil
	case key.Matches(msg, p.Keys.Toggle):
		row, ok := p.rowAt(p.cursor)
		if !ok || row.create {
			return p, nil
		}
		return p, p.toggle(row.item)
	case key.Matches(msg, p.Keys.Create):
		row, ok := p.rowAt(p.cursor)
		if !ok || !row.create {
			return p, nil
		}
		return p.requestTag()
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace:
		// Typing on a row sends focus back to the search field.
		p.cursor = searchCursor
		return p.typeIntoSearch(msg)
	}
	return p, nil
}

func (p Picker) typeIntoSearch(msg tea.KeyMsg) (Picker, tea.Cmd) {
	before := p.search.Value()
	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	if p.search.Value() != before {
		p.cursor = searchCursor
		p.scrollOffset = 0
	}
	return p, cmd
}

// requestTag asks the host for a new tag when the trimmed search is
// non-empty and no label already equals it, then clears the search.
func (p Picker) requestTag() (Picker, tea.Cmd) {
	term := strings.TrimSpace(p.search.Value())
	if !domain.CanCreateTag(p.items, term) {
		return p, nil
	}
	p.search.SetValue("")
	p.cursor = searchCursor
	p.scrollOffset = 0
	debug.Event("picker").Str("term", term).Msg("tag requested")
	return p, func() tea.Msg { return TagRequestedMsg{Term: term} }
}

func (p Picker) toggle(item domain.Item) tea.Cmd {
	next := domain.Toggle(p.selected, item)
	debug.Event("picker").Str("value", item.Value).Int("selected", len(next)).Msg("toggle")
	return func() tea.Msg { return SelectionChangedMsg{Items: next} }
}

func (p *Picker) open(reason string) {
	if p.state == PickerOpen {
		return
	}
	p.state = PickerOpen
	p.search.SetValue("")
	p.cursor = searchCursor
	p.scrollOffset = 0
	debug.Event("picker").Str("from", PickerClosed.String()).Str("to", PickerOpen.String()).Str("reason", reason).Msg("transition")
}

func (p *Picker) close(reason string) {
	if p.state == PickerClosed {
		return
	}
	p.state = PickerClosed
	p.search.SetValue("")
	p.cursor = searchCursor
	p.scrollOffset = 0
	debug.Event("picker").Str("from", PickerOpen.String()).Str("to", PickerClosed.String()).Str("reason", reason).Msg("transition")
}

// Close hides the dropdown and discards the search text. Focus is left
// alone.
func (p *Picker) Close() {
	p.close("host")
}

// Focus gives the picker keyboard focus, which also opens it.
func (p *Picker) Focus() tea.Cmd {
	p.focused = true
	p.open("focus")
	return p.search.Focus()
}

// Blur removes keyboard focus. The dropdown stays as it is; pair it with
// Close when focus leaves the whole widget.
func (p *Picker) Blur() {
	p.focused = false
	p.search.Blur()
}

func (p *Picker) moveCursor(delta int) {
	n := len(p.rows())
	next := p.cursor + delta
	if next > n-1 {
		next = n - 1
	}
	if next < searchCursor {
		next = searchCursor
	}
	p.cursor = next
	p.adjustScrollOffset()
}

func (p *Picker) clampCursor() {
	if n := len(p.rows()); p.cursor > n-1 {
		p.cursor = n - 1
	}
	if p.cursor < searchCursor {
		p.cursor = searchCursor
	}
	p.adjustScrollOffset()
}

// rows lists the dropdown entries: the create-tag row first when the search
// qualifies, then the filtered items in store order.
func (p Picker) rows() []pickerRow {
	term := strings.TrimSpace(p.search.Value())
	filtered := domain.Filter(p.items, term)
	rows := make([]pickerRow, 0, len(filtered)+1)
	if domain.CanCreateTag(p.items, term) {
		rows = append(rows, pickerRow{create: true, term: term})
	}
	for _, item := range filtered {
		rows = append(rows, pickerRow{item: item})
	}
	return rows
}

func (p Picker) rowAt(i int) (pickerRow, bool) {
	rows := p.rows()
	if i < 0 || i >= len(rows) {
		return pickerRow{}, false
	}
	return rows[i], true
}

// window returns the half-open range of rows that fit in MaxHeight lines,
// leaving room for the scroll hints when not everything fits.
func (p Picker) window() (start, end int) {
	n := len(p.rows())
	if n <= p.maxHeight() {
		return 0, n
	}
	size := p.pageSize()
	start = p.scrollOffset
	if start > n-size {
		start = n - size
	}
	if start < 0 {
		start = 0
	}
	return start, start + size
}

func (p Picker) pageSize() int {
	size := p.maxHeight() - 2
	if size < 1 {
		size = 1
	}
	return size
}

func (p Picker) maxHeight() int {
	if p.MaxHeight <= 0 {
		return DefaultPickerMaxHeight
	}
	return p.MaxHeight
}

// adjustScrollOffset ensures the cursor row is inside the visible window.
func (p *Picker) adjustScrollOffset() {
	n := len(p.rows())
	if n <= p.maxHeight() {
		p.scrollOffset = 0
		return
	}
	size := p.pageSize()
	if p.cursor >= 0 {
		if p.cursor < p.scrollOffset {
			p.scrollOffset = p.cursor
		}
		if p.cursor >= p.scrollOffset+size {
			p.scrollOffset = p.cursor - size + 1
		}
	}
	if p.scrollOffset > n-size {
		p.scrollOffset = n - size
	}
	if p.scrollOffset < 0 {
		p.scrollOffset = 0
	}
}

func (p *Picker) scroll(delta int) {
	p.scrollOffset += delta
	n := len(p.rows())
	if limit := n - p.pageSize(); p.scrollOffset > limit {
		p.scrollOffset = limit
	}
	if p.scrollOffset < 0 {
		p.scrollOffset = 0
	}
}

func (p Picker) searchWidth() int {
	// border + padding on both sides, plus chevron and its gap
	w := p.Width - 6
	if w < 1 {
		w = 1
	}
	return w
}

// State returns the open/closed state.
func (p Picker) State() PickerState {
	return p.state
}

// IsOpen reports whether the dropdown is visible.
func (p Picker) IsOpen() bool {
	return p.state == PickerOpen
}

// Focused returns whether the picker has keyboard focus.
func (p Picker) Focused() bool {
	return p.focused
}

// SearchValue returns the live search text.
func (p Picker) SearchValue() string {
	return p.search.Value()
}

// Cursor returns the keyboard target: -1 for the search field, otherwise a
// dropdown row index.
func (p Picker) Cursor() int {
	return p.cursor
}

// CanCreateTag reports whether the create-tag row is offered right now.
func (p Picker) CanCreateTag() bool {
	return p.state == PickerOpen && domain.CanCreateTag(p.items, p.search.Value())
}

// FilteredItems returns the items currently listed in the dropdown.
func (p Picker) FilteredItems() []domain.Item {
	return domain.Filter(p.items, p.search.Value())
}

// DisplayLabel is the closed-state summary of the selection.
func (p Picker) DisplayLabel() string {
	return domain.DisplayLabel(p.selected)
}

// Items returns the item store as last set by the host.
func (p Picker) Items() []domain.Item {
	return p.items
}

// Selected returns the selection as last set by the host.
func (p Picker) Selected() []domain.Item {
	return p.selected
}
