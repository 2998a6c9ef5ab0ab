package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tagpicker/internal/config"
	"tagpicker/internal/debug"
	"tagpicker/internal/domain"
	"tagpicker/internal/tags"
	"tagpicker/internal/ui/theme"
)

const (
	appMargin     = 2
	toastDuration = 3 * time.Second

	introMarkdown = "# Tag picker\n\nSearch the list, toggle tags with **space**, " +
		"or type a new name and press **enter** to create it."
)

// Config configures the demo host.
type Config struct {
	Items        []domain.Item
	Placeholder  string
	MaxHeight    int
	Width        int
	ClassNames   []string
	OutputFormat string
	Version      string

	// Clipboard receives the copied labels; defaults to the system clipboard.
	Clipboard func(string) error
	// SuffixSource overrides the random suffix used for new tag values.
	SuffixSource func() int
}

// appKeyMap adds the host's own keys to the picker's bindings for the help line.
type appKeyMap struct {
	picker PickerKeyMap
	Focus  key.Binding
	Copy   key.Binding
	Theme  key.Binding
	Quit   key.Binding
}

func defaultAppKeyMap(picker PickerKeyMap) appKeyMap {
	return appKeyMap{
		picker: picker,
		Focus: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("^Y", "Copy"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("^T", "Theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k appKeyMap) ShortHelp() []key.Binding {
	return append([]key.Binding{k.Focus}, append(k.picker.ShortHelp(), k.Copy, k.Theme, k.Quit)...)
}

// FullHelp implements help.KeyMap.
func (k appKeyMap) FullHelp() [][]key.Binding {
	return append(k.picker.FullHelp(), []key.Binding{k.Focus, k.Copy, k.Theme, k.Quit})
}

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
)

type toast struct {
	text  string
	kind  toastKind
	start time.Time
}

type toastTickMsg struct{}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

// App is the demo host: it owns the tag store and feeds the picker.
type App struct {
	store  *tags.Store
	picker Picker
	keys   appKeyMap
	help   help.Model

	outputFormat string
	version      string
	header       string

	toast     *toast
	clipboard func(string) error
	now       func() time.Time

	width  int
	height int
}

// NewApp builds the host from cfg.
func NewApp(cfg Config) (*App, error) {
	var opts []tags.Option
	if cfg.SuffixSource != nil {
		opts = append(opts, tags.WithSuffixSource(cfg.SuffixSource))
	}
	items := cfg.Items
	if items == nil {
		items = tags.DefaultItems()
	}
	store, err := tags.NewStore(items, opts...)
	if err != nil {
		return nil, fmt.Errorf("create tag store: %w", err)
	}

	picker := NewPicker(store.Items(), store.Selected()).
		WithPlaceholder(cfg.Placeholder).
		WithMaxHeight(cfg.MaxHeight).
		WithWidth(cfg.Width).
		WithClassName(cfg.ClassNames...)

	copyFn := cfg.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	app := &App{
		store:        store,
		picker:       picker,
		keys:         defaultAppKeyMap(picker.Keys),
		help:         help.New(),
		outputFormat: cfg.OutputFormat,
		version:      cfg.Version,
		clipboard:    copyFn,
		now:          time.Now,
		width:        80,
	}
	app.renderHeader()
	app.syncPickerOrigin()
	return app, nil
}

// Init implements tea.Model.
func (m *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.renderHeader()
		m.syncPickerOrigin()
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}

	case tea.MouseMsg:
		m.syncPickerOrigin()

	case tea.BlurMsg:
		// The terminal lost focus; treat it like clicking away.
		m.picker.Close()
		m.picker.Blur()
		return m, nil

	case SelectionChangedMsg:
		m.store.ApplyChange(msg.Items)
		m.picker.SetSelected(m.store.Selected())
		return m, nil

	case TagRequestedMsg:
		item, err := m.store.CreateTag(msg.Term)
		if err != nil {
			debug.Logf("create tag %q: %v", msg.Term, err)
			return m, m.showToast(err.Error(), toastError)
		}
		m.picker.SetItems(m.store.Items())
		m.picker.SetSelected(m.store.Selected())
		return m, m.showToast(fmt.Sprintf("Added tag %q.", item.Label), toastSuccess)

	case toastTickMsg:
		if m.toast == nil {
			return m, nil
		}
		if m.now().Sub(m.toast.start) >= toastDuration {
			m.toast = nil
			return m, nil
		}
		return m, scheduleToastTick()
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// handleKey runs the host's own keys; it reports false for keys the picker
// should see.
func (m *App) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return true, tea.Quit
	case key.Matches(msg, m.keys.Quit) && !m.picker.IsOpen():
		return true, tea.Quit
	case key.Matches(msg, m.keys.Copy):
		return true, m.copySelection()
	case key.Matches(msg, m.keys.Theme):
		return true, m.cycleTheme()
	case key.Matches(msg, m.keys.Focus) && !m.picker.IsOpen():
		return true, m.picker.Focus()
	}
	return false, nil
}

func (m *App) copySelection() tea.Cmd {
	selected := m.store.Selected()
	if len(selected) == 0 {
		return m.showToast("Nothing selected.", toastError)
	}
	labels := strings.Join(domain.Labels(selected), ", ")
	if err := m.clipboard(labels); err != nil {
		return m.showToast(fmt.Sprintf("Copy failed: %v", err), toastError)
	}
	return m.showToast(fmt.Sprintf("Copied %d tag(s) to clipboard.", len(selected)), toastSuccess)
}

func (m *App) cycleTheme() tea.Cmd {
	name := theme.CycleTheme()
	if err := config.SaveTheme(name); err != nil {
		debug.Logf("save theme %s: %v", name, err)
	}
	m.renderHeader()
	return m.showToast(fmt.Sprintf("Theme: %s", name), toastSuccess)
}

func (m *App) showToast(text string, kind toastKind) tea.Cmd {
	m.toast = &toast{text: text, kind: kind, start: m.now()}
	return scheduleToastTick()
}

func (m *App) renderHeader() {
	width := m.width - 2*appMargin
	render := buildMarkdownRenderer(m.outputFormat, width)
	m.header = render(introMarkdown)
}

// pickerOrigin is where View draws the picker's trigger.
func (m *App) pickerOrigin() (int, int) {
	// header, blank line, label line
	return appMargin, lipgloss.Height(m.header) + 2
}

func (m *App) syncPickerOrigin() {
	x, y := m.pickerOrigin()
	m.picker.SetOrigin(x, y)
}

// Picker exposes the embedded picker, mainly for tests.
func (m *App) Picker() Picker {
	return m.picker
}

// Store exposes the tag store.
func (m *App) Store() *tags.Store {
	return m.store
}
