package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/bizray-tui/internal/api"
	"github.com/atomicstack/bizray-tui/internal/backend"
	"github.com/atomicstack/bizray-tui/internal/data/dispatcher"
	"github.com/atomicstack/bizray-tui/internal/state"
	"github.com/atomicstack/bizray-tui/internal/theme"
	"github.com/atomicstack/bizray-tui/internal/ui/command"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultUpdateBuffer    = 64
	defaultSuggestInterval = 250 * time.Millisecond
	defaultHeight          = 24
	defaultWidth           = 80
	chromeRows             = 4
	maxSuggestionRows      = 8
	maxCityRows            = 8
)

type msgHandler func(tea.Msg) tea.Cmd

// Options configure a Model.
type Options struct {
	App       *state.App
	Runner    *backend.Runner
	Store     dispatcher.TokenStore
	Authorize api.Authorizer
	Theme     string
	ShowHints bool
	Width     int
	Height    int
	// SuggestInterval spaces out autocomplete lookups; zero selects the
	// default and a negative value disables throttling.
	SuggestInterval time.Duration
}

// Model implements the Bubble Tea model for the registry client. It is the
// only writer of the application state.
type Model struct {
	app        *state.App
	runner     *backend.Runner
	bus        *command.Bus
	dispatcher *dispatcher.Dispatcher
	authorize  api.Authorizer
	throttle   *backend.Throttle

	styles    *theme.Styles
	keys      keyMap
	help      help.Model
	spinner   spinner.Model
	showHints bool
	width     int
	height    int

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the state, the task runner and the service together.
func NewModel(opts Options) *Model {
	app := opts.App
	if app == nil {
		app = state.New(state.Options{})
	}
	runner := opts.Runner
	if runner == nil {
		runner = backend.NewRunner(defaultUpdateBuffer)
	}
	interval := opts.SuggestInterval
	if interval == 0 {
		interval = defaultSuggestInterval
	}
	styles := theme.ByName(opts.Theme)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	if styles.Spinner != nil {
		sp.Style = *styles.Spinner
	}
	h := help.New()
	if styles.Footer != nil {
		h.Styles.ShortKey = styles.Footer.Bold(true)
		h.Styles.ShortDesc = *styles.Footer
		h.Styles.ShortSeparator = *styles.Footer
	}
	m := &Model{
		app:        app,
		runner:     runner,
		bus:        command.New(app, runner),
		dispatcher: dispatcher.New(app, opts.Store),
		authorize:  opts.Authorize,
		throttle:   backend.NewThrottle(interval),
		styles:     styles,
		keys:       defaultKeyMap(),
		help:       h,
		spinner:    sp,
		showHints:  opts.ShowHints,
		width:      opts.Width,
		height:     opts.Height,
	}
	m.help.Width = m.width
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface. A stored token is verified in
// the background; the search screen stays usable meanwhile.
func (m *Model) Init() tea.Cmd {
	if m.app.Token != "" {
		if m.app.User == nil {
			m.submit("restore session", false, backend.RestoreSession(m.service()))
		}
		m.loadOverview()
	}
	return tea.Batch(waitForUpdate(m.runner), m.spinner.Tick)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(spinner.TickMsg{}):    m.handleSpinnerMsg,
		reflect.TypeOf(updateMsg{}):          m.handleUpdateMsg,
		reflect.TypeOf(updatesClosedMsg{}):   m.handleUpdatesClosedMsg,
		reflect.TypeOf(clipboardResultMsg{}): m.handleClipboardMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.app.ShouldQuit() {
		return tea.Quit
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// App exposes the state for inspection by tests and the program wrapper.
func (m *Model) App() *state.App { return m.app }

func (m *Model) service() api.Service {
	return m.authorize(m.app.Token)
}

// submit hands a task to the command bus and reports whether it started.
func (m *Model) submit(label string, mutating bool, task backend.Task) bool {
	return m.bus.Submit(command.Request{Label: label, Mutating: mutating, Task: task})
}

func (m *Model) loadOverview() {
	m.submit("load overview", false, backend.LoadOverview(m.service()))
}

func (m *Model) handleSpinnerMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

func (m *Model) viewWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

// bodyHeight is the number of rows between the title and the status lines.
func (m *Model) bodyHeight() int {
	h := m.height
	if h <= 0 {
		h = defaultHeight
	}
	h -= chromeRows
	if h < 1 {
		return 1
	}
	return h
}

// listRows is the number of result rows; the body also shows a heading
// and the page indicator.
func (m *Model) listRows() int {
	return clampRows(m.bodyHeight()-3, m.bodyHeight())
}

func (m *Model) suggestionRows() int {
	return clampRows(m.bodyHeight()-4, maxSuggestionRows)
}

func (m *Model) cityRows() int {
	return clampRows(m.bodyHeight()-5, maxCityRows)
}

func clampRows(rows, limit int) int {
	if rows > limit {
		rows = limit
	}
	if rows < 1 {
		return 1
	}
	return rows
}
