package ui

import (
	"fmt"
	"reflect"

	"github.com/atomicstack/tui-markup-renderer/internal/action"
	"github.com/atomicstack/tui-markup-renderer/internal/backend"
	"github.com/atomicstack/tui-markup-renderer/internal/logging"
	"github.com/atomicstack/tui-markup-renderer/internal/logging/events"
	"github.com/atomicstack/tui-markup-renderer/internal/markup"
	"github.com/atomicstack/tui-markup-renderer/internal/render"
	"github.com/atomicstack/tui-markup-renderer/internal/state"
	"github.com/atomicstack/tui-markup-renderer/internal/theme"
	"github.com/atomicstack/tui-markup-renderer/internal/ui/command"
	uistate "github.com/atomicstack/tui-markup-renderer/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// TickHandler is called on every heartbeat with a snapshot of the state.
type TickHandler func(tick backend.Tick, st state.State) action.Response

// Options configures a Model.
type Options struct {
	Tree     *markup.Tree
	Pipeline *render.Pipeline
	Registry *action.Registry
	Handler  command.Handler
	OnTick   TickHandler
	State    state.State
	Ticker   *backend.Ticker
	Width    int
	Height   int
}

// Model implements the Bubble Tea model that renders a markup tree.
type Model struct {
	tree     *markup.Tree
	pipeline *render.Pipeline
	focus    *uistate.Focus
	store    state.Store
	bus      *command.Bus
	keys     keyMap
	onTick   TickHandler
	ticker   *backend.Ticker

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	fingerprint string
	frame       render.Frame
	view        string
	renders     int
	err         error
	quitting    bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the model and renders the first frame when the size is
// already known.
func NewModel(opts Options) *Model {
	pipeline := opts.Pipeline
	if pipeline == nil {
		pipeline = render.NewPipeline(opts.Tree)
	}
	tree := opts.Tree
	if tree == nil {
		tree = pipeline.Engine().Tree()
	}
	m := &Model{
		tree:     tree,
		pipeline: pipeline,
		focus:    uistate.NewFocus(tree.Focusables()),
		store:    state.NewStore(opts.State),
		bus:      command.New(opts.Registry, opts.Handler),
		keys:     defaultKeyMap(),
		onTick:   opts.OnTick,
		ticker:   opts.Ticker,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	m.refresh()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.ticker == nil {
		return nil
	}
	return waitForTick(m.ticker)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	handler := m.handlerFor(msg)
	if handler == nil {
		return m, nil
	}
	cmd := handler(msg)
	m.refresh()
	return m, cmd
}

// View returns the last rendered frame.
func (m *Model) View() string {
	if m.err != nil {
		return styles.Error.Render(m.err.Error())
	}
	return m.view
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(tickerDoneMsg{}):     m.handleTickerDoneMsg,
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

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

// apply folds resp into the model and reports whether the loop should end.
func (m *Model) apply(resp action.Response) bool {
	switch resp.Kind {
	case action.KindQuit:
		m.quitting = true
		return true
	case action.KindSetState:
		m.store.Replace(resp.State)
	case action.KindResetFocus:
		m.store.Replace(resp.State)
		m.focus.Reset()
	}
	return false
}

// Fingerprint summarises everything a frame depends on.
func (m *Model) Fingerprint() string {
	return fmt.Sprintf("%d|%d|%s|%dx%d|%s",
		m.focus.Current(),
		m.focus.Depth(),
		m.focus.IDs(),
		m.width,
		m.height,
		m.store.Snapshot().Fingerprint(),
	)
}

// refresh renders a new frame when the fingerprint moved since the last one.
func (m *Model) refresh() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	before := m.Fingerprint()
	if before == m.fingerprint {
		events.Frame.Skip(before)
		return
	}
	frame, err := m.pipeline.Render(m.width, m.height, m.store.Snapshot(), m.focus, m.focus)
	if err != nil {
		m.err = err
		logging.Error(err)
		return
	}
	m.err = nil
	m.frame = frame
	m.view = frame.String()
	m.renders++
	m.fingerprint = m.Fingerprint()
}

// Frame returns the last rendered frame.
func (m *Model) Frame() render.Frame {
	return m.frame
}

// Renders counts completed render passes.
func (m *Model) Renders() int {
	return m.renders
}

// Focus exposes the focus controller.
func (m *Model) Focus() *uistate.Focus {
	return m.focus
}

// State returns a snapshot of the application state.
func (m *Model) State() state.State {
	return m.store.Snapshot()
}

// Quitting reports whether a quit response was applied.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Err returns the last render error.
func (m *Model) Err() error {
	return m.err
}
