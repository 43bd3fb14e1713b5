// Package renderer loads a markup file and runs it as a terminal UI.
//
// A Renderer owns the parsed tree, the action registry and the initial
// application state. Run starts an interactive Bubble Tea program; Frame
// performs a single headless layout and paint pass.
package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/tui-markup-renderer/internal/action"
	"github.com/atomicstack/tui-markup-renderer/internal/backend"
	"github.com/atomicstack/tui-markup-renderer/internal/logging"
	"github.com/atomicstack/tui-markup-renderer/internal/logging/events"
	"github.com/atomicstack/tui-markup-renderer/internal/markup"
	"github.com/atomicstack/tui-markup-renderer/internal/render"
	"github.com/atomicstack/tui-markup-renderer/internal/state"
	"github.com/atomicstack/tui-markup-renderer/internal/ui"
	"github.com/atomicstack/tui-markup-renderer/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

type (
	// State is the string keyed application state.
	State = state.State
	// Response tells the event loop what to do after an action or key.
	Response = action.Response
	// ActionFunc handles a committed node.
	ActionFunc = action.Func
	// Handler receives every key with a snapshot of the state.
	Handler = command.Handler
	// TickHandler receives every heartbeat with a snapshot of the state.
	TickHandler = ui.TickHandler
	// Painter draws one drawable onto the canvas.
	Painter = render.Painter
)

var (
	Noop       = action.Noop
	Quit       = action.Quit
	SetState   = action.SetState
	ResetFocus = action.ResetFocus
)

// Renderer binds a markup tree to an event loop.
type Renderer struct {
	tree     *markup.Tree
	registry *action.Registry
	painters map[string]render.Painter
	state    state.State
	tick     time.Duration
	onTick   TickHandler
	width    int
	height   int
	pipeline *render.Pipeline
}

// Option customises a Renderer.
type Option func(*Renderer)

// WithPainters overrides painters by tag. A nil painter disables the tag.
func WithPainters(painters map[string]Painter) Option {
	return func(r *Renderer) {
		for tag, p := range painters {
			r.painters[tag] = p
		}
	}
}

// WithState seeds the application state.
func WithState(st State) Option {
	return func(r *Renderer) {
		r.state = st.Clone()
	}
}

// WithTick sets the heartbeat interval of the event loop.
func WithTick(interval time.Duration) Option {
	return func(r *Renderer) {
		r.tick = interval
	}
}

// WithTickHandler registers a callback run on every heartbeat.
func WithTickHandler(fn TickHandler) Option {
	return func(r *Renderer) {
		r.onTick = fn
	}
}

// WithSize pins the frame size instead of following the terminal.
func WithSize(width, height int) Option {
	return func(r *Renderer) {
		r.width = width
		r.height = height
	}
}

// New parses the markup file at path. Parse failures are reported through
// Failed and Err rather than a returned error.
func New(path string, opts ...Option) *Renderer {
	r := &Renderer{
		tree:     markup.BuildFile(path),
		registry: action.NewRegistry(),
		painters: make(map[string]render.Painter),
		state:    state.State{},
		tick:     backend.DefaultInterval,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.pipeline = render.NewPipeline(r.tree, render.WithPainters(r.painters))
	return r
}

// AddAction registers fn under name. The first registration of a name wins.
func (r *Renderer) AddAction(name string, fn ActionFunc) *Renderer {
	r.registry.Add(name, fn)
	return r
}

// Failed reports whether the markup could not be parsed.
func (r *Renderer) Failed() bool {
	return r.tree.Failed()
}

// Err returns the parse error, if any.
func (r *Renderer) Err() error {
	return r.tree.Err()
}

// Tree exposes the parsed markup.
func (r *Renderer) Tree() *markup.Tree {
	return r.tree
}

// Frame lays out and paints a single width x height frame with the initial
// state and nothing focused.
func (r *Renderer) Frame(width, height int) (render.Frame, error) {
	if err := r.ready(); err != nil {
		return render.Frame{}, err
	}
	return r.pipeline.Render(width, height, r.state, nil, nil)
}

// Model returns the event loop model without starting a program.
func (r *Renderer) Model(handler Handler) *ui.Model {
	return r.model(handler, nil)
}

func (r *Renderer) model(handler Handler, ticker *backend.Ticker) *ui.Model {
	return ui.NewModel(ui.Options{
		Tree:     r.tree,
		Pipeline: r.pipeline,
		Registry: r.registry,
		Handler:  handler,
		OnTick:   r.onTick,
		State:    r.state,
		Ticker:   ticker,
		Width:    r.width,
		Height:   r.height,
	})
}

func (r *Renderer) ready() error {
	if r.tree.Failed() {
		return fmt.Errorf("load markup: %w", r.tree.Err())
	}
	if r.tree.Root() == nil {
		return render.ErrNoRoot
	}
	return nil
}

// Run starts the interactive loop and blocks until an action or the handler
// asks to quit. The terminal is restored before Run returns.
func (r *Renderer) Run(handler Handler, opts ...tea.ProgramOption) error {
	if err := r.ready(); err != nil {
		logging.Error(err)
		return err
	}
	ticker := backend.NewTicker(r.tick)
	defer ticker.Stop()

	events.App.Loop(map[string]interface{}{
		"layout":  r.tree.Path(),
		"tick":    r.tick.String(),
		"actions": r.registry.Names(),
	})
	model := r.model(handler, ticker)
	programOpts := append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(model, programOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	events.App.Stop(err)
	return err
}
