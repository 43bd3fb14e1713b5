package command

import (
	"github.com/atomicstack/tui-markup-renderer/internal/action"
	"github.com/atomicstack/tui-markup-renderer/internal/logging/events"
	"github.com/atomicstack/tui-markup-renderer/internal/markup"
	"github.com/atomicstack/tui-markup-renderer/internal/state"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler receives every key after internal handling, with a snapshot of the
// application state.
type Handler func(key tea.KeyMsg, st state.State) action.Response

// Bus routes commits and keys to the action registry and the caller handler.
type Bus struct {
	registry *action.Registry
	handler  Handler
}

// New initialises a bus over registry. handler may be nil.
func New(registry *action.Registry, handler Handler) *Bus {
	if registry == nil {
		registry = action.NewRegistry()
	}
	return &Bus{registry: registry, handler: handler}
}

// Registry exposes the underlying action registry.
func (b *Bus) Registry() *action.Registry {
	return b.registry
}

// Commit dispatches the action named by node's action attribute.
func (b *Bus) Commit(node *markup.Node, st state.State) action.Response {
	if node == nil {
		return action.Noop()
	}
	name := node.Attr(markup.AttrAction)
	if name == "" {
		events.Action.Missing(name, node.ID)
		return action.Noop()
	}
	resp, _ := b.registry.Dispatch(name, st, node)
	return resp
}

// Handle passes key to the caller handler.
func (b *Bus) Handle(key tea.KeyMsg, st state.State) action.Response {
	if b.handler == nil {
		return action.Noop()
	}
	resp := b.handler(key, st.Clone())
	events.Action.Handler(key.String(), resp.Kind.String())
	return resp
}
