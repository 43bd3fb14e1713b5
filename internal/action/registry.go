package action

import (
	"sort"

	"github.com/atomicstack/tui-markup-renderer/internal/logging/events"
	"github.com/atomicstack/tui-markup-renderer/internal/markup"
	"github.com/atomicstack/tui-markup-renderer/internal/state"
)

// Func is a named state transition. node is the element that triggered it
// and may be ephemeral.
type Func func(st state.State, node *markup.Node) Response

// Registry maps action names to callbacks. The first registration of a name
// wins.
type Registry struct {
	actions map[string]Func
}

// NewRegistry returns a registry holding the built-in tab activation action.
func NewRegistry() *Registry {
	r := &Registry{actions: make(map[string]Func)}
	r.Add(markup.TabActivateAction, TabActivate)
	return r
}

// Add registers fn under name unless name is taken or fn is nil.
func (r *Registry) Add(name string, fn Func) *Registry {
	_, taken := r.actions[name]
	added := !taken && fn != nil && name != ""
	if added {
		r.actions[name] = fn
	}
	events.Action.Register(name, added)
	return r
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.actions[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the action registered under name. The boolean is false when
// no action is registered.
func (r *Registry) Dispatch(name string, st state.State, node *markup.Node) (Response, bool) {
	nodeID := ""
	if node != nil {
		nodeID = node.ID
	}
	fn, ok := r.actions[name]
	if !ok {
		events.Action.Missing(name, nodeID)
		return Noop(), false
	}
	resp := fn(st.Clone(), node)
	events.Action.Dispatch(name, nodeID, resp.Kind.String())
	return resp, true
}

// TabActivate records node as the selected tab of its tabs group and clears
// focus.
func TabActivate(st state.State, node *markup.Node) Response {
	if node == nil {
		return Noop()
	}
	tabsID := node.Attr(markup.AttrTabsID)
	if tabsID == "" {
		return Noop()
	}
	return ResetFocus(st.With(state.TabIndexKey(tabsID), node.ID))
}
