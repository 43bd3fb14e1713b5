package state

import (
	"strings"

	"github.com/atomicstack/tui-markup-renderer/internal/logging/events"
	"github.com/atomicstack/tui-markup-renderer/internal/markup"
)

type scope struct {
	owner string
	saved []*markup.Node
}

// Focus tracks the focusable list, the focused index and the stack of modal
// scopes. An index of -1 means nothing is focused.
type Focus struct {
	list    []*markup.Node
	current int
	stack   []scope
}

// NewFocus returns a controller over list with nothing focused.
func NewFocus(list []*markup.Node) *Focus {
	return &Focus{list: cloneNodes(list), current: -1}
}

// Current returns the focused index.
func (f *Focus) Current() int {
	return f.current
}

// List returns a copy of the active focusable list.
func (f *Focus) List() []*markup.Node {
	return cloneNodes(f.list)
}

// Depth returns the number of pushed scopes.
func (f *Focus) Depth() int {
	return len(f.stack)
}

// Owner returns the id of the innermost scope, or "".
func (f *Focus) Owner() string {
	if len(f.stack) == 0 {
		return ""
	}
	return f.stack[len(f.stack)-1].owner
}

// CurrentNode returns the focused node, or nil.
func (f *Focus) CurrentNode() *markup.Node {
	if f.current < 0 || f.current >= len(f.list) {
		return nil
	}
	return f.list[f.current]
}

// IsFocused reports whether id is the focused node.
func (f *Focus) IsFocused(id string) bool {
	node := f.CurrentNode()
	return node != nil && node.ID == id
}

// IDs joins the ids of the active list with commas.
func (f *Focus) IDs() string {
	ids := make([]string, len(f.list))
	for i, n := range f.list {
		ids[i] = n.ID
	}
	return strings.Join(ids, ",")
}

// Advance moves focus forward. Once current exceeds len-2 it wraps to -1, so
// a full cycle over N entries takes N+1 calls.
func (f *Focus) Advance() {
	if f.current > len(f.list)-2 {
		f.current = -1
	} else {
		f.current++
	}
	f.trace("next")
}

// Retreat moves focus backward, wrapping from -1 to the last entry.
func (f *Focus) Retreat() {
	if f.current < 0 {
		f.current = len(f.list) - 1
	} else {
		f.current--
	}
	f.trace("prev")
}

// Reset clears focus.
func (f *Focus) Reset() {
	f.current = -1
	events.Focus.Reset()
}

// EnterScope narrows focus to focusables owned by owner. Repeated calls for
// the scope already on top are ignored.
func (f *Focus) EnterScope(owner string, focusables []*markup.Node) {
	if len(f.stack) > 0 && f.stack[len(f.stack)-1].owner == owner {
		return
	}
	f.stack = append(f.stack, scope{owner: owner, saved: f.list})
	f.list = cloneNodes(focusables)
	f.current = -1
	events.Focus.EnterScope(owner, len(f.stack), len(f.list))
}

// LeaveScope restores the list saved when owner's scope was entered. It does
// nothing unless owner is the innermost scope.
func (f *Focus) LeaveScope(owner string) {
	if len(f.stack) == 0 || f.stack[len(f.stack)-1].owner != owner {
		return
	}
	top := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	f.list = top.saved
	f.current = -1
	events.Focus.LeaveScope(owner, len(f.stack))
}

func (f *Focus) trace(direction string) {
	id := ""
	if node := f.CurrentNode(); node != nil {
		id = node.ID
	}
	events.Focus.Move(direction, f.current, id)
}

func cloneNodes(nodes []*markup.Node) []*markup.Node {
	if len(nodes) == 0 {
		return nil
	}
	dup := make([]*markup.Node, len(nodes))
	copy(dup, nodes)
	return dup
}
