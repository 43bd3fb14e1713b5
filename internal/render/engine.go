package render

import (
	"errors"
	"fmt"

	"github.com/atomicstack/tui-markup-renderer/internal/layout"
	"github.com/atomicstack/tui-markup-renderer/internal/logging"
	"github.com/atomicstack/tui-markup-renderer/internal/logging/events"
	"github.com/atomicstack/tui-markup-renderer/internal/markup"
	"github.com/atomicstack/tui-markup-renderer/internal/state"
	"github.com/atomicstack/tui-markup-renderer/internal/styles"
)

// ErrNoRoot is returned when laying out a tree that has no root element.
var ErrNoRoot = errors.New("render: markup tree has no root")

// TabSlotWidth is the width of each tab label in a tabs header band.
const TabSlotWidth = 14

const (
	tabHeaderHeight   = 3
	tabContentGutter  = 10
	dialogButtonsSize = 3
)

// Drawable is one positioned node in a frame. Deps lists ids of which at
// least one must already be drawn for the node to be drawn.
type Drawable struct {
	Rect   layout.Rect
	Node   *markup.Node
	Deps   []string
	Active bool
}

// Scope receives modal scope transitions driven by dialog visibility.
type Scope interface {
	EnterScope(owner string, focusables []*markup.Node)
	LeaveScope(owner string)
}

// NoScope ignores scope transitions.
type NoScope struct{}

func (NoScope) EnterScope(string, []*markup.Node) {}
func (NoScope) LeaveScope(string)                 {}

// Engine turns a tree and application state into drawables. Nodes it
// synthesizes are cached so that repeated passes hand out the same values.
type Engine struct {
	tree   *markup.Tree
	synth  map[string]*markup.Node
	warned map[string]bool
}

// NewEngine returns an engine for tree.
func NewEngine(tree *markup.Tree) *Engine {
	return &Engine{
		tree:   tree,
		synth:  make(map[string]*markup.Node),
		warned: make(map[string]bool),
	}
}

// Tree returns the tree the engine lays out.
func (e *Engine) Tree() *markup.Tree {
	return e.tree
}

// Layout computes the drawables for one frame covering area. Visible dialogs
// are appended after the main tree and enter their focus scope through scope.
func (e *Engine) Layout(area layout.Rect, st state.State, scope Scope) ([]Drawable, error) {
	root := e.tree.Root()
	if root == nil {
		return nil, ErrNoRoot
	}
	if scope == nil {
		scope = NoScope{}
	}
	p := &pass{engine: e, tree: e.tree, st: st, frame: area}
	if root.Tag == markup.TagLayout {
		p.layout(root, area, layout.RootDirection(root.Attr(markup.AttrDirection)), nil)
	} else {
		p.place(root, area, nil)
	}
	p.dialogs(scope)
	return p.out, nil
}

type pass struct {
	engine *Engine
	tree   *markup.Tree
	st     state.State
	frame  layout.Rect
	out    []Drawable
}

func (p *pass) emit(n *markup.Node, rect layout.Rect, deps []string) {
	p.out = append(p.out, Drawable{Rect: rect, Node: n, Deps: deps})
}

// flow returns the children that take part in their parent's split.
func (p *pass) flow(n *markup.Node) []*markup.Node {
	var out []*markup.Node
	for _, child := range p.tree.Children(n) {
		if child.Tag == markup.TagDialog || child.Tag == markup.TagStyles {
			continue
		}
		out = append(out, child)
	}
	return out
}

func constraintsOf(nodes []*markup.Node) []layout.Constraint {
	cs := make([]layout.Constraint, len(nodes))
	for i, n := range nodes {
		cs[i] = layout.ParseConstraint(n.Attr(markup.AttrConstraint))
	}
	return cs
}

func (p *pass) split(children []*markup.Node, area layout.Rect, dir layout.Direction, margin int, deps []string) {
	if len(children) == 0 {
		return
	}
	chunks := layout.Split(area, dir, margin, constraintsOf(children))
	for i, child := range children {
		p.place(child, chunks[i], deps)
	}
}

func (p *pass) layout(n *markup.Node, area layout.Rect, dir layout.Direction, deps []string) {
	p.split(p.flow(n), area, dir, 0, deps)
}

func (p *pass) place(n *markup.Node, rect layout.Rect, deps []string) {
	switch {
	case n.Tag == markup.TagLayout:
		p.layout(n, rect, layout.NestedDirection(n.Attr(markup.AttrDirection)), deps)
	case markup.IsBox(n.Tag):
		p.emit(n, rect, deps)
		children := p.flow(n)
		p.split(children, rect, layout.Horizontal, boxMargin(n, children), deps)
	case markup.IsWidget(n.Tag):
		p.emit(n, rect, deps)
	case n.Tag == markup.TagTabs:
		p.tabs(n, rect, deps)
	case n.Tag == markup.TagTabContent:
		p.tabContent(n, rect, deps)
	case n.Tag == markup.TagTabsHeader || n.Tag == markup.TagTabsBody:
		for _, child := range p.flow(n) {
			p.place(child, rect, deps)
		}
	case n.Tag == markup.TagStyles || n.Tag == markup.TagDialog:
	default:
		p.engine.unknown(n)
	}
}

func (e *Engine) unknown(n *markup.Node) {
	if e.warned[n.ID] {
		return
	}
	e.warned[n.ID] = true
	if hint := styles.Suggest(n.Tag, markup.KnownTags()); hint != "" {
		logging.Warnf("unsupported tag <%s> (id %q), did you mean <%s>?", n.Tag, n.ID, hint)
	} else {
		logging.Warnf("unsupported tag <%s> (id %q)", n.Tag, n.ID)
	}
	events.Layout.UnknownTag(n.ID, n.Tag)
}

func (p *pass) tabs(n *markup.Node, rect layout.Rect, deps []string) {
	p.emit(n, rect, deps)
	bands := layout.Split(rect, layout.Vertical, marginOf(n), []layout.Constraint{
		layout.LengthOf(tabHeaderHeight),
		layout.MinOf(0),
	})
	header, body := bands[0], bands[1]

	items := p.tabItems(n)
	selected := p.st.Get(state.TabIndexKey(n.ID))
	if !containsID(items, selected) && len(items) > 0 {
		selected = items[0].ID
	}
	if selected != "" {
		events.Layout.TabSelected(n.ID, selected)
	}

	for _, content := range p.tree.ByTag(markup.TagTabContent) {
		if content.Attr(markup.AttrTabsID) != n.ID || content.Attr(markup.AttrFor) != selected {
			continue
		}
		p.tabContent(content, body, deps)
		break
	}

	p.emit(p.engine.tabBorders(n), header, deps)
	slots := header.Inner(1)
	for i, item := range items {
		slot := layout.NewRect(slots.X+i*TabSlotWidth, slots.Y, TabSlotWidth, 1).Intersect(slots)
		if slot.Empty() {
			break
		}
		p.out = append(p.out, Drawable{
			Rect:   slot,
			Node:   p.engine.tabItem(n, item),
			Deps:   deps,
			Active: item.ID == selected,
		})
	}
}

// tabItems returns the declared tab-items belonging to tabs n.
func (p *pass) tabItems(n *markup.Node) []*markup.Node {
	var out []*markup.Node
	for _, item := range p.tree.ByTag(markup.TagTabItem) {
		if item.Attr(markup.AttrTabsID) == n.ID {
			out = append(out, item)
		}
	}
	return out
}

func containsID(nodes []*markup.Node, id string) bool {
	for _, n := range nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}

func (p *pass) tabContent(n *markup.Node, rect layout.Rect, deps []string) {
	p.emit(n, rect, deps)
	parts := layout.Split(rect, layout.Vertical, marginOf(n), []layout.Constraint{
		layout.PercentageOf(tabContentGutter),
		layout.MinOf(0),
	})
	p.split(p.flow(n), parts[1], layout.Vertical, 0, []string{n.ID})
}

func (p *pass) dialogs(scope Scope) {
	all := p.tree.ByTag(markup.TagDialog)
	var visible []*markup.Node
	for i := len(all) - 1; i >= 0; i-- {
		if !p.dialogVisible(all[i]) {
			scope.LeaveScope(all[i].ID)
		}
	}
	for _, dlg := range all {
		if p.dialogVisible(dlg) {
			visible = append(visible, dlg)
		}
	}
	for i, dlg := range visible {
		buttons := p.dialog(dlg)
		if i == len(visible)-1 {
			scope.EnterScope(dlg.ID, p.dialogFocusables(dlg, buttons))
		}
		events.Layout.DialogShown(dlg.ID, len(buttons))
	}
}

func (p *pass) dialogVisible(n *markup.Node) bool {
	if !n.HasAttr(markup.AttrShow) {
		return true
	}
	return p.st.IsTrue(n.Attr(markup.AttrShow))
}

func (p *pass) dialog(n *markup.Node) []*markup.Node {
	rect := layout.Centered(p.frame)
	p.emit(n, rect, nil)
	parts := layout.Split(rect, layout.Vertical, marginOf(n), []layout.Constraint{
		layout.MinOf(1),
		layout.LengthOf(dialogButtonsSize),
	})
	deps := []string{n.ID}
	p.split(p.flow(n), parts[0], layout.Vertical, 0, deps)

	buttons := p.engine.dialogButtons(n)
	if len(buttons) == 0 {
		return nil
	}
	cs := make([]layout.Constraint, len(buttons))
	for i := range cs {
		cs[i] = layout.RatioOf(1, len(buttons))
	}
	chunks := layout.Split(parts[1], layout.Horizontal, 0, cs)
	for i, btn := range buttons {
		p.emit(btn, chunks[i], deps)
	}
	return buttons
}

func (p *pass) dialogFocusables(n *markup.Node, buttons []*markup.Node) []*markup.Node {
	var out []*markup.Node
	for _, child := range p.tree.Children(n) {
		if child.Focusable() {
			out = append(out, child)
		}
	}
	return append(out, buttons...)
}

func (e *Engine) dialogButtons(n *markup.Node) []*markup.Node {
	labels := markup.SplitList(n.Attr(markup.AttrButtons))
	out := make([]*markup.Node, 0, len(labels))
	for i, label := range labels {
		id := fmt.Sprintf("%s_btn_%s", n.ID, label)
		key := "button:" + id
		btn, ok := e.synth[key]
		if !ok {
			actionName := n.Attr(markup.AttrAction)
			if actionName == "" {
				actionName = "on_" + id
			}
			btn = &markup.Node{
				Handle: markup.NoHandle,
				Parent: n.Handle,
				Seq:    -1,
				ID:     id,
				Tag:    markup.TagButton,
				Depth:  n.Depth + 1,
				Order:  i,
				Text:   label,
				Attributes: map[string]string{
					markup.AttrID:     id,
					markup.AttrAction: actionName,
					markup.AttrOrder:  fmt.Sprint(i),
				},
			}
			e.synth[key] = btn
		}
		out = append(out, btn)
	}
	return out
}

func (e *Engine) tabBorders(n *markup.Node) *markup.Node {
	key := "tab-borders:" + n.ID
	if node, ok := e.synth[key]; ok {
		return node
	}
	id := n.ID + "_borders"
	node := &markup.Node{
		Handle:     markup.NoHandle,
		Parent:     n.Handle,
		Seq:        -1,
		ID:         id,
		Tag:        markup.TagTabBorders,
		Depth:      n.Depth + 1,
		Order:      -1,
		Attributes: map[string]string{markup.AttrID: id},
	}
	e.synth[key] = node
	return node
}

func (e *Engine) tabItem(tabs, item *markup.Node) *markup.Node {
	key := "tab-item:" + tabs.ID + ":" + item.ID
	if node, ok := e.synth[key]; ok {
		return node
	}
	attrs := make(map[string]string, len(item.Attributes))
	for k, v := range item.Attributes {
		attrs[k] = v
	}
	node := &markup.Node{
		Handle:     markup.NoHandle,
		Parent:     tabs.Handle,
		Seq:        -1,
		ID:         item.ID,
		Tag:        markup.TagTabItem,
		Depth:      tabs.Depth + 1,
		Order:      item.Order,
		Text:       item.Text,
		Attributes: attrs,
	}
	e.synth[key] = node
	return node
}
