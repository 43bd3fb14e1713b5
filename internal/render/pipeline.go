package render

import (
	"github.com/atomicstack/tui-markup-renderer/internal/layout"
	"github.com/atomicstack/tui-markup-renderer/internal/logging/events"
	"github.com/atomicstack/tui-markup-renderer/internal/markup"
	"github.com/atomicstack/tui-markup-renderer/internal/state"
	"github.com/atomicstack/tui-markup-renderer/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// FocusView answers whether a node currently holds focus.
type FocusView interface {
	IsFocused(id string) bool
}

type noFocus struct{}

func (noFocus) IsFocused(string) bool { return false }

// Pipeline lays out a tree, resolves styles and paints a frame.
type Pipeline struct {
	engine   *Engine
	painters map[string]Painter
	theme    *theme.Styles
}

// Option customises a Pipeline.
type Option func(*Pipeline)

// WithPainters overrides or adds painters by tag.
func WithPainters(painters map[string]Painter) Option {
	return func(p *Pipeline) {
		for tag, painter := range painters {
			if painter == nil {
				delete(p.painters, tag)
				continue
			}
			p.painters[tag] = painter
		}
	}
}

// WithTheme replaces the chrome styles.
func WithTheme(styles *theme.Styles) Option {
	return func(p *Pipeline) {
		if styles != nil {
			p.theme = styles
		}
	}
}

// NewPipeline returns a pipeline for tree using the default painters.
func NewPipeline(tree *markup.Tree, opts ...Option) *Pipeline {
	p := &Pipeline{
		engine:   NewEngine(tree),
		painters: DefaultPainters(),
		theme:    theme.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Engine exposes the layout engine.
func (p *Pipeline) Engine() *Engine {
	return p.engine
}

// Frame is the outcome of one render pass.
type Frame struct {
	Canvas    *Canvas
	Drawables []Drawable
	Painted   int
}

func (f Frame) String() string {
	if f.Canvas == nil {
		return ""
	}
	return f.Canvas.String()
}

// Render runs a full layout and paint pass for a width x height frame.
func (p *Pipeline) Render(width, height int, st state.State, scope Scope, focus FocusView) (Frame, error) {
	if focus == nil {
		focus = noFocus{}
	}
	drawables, err := p.engine.Layout(layout.NewRect(0, 0, width, height), st, scope)
	if err != nil {
		return Frame{}, err
	}
	canvas := NewCanvas(width, height)
	tree := p.engine.Tree()
	drawn := make(map[string]bool, len(drawables))
	painted := 0
	for _, d := range drawables {
		if !Eligible(d, drawn) {
			continue
		}
		drawn[d.Node.ID] = true
		painter, ok := p.painters[d.Node.Tag]
		if !ok {
			continue
		}
		focused := focus.IsFocused(d.Node.ID)
		painter(canvas, Paint{
			Node:    d.Node,
			Area:    d.Rect,
			Style:   p.styleFor(tree, d, focused),
			Focused: focused,
			Active:  d.Active,
			Theme:   p.theme,
		})
		painted++
	}
	events.Frame.Render(width, height, len(drawables), painted)
	return Frame{Canvas: canvas, Drawables: drawables, Painted: painted}, nil
}

// Eligible reports whether d may be drawn given the ids drawn so far.
func Eligible(d Drawable, drawn map[string]bool) bool {
	if len(d.Deps) == 0 {
		return true
	}
	for _, dep := range d.Deps {
		if drawn[dep] {
			return true
		}
	}
	return false
}

// styleFor resolves the stylesheet for d over the theme chrome. Focus and
// active chrome only shows when the markup declares nothing for that state.
func (p *Pipeline) styleFor(tree *markup.Tree, d Drawable, focused bool) lipgloss.Style {
	base := p.theme.ForTag(d.Node.Tag)
	rule := tree.Style(d.Node, focused, d.Active)
	switch {
	case focused && rule.Equal(tree.Style(d.Node, false, d.Active)):
		base = base.Inherit(*p.theme.Focused)
	case d.Active && rule.Equal(tree.Style(d.Node, focused, false)):
		base = base.Inherit(*p.theme.Active)
	}
	return rule.Apply(base)
}
