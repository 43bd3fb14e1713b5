package render

import (
	"strings"

	"github.com/atomicstack/tui-markup-renderer/internal/layout"
	"github.com/atomicstack/tui-markup-renderer/internal/markup"
	"github.com/atomicstack/tui-markup-renderer/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Paint carries everything a painter needs for one drawable.
type Paint struct {
	Node    *markup.Node
	Area    layout.Rect
	Style   lipgloss.Style
	Focused bool
	Active  bool
	Theme   *theme.Styles
}

// Painter draws one drawable onto the canvas.
type Painter func(c *Canvas, p Paint)

// DefaultPainters returns the built-in painter for every drawable tag.
func DefaultPainters() map[string]Painter {
	return map[string]Painter{
		markup.TagContainer:  PaintBox,
		markup.TagBlock:      PaintBox,
		markup.TagTabs:       PaintBox,
		markup.TagTabContent: PaintBox,
		markup.TagTabBorders: PaintBox,
		markup.TagDialog:     PaintBox,
		markup.TagParagraph:  PaintText,
		markup.TagButton:     PaintButton,
		markup.TagTabItem:    PaintTabItem,
	}
}

// PaintBox fills the area and draws the node's border with its title set
// into the top edge.
func PaintBox(c *Canvas, p Paint) {
	area := p.Area
	if area.Empty() {
		return
	}
	sides := borderOf(p.Node)
	inner := insideBorder(area, sides)
	style := p.Style.
		Border(lipgloss.NormalBorder(), sides.Top, sides.Right, sides.Bottom, sides.Left).
		Width(inner.W).
		Height(inner.H)
	if fg := p.Style.GetForeground(); !isNoColor(fg) {
		style = style.BorderForeground(fg)
	} else if p.Theme != nil {
		style = style.BorderForeground(p.Theme.Border.GetForeground())
	}
	if bg := p.Style.GetBackground(); !isNoColor(bg) {
		style = style.BorderBackground(bg)
	}
	c.DrawIn(area.X, area.Y, area.W, area.H, style.Render(""))
	paintTitle(c, p, sides)
}

func paintTitle(c *Canvas, p Paint, sides Sides) {
	title := p.Node.Attr(markup.AttrTitle)
	if title == "" {
		return
	}
	x := p.Area.X + boolInt(sides.Left)
	room := p.Area.W - boolInt(sides.Left) - boolInt(sides.Right)
	if room <= 0 {
		return
	}
	title = truncate.String(title, uint(room))
	style := p.Style.UnsetWidth().UnsetHeight()
	if p.Theme != nil && isNoColor(p.Style.GetForeground()) {
		style = style.Foreground(p.Theme.Title.GetForeground())
	}
	c.DrawIn(x, p.Area.Y, room, 1, style.Render(title))
}

// PaintText draws the node's box and its text wrapped and aligned inside.
func PaintText(c *Canvas, p Paint) {
	PaintBox(c, p)
	paintBody(c, p, insideBorder(p.Area, borderOf(p.Node)), alignOf(p.Node, lipgloss.Left))
}

// PaintButton draws a framed, centered label.
func PaintButton(c *Canvas, p Paint) {
	PaintBox(c, p)
	paintBody(c, p, insideBorder(p.Area, borderOf(p.Node)), alignOf(p.Node, lipgloss.Center))
}

// PaintTabItem draws a tab label centered in its header slot.
func PaintTabItem(c *Canvas, p Paint) {
	if p.Area.Empty() {
		return
	}
	label := truncate.String(p.Node.Text, uint(p.Area.W))
	block := p.Style.Width(p.Area.W).Align(lipgloss.Center).Render(label)
	c.DrawIn(p.Area.X, p.Area.Y, p.Area.W, 1, block)
}

func paintBody(c *Canvas, p Paint, inner layout.Rect, align lipgloss.Position) {
	if inner.Empty() || p.Node.Text == "" {
		return
	}
	block := p.Style.Width(inner.W).Align(align).Render(p.Node.Text)
	c.DrawIn(inner.X, inner.Y, inner.W, inner.H, block)
}

func insideBorder(area layout.Rect, sides Sides) layout.Rect {
	return layout.NewRect(
		area.X+boolInt(sides.Left),
		area.Y+boolInt(sides.Top),
		area.W-boolInt(sides.Left)-boolInt(sides.Right),
		area.H-boolInt(sides.Top)-boolInt(sides.Bottom),
	)
}

func alignOf(n *markup.Node, fallback lipgloss.Position) lipgloss.Position {
	switch strings.ToLower(strings.TrimSpace(n.Attr(markup.AttrAlign))) {
	case "left":
		return lipgloss.Left
	case "center":
		return lipgloss.Center
	case "right":
		return lipgloss.Right
	}
	return fallback
}

func isNoColor(c lipgloss.TerminalColor) bool {
	_, ok := c.(lipgloss.NoColor)
	return c == nil || ok
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
