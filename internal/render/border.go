package render

import (
	"strings"

	"github.com/atomicstack/tui-markup-renderer/internal/markup"
)

// Sides selects which edges of a box carry a border.
type Sides struct {
	Top, Right, Bottom, Left bool
}

// Any reports whether at least one edge is drawn.
func (s Sides) Any() bool {
	return s.Top || s.Right || s.Bottom || s.Left
}

// ParseBorder reads a border attribute: none, all, top, bottom, left or
// right, combinable with pipes. Unknown names draw nothing.
func ParseBorder(value string) Sides {
	var s Sides
	for _, part := range strings.Split(value, "|") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "all":
			s = Sides{Top: true, Right: true, Bottom: true, Left: true}
		case "top":
			s.Top = true
		case "bottom":
			s.Bottom = true
		case "left":
			s.Left = true
		case "right":
			s.Right = true
		}
	}
	return s
}

// borderOf returns the sides drawn for n. Dialogs and buttons are framed
// unless told otherwise.
func borderOf(n *markup.Node) Sides {
	if !n.HasAttr(markup.AttrBorder) {
		switch n.Tag {
		case markup.TagDialog, markup.TagButton, markup.TagTabBorders:
			return ParseBorder("all")
		}
	}
	return ParseBorder(n.Attr(markup.AttrBorder))
}

// boxMargin is the inset a box applies when splitting children. Nested
// layouts are inset by 1 unless the box says border="none"; widgets only
// step inside a drawn border.
func boxMargin(n *markup.Node, children []*markup.Node) int {
	for _, child := range children {
		if child.Tag == markup.TagLayout {
			if strings.EqualFold(strings.TrimSpace(n.Attr(markup.AttrBorder)), "none") {
				return 0
			}
			return 1
		}
	}
	return marginOf(n)
}

// marginOf is the inset applied inside a framed composite.
func marginOf(n *markup.Node) int {
	if borderOf(n).Any() {
		return 1
	}
	return 0
}
