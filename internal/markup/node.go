package markup

import (
	"strings"

	"github.com/atomicstack/tui-markup-renderer/internal/styles"
)

// Handle addresses a node inside a Tree arena.
type Handle int

// NoHandle marks the absence of a node: the root's parent, or the handle of
// an ephemeral node synthesized during layout.
const NoHandle Handle = -1

// Tag names understood by the renderer.
const (
	TagLayout     = "layout"
	TagContainer  = "container"
	TagBlock      = "block"
	TagStyles     = "styles"
	TagParagraph  = "p"
	TagButton     = "button"
	TagDialog     = "dialog"
	TagTabs       = "tabs"
	TagTabsHeader = "tabs-header"
	TagTabsBody   = "tabs-body"
	TagTabItem    = "tab-item"
	TagTabContent = "tab-content"
	TagTabBorders = "tab-borders"
)

// Attribute names with renderer meaning.
const (
	AttrID           = "id"
	AttrOrder        = "order"
	AttrIndex        = "index"
	AttrDirection    = "direction"
	AttrConstraint   = "constraint"
	AttrBorder       = "border"
	AttrTitle        = "title"
	AttrAlign        = "align"
	AttrStyles       = "styles"
	AttrFocusStyles  = "focus_styles"
	AttrActiveStyles = "active_styles"
	AttrAction       = "action"
	AttrButtons      = "buttons"
	AttrShow         = "show"
	AttrFor          = "for"
	AttrTabsID       = "tabs-id"
)

// Node is one markup element. Parent is a plain index and never owns.
type Node struct {
	Handle     Handle
	Parent     Handle
	Seq        int
	ID         string
	Tag        string
	Depth      int
	Order      int
	Text       string
	Attributes map[string]string
	Children   []Handle
}

// Attr returns the named attribute or "".
func (n *Node) Attr(name string) string {
	if n == nil || n.Attributes == nil {
		return ""
	}
	return n.Attributes[name]
}

// HasAttr reports whether the attribute was declared.
func (n *Node) HasAttr(name string) bool {
	if n == nil || n.Attributes == nil {
		return false
	}
	_, ok := n.Attributes[name]
	return ok
}

// Focusable reports whether the node takes part in Tab order.
func (n *Node) Focusable() bool {
	return n != nil && n.Order >= 0
}

// Ephemeral reports whether the node was synthesized outside the tree.
func (n *Node) Ephemeral() bool {
	return n != nil && n.Handle == NoHandle
}

// Subject exposes the node to style resolution.
func (n *Node) Subject() styles.Subject {
	return styles.Subject{
		Tag:          n.Tag,
		ID:           n.ID,
		Inline:       n.Attr(AttrStyles),
		FocusInline:  n.Attr(AttrFocusStyles),
		ActiveInline: n.Attr(AttrActiveStyles),
	}
}

// IsWidget reports whether tag is a leaf widget placed directly in its chunk.
func IsWidget(tag string) bool {
	switch tag {
	case TagParagraph, TagButton, TagTabItem:
		return true
	}
	return false
}

// IsBox reports whether tag is drawn as a box that also lays out children.
func IsBox(tag string) bool {
	return tag == TagContainer || tag == TagBlock
}

// IsOverlay reports whether tag is positioned independently of its parent.
func IsOverlay(tag string) bool {
	return tag == TagDialog
}

// KnownTags lists every tag the renderer understands.
func KnownTags() []string {
	return []string{
		TagLayout, TagContainer, TagBlock, TagStyles, TagParagraph, TagButton,
		TagDialog, TagTabs, TagTabsHeader, TagTabsBody, TagTabItem, TagTabContent,
	}
}

// SplitList splits a pipe-separated attribute value, dropping blanks.
func SplitList(value string) []string {
	parts := strings.Split(value, "|")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
