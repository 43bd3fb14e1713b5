package markup

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/atomicstack/tui-markup-renderer/internal/logging"
	"github.com/atomicstack/tui-markup-renderer/internal/logging/events"
	"github.com/atomicstack/tui-markup-renderer/internal/styles"
)

// TabActivateAction is the action given to tab-item nodes that declare none.
const TabActivateAction = "__tab_item_activate"

// BuildFile reads and builds the markup at path. Failures are recorded on the
// returned tree rather than returned.
func BuildFile(path string) *Tree {
	f, err := os.Open(path)
	if err != nil {
		return failed(path, &ParseError{Path: path, Msg: "unable to read markup", Err: err})
	}
	defer f.Close()
	return build(path, f)
}

// Build builds a tree from markup read from rd.
func Build(rd io.Reader) *Tree {
	return build("", rd)
}

type builder struct {
	path      string
	tree      *Tree
	stack     []Handle
	unnamed   int
	tabCounts map[Handle]int
}

func build(path string, rd io.Reader) *Tree {
	b := &builder{
		path:      path,
		tree:      &Tree{path: path, byID: map[string]Handle{}, sheet: styles.Sheet{}},
		tabCounts: map[Handle]int{},
	}
	if err := b.run(rd); err != nil {
		return failed(path, err)
	}
	b.collectFocusables()
	events.Markup.Parsed(path, len(b.tree.nodes), len(b.tree.focusables), len(b.tree.sheet))
	return b.tree
}

func failed(path string, err *ParseError) *Tree {
	logging.Error(err)
	events.Markup.Failed(path, err)
	return &Tree{path: path, byID: map[string]Handle{}, sheet: styles.Sheet{}, err: err}
}

func (b *builder) run(rd io.Reader) *ParseError {
	dec := xml.NewDecoder(rd)
	dec.Strict = true
	closedRoot := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return b.wrap(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if closedRoot {
				return &ParseError{Path: b.path, Msg: ErrMultipleRoots.Error(), Err: ErrMultipleRoots}
			}
			b.open(t)
		case xml.EndElement:
			h := b.close()
			if h == 0 {
				closedRoot = true
			}
		case xml.CharData:
			if len(b.stack) == 0 {
				continue
			}
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			b.tree.nodes[b.top()].Text = text
		}
	}
	if len(b.tree.nodes) == 0 {
		return &ParseError{Path: b.path, Msg: ErrEmptyDocument.Error(), Err: ErrEmptyDocument}
	}
	if len(b.stack) > 0 {
		open := b.tree.nodes[b.top()].Tag
		return &ParseError{Path: b.path, Msg: fmt.Sprintf("unclosed element <%s>", open)}
	}
	return nil
}

func (b *builder) wrap(err error) *ParseError {
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) {
		return &ParseError{Path: b.path, Line: syntax.Line, Msg: syntax.Msg, Err: err}
	}
	return &ParseError{Path: b.path, Err: err}
}

func (b *builder) top() Handle {
	return b.stack[len(b.stack)-1]
}

func (b *builder) open(start xml.StartElement) {
	parent := NoHandle
	depth := 0
	if len(b.stack) > 0 {
		parent = b.top()
		depth = b.tree.nodes[parent].Depth + 1
	}
	handle := Handle(len(b.tree.nodes))
	attrs := make(map[string]string, len(start.Attr))
	for _, a := range start.Attr {
		attrs[a.Name.Local] = a.Value
	}
	node := Node{
		Handle:     handle,
		Parent:     parent,
		Seq:        int(handle),
		Tag:        strings.ToLower(start.Name.Local),
		Depth:      depth,
		Attributes: attrs,
	}
	node.ID = attrs[AttrID]
	if node.ID == "" {
		node.ID = fmt.Sprintf("unknown_elm_%d", b.unnamed)
		b.unnamed++
	}
	b.applyTabDefaults(&node)
	node.Order = parseOrder(attrs)

	b.tree.nodes = append(b.tree.nodes, node)
	if parent != NoHandle {
		b.tree.nodes[parent].Children = append(b.tree.nodes[parent].Children, handle)
	}
	if _, dup := b.tree.byID[node.ID]; !dup {
		b.tree.byID[node.ID] = handle
	}
	b.stack = append(b.stack, handle)
}

func (b *builder) close() Handle {
	h := b.top()
	b.stack = b.stack[:len(b.stack)-1]
	node := &b.tree.nodes[h]
	if node.Tag == TagStyles && node.Text != "" {
		b.tree.sheet.Merge(styles.ParseSheet(node.Text))
	}
	return h
}

func (b *builder) applyTabDefaults(node *Node) {
	switch node.Tag {
	case TagTabItem:
		if _, ok := node.Attributes[AttrAction]; !ok {
			node.Attributes[AttrAction] = TabActivateAction
		}
		if node.Parent != NoHandle {
			if _, ok := node.Attributes[AttrIndex]; !ok {
				node.Attributes[AttrIndex] = strconv.Itoa(b.tabCounts[node.Parent])
			}
			b.tabCounts[node.Parent]++
		}
		b.inheritTabsID(node)
	case TagTabContent:
		b.inheritTabsID(node)
	}
}

func (b *builder) inheritTabsID(node *Node) {
	if _, ok := node.Attributes[AttrTabsID]; ok {
		return
	}
	for i := len(b.stack) - 1; i >= 0; i-- {
		anc := &b.tree.nodes[b.stack[i]]
		if anc.Tag == TagTabs {
			node.Attributes[AttrTabsID] = anc.ID
			return
		}
	}
}

func parseOrder(attrs map[string]string) int {
	raw, ok := attrs[AttrOrder]
	if !ok {
		raw, ok = attrs[AttrIndex]
	}
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return -1
	}
	return n
}

func (b *builder) collectFocusables() {
	var out []Handle
	for i := range b.tree.nodes {
		if b.tree.nodes[i].Order >= 0 {
			out = append(out, b.tree.nodes[i].Handle)
		}
	}
	nodes := b.tree.nodes
	sort.SliceStable(out, func(i, j int) bool {
		return nodes[out[i]].Order < nodes[out[j]].Order
	})
	b.tree.focusables = out
}
