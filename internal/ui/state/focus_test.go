package state

import (
	"testing"

	"github.com/atomicstack/tui-markup-renderer/internal/markup"
)

func nodes(ids ...string) []*markup.Node {
	out := make([]*markup.Node, len(ids))
	for i, id := range ids {
		out[i] = &markup.Node{Handle: markup.Handle(i), ID: id, Tag: markup.TagButton, Order: i}
	}
	return out
}

func TestAdvanceSequenceOverThree(t *testing.T) {
	f := NewFocus(nodes("a", "b", "c"))
	want := []int{0, 1, 2, -1, 0, 1, 2, -1}
	for i, w := range want {
		f.Advance()
		if f.Current() != w {
			t.Fatalf("step %d: expected %d, got %d", i, w, f.Current())
		}
	}
}

func TestRetreatWrapsFromNothing(t *testing.T) {
	f := NewFocus(nodes("a", "b", "c"))
	want := []int{2, 1, 0, -1, 2}
	for i, w := range want {
		f.Retreat()
		if f.Current() != w {
			t.Fatalf("step %d: expected %d, got %d", i, w, f.Current())
		}
	}
}

func TestAdvanceOnEmptyList(t *testing.T) {
	f := NewFocus(nil)
	f.Advance()
	if f.Current() != -1 || f.CurrentNode() != nil {
		t.Fatalf("expected nothing focused, got %d", f.Current())
	}
}

func TestCurrentNode(t *testing.T) {
	f := NewFocus(nodes("a", "b"))
	f.Advance()
	if n := f.CurrentNode(); n == nil || n.ID != "a" {
		t.Fatalf("expected a focused, got %#v", n)
	}
	if !f.IsFocused("a") || f.IsFocused("b") {
		t.Fatalf("unexpected IsFocused")
	}
	f.Reset()
	if f.CurrentNode() != nil {
		t.Fatalf("expected reset to clear focus")
	}
}

func TestScopeRoundTrip(t *testing.T) {
	f := NewFocus(nodes("a", "b", "c"))
	f.Advance()
	f.EnterScope("dlg", nodes("dlg_btn_Yes", "dlg_btn_No"))
	if f.Depth() != 1 || f.Owner() != "dlg" || f.Current() != -1 {
		t.Fatalf("unexpected scope state depth=%d owner=%q current=%d", f.Depth(), f.Owner(), f.Current())
	}
	if f.IDs() != "dlg_btn_Yes,dlg_btn_No" {
		t.Fatalf("unexpected scoped list %q", f.IDs())
	}

	f.EnterScope("dlg", nodes("other"))
	if f.Depth() != 1 || f.IDs() != "dlg_btn_Yes,dlg_btn_No" {
		t.Fatalf("expected re-entering the same scope to be ignored")
	}

	f.LeaveScope("nope")
	if f.Depth() != 1 {
		t.Fatalf("expected leaving a different owner to be ignored")
	}

	f.LeaveScope("dlg")
	if f.Depth() != 0 || f.IDs() != "a,b,c" || f.Current() != -1 {
		t.Fatalf("expected restore, got depth=%d ids=%q current=%d", f.Depth(), f.IDs(), f.Current())
	}
	f.LeaveScope("dlg")
	if f.Depth() != 0 {
		t.Fatalf("expected leaving with an empty stack to be ignored")
	}
}

func TestNestedScopes(t *testing.T) {
	f := NewFocus(nodes("a"))
	f.EnterScope("outer", nodes("o1"))
	f.EnterScope("inner", nodes("i1", "i2"))
	if f.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", f.Depth())
	}
	f.LeaveScope("outer")
	if f.Depth() != 2 {
		t.Fatalf("expected only the innermost scope to be leavable")
	}
	f.LeaveScope("inner")
	if f.IDs() != "o1" {
		t.Fatalf("expected outer list restored, got %q", f.IDs())
	}
}
