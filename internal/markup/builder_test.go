package markup

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/tui-markup-renderer/internal/logging"
)

func quietLogs(t *testing.T) {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "markup.log"))
	t.Cleanup(func() { logging.Configure("") })
}

func TestBuildFileCompleteSample(t *testing.T) {
	tree := BuildFile(filepath.Join("testdata", "real_sample.tml"))
	if tree.Failed() {
		t.Fatalf("unexpected failure: %v", tree.Err())
	}
	root := tree.Root()
	if root == nil || root.Tag != TagLayout || root.ID != "root" {
		t.Fatalf("unexpected root %#v", root)
	}
	if root.Parent != NoHandle || root.Depth != 0 {
		t.Fatalf("expected root parent -1 depth 0, got %d/%d", root.Parent, root.Depth)
	}
	if got := len(tree.Children(root)); got != 3 {
		t.Fatalf("expected 3 root children, got %d", got)
	}
	title := tree.FindByID("title")
	if title == nil || title.Text != "Welcome" || title.Depth != 2 {
		t.Fatalf("unexpected title node %#v", title)
	}
	if parent := tree.Parent(title); parent == nil || parent.ID != "header" {
		t.Fatalf("expected header parent, got %#v", parent)
	}
	if tree.FindByID("unknown_elm_0").Tag != TagStyles {
		t.Fatalf("expected styles node to get the first generated id")
	}
	if tree.FindByID("unknown_elm_1").Tag != TagBlock {
		t.Fatalf("expected block node to get the second generated id")
	}
}

func TestBuildFileFocusablesSortedByOrder(t *testing.T) {
	tree := BuildFile(filepath.Join("testdata", "real_sample.tml"))
	var ids []string
	for _, n := range tree.Focusables() {
		ids = append(ids, n.ID)
	}
	if strings.Join(ids, ",") != "cancel,ok" {
		t.Fatalf("expected cancel,ok got %v", ids)
	}
	if never := tree.FindByID("never"); never.Focusable() {
		t.Fatalf("expected unparsable order to be -1, got %d", never.Order)
	}
}

func TestBuildFileStylesheet(t *testing.T) {
	tree := BuildFile(filepath.Join("testdata", "real_sample.tml"))
	sheet := tree.Sheet()
	if len(sheet) != 3 {
		t.Fatalf("expected 3 rules, got %v", sheet.Names())
	}
	footer, ok := sheet.Rule("#footer")
	if !ok || footer.Fg == nil || footer.Fg.Name != "gray" {
		t.Fatalf("unexpected #footer rule %#v", footer)
	}
	title := tree.FindByID("title")
	rule := tree.Style(title, false, false)
	if rule.Fg == nil || rule.Fg.Name != "white" {
		t.Fatalf("expected p rule to apply, got %#v", rule.Fg)
	}
	ok2 := tree.FindByID("ok")
	focused := tree.Style(ok2, true, false)
	if focused.Bg == nil || focused.Bg.Name != "blue" {
		t.Fatalf("expected focus rule to apply, got %#v", focused.Bg)
	}
}

func TestBuildFileMismatchedTag(t *testing.T) {
	quietLogs(t)
	tree := BuildFile(filepath.Join("testdata", "bad_sample.tml"))
	if !tree.Failed() {
		t.Fatalf("expected failure")
	}
	var perr *ParseError
	if !errors.As(tree.Err(), &perr) {
		t.Fatalf("expected *ParseError, got %T", tree.Err())
	}
	if !strings.Contains(perr.Error(), "element <title> closed by </header>") {
		t.Fatalf("unexpected message %q", perr.Error())
	}
	if perr.Line != 3 {
		t.Fatalf("expected line 3, got %d", perr.Line)
	}
	if tree.Root() != nil || tree.Len() != 0 {
		t.Fatalf("expected an empty tree")
	}
}

func TestBuildFileMissing(t *testing.T) {
	quietLogs(t)
	tree := BuildFile(filepath.Join("testdata", "nope.tml"))
	if !tree.Failed() || tree.Err() == nil {
		t.Fatalf("expected failure for missing file")
	}
	if tree.Path() != filepath.Join("testdata", "nope.tml") {
		t.Fatalf("expected path to be kept, got %q", tree.Path())
	}
}

func TestBuildRejectsEmptyAndMultipleRoots(t *testing.T) {
	quietLogs(t)
	if tree := Build(strings.NewReader("   ")); !errors.Is(tree.Err(), ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", tree.Err())
	}
	tree := Build(strings.NewReader("<layout></layout><layout></layout>"))
	if !errors.Is(tree.Err(), ErrMultipleRoots) {
		t.Fatalf("expected ErrMultipleRoots, got %v", tree.Err())
	}
}

func TestBuildTabDefaults(t *testing.T) {
	tree := BuildFile(filepath.Join("testdata", "tabs_sample.tml"))
	if tree.Failed() {
		t.Fatalf("unexpected failure: %v", tree.Err())
	}
	tab1 := tree.FindByID("tab1")
	if tab1.Attr(AttrAction) != TabActivateAction {
		t.Fatalf("expected default action, got %q", tab1.Attr(AttrAction))
	}
	if tab1.Attr(AttrIndex) != "0" || tab1.Order != 0 {
		t.Fatalf("expected index 0, got %q/%d", tab1.Attr(AttrIndex), tab1.Order)
	}
	if tab1.Attr(AttrTabsID) != "tabs-cmp" {
		t.Fatalf("expected tabs-id inherited, got %q", tab1.Attr(AttrTabsID))
	}
	tab2 := tree.FindByID("tab2")
	if tab2.Attr(AttrAction) != "custom_tab" || tab2.Order != 1 {
		t.Fatalf("unexpected tab2 %q/%d", tab2.Attr(AttrAction), tab2.Order)
	}
	if tab3 := tree.FindByID("tab3"); tab3.Order != 7 {
		t.Fatalf("expected explicit index kept, got %d", tab3.Order)
	}
	if ctt := tree.FindByID("ctt-2"); ctt.Attr(AttrTabsID) != "tabs-cmp" {
		t.Fatalf("expected tab-content tabs-id, got %q", ctt.Attr(AttrTabsID))
	}
	var ids []string
	for _, n := range tree.Focusables() {
		ids = append(ids, n.ID)
	}
	if strings.Join(ids, ",") != "tab1,tab2,tab3" {
		t.Fatalf("unexpected focus order %v", ids)
	}
}

func TestTreeAncestorsAndWalk(t *testing.T) {
	tree := BuildFile(filepath.Join("testdata", "tabs_sample.tml"))
	prg := tree.FindByID("prg-2")
	var chain []string
	for _, anc := range tree.Ancestors(prg) {
		chain = append(chain, anc.ID)
	}
	if strings.Join(chain, ">") != "root>tabs-cmp>t-body>ctt-2" {
		t.Fatalf("unexpected ancestors %v", chain)
	}
	if tabs := tree.NearestAncestor(prg, TagTabs); tabs == nil || tabs.ID != "tabs-cmp" {
		t.Fatalf("expected tabs ancestor")
	}
	count := 0
	tree.Walk(func(n *Node) bool {
		count++
		return n.ID != "tab2"
	})
	if count != 5 {
		t.Fatalf("expected walk to stop at tab2 after 5 nodes, got %d", count)
	}
	if got := len(tree.ByTag(TagTabContent)); got != 2 {
		t.Fatalf("expected 2 tab-content nodes, got %d", got)
	}
}

func TestDepthFollowsParentEverywhere(t *testing.T) {
	for _, name := range []string{"real_sample.tml", "tabs_sample.tml"} {
		tree := BuildFile(filepath.Join("testdata", name))
		if tree.Failed() {
			t.Fatalf("%s: unexpected failure: %v", name, tree.Err())
		}
		visited := 0
		tree.Walk(func(n *Node) bool {
			visited++
			if n.Parent == NoHandle {
				if n != tree.Root() || n.Depth != 0 {
					t.Fatalf("%s: parentless node %q at depth %d", name, n.ID, n.Depth)
				}
				return true
			}
			parent := tree.Parent(n)
			if parent == nil {
				t.Fatalf("%s: node %q has dangling parent %d", name, n.ID, n.Parent)
			}
			if n.Depth != parent.Depth+1 {
				t.Fatalf("%s: node %q depth %d under %q depth %d", name, n.ID, n.Depth, parent.ID, parent.Depth)
			}
			return true
		})
		if visited < 5 {
			t.Fatalf("%s: expected a full walk, visited %d nodes", name, visited)
		}
	}
}

func TestTreeString(t *testing.T) {
	tree := Build(strings.NewReader(`<layout id="r"><p id="a" align="center"> hi </p></layout>`))
	want := "<layout id=\"r\">\n\t<p align=\"center\" id=\"a\">\n\t\thi\n\t</p>\n</layout>\n"
	if got := tree.String(); got != want {
		t.Fatalf("unexpected dump:\n%s", got)
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" Yes | |Cancel")
	if len(got) != 2 || got[0] != "Yes" || got[1] != "Cancel" {
		t.Fatalf("unexpected split %v", got)
	}
}
