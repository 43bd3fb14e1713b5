package styles

import (
	"path/filepath"
	"testing"

	"github.com/atomicstack/tui-markup-renderer/internal/logging"
)

func quietLogs(t *testing.T) {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "styles.log"))
	t.Cleanup(func() { logging.Configure("") })
}

func TestParseSheetBlocks(t *testing.T) {
	sheet := ParseSheet(`
		p { fg: white; bg: Blue; }
		button:focus {
			weight: bold;
			font-decoration: underlined|italic;
		}
		#title { fg: red; }
	`)
	if len(sheet) != 3 {
		t.Fatalf("expected 3 rules, got %d (%v)", len(sheet), sheet.Names())
	}
	p, ok := sheet.Rule("p")
	if !ok {
		t.Fatalf("expected p rule")
	}
	if p.Fg == nil || p.Fg.Name != "white" {
		t.Fatalf("expected fg white, got %#v", p.Fg)
	}
	if p.Bg == nil || p.Bg.Code != "4" {
		t.Fatalf("expected case-insensitive bg blue, got %#v", p.Bg)
	}
	focus, ok := sheet.Rule("button:focus")
	if !ok {
		t.Fatalf("expected button:focus rule")
	}
	if !focus.Mod.Has(Bold) || !focus.Mod.Has(Underlined) || !focus.Mod.Has(Italic) {
		t.Fatalf("expected bold|underlined|italic, got %b", focus.Mod)
	}
	if _, ok := sheet.Rule("#title"); !ok {
		t.Fatalf("expected id rule")
	}
}

func TestParseSheetLaterDuplicateWins(t *testing.T) {
	sheet := ParseSheet("p{fg:red;} p{fg:green;}")
	rule, _ := sheet.Rule("p")
	if rule.Fg == nil || rule.Fg.Name != "green" {
		t.Fatalf("expected later declaration to win, got %#v", rule.Fg)
	}
}

func TestParseRuleIgnoresUnknown(t *testing.T) {
	quietLogs(t)
	rule := ParseRule("fg:notacolor; padding:3; weight:bold")
	if rule.Fg != nil {
		t.Fatalf("expected unknown color to stay unset, got %#v", rule.Fg)
	}
	if rule.Mod != Bold {
		t.Fatalf("expected only bold, got %b", rule.Mod)
	}
	if !ParseRule("fg:reset").IsZero() {
		t.Fatalf("expected reset to leave the rule empty")
	}
}

func TestPatchOnlyOverwritesSetFields(t *testing.T) {
	base := ParseRule("fg:white;bg:black;weight:bold")
	top := ParseRule("bg:red;weight:italic")
	got := base.Patch(top)
	if got.Fg == nil || got.Fg.Name != "white" {
		t.Fatalf("expected fg preserved, got %#v", got.Fg)
	}
	if got.Bg == nil || got.Bg.Name != "red" {
		t.Fatalf("expected bg overwritten, got %#v", got.Bg)
	}
	if !got.Mod.Has(Bold | Italic) {
		t.Fatalf("expected modifiers unioned, got %b", got.Mod)
	}
	if base.Bg.Name != "black" {
		t.Fatalf("expected base rule untouched")
	}
}

func TestResolveCascade(t *testing.T) {
	sheet := ParseSheet("p { fg: white; } #myid { fg: blue; }")
	plain := Subject{Tag: "p", ID: "other", Inline: "bg:red;"}
	got := sheet.Resolve(nil, plain, false, false)
	if got.Bg == nil || got.Bg.Name != "red" {
		t.Fatalf("expected inline bg red, got %#v", got.Bg)
	}
	if got.Fg == nil || got.Fg.Name != "white" {
		t.Fatalf("expected tag fg white, got %#v", got.Fg)
	}

	withID := Subject{Tag: "p", ID: "myid", Inline: "bg:red;"}
	got = sheet.Resolve(nil, withID, false, false)
	if got.Fg == nil || got.Fg.Name != "blue" {
		t.Fatalf("expected id rule to override fg, got %#v", got.Fg)
	}
	if got.Bg == nil || got.Bg.Name != "red" {
		t.Fatalf("expected bg kept, got %#v", got.Bg)
	}
}

func TestResolveAncestorsAndPseudoStates(t *testing.T) {
	sheet := ParseSheet(`
		layout { bg: black; fg: gray; }
		button { fg: white; }
		button:focus { bg: blue; }
		button:active { weight: bold; }
	`)
	ancestors := []Subject{{Tag: "layout", ID: "root"}, {Tag: "block", ID: "b"}}
	btn := Subject{Tag: "button", ID: "ok", FocusInline: "fg:yellow"}

	idle := sheet.Resolve(ancestors, btn, false, false)
	if idle.Bg == nil || idle.Bg.Name != "black" || idle.Fg.Name != "white" {
		t.Fatalf("unexpected idle rule %#v / %#v", idle.Bg, idle.Fg)
	}

	focused := sheet.Resolve(ancestors, btn, true, false)
	if focused.Bg.Name != "blue" || focused.Fg.Name != "yellow" {
		t.Fatalf("unexpected focused rule %#v / %#v", focused.Bg, focused.Fg)
	}

	active := sheet.Resolve(ancestors, btn, false, true)
	if !active.Mod.Has(Bold) {
		t.Fatalf("expected active modifier")
	}
}

func TestSuggest(t *testing.T) {
	if got := Suggest("grean", colorNames()); got != "green" {
		t.Fatalf("expected green, got %q", got)
	}
	if got := Suggest("lightblu", colorNames()); got != "lightblue" {
		t.Fatalf("expected lightblue, got %q", got)
	}
	if got := Suggest("", colorNames()); got != "" {
		t.Fatalf("expected no suggestion for empty input, got %q", got)
	}
}

func TestRuleEqual(t *testing.T) {
	a := ParseRule("fg:red;weight:bold")
	b := ParseRule("weight:bold;fg:Red")
	if !a.Equal(b) {
		t.Fatalf("expected equal rules")
	}
	if a.Equal(ParseRule("fg:red")) || (Rule{}).Equal(a) {
		t.Fatalf("expected different rules")
	}
	if !(Rule{}).Equal(Rule{}) {
		t.Fatalf("expected empty rules to be equal")
	}
}
