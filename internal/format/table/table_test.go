package table

import (
	"strings"
	"testing"
)

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"ID", "TAG", "RECT"},
		{"nav", "container", "0,0 80x3"},
		{"dlg1_btn_Yes", "button", "17,14 23x3"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignRight})
	want := []string{
		"ID            TAG              RECT",
		"nav           container    0,0 80x3",
		"dlg1_btn_Yes  button     17,14 23x3",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected table:\n%s", strings.Join(got, "\n"))
	}
}

func TestFormatIgnoresEscapesAndWideRunes(t *testing.T) {
	rows := [][]string{
		{"\x1b[1mab\x1b[0m", "x"},
		{"日本", "y"},
	}
	got := Format(rows, nil)
	if got[0] != "\x1b[1mab\x1b[0m    x" || got[1] != "日本  y" {
		t.Fatalf("unexpected widths %q", got)
	}
}

func TestFormatRaggedRows(t *testing.T) {
	got := Format([][]string{{"a"}, {"bb", "c"}}, nil)
	if got[0] != "a" || got[1] != "bb  c" {
		t.Fatalf("unexpected ragged output %q", got)
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
