package ui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/tui-markup-renderer/internal/action"
	"github.com/atomicstack/tui-markup-renderer/internal/backend"
	"github.com/atomicstack/tui-markup-renderer/internal/logging"
	"github.com/atomicstack/tui-markup-renderer/internal/markup"
	"github.com/atomicstack/tui-markup-renderer/internal/state"
	tea "github.com/charmbracelet/bubbletea"
)

func quietLogs(t *testing.T) {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "ui.log"))
	t.Cleanup(func() { logging.Configure("") })
}

func appTree(t *testing.T) *markup.Tree {
	t.Helper()
	tree := markup.BuildFile(filepath.Join("testdata", "app.tml"))
	if tree.Failed() {
		t.Fatalf("failed to build app.tml: %v", tree.Err())
	}
	return tree
}

func newHarness(t *testing.T, opts Options) *Harness {
	t.Helper()
	quietLogs(t)
	if opts.Tree == nil {
		opts.Tree = appTree(t)
	}
	if opts.Width == 0 && opts.Height == 0 {
		opts.Width, opts.Height = 80, 24
	}
	return NewHarness(NewModel(opts))
}

func TestInitialFrameRendered(t *testing.T) {
	h := newHarness(t, Options{})
	if h.Model().Renders() != 1 {
		t.Fatalf("expected one render at construction, got %d", h.Model().Renders())
	}
	for _, want := range []string{"Toolbar", "Tab 1", "Content 1"} {
		if !strings.Contains(h.View(), want) {
			t.Fatalf("expected %q in view:\n%s", want, h.View())
		}
	}
	if h.Model().Init() != nil {
		t.Fatalf("expected no init command without a ticker")
	}
}

func TestUnchangedFingerprintSkipsRender(t *testing.T) {
	h := newHarness(t, Options{})
	h.Type("x")
	h.Send(tea.WindowSizeMsg{Width: 10, Height: 3})
	if h.Model().Renders() != 1 {
		t.Fatalf("expected no extra render, got %d", h.Model().Renders())
	}
	h.Press(tea.KeyTab)
	if h.Model().Renders() != 2 {
		t.Fatalf("expected focus move to render, got %d", h.Model().Renders())
	}
}

func TestFocusCycle(t *testing.T) {
	h := newHarness(t, Options{})
	focus := h.Model().Focus()
	if focus.IDs() != "tab1,btn_hello,tab2" {
		t.Fatalf("unexpected focus order %q", focus.IDs())
	}
	var seen []int
	for i := 0; i < 4; i++ {
		h.Press(tea.KeyTab)
		seen = append(seen, focus.Current())
	}
	if want := []int{0, 1, 2, -1}; !equalInts(seen, want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	h.Press(tea.KeyShiftTab)
	if focus.Current() != 2 {
		t.Fatalf("expected shift+tab to wrap to the last entry, got %d", focus.Current())
	}
}

func TestEnterActivatesTab(t *testing.T) {
	h := newHarness(t, Options{})
	h.Press(tea.KeyTab, tea.KeyTab, tea.KeyTab, tea.KeyEnter)
	if got := h.Model().State().Get(state.TabIndexKey("tabs-cmp")); got != "tab2" {
		t.Fatalf("expected tab2 selected, got %q", got)
	}
	if h.Model().Focus().Current() != -1 {
		t.Fatalf("expected focus reset after tab activation")
	}
	if !strings.Contains(h.View(), "Content 2") || strings.Contains(h.View(), "Content 1") {
		t.Fatalf("expected second tab content:\n%s", h.View())
	}
}

func TestDialogButtonDispatchesDerivedAction(t *testing.T) {
	var dispatched []string
	registry := action.NewRegistry().
		Add("do_something", func(st state.State, n *markup.Node) action.Response {
			dispatched = append(dispatched, n.ID)
			return action.SetState(st.With("showQuitDialog", "true"))
		}).
		Add("on_dlg1_btn_Yes", func(st state.State, n *markup.Node) action.Response {
			dispatched = append(dispatched, n.ID)
			return action.Quit()
		})
	h := newHarness(t, Options{Registry: registry})

	h.Press(tea.KeyTab, tea.KeyTab, tea.KeyEnter)
	focus := h.Model().Focus()
	if focus.Depth() != 1 || focus.IDs() != "dlg1_btn_Yes,dlg1_btn_Cancel" {
		t.Fatalf("expected dialog scope, got depth=%d ids=%q", focus.Depth(), focus.IDs())
	}
	if !strings.Contains(h.View(), "Close Application") {
		t.Fatalf("expected dialog in view:\n%s", h.View())
	}

	h.Press(tea.KeyTab, tea.KeyEnter)
	if !h.Quit() || !h.Model().Quitting() {
		t.Fatalf("expected the yes button to quit")
	}
	if strings.Join(dispatched, ",") != "btn_hello,dlg1_btn_Yes" {
		t.Fatalf("unexpected dispatch order %v", dispatched)
	}
}

func TestHandlerSeesCommittedState(t *testing.T) {
	var seen state.State
	handler := func(key tea.KeyMsg, st state.State) action.Response {
		if key.String() == "q" {
			return action.Quit()
		}
		seen = st
		return action.Noop()
	}
	h := newHarness(t, Options{Handler: handler})
	h.Press(tea.KeyTab, tea.KeyEnter)
	if seen.Get(state.TabIndexKey("tabs-cmp")) != "tab1" {
		t.Fatalf("expected the handler to see the activated tab, got %v", seen)
	}
	h.Type("q")
	if !h.Quit() {
		t.Fatalf("expected handler quit to end the loop")
	}
}

func TestWindowSizeDrivesFrame(t *testing.T) {
	quietLogs(t)
	m := NewModel(Options{Tree: appTree(t)})
	h := NewHarness(m)
	if m.Renders() != 0 || h.View() != "" {
		t.Fatalf("expected no frame before the size is known")
	}
	h.Send(tea.WindowSizeMsg{Width: 40, Height: 12})
	if m.Renders() != 1 || m.Frame().Canvas.Width() != 40 || m.Frame().Canvas.Height() != 12 {
		t.Fatalf("expected a 40x12 frame after resize")
	}
	if !strings.Contains(m.Fingerprint(), "|40x12|") {
		t.Fatalf("expected size in fingerprint, got %q", m.Fingerprint())
	}
}

func TestTickHandlerUpdatesState(t *testing.T) {
	onTick := func(tick backend.Tick, st state.State) action.Response {
		return action.SetState(st.With("ticks", "1"))
	}
	h := newHarness(t, Options{OnTick: onTick})
	h.Send(tickMsg{tick: backend.Tick{Seq: 1}})
	if h.Model().State().Get("ticks") != "1" {
		t.Fatalf("expected tick handler to update state")
	}
	if h.Model().Renders() != 2 {
		t.Fatalf("expected a render after the state change, got %d", h.Model().Renders())
	}
}

func TestTickerDoneStopsWaiting(t *testing.T) {
	ticker := backend.NewTicker(backend.DefaultInterval)
	ticker.Stop()
	ticker.Wait()
	h := newHarness(t, Options{Ticker: ticker})
	if h.Model().Init() == nil {
		t.Fatalf("expected init to wait for ticks")
	}
	h.Send(tickerDoneMsg{})
	if h.Model().ticker != nil {
		t.Fatalf("expected ticker released")
	}
	_, cmd := h.Model().Update(tickMsg{})
	if cmd != nil {
		t.Fatalf("expected no re-arm once the ticker is gone")
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
