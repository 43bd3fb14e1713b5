package app

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atomicstack/tui-markup-renderer/internal/format/table"
	"github.com/atomicstack/tui-markup-renderer/internal/markup"
	"github.com/atomicstack/tui-markup-renderer/internal/render"
	"github.com/atomicstack/tui-markup-renderer/internal/theme"
	"github.com/atomicstack/tui-markup-renderer/pkg/renderer"
	tea "github.com/charmbracelet/bubbletea"
)

// Built-in actions available to every layout.
const (
	QuitAction       = "quit"
	ShowDialogAction = "show_dialog"
)

var chrome = theme.Default()

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Config describes user-provided application options.
type Config struct {
	Layout string
	Width  int
	Height int
	Tick   time.Duration
	State  map[string]string
	Check  bool
}

// New builds a renderer for cfg with the built-in actions registered.
func New(cfg Config) *renderer.Renderer {
	opts := []renderer.Option{renderer.WithState(renderer.State(cfg.State))}
	if cfg.Tick > 0 {
		opts = append(opts, renderer.WithTick(cfg.Tick))
	}
	if cfg.Width > 0 || cfg.Height > 0 {
		opts = append(opts, renderer.WithSize(cfg.Width, cfg.Height))
	}
	r := renderer.New(cfg.Layout, opts...)
	tree := r.Tree()
	return r.
		AddAction(QuitAction, func(renderer.State, *markup.Node) renderer.Response {
			return renderer.Quit()
		}).
		AddAction(ShowDialogAction, func(st renderer.State, n *markup.Node) renderer.Response {
			return showDialog(tree, st, n.Attr(markup.AttrFor))
		})
}

// showDialog sets the show key of the dialog with the given id.
func showDialog(tree *markup.Tree, st renderer.State, id string) renderer.Response {
	dlg := tree.FindByID(id)
	if dlg == nil || dlg.Tag != markup.TagDialog {
		return renderer.Noop()
	}
	key := dlg.Attr(markup.AttrShow)
	if key == "" {
		return renderer.Noop()
	}
	return renderer.SetState(st.With(key, "true"))
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	r := New(cfg)
	return r.Run(KeyHandler(r.Tree()))
}

// KeyHandler quits on q or ctrl+c and hides every dialog on esc.
func KeyHandler(tree *markup.Tree) renderer.Handler {
	return func(key tea.KeyMsg, st renderer.State) renderer.Response {
		switch key.String() {
		case "q", "ctrl+c":
			return renderer.Quit()
		case "esc":
			return hideDialogs(tree, st)
		}
		return renderer.Noop()
	}
}

func hideDialogs(tree *markup.Tree, st renderer.State) renderer.Response {
	changed := false
	for _, dlg := range tree.ByTag(markup.TagDialog) {
		key := dlg.Attr(markup.AttrShow)
		if key == "" || !st.IsTrue(key) {
			continue
		}
		st = st.With(key, "false")
		changed = true
	}
	if !changed {
		return renderer.Noop()
	}
	return renderer.SetState(st)
}

// Check lays the markup out once and writes the drawables and the frame to
// out. Unset dimensions default to 80x24; callers size cfg with SizedFor
// first to follow the terminal.
func Check(cfg Config, out io.Writer) error {
	r := New(cfg)
	cfg = cfg.SizedFor(Terminal{})
	width, height := cfg.Width, cfg.Height
	frame, err := r.Frame(width, height)
	if err != nil {
		return err
	}
	header := []string{"#", "ID", "TAG", "RECT", "DEPS", "STATE"}
	for i, cell := range header {
		header[i] = chrome.Header.Render(cell)
	}
	rows := [][]string{header}
	for i, d := range frame.Drawables {
		rows = append(rows, []string{
			fmt.Sprint(i),
			d.Node.ID,
			d.Node.Tag,
			d.Rect.String(),
			strings.Join(d.Deps, ","),
			drawableState(d),
		})
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignRight}) {
		fmt.Fprintln(out, line)
	}
	summary := fmt.Sprintf("%dx%d frame, %d drawables, %d painted", width, height, len(frame.Drawables), frame.Painted)
	fmt.Fprintf(out, "\n%s\n", chrome.Info.Render(summary))
	for _, line := range frame.Canvas.Plain() {
		fmt.Fprintln(out, line)
	}
	return nil
}

func drawableState(d render.Drawable) string {
	var flags []string
	if d.Active {
		flags = append(flags, "active")
	}
	if d.Node.Ephemeral() {
		flags = append(flags, "synthesized")
	}
	return strings.Join(flags, ",")
}
