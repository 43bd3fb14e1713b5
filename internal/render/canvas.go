package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// Canvas is a fixed-size grid of lines that painted blocks are composited
// onto. Lines may carry ANSI styling.
type Canvas struct {
	width  int
	height int
	lines  []string
}

// NewCanvas returns a blank canvas.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	lines := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = blank
	}
	return &Canvas{width: width, height: height, lines: lines}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Draw composites block with its top-left cell at (x, y). Cells falling
// outside the canvas are dropped.
func (c *Canvas) Draw(x, y int, block string) {
	if block == "" {
		return
	}
	fgLines := strings.Split(block, "\n")
	fgW := lipgloss.Width(block)
	if x < 0 {
		for i, line := range fgLines {
			fgLines[i] = xansi.Cut(line, -x, fgW)
		}
		fgW += x
		x = 0
	}
	if y < 0 {
		if -y >= len(fgLines) {
			return
		}
		fgLines = fgLines[-y:]
		y = 0
	}
	if x+fgW > c.width {
		fgW = c.width - x
	}
	overlayAt(c.lines, fgLines, c.width, x, y, fgW)
}

// DrawIn composites block clipped to the given area.
func (c *Canvas) DrawIn(x, y, w, h int, block string) {
	if w <= 0 || h <= 0 {
		return
	}
	lines := strings.Split(block, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for i, line := range lines {
		if xansi.StringWidth(line) > w {
			lines[i] = xansi.Cut(line, 0, w)
		}
	}
	c.Draw(x, y, strings.Join(lines, "\n"))
}

// Lines returns a copy of the canvas rows.
func (c *Canvas) Lines() []string {
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// Plain returns the canvas rows with styling stripped.
func (c *Canvas) Plain() []string {
	out := make([]string, len(c.lines))
	for i, line := range c.lines {
		out[i] = xansi.Strip(line)
	}
	return out
}

func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

func overlayAt(bgLines []string, fgLines []string, w, x, y, fgW int) {
	if fgW <= 0 {
		return
	}
	for i := 0; i < len(fgLines) && y+i < len(bgLines); i++ {
		bgLine := bgLines[y+i]
		left := xansi.Cut(bgLine, 0, x)
		right := xansi.Cut(bgLine, x+fgW, w)

		fgLine := fgLines[i]
		if n := xansi.StringWidth(fgLine); n < fgW {
			fgLine += strings.Repeat(" ", fgW-n)
		} else if n > fgW {
			fgLine = xansi.Cut(fgLine, 0, fgW)
		}

		bgLines[y+i] = left + fgLine + right
	}
}
