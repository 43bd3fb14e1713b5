package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is a named terminal color resolved to its ANSI palette index.
type Color struct {
	Name string
	Code string
}

var namedColors = map[string]string{
	"black":        "0",
	"red":          "1",
	"green":        "2",
	"yellow":       "3",
	"blue":         "4",
	"magenta":      "5",
	"cyan":         "6",
	"gray":         "7",
	"darkgray":     "8",
	"lightred":     "9",
	"lightgreen":   "10",
	"lightyellow":  "11",
	"lightblue":    "12",
	"lightmagenta": "13",
	"lightcyan":    "14",
	"white":        "15",
}

// ParseColor resolves a color name case-insensitively. "reset" and unknown
// names report false, which callers treat as the transparent default.
func ParseColor(name string) (Color, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	code, ok := namedColors[key]
	if !ok {
		return Color{}, false
	}
	return Color{Name: key, Code: code}, true
}

// Modifier is a set of text decoration flags.
type Modifier uint16

const (
	Bold Modifier = 1 << iota
	Dim
	Italic
	Underlined
	SlowBlink
	RapidBlink
	Reversed
	Hidden
	CrossedOut
)

var namedModifiers = map[string]Modifier{
	"bold":        Bold,
	"dim":         Dim,
	"italic":      Italic,
	"underlined":  Underlined,
	"underline":   Underlined,
	"slow_blink":  SlowBlink,
	"rapid_blink": RapidBlink,
	"reversed":    Reversed,
	"hidden":      Hidden,
	"crossed_out": CrossedOut,
}

// ParseModifier resolves a single modifier name.
func ParseModifier(name string) (Modifier, bool) {
	m, ok := namedModifiers[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// Has reports whether every flag in other is set.
func (m Modifier) Has(other Modifier) bool {
	return other != 0 && m&other == other
}

// Rule is a sparse set of visual properties. Unset colors are nil.
type Rule struct {
	Fg  *Color
	Bg  *Color
	Mod Modifier
}

// IsZero reports whether the rule sets nothing.
func (r Rule) IsZero() bool {
	return r.Fg == nil && r.Bg == nil && r.Mod == 0
}

// Equal reports whether both rules set the same properties.
func (r Rule) Equal(other Rule) bool {
	return sameColor(r.Fg, other.Fg) && sameColor(r.Bg, other.Bg) && r.Mod == other.Mod
}

func sameColor(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Code == b.Code
}

// Patch returns r with the properties set on other applied over it.
// Modifiers are unioned.
func (r Rule) Patch(other Rule) Rule {
	out := r
	if other.Fg != nil {
		fg := *other.Fg
		out.Fg = &fg
	}
	if other.Bg != nil {
		bg := *other.Bg
		out.Bg = &bg
	}
	out.Mod |= other.Mod
	return out
}

// Lipgloss converts the rule into a lipgloss style.
func (r Rule) Lipgloss() lipgloss.Style {
	return r.Apply(lipgloss.NewStyle())
}

// Apply layers the rule over an existing lipgloss style.
func (r Rule) Apply(style lipgloss.Style) lipgloss.Style {
	if r.Fg != nil {
		style = style.Foreground(lipgloss.Color(r.Fg.Code))
	}
	if r.Bg != nil {
		style = style.Background(lipgloss.Color(r.Bg.Code))
	}
	if r.Mod.Has(Bold) {
		style = style.Bold(true)
	}
	if r.Mod.Has(Dim) {
		style = style.Faint(true)
	}
	if r.Mod.Has(Italic) {
		style = style.Italic(true)
	}
	if r.Mod.Has(Underlined) {
		style = style.Underline(true)
	}
	if r.Mod.Has(SlowBlink) || r.Mod.Has(RapidBlink) {
		style = style.Blink(true)
	}
	if r.Mod.Has(Reversed) {
		style = style.Reverse(true)
	}
	if r.Mod.Has(CrossedOut) {
		style = style.Strikethrough(true)
	}
	if r.Mod.Has(Hidden) && r.Bg != nil {
		style = style.Foreground(lipgloss.Color(r.Bg.Code))
	}
	return style
}
