package styles

import (
	"sort"
	"strings"

	"github.com/atomicstack/tui-markup-renderer/internal/logging"
	"github.com/atomicstack/tui-markup-renderer/internal/logging/events"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ParseRule parses `prop:value;` pairs as used in the styles, focus_styles
// and active_styles attributes and inside stylesheet blocks.
func ParseRule(body string) Rule {
	var rule Rule
	for _, decl := range strings.Split(body, ";") {
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		if prop == "" || value == "" {
			continue
		}
		switch prop {
		case "fg":
			if c, ok := parseColorValue(value); ok {
				rule.Fg = &c
			}
		case "bg":
			if c, ok := parseColorValue(value); ok {
				rule.Bg = &c
			}
		case "weight":
			if m, ok := parseModifierValue(value); ok {
				rule.Mod |= m
			}
		case "font-decoration":
			for _, name := range strings.Split(value, "|") {
				if m, ok := parseModifierValue(name); ok {
					rule.Mod |= m
				}
			}
		}
	}
	return rule
}

// ParseSheet parses stylesheet text made of `name { prop: value; }` blocks.
// Whitespace is insignificant. A later block with the same name replaces an
// earlier one.
func ParseSheet(text string) Sheet {
	sheet := Sheet{}
	compact := strings.Join(strings.Fields(text), "")
	level := 0
	nameStart := 0
	bodyStart := -1
	for i, r := range compact {
		switch r {
		case '{':
			if level == 0 {
				bodyStart = i + 1
			}
			level++
		case '}':
			if level == 0 {
				nameStart = i + 1
				continue
			}
			level--
			if level == 0 && bodyStart >= 0 {
				name := compact[nameStart : bodyStart-1]
				body := compact[bodyStart:i]
				if name != "" {
					sheet.Add(name, ParseRule(body))
				}
				nameStart = i + 1
				bodyStart = -1
			}
		}
	}
	return sheet
}

func parseColorValue(value string) (Color, bool) {
	if c, ok := ParseColor(value); ok {
		return c, true
	}
	if strings.EqualFold(value, "reset") {
		return Color{}, false
	}
	reportUnknown("color", value, colorNames())
	return Color{}, false
}

func parseModifierValue(value string) (Modifier, bool) {
	if m, ok := ParseModifier(value); ok {
		return m, true
	}
	reportUnknown("modifier", value, modifierNames())
	return 0, false
}

func reportUnknown(kind, value string, known []string) {
	suggestion := Suggest(value, known)
	if suggestion != "" {
		logging.Warnf("unknown %s %q (did you mean %q?)", kind, value, suggestion)
	} else {
		logging.Warnf("unknown %s %q", kind, value)
	}
	events.Markup.UnknownStyle(kind, value, suggestion)
}

// Suggest returns the closest known name for value, or "" when nothing is
// close enough.
func Suggest(value string, known []string) string {
	needle := strings.ToLower(strings.TrimSpace(value))
	if needle == "" {
		return ""
	}
	ranks := fuzzy.RankFindNormalizedFold(needle, known)
	if len(ranks) == 0 {
		// "grean" is not a subsequence of "green"; fall back to edit distance.
		best, bestDist := "", 3
		for _, name := range known {
			if d := fuzzy.LevenshteinDistance(name, needle); d < bestDist {
				best, bestDist = name, d
			}
		}
		return best
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Distance < ranks[j].Distance
	})
	return ranks[0].Target
}

func colorNames() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func modifierNames() []string {
	names := make([]string, 0, len(namedModifiers))
	for name := range namedModifiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
