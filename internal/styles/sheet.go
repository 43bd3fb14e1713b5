package styles

import "sort"

const (
	FocusSuffix  = ":focus"
	ActiveSuffix = ":active"
	IDPrefix     = "#"
)

// Sheet maps rule names (tag, tag:focus, tag:active, #id) to rules.
type Sheet map[string]Rule

// Add stores a rule, replacing any rule already registered under name.
func (s Sheet) Add(name string, rule Rule) {
	s[name] = rule
}

// Merge copies every rule from other into s.
func (s Sheet) Merge(other Sheet) {
	for name, rule := range other {
		s.Add(name, rule)
	}
}

// Rule returns the named rule.
func (s Sheet) Rule(name string) (Rule, bool) {
	rule, ok := s[name]
	return rule, ok
}

// Names returns the rule names in sorted order.
func (s Sheet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Subject is the view of a markup node needed for style resolution.
type Subject struct {
	Tag          string
	ID           string
	Inline       string
	FocusInline  string
	ActiveInline string
}

// Resolve computes the effective rule for self. Ancestors are given root
// first. Later patches win field by field:
// ancestor tag and id rules, own tag rule, pseudo-state rules, inline rules,
// and finally the own id rule.
func (s Sheet) Resolve(ancestors []Subject, self Subject, focused, active bool) Rule {
	var out Rule
	for _, anc := range ancestors {
		out = s.patch(out, anc.Tag)
		if anc.ID != "" {
			out = s.patch(out, IDPrefix+anc.ID)
		}
	}
	out = s.patch(out, self.Tag)
	if focused {
		out = s.patch(out, self.Tag+FocusSuffix)
	}
	if active {
		out = s.patch(out, self.Tag+ActiveSuffix)
	}
	if self.Inline != "" {
		out = out.Patch(ParseRule(self.Inline))
	}
	if focused && self.FocusInline != "" {
		out = out.Patch(ParseRule(self.FocusInline))
	}
	if active && self.ActiveInline != "" {
		out = out.Patch(ParseRule(self.ActiveInline))
	}
	if self.ID != "" {
		out = s.patch(out, IDPrefix+self.ID)
	}
	return out
}

func (s Sheet) patch(base Rule, name string) Rule {
	if rule, ok := s[name]; ok {
		return base.Patch(rule)
	}
	return base
}
