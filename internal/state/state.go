package state

import (
	"sort"
	"strings"
)

// State is the application key-value state consulted during layout. Values
// handed to callbacks are snapshots; mutate a Clone and hand it back.
type State map[string]string

// Clone returns an independent copy. Cloning nil yields an empty state.
func (s State) Clone() State {
	dup := make(State, len(s))
	for k, v := range s {
		dup[k] = v
	}
	return dup
}

// Get returns the value stored under key, or "".
func (s State) Get(key string) string {
	return s[key]
}

// Lookup returns the value stored under key and whether it exists.
func (s State) Lookup(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

// IsTrue reports whether key holds exactly "true".
func (s State) IsTrue(key string) bool {
	return s[key] == "true"
}

// With returns a copy of s with key set to value.
func (s State) With(key, value string) State {
	dup := s.Clone()
	dup[key] = value
	return dup
}

// Keys returns the keys in sorted order.
func (s State) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Fingerprint renders the state as sorted "k=v;" pairs so equal states always
// compare equal.
func (s State) Fingerprint() string {
	var b strings.Builder
	for _, k := range s.Keys() {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(s[k])
		b.WriteByte(';')
	}
	return b.String()
}

// TabIndexKey is the state key recording the selected tab of a tabs node.
func TabIndexKey(tabsID string) string {
	return tabsID + ":index"
}
