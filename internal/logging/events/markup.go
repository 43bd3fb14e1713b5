package events

import "github.com/atomicstack/tui-markup-renderer/internal/logging"

type MarkupTracer struct{}

var Markup = MarkupTracer{}

func (MarkupTracer) Parsed(path string, nodes, focusables, rules int) {
	logging.Trace("markup.parsed", map[string]interface{}{
		"path":       path,
		"nodes":      nodes,
		"focusables": focusables,
		"rules":      rules,
	})
}

func (MarkupTracer) Failed(path string, err error) {
	logging.Trace("markup.failed", map[string]interface{}{"path": path, "error": err.Error()})
}

func (MarkupTracer) UnknownStyle(kind, value, suggestion string) {
	logging.Trace("markup.style.unknown", map[string]interface{}{
		"kind":       kind,
		"value":      value,
		"suggestion": suggestion,
	})
}
