package events

import "github.com/atomicstack/tui-markup-renderer/internal/logging"

type ActionTracer struct{}

var Action = ActionTracer{}

func (ActionTracer) Register(name string, added bool) {
	logging.Trace("action.register", map[string]interface{}{"name": name, "added": added})
}

func (ActionTracer) Dispatch(name, node, response string) {
	logging.Trace("action.dispatch", map[string]interface{}{
		"name":     name,
		"node":     node,
		"response": response,
	})
}

func (ActionTracer) Missing(name, node string) {
	logging.Trace("action.missing", map[string]interface{}{"name": name, "node": node})
}

func (ActionTracer) Handler(key, response string) {
	logging.Trace("action.handler", map[string]interface{}{"key": key, "response": response})
}
