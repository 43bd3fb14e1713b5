package events

import "github.com/atomicstack/tui-markup-renderer/internal/logging"

type FocusTracer struct{}

var Focus = FocusTracer{}

func (FocusTracer) Move(direction string, current int, id string) {
	logging.Trace("focus.move", map[string]interface{}{
		"direction": direction,
		"current":   current,
		"id":        id,
	})
}

func (FocusTracer) EnterScope(owner string, depth, focusables int) {
	logging.Trace("focus.scope.enter", map[string]interface{}{
		"owner":      owner,
		"depth":      depth,
		"focusables": focusables,
	})
}

func (FocusTracer) LeaveScope(owner string, depth int) {
	logging.Trace("focus.scope.leave", map[string]interface{}{"owner": owner, "depth": depth})
}

func (FocusTracer) Reset() {
	logging.Trace("focus.reset", nil)
}
