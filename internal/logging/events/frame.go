package events

import "github.com/atomicstack/tui-markup-renderer/internal/logging"

type FrameTracer struct{}

var Frame = FrameTracer{}

func (FrameTracer) Render(width, height, drawables, painted int) {
	logging.Trace("frame.render", map[string]interface{}{
		"width":     width,
		"height":    height,
		"drawables": drawables,
		"painted":   painted,
	})
}

func (FrameTracer) Skip(fingerprint string) {
	logging.Trace("frame.skip", map[string]interface{}{"fingerprint": fingerprint})
}
