package events

import "github.com/atomicstack/tui-markup-renderer/internal/logging"

type LayoutTracer struct{}

var Layout = LayoutTracer{}

func (LayoutTracer) UnknownTag(id, tag string) {
	logging.Trace("layout.tag.unknown", map[string]interface{}{"id": id, "tag": tag})
}

func (LayoutTracer) DialogShown(id string, buttons int) {
	logging.Trace("layout.dialog.shown", map[string]interface{}{"id": id, "buttons": buttons})
}

func (LayoutTracer) TabSelected(tabsID, tabID string) {
	logging.Trace("layout.tabs.selected", map[string]interface{}{"tabs": tabsID, "tab": tabID})
}
