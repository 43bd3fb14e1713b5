package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/tui-markup-renderer/internal/app"
	"github.com/atomicstack/tui-markup-renderer/internal/config"
	"github.com/atomicstack/tui-markup-renderer/internal/logging"
	"github.com/atomicstack/tui-markup-renderer/internal/logging/events"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	tty := app.InspectTerminal()
	events.App.Start(startupTracePayload(runtimeCfg, tty))

	var err error
	if runtimeCfg.App.Check {
		err = app.Check(runtimeCfg.App.SizedFor(tty), os.Stdout)
	} else {
		err = app.Run(runtimeCfg.App)
	}
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records how the program was started and what the
// terminal looked like.
func startupTracePayload(cfg config.Config, tty app.Terminal) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	width, height, source := tty.Size()
	payload := map[string]interface{}{
		"argv":  cfg.Args,
		"flags": flags,
		"tty":   tty,
		"size": map[string]interface{}{
			"width":  width,
			"height": height,
			"source": source,
		},
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}
