package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tui-markup-renderer/internal/app"
	"github.com/atomicstack/tui-markup-renderer/internal/backend"
	"github.com/spf13/pflag"
)

// DefaultLayout is the markup file loaded when none is given.
const DefaultLayout = "./assets/layout.tml"

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envLayout  = "TUI_MARKUP_LAYOUT"
	envWidth   = "TUI_MARKUP_WIDTH"
	envHeight  = "TUI_MARKUP_HEIGHT"
	envTick    = "TUI_MARKUP_TICK"
	envCheck   = "TUI_MARKUP_CHECK"
	envTrace   = "TUI_MARKUP_TRACE"
	envLogFile = "TUI_MARKUP_LOG_FILE"
)

// HelpError is returned when --help was requested. Usage holds the flag
// summary.
type HelpError struct {
	Usage string
}

func (e *HelpError) Error() string {
	return pflag.ErrHelp.Error()
}

func (e *HelpError) Unwrap() error {
	return pflag.ErrHelp
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("tui-markup-renderer", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	layout := fs.StringP("layout", "l", envOrDefault(env, envLayout, DefaultLayout), "path to the markup file")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "frame width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "frame height in rows (0 uses terminal height)")
	tick := fs.Duration("tick", envOrDuration(env, envTick, backend.DefaultInterval), "heartbeat interval of the event loop")
	sets := fs.StringArray("set", nil, "initial state entry as key=value (repeatable)")
	check := fs.Bool("check", envOrBool(env, envCheck, false), "lay out once, print the drawables and the frame, then exit")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{}, &HelpError{Usage: fs.FlagUsages()}
		}
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	initial, err := parseSets(*sets)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Layout: *layout,
			Width:  *width,
			Height: *height,
			Tick:   *tick,
			State:  initial,
			Check:  *check,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"layout":  *layout,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"tick":    tick.String(),
			"set":     strings.Join(*sets, ","),
			"check":   strconv.FormatBool(*check),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseSets(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("--set expects key=value (got %q)", pair)
		}
		out[key] = value
	}
	return out, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	var help *HelpError
	if errors.As(err, &help) {
		fmt.Fprintf(os.Stdout, "Usage of tui-markup-renderer:\n%s", help.Usage)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.Layout) == "" {
		return fmt.Errorf("layout path must not be empty")
	}
	if cfg.App.Tick <= 0 {
		return fmt.Errorf("tick must be positive (got %s)", cfg.App.Tick)
	}
	if cfg.App.Width < 0 || cfg.App.Height < 0 {
		return fmt.Errorf("size must be >= 0 (got %dx%d)", cfg.App.Width, cfg.App.Height)
	}
	return nil
}
