package app

import (
	"os"

	"golang.org/x/term"
)

// Descriptor records what one standard descriptor reported.
type Descriptor struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Terminal is the result of inspecting the standard descriptors, output first.
type Terminal struct {
	Descriptors []Descriptor `json:"descriptors"`
}

// InspectTerminal inspects stdout, stderr and stdin in that order.
func InspectTerminal() Terminal {
	return inspect([]*os.File{os.Stdout, os.Stderr, os.Stdin}, []string{"stdout", "stderr", "stdin"})
}

func inspect(files []*os.File, names []string) Terminal {
	var t Terminal
	for i, f := range files {
		p := Descriptor{Name: names[i]}
		if f != nil {
			fd := int(f.Fd())
			if fd >= 0 && term.IsTerminal(fd) {
				p.Terminal = true
				if w, h, err := term.GetSize(fd); err == nil {
					p.Width, p.Height = w, h
				} else {
					p.Error = err.Error()
				}
			}
		}
		t.Descriptors = append(t.Descriptors, p)
	}
	return t
}

// Size returns the first usable size and the descriptor it came from.
func (t Terminal) Size() (width, height int, source string) {
	for _, p := range t.Descriptors {
		if p.Terminal && p.Width > 0 && p.Height > 0 {
			return p.Width, p.Height, p.Name
		}
	}
	return 0, 0, ""
}

// SizedFor fills unset dimensions of cfg from t, falling back to 80x24.
func (cfg Config) SizedFor(t Terminal) Config {
	tw, th, _ := t.Size()
	if tw <= 0 || th <= 0 {
		tw, th = fallbackWidth, fallbackHeight
	}
	if cfg.Width <= 0 {
		cfg.Width = tw
	}
	if cfg.Height <= 0 {
		cfg.Height = th
	}
	return cfg
}
