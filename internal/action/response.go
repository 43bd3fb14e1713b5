package action

import "github.com/atomicstack/tui-markup-renderer/internal/state"

// Kind tells the event loop how to apply a Response.
type Kind int

const (
	KindNoop Kind = iota
	KindQuit
	KindSetState
	KindResetFocus
)

func (k Kind) String() string {
	switch k {
	case KindQuit:
		return "quit"
	case KindSetState:
		return "set-state"
	case KindResetFocus:
		return "reset-focus"
	default:
		return "noop"
	}
}

// Response is the outcome of an action or key handler.
type Response struct {
	Kind  Kind
	State state.State
}

func Noop() Response { return Response{Kind: KindNoop} }

func Quit() Response { return Response{Kind: KindQuit} }

// SetState replaces the application state.
func SetState(st state.State) Response {
	return Response{Kind: KindSetState, State: st}
}

// ResetFocus replaces the application state and clears focus.
func ResetFocus(st state.State) Response {
	return Response{Kind: KindResetFocus, State: st}
}

// ReplacesState reports whether applying r swaps in r.State.
func (r Response) ReplacesState() bool {
	return r.Kind == KindSetState || r.Kind == KindResetFocus
}
