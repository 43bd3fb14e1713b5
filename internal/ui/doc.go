// Package ui contains the Bubble Tea program that renders a markup tree.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, resizes, ticker heartbeats).
//   - Key presses first move focus (tab, shift+tab) or commit the focused node
//     (enter) through the command bus, then reach the caller handler with a
//     snapshot of the application state.
//   - After every handled message the model computes a fingerprint of focus,
//     frame size and state. A new layout and paint pass only runs when that
//     fingerprint changed; View returns the cached frame.
//
// State ownership:
//   - Application state lives in an internal/state.Store owned by the model.
//     Actions and handlers receive clones and hand back replacements.
//   - Focus lives in internal/ui/state.Focus, which the layout pass also uses
//     as its scope when dialogs appear or disappear.
//
// Backend interactions:
//   - A backend.Ticker publishes heartbeats; Update waits for them with a
//     re-armed tea.Cmd and hands each one to the optional tick handler.
package ui
