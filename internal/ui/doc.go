// Package ui contains the Bubble Tea program for the BizRay registry client.
// The Model type focuses on message orchestration, while dedicated helpers
// own navigation, text input, per-screen key handling and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled by
//     a focused function (key presses, window size, background updates).
//   - Key presses pass global bindings first (quit, help, logout), then the
//     handler of the current screen, then q and ? when no text field has
//     focus, and finally esc.
//
// State ownership:
//   - All application state lives in internal/state.App and only the model
//     mutates it. Views read it and never change it.
//   - Remote operations are handed to internal/ui/command.Bus, which applies
//     the busy guard and spawns a backend.Task on the backend.Runner.
//
// Backend interactions:
//   - Tasks post backend.Update values on the runner's channel. A re-armed
//     tea.Cmd waits for one update; the model folds it through the
//     dispatcher, drains everything else already queued without blocking and
//     waits again.
//   - The dispatcher persists the session token after a fold that changed it.
package ui
