// Package ui implements the terminal interface for caselook with Bubble Tea.
//
// Core abstractions:
//   - View: A screen with its own model, update, and view (Elm-style)
//   - AppModel: Root model switching between the search screen and a
//     per-case detail screen
//   - SearchView: Query input, filters, debounced search, result list
//   - CaseDetailView: Full rendering of one selected case record
//
// All network work runs inside tea.Cmd closures and comes back as typed
// messages; the model is only ever mutated in Update.
package ui
