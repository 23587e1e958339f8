package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"caselook/internal/caselaw"
)

// DebounceInterval is the quiet window after the last keystroke before a
// search-as-you-type request fires.
const DebounceInterval = 500 * time.Millisecond

// searchCmd returns a command that runs one search and reports back as a
// SearchResultsMsg or SearchFailedMsg tagged with the given generation.
func searchCmd(client caselaw.Client, req caselaw.Request, generation int) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Search(context.Background(), req)
		if err != nil {
			return SearchFailedMsg{Generation: generation, Err: err}
		}
		return SearchResultsMsg{
			Generation: generation,
			Records:    resp.Records,
			Message:    resp.Message,
		}
	}
}

// debounceCmd returns a command that schedules a debounceElapsedMsg for
// the given keystroke sequence number.
func debounceCmd(seq int) tea.Cmd {
	return tea.Tick(DebounceInterval, func(time.Time) tea.Msg {
		return debounceElapsedMsg{seq: seq}
	})
}
