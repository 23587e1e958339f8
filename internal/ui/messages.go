package ui

import "caselook/internal/caselaw"

// SearchResultsMsg is sent when a search request completes successfully.
// Generation identifies which submission produced it; results from a
// superseded generation are dropped on arrival.
type SearchResultsMsg struct {
	Generation int
	Records    []caselaw.CaseRecord
	Message    string
}

// SearchFailedMsg is sent when a search request fails for any reason
// (network, server status, body shape). The error is logged, never
// rendered raw.
type SearchFailedMsg struct {
	Generation int
	Err        error
}

// OpenCaseMsg is sent when the user opens the selected result's detail view.
type OpenCaseMsg struct {
	Record caselaw.CaseRecord
}

// debounceElapsedMsg fires when the search-as-you-type quiet window ends.
// seq identifies the keystroke that scheduled it; a newer keystroke
// supersedes it.
type debounceElapsedMsg struct {
	seq int
}
