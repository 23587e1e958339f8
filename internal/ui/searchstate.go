package ui

// SearchState is the lifecycle of the current search.
type SearchState int

const (
	// StateIdle is the initial state: no search issued yet.
	StateIdle SearchState = iota
	// StateLoading means a request is in flight.
	StateLoading
	// StateSuccess means the latest request returned a record list
	// (possibly empty).
	StateSuccess
	// StateFailure means the latest request failed, or the user submitted
	// an empty query.
	StateFailure
)

func (s SearchState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateLoading:
		return "Loading"
	case StateSuccess:
		return "Success"
	case StateFailure:
		return "Failure"
	default:
		return "Unknown"
	}
}
