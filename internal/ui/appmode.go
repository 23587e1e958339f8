package ui

// AppMode represents the top-level application mode.
type AppMode int

const (
	ModeSearch AppMode = iota
	ModeCaseDetail
)

func (m AppMode) String() string {
	switch m {
	case ModeSearch:
		return "Search"
	case ModeCaseDetail:
		return "CaseDetail"
	default:
		return "Unknown"
	}
}
