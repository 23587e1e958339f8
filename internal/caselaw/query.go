package caselaw

import "strings"

// Court restricts a search to a court tier. The zero value searches all courts.
type Court int

const (
	CourtAny Court = iota
	CourtSupreme
	CourtAppeals
)

// Param returns the wire value for the court query parameter.
// CourtAny is sent as an empty string, matching the upstream contract.
func (c Court) Param() string {
	switch c {
	case CourtSupreme:
		return "supreme"
	case CourtAppeals:
		return "appeals"
	default:
		return ""
	}
}

func (c Court) String() string {
	switch c {
	case CourtSupreme:
		return "Supreme"
	case CourtAppeals:
		return "Appeals"
	default:
		return "All courts"
	}
}

// Next cycles to the following court filter, wrapping around.
func (c Court) Next() Court {
	switch c {
	case CourtAny:
		return CourtSupreme
	case CourtSupreme:
		return CourtAppeals
	default:
		return CourtAny
	}
}

// Sort selects the result ordering. The zero value is relevance ranking.
type Sort int

const (
	SortRelevance Sort = iota
	SortDateDesc
	SortDateAsc
)

// Param returns the wire value for the sort query parameter.
func (s Sort) Param() string {
	switch s {
	case SortDateDesc:
		return "date_desc"
	case SortDateAsc:
		return "date_asc"
	default:
		return "relevance"
	}
}

func (s Sort) String() string {
	switch s {
	case SortDateDesc:
		return "Newest first"
	case SortDateAsc:
		return "Oldest first"
	default:
		return "Relevance"
	}
}

// Next cycles to the following sort order, wrapping around.
func (s Sort) Next() Sort {
	switch s {
	case SortRelevance:
		return SortDateDesc
	case SortDateDesc:
		return SortDateAsc
	default:
		return SortRelevance
	}
}

// Request is one search invocation: a free-text query plus optional filters.
type Request struct {
	Query string
	Court Court
	Sort  Sort
}

// Trimmed returns the query with surrounding whitespace removed.
func (r Request) Trimmed() string {
	return strings.TrimSpace(r.Query)
}

// Empty reports whether the request has no searchable text.
// Empty requests must never reach the wire.
func (r Request) Empty() bool {
	return r.Trimmed() == ""
}
