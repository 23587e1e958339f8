package caselaw

import "fmt"

// NetworkError wraps a transport failure: unreachable host, timeout,
// connection reset. The request may never have reached the service.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("search request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError reports a non-2xx response from the search service.
type ServerError struct {
	Status int
	// Message is the server-reported error text, if the body carried one.
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("search service returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("search service returned %d", e.Status)
}

// ParseError reports a response body that does not match any known shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected search response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
