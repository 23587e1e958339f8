package caselaw

import (
	"github.com/pkg/errors"

	"caselook/internal/jsonutil"
)

// Response is a decoded search response: the records in server order plus
// the optional informational message the service attaches.
type Response struct {
	Records []CaseRecord
	Message string
}

// Known spellings per record field. Server variants disagree on casing:
// the proxy emits Title Case keys, older variants snake_case, and raw
// upstream payloads camelCase. First non-empty match wins.
var (
	nameKeys     = []string{"Case Name", "case_name", "caseName", "name", "title"}
	citationKeys = []string{"Citation", "citation"}
	courtKeys    = []string{"Court", "court"}
	dateKeys     = []string{"Date Decided", "date_decided", "dateFiled", "date"}
	summaryKeys  = []string{"Summary", "summary", "snippet"}
	aiKeys       = []string{"AI Summary", "ai_summary", "aiSummary"}
	linkKeys     = []string{"Full Case", "link", "absolute_url", "url", "id"}
)

// decodeResponse normalizes a search response body. It accepts the record
// array under either "results" or "cases", and treats a non-empty
// top-level "error" field as a server-reported failure.
func decodeResponse(body []byte, status int) (*Response, error) {
	var payload map[string]interface{}
	if err := jsonutil.UnmarshalWithContext(body, &payload, "search response"); err != nil {
		return nil, &ParseError{Err: errors.WithStack(err)}
	}

	if msg := jsonutil.GetString(payload, "error"); msg != "" {
		return nil, &ServerError{Status: status, Message: msg}
	}

	raw := jsonutil.GetArray(payload, "results")
	if raw == nil {
		raw = jsonutil.GetArray(payload, "cases")
	}
	if raw == nil {
		// Neither array key present: an empty result set is expressed as
		// an empty array, so a missing one means an unknown shape.
		return nil, &ParseError{Err: errors.New("no results or cases array in body")}
	}

	records := make([]CaseRecord, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		records = append(records, decodeRecord(entry))
	}

	return &Response{
		Records: records,
		Message: jsonutil.GetString(payload, "message"),
	}, nil
}

func decodeRecord(entry map[string]interface{}) CaseRecord {
	return CaseRecord{
		Name:      scrubPlaceholder(jsonutil.FirstString(entry, nameKeys...), PlaceholderName),
		Citation:  scrubPlaceholder(jsonutil.FirstString(entry, citationKeys...), PlaceholderCitation),
		Court:     scrubPlaceholder(jsonutil.FirstString(entry, courtKeys...), PlaceholderCourt),
		Date:      scrubPlaceholder(jsonutil.FirstString(entry, dateKeys...), PlaceholderDate),
		Summary:   scrubPlaceholder(jsonutil.FirstString(entry, summaryKeys...), PlaceholderSummary),
		AISummary: scrubPlaceholder(jsonutil.FirstString(entry, aiKeys...), PlaceholderAI),
		Link:      scrubPlaceholder(jsonutil.FirstString(entry, linkKeys...), PlaceholderLink),
	}
}

// scrubPlaceholder drops server-side placeholder text so that absence is
// represented uniformly as an empty field. Rendering re-applies the
// placeholder; keeping the field empty lets callers test for presence.
func scrubPlaceholder(s, placeholder string) string {
	if s == placeholder {
		return ""
	}
	return s
}
