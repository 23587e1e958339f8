package caselaw

import (
	"testing"
)

func TestDecodeResponse_TitleCaseKeys(t *testing.T) {
	body := []byte(`{"results":[{
		"Case Name":"Terry v. Ohio",
		"Citation":"392 U.S. 1",
		"Court":"Supreme Court",
		"Date Decided":"1968-06-10",
		"Summary":"Stop and frisk.",
		"AI Summary":"Established reasonable suspicion standard.",
		"Full Case":"/opinion/107252/terry-v-ohio/"
	}]}`)

	resp, err := decodeResponse(body, 200)
	if err != nil {
		t.Fatalf("decodeResponse: %v", err)
	}
	if len(resp.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(resp.Records))
	}

	rec := resp.Records[0]
	if rec.Name != "Terry v. Ohio" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.Citation != "392 U.S. 1" {
		t.Errorf("Citation = %q", rec.Citation)
	}
	if rec.Court != "Supreme Court" {
		t.Errorf("Court = %q", rec.Court)
	}
	if rec.Date != "1968-06-10" {
		t.Errorf("Date = %q", rec.Date)
	}
	if rec.Summary != "Stop and frisk." {
		t.Errorf("Summary = %q", rec.Summary)
	}
	if rec.AISummary != "Established reasonable suspicion standard." {
		t.Errorf("AISummary = %q", rec.AISummary)
	}
	if rec.Link != "/opinion/107252/terry-v-ohio/" {
		t.Errorf("Link = %q", rec.Link)
	}
}

func TestDecodeResponse_SnakeCaseKeys(t *testing.T) {
	body := []byte(`{"cases":[{
		"case_name":"Mapp v. Ohio",
		"citation":"367 U.S. 643",
		"court":"Supreme Court",
		"date_decided":"1961-06-19",
		"summary":"Exclusionary rule applies to the states.",
		"link":"/opinion/mapp/"
	}]}`)

	resp, err := decodeResponse(body, 200)
	if err != nil {
		t.Fatalf("decodeResponse: %v", err)
	}
	if len(resp.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(resp.Records))
	}

	rec := resp.Records[0]
	if rec.Name != "Mapp v. Ohio" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.Date != "1961-06-19" {
		t.Errorf("Date = %q", rec.Date)
	}
	if rec.Link != "/opinion/mapp/" {
		t.Errorf("Link = %q", rec.Link)
	}
}

func TestDecodeResponse_UpstreamCamelCaseKeys(t *testing.T) {
	// Raw CourtListener-style payload, before the proxy renames fields.
	body := []byte(`{"results":[{
		"caseName":"Katz v. United States",
		"dateFiled":"1967-12-18",
		"absolute_url":"/opinion/katz/"
	}]}`)

	resp, err := decodeResponse(body, 200)
	if err != nil {
		t.Fatalf("decodeResponse: %v", err)
	}
	rec := resp.Records[0]
	if rec.Name != "Katz v. United States" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.Date != "1967-12-18" {
		t.Errorf("Date = %q", rec.Date)
	}
	if rec.Link != "/opinion/katz/" {
		t.Errorf("Link = %q", rec.Link)
	}
}

func TestDecodeResponse_ScrubsServerPlaceholders(t *testing.T) {
	// The proxy substitutes placeholder strings server-side; those decode
	// to empty fields so display logic owns the substitution.
	body := []byte(`{"results":[{
		"Case Name":"Unknown Case",
		"Citation":"No Citation Available",
		"Court":"Unknown Court",
		"Date Decided":"No Date Available",
		"Summary":"No summary available",
		"AI Summary":"AI Summary Not Available",
		"Full Case":"#"
	}]}`)

	resp, err := decodeResponse(body, 200)
	if err != nil {
		t.Fatalf("decodeResponse: %v", err)
	}
	rec := resp.Records[0]
	if rec != (CaseRecord{}) {
		t.Errorf("expected all-empty record, got %+v", rec)
	}
}

func TestDecodeResponse_NumericID(t *testing.T) {
	body := []byte(`{"results":[{"Case Name":"In re Gault","id":107216}]}`)

	resp, err := decodeResponse(body, 200)
	if err != nil {
		t.Fatalf("decodeResponse: %v", err)
	}
	if got := resp.Records[0].Link; got != "107216" {
		t.Errorf("Link = %q, want numeric id as string", got)
	}
}

func TestDecodeResponse_SkipsNonObjectEntries(t *testing.T) {
	body := []byte(`{"results":[{"Case Name":"Good"},42,"bad",null]}`)

	resp, err := decodeResponse(body, 200)
	if err != nil {
		t.Fatalf("decodeResponse: %v", err)
	}
	if len(resp.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(resp.Records))
	}
}

func TestDecodeResponse_ErrorField(t *testing.T) {
	body := []byte(`{"error":"Failed to fetch case law data","results":[]}`)

	_, err := decodeResponse(body, 200)
	serverErr, ok := err.(*ServerError)
	if !ok {
		t.Fatalf("expected *ServerError, got %T (%v)", err, err)
	}
	if serverErr.Message != "Failed to fetch case law data" {
		t.Errorf("Message = %q", serverErr.Message)
	}
}

func TestDecodeResponse_EmptyErrorFieldIgnored(t *testing.T) {
	body := []byte(`{"error":"","results":[{"Case Name":"State v. Doe"}]}`)

	resp, err := decodeResponse(body, 200)
	if err != nil {
		t.Fatalf("decodeResponse: %v", err)
	}
	if len(resp.Records) != 1 {
		t.Errorf("expected 1 record, got %d", len(resp.Records))
	}
}

func TestDecodeResponse_MissingArrays(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"message":"ok"}`,
		`{"results":"not-an-array"}`,
	} {
		_, err := decodeResponse([]byte(body), 200)
		if _, ok := err.(*ParseError); !ok {
			t.Errorf("body %s: expected *ParseError, got %T (%v)", body, err, err)
		}
	}
}

func TestDecodeResponse_NotJSON(t *testing.T) {
	_, err := decodeResponse([]byte("nope"), 200)
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
}
