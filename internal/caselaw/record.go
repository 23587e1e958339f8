package caselaw

// Placeholder strings shown when the search service omits a field.
// These mirror the defaults the upstream proxy substitutes server-side,
// so a record looks the same regardless of which side filled the gap.
const (
	PlaceholderName     = "Unknown Case"
	PlaceholderCitation = "No Citation Available"
	PlaceholderCourt    = "Unknown Court"
	PlaceholderDate     = "No Date Available"
	PlaceholderSummary  = "No summary available"
	PlaceholderAI       = "AI Summary Not Available"
	PlaceholderLink     = "#"
)

// CaseRecord is one legal case entry returned by the search service.
// Every field is optional; use the Display* accessors when rendering.
type CaseRecord struct {
	Name      string
	Citation  string
	Court     string
	Date      string
	Summary   string
	AISummary string
	Link      string
}

// DisplayName returns the case name, or a placeholder when absent.
func (r CaseRecord) DisplayName() string {
	return orPlaceholder(r.Name, PlaceholderName)
}

// DisplayCitation returns the citation, or a placeholder when absent.
func (r CaseRecord) DisplayCitation() string {
	return orPlaceholder(r.Citation, PlaceholderCitation)
}

// DisplayCourt returns the deciding court, or a placeholder when absent.
func (r CaseRecord) DisplayCourt() string {
	return orPlaceholder(r.Court, PlaceholderCourt)
}

// DisplayDate returns the decision date, or a placeholder when absent.
func (r CaseRecord) DisplayDate() string {
	return orPlaceholder(r.Date, PlaceholderDate)
}

// DisplaySummary returns the case summary, or a placeholder when absent.
func (r CaseRecord) DisplaySummary() string {
	return orPlaceholder(r.Summary, PlaceholderSummary)
}

// DisplayAISummary returns the AI-generated summary, or a placeholder when absent.
func (r CaseRecord) DisplayAISummary() string {
	return orPlaceholder(r.AISummary, PlaceholderAI)
}

// DisplayLink returns the full-case link, or a placeholder when absent.
func (r CaseRecord) DisplayLink() string {
	return orPlaceholder(r.Link, PlaceholderLink)
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
