package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"caselook/internal/caselaw"
)

// CaseDetailView shows one case record in full: citation, court, date,
// summary, AI summary, and the full-case link.
type CaseDetailView struct {
	Record caselaw.CaseRecord
}

// Ensure CaseDetailView implements View.
var _ View = (*CaseDetailView)(nil)

// NewCaseDetailView creates a detail view for a record.
func NewCaseDetailView(rec caselaw.CaseRecord) *CaseDetailView {
	return &CaseDetailView{Record: rec}
}

// Init implements View.
func (d *CaseDetailView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *CaseDetailView) Update(msg tea.Msg) (View, tea.Cmd) {
	// esc (back) is handled at the app level.
	return d, nil
}

// View implements View.
func (d *CaseDetailView) View() string {
	rec := d.Record

	var b strings.Builder
	b.WriteString(Styles.Title.Render(rec.DisplayName()) + "\n\n")

	b.WriteString(Styles.Section.Render("Citation") + "  " + Styles.Normal.Render(rec.DisplayCitation()) + "\n")
	b.WriteString(Styles.Section.Render("Court") + "     " + Styles.Normal.Render(rec.DisplayCourt()) + "\n")
	b.WriteString(Styles.Section.Render("Decided") + "   " + Styles.Normal.Render(rec.DisplayDate()) + "\n\n")

	b.WriteString(Styles.Section.Render("Summary") + "\n")
	b.WriteString(Styles.Normal.Render(rec.DisplaySummary()) + "\n\n")

	b.WriteString(Styles.Section.Render("AI Summary") + "\n")
	b.WriteString(Styles.Normal.Render(rec.DisplayAISummary()) + "\n\n")

	b.WriteString(Styles.Section.Render("Full case") + "  " + Styles.Muted.Render(rec.DisplayLink()) + "\n")

	content := Styles.Box.Render(b.String())
	return content + "\n" + Styles.Hint.Render("esc back · ctrl+c quit")
}
