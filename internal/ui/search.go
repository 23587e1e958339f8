package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"caselook/internal/caselaw"
	"caselook/internal/ui/textutil"
)

// User-facing status text. Failures always render one of these; the
// underlying error goes to the log, never to the screen.
const (
	emptyQueryMessage     = "Enter a search term to find cases."
	genericFailureMessage = "Search failed. Check your connection and try again."
	noResultsMessage      = "No cases matched your search."
)

// SearchView owns the query, filters, and search lifecycle: the input,
// debounced search-as-you-type, the in-flight request generation, and the
// result list.
type SearchView struct {
	client caselaw.Client

	input   textinput.Model
	spinner spinner.Model

	court caselaw.Court
	sort  caselaw.Sort

	state    SearchState
	records  []caselaw.CaseRecord
	message  string // server-provided informational line
	errMsg   string // user-safe failure text
	selected int

	// debounceSeq identifies the latest keystroke; an elapsed debounce
	// timer carrying an older seq is ignored.
	debounceSeq int
	// generation identifies the latest issued request; a result carrying
	// an older generation is ignored (last submission wins).
	generation int
	lastIssued caselaw.Request

	width int
}

// Ensure SearchView implements View.
var _ View = (*SearchView)(nil)

// NewSearchView creates the search screen backed by the given client.
func NewSearchView(client caselaw.Client) *SearchView {
	ti := textinput.New()
	ti.Placeholder = "vehicle search drugs"
	ti.Prompt = "? "
	ti.Width = 50
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status

	return &SearchView{
		client:  client,
		input:   ti,
		spinner: s,
		state:   StateIdle,
	}
}

// State returns the current search lifecycle state.
func (v *SearchView) State() SearchState { return v.state }

// Records returns the current result list in server order.
func (v *SearchView) Records() []caselaw.CaseRecord { return v.records }

// Selected returns the index of the highlighted result.
func (v *SearchView) Selected() int { return v.selected }

// Init implements View.
func (v *SearchView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *SearchView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil

	case spinner.TickMsg:
		if v.state == StateLoading {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil

	case debounceElapsedMsg:
		return v, v.debounceFired(msg.seq)

	case SearchResultsMsg:
		if msg.Generation != v.generation {
			// Response to a superseded request; a newer submission owns
			// the screen now.
			return v, nil
		}
		v.state = StateSuccess
		v.records = msg.Records
		v.message = msg.Message
		v.selected = 0
		return v, nil

	case SearchFailedMsg:
		if msg.Generation != v.generation {
			return v, nil
		}
		slog.Error("search failed", "error", msg.Err, "query", v.lastIssued.Trimmed())
		v.state = StateFailure
		v.records = nil
		v.errMsg = genericFailureMessage
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *SearchView) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return v, v.submit()
	case "tab":
		v.court = v.court.Next()
		return v, v.refilter()
	case "shift+tab":
		v.sort = v.sort.Next()
		return v, v.refilter()
	case "up":
		if v.selected > 0 {
			v.selected--
		}
		return v, nil
	case "down":
		if v.selected < len(v.records)-1 {
			v.selected++
		}
		return v, nil
	case "right", "ctrl+o":
		if v.state == StateSuccess && v.selected < len(v.records) {
			rec := v.records[v.selected]
			return v, func() tea.Msg { return OpenCaseMsg{Record: rec} }
		}
		return v, nil
	case "esc":
		v.clear()
		return v, nil
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() != before {
		// Keystroke resets the quiet window.
		v.debounceSeq++
		return v, tea.Batch(cmd, debounceCmd(v.debounceSeq))
	}
	return v, cmd
}

// submit is the manual search path (enter). An empty query is a guarded
// failure and never reaches the wire.
func (v *SearchView) submit() tea.Cmd {
	req := v.currentRequest()
	if req.Empty() {
		v.state = StateFailure
		v.records = nil
		v.errMsg = emptyQueryMessage
		return nil
	}
	return v.issue(req)
}

// debounceFired handles an elapsed quiet window. Only the timer armed by
// the latest keystroke may trigger a request.
func (v *SearchView) debounceFired(seq int) tea.Cmd {
	if seq != v.debounceSeq {
		return nil
	}
	req := v.currentRequest()
	if req.Empty() {
		return nil
	}
	if req == v.lastIssued && v.state != StateFailure {
		// Nothing changed since the last request; resubmission stays a
		// manual action.
		return nil
	}
	return v.issue(req)
}

// refilter re-issues the search through the debounce path after a filter
// change, so rapid cycling coalesces into one request.
func (v *SearchView) refilter() tea.Cmd {
	if v.currentRequest().Empty() {
		return nil
	}
	v.debounceSeq++
	return debounceCmd(v.debounceSeq)
}

// issue transitions to Loading and starts the request under a fresh
// generation. Any in-flight response is stale from this point on.
func (v *SearchView) issue(req caselaw.Request) tea.Cmd {
	v.state = StateLoading
	v.records = nil
	v.message = ""
	v.errMsg = ""
	v.selected = 0
	v.debounceSeq++ // a pending quiet-window timer must not re-issue
	v.generation++
	v.lastIssued = req
	return tea.Batch(v.spinner.Tick, searchCmd(v.client, req, v.generation))
}

func (v *SearchView) clear() {
	v.input.SetValue("")
	v.state = StateIdle
	v.records = nil
	v.message = ""
	v.errMsg = ""
	v.selected = 0
	v.debounceSeq++ // cancel any pending debounce
}

func (v *SearchView) currentRequest() caselaw.Request {
	return caselaw.Request{
		Query: v.input.Value(),
		Court: v.court,
		Sort:  v.sort,
	}
}

// View implements View.
func (v *SearchView) View() string {
	var b strings.Builder

	b.WriteString(Styles.Title.Render("caselook") + Styles.Muted.Render("  case-law search") + "\n\n")
	b.WriteString(v.input.View() + "\n")
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("Court: %s · Sort: %s", v.court, v.sort)) + "\n\n")

	switch v.state {
	case StateIdle:
		b.WriteString(Styles.Empty.Render("Type to search, or press enter.") + "\n")
	case StateLoading:
		b.WriteString(v.spinner.View() + Styles.Status.Render(" Searching…") + "\n")
	case StateFailure:
		b.WriteString(Styles.Error.Render(v.errMsg) + "\n")
	case StateSuccess:
		v.renderResults(&b)
	}

	b.WriteString("\n" + Styles.Hint.Render("↑/↓ select · → details · tab court · shift+tab sort · enter search · esc clear · ctrl+c quit"))
	return b.String()
}

func (v *SearchView) renderResults(b *strings.Builder) {
	if len(v.records) == 0 {
		b.WriteString(Styles.Empty.Render(noResultsMessage) + "\n")
		return
	}

	status := v.message
	if status == "" {
		status = fmt.Sprintf("%d case(s) found", len(v.records))
	}
	b.WriteString(Styles.Status.Render(status) + "\n\n")

	for i, rec := range v.records {
		selected := i == v.selected
		bullet := "  "
		nameStyle := Styles.Normal
		if selected {
			bullet = "▸ "
			nameStyle = Styles.Selected
		}
		b.WriteString(bullet + nameStyle.Render(rec.DisplayName()) + "\n")

		meta := fmt.Sprintf("%s · %s · %s", rec.DisplayCitation(), rec.DisplayCourt(), rec.DisplayDate())
		b.WriteString("    " + Styles.Meta.Render(meta) + "\n")

		summary := textutil.Truncate(rec.DisplaySummary(), v.summaryWidth())
		b.WriteString("    " + Styles.Muted.Render(summary) + "\n")
	}
}

// summaryWidth is the column budget for one summary line: the terminal
// width minus the result indent, capped so summaries stay scannable on
// very wide terminals. Before the first WindowSizeMsg arrives the cap
// is used as-is.
func (v *SearchView) summaryWidth() int {
	const maxSummaryWidth = 96
	const resultIndent = 4

	w := maxSummaryWidth
	if v.width > 0 && v.width-resultIndent < w {
		w = v.width - resultIndent
	}
	return w
}
