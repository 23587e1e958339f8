package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"caselook/internal/caselaw"
)

// AppModel is the root model. It switches between the search screen and
// a per-case detail screen.
type AppModel struct {
	Mode   AppMode
	Search *SearchView
	Detail *CaseDetailView
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.currentView().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case OpenCaseMsg:
		a.Mode = ModeCaseDetail
		a.Detail = NewCaseDetailView(msg.Record)
		return a, a.Detail.Init()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc", "q":
			if a.Mode == ModeCaseDetail {
				a.Mode = ModeSearch
				a.Detail = nil
				return a, nil
			}
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.currentView().View()
}

func (a *appModelAdapter) currentView() View {
	if a.Mode == ModeCaseDetail && a.Detail != nil {
		return a.Detail
	}
	return a.Search
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch a.Mode {
	case ModeSearch:
		if s, ok := v.(*SearchView); ok {
			a.Search = s
		}
	case ModeCaseDetail:
		if d, ok := v.(*CaseDetailView); ok {
			a.Detail = d
		}
	}
}

// NewAppModel creates the root application model around a search client.
func NewAppModel(client caselaw.Client) *AppModel {
	return &AppModel{
		Mode:   ModeSearch,
		Search: NewSearchView(client),
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
