package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"plens/internal/analysis"
	"plens/internal/charts"
	"plens/internal/models"
	"plens/internal/ui/components"
)

// Model represents the dashboard UI model
type Model struct {
	ProjectList   components.ProjectListModel
	Viewport      viewport.Model
	Spinner       spinner.Model
	IsLoading     bool
	StatusMessage string
	ErrorMessage  string
	Service       *analysis.Service
	Width         int
	Height        int
	Ready         bool

	// true while the viewport shows an analysis result
	showingResult bool
	renderer      *glamour.TermRenderer
}

// NewModel creates a new dashboard model
func NewModel(service *analysis.Service) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	projectList := components.NewProjectListModel(0, 0)
	projectList.SetDataset(service.Dataset())

	return Model{
		ProjectList:   projectList,
		Spinner:       s,
		IsLoading:     false,
		StatusMessage: "Ready",
		Service:       service,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.Spinner.Tick
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't intercept analysis keys while the list filter is active
		if m.ProjectList.List.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.showingResult {
				m.showingResult = false
				m.StatusMessage = "Ready"
				return m, nil
			}
		case "t":
			return m.startAnalysis(models.KindTimeline)
		case "r":
			return m.startAnalysis(models.KindResource)
		case "k":
			return m.startAnalysis(models.KindRisk)
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		listHeight := msg.Height - 6
		if !m.Ready {
			// First time initializing
			m.Viewport = viewport.New(msg.Width, listHeight)
			m.Viewport.YPosition = 3
			m.Ready = true
		} else {
			m.Viewport.Width = msg.Width
			m.Viewport.Height = listHeight
		}
		m.ProjectList.List.SetSize(msg.Width, listHeight)

		wrap := msg.Width - 4
		if wrap < 40 {
			wrap = 40
		}
		m.renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)

		return m, nil

	case spinner.TickMsg:
		var spinnerCmd tea.Cmd
		m.Spinner, spinnerCmd = m.Spinner.Update(msg)
		cmds = append(cmds, spinnerCmd)

	case analysisDoneMsg:
		m.IsLoading = false
		m.ErrorMessage = ""
		m.StatusMessage = fmt.Sprintf("%s for %s", msg.result.Kind.Title(), msg.result.ProjectID)
		m.showingResult = true
		m.Viewport.SetContent(m.renderResult(msg.result, msg.records))
		m.Viewport.GotoTop()
		return m, nil

	case errorMsg:
		m.IsLoading = false
		m.ErrorMessage = string(msg)
		m.StatusMessage = "Error"
		return m, nil

	case DatasetReloadedMsg:
		if msg.Err != nil {
			m.ErrorMessage = fmt.Sprintf("Dataset reload failed: %v", msg.Err)
			return m, nil
		}
		m.Service.SetDataset(msg.Dataset)
		m.ProjectList.SetDataset(msg.Dataset)
		m.ErrorMessage = ""
		m.StatusMessage = fmt.Sprintf("Dataset reloaded (%d records)", msg.Dataset.Len())
		return m, nil
	}

	if m.showingResult {
		var viewportCmd tea.Cmd
		m.Viewport, viewportCmd = m.Viewport.Update(msg)
		cmds = append(cmds, viewportCmd)
	} else {
		var listCmd tea.Cmd
		m.ProjectList, listCmd = m.ProjectList.Update(msg)
		cmds = append(cmds, listCmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m Model) View() string {
	if !m.Ready {
		return "Initializing..."
	}

	var status string
	if m.IsLoading {
		status = fmt.Sprintf("%s %s", m.Spinner.View(), m.StatusMessage)
	} else {
		status = m.StatusMessage
	}

	statusBar := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1).
		Render(status)

	titleBar := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		Padding(0, 1).
		Render("Project Lens")

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1).
		Render("t: timeline  r: resources  k: risks  esc: back  q: quit")

	errorView := ""
	if m.ErrorMessage != "" {
		errorView = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Padding(0, 1).
			Render(m.ErrorMessage)
	}

	body := m.ProjectList.View()
	if m.showingResult {
		body = m.Viewport.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		statusBar,
		body,
		errorView,
		help,
	)
}

// startAnalysis kicks off an analysis of the selected project.
func (m Model) startAnalysis(kind models.AnalysisKind) (tea.Model, tea.Cmd) {
	if m.IsLoading {
		return m, nil
	}

	projectID := m.ProjectList.SelectedID()
	if projectID == "" {
		m.ErrorMessage = "No project selected"
		return m, nil
	}

	// Snapshot the records now so the chart matches the rows the model
	// saw, even if the dataset is reloaded while the analysis runs.
	records := m.Service.Dataset().FilterByProject(projectID)

	m.IsLoading = true
	m.ErrorMessage = ""
	m.StatusMessage = fmt.Sprintf("Running %s for %s...", kind.Title(), projectID)
	return m, tea.Batch(m.Spinner.Tick, runAnalysis(m.Service, projectID, kind, records))
}

// renderResult combines the chart with the glamour-rendered model response.
func (m Model) renderResult(result *models.AnalysisResult, records []models.ProjectRecord) string {
	chart := charts.ForKind(result.Kind, records, m.Width-2)

	insight := result.Response
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(result.Response); err == nil {
			insight = rendered
		}
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		Render("AI Insights")

	return lipgloss.JoinVertical(lipgloss.Left, chart, "", header, insight)
}

// Messages
type analysisDoneMsg struct {
	result *models.AnalysisResult
	// records the analysis was started with, for the chart
	records []models.ProjectRecord
}

type errorMsg string

// DatasetReloadedMsg is sent from the dataset watcher when the source
// file changed on disk.
type DatasetReloadedMsg struct {
	Dataset *models.Dataset
	Err     error
}

// Commands
func runAnalysis(service *analysis.Service, projectID string, kind models.AnalysisKind, records []models.ProjectRecord) tea.Cmd {
	return func() tea.Msg {
		result, err := service.Run(context.Background(), models.AnalysisRequest{
			ProjectID: projectID,
			Kind:      kind,
		})
		if err != nil {
			return errorMsg(fmt.Sprintf("Analysis failed: %v", err))
		}
		return analysisDoneMsg{result: result, records: records}
	}
}
