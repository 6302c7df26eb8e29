package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"plens/internal/models"
	"plens/internal/util"
)

// ProjectItem represents a project in the list
type ProjectItem struct {
	ID             string
	TaskCount      int
	TotalEstimated float64
	TotalActual    float64
}

// FilterValue returns the filter value for the project item
func (i ProjectItem) FilterValue() string {
	return i.ID
}

// Title returns the title for the project item
func (i ProjectItem) Title() string {
	return i.ID
}

// Description returns the description for the project item
func (i ProjectItem) Description() string {
	return fmt.Sprintf("%d tasks - %s estimated, %s actual",
		i.TaskCount,
		util.FormatDays(i.TotalEstimated),
		util.FormatDays(i.TotalActual))
}

// ProjectListModel represents the project list model
type ProjectListModel struct {
	List list.Model
}

// NewProjectListModel creates a new project list model
func NewProjectListModel(width, height int) ProjectListModel {
	listModel := list.New([]list.Item{}, list.NewDefaultDelegate(), width, height)
	listModel.Title = "Projects"
	listModel.SetShowStatusBar(false)
	listModel.SetFilteringEnabled(true)
	listModel.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true).
		MarginLeft(2)

	return ProjectListModel{
		List: listModel,
	}
}

// SetDataset rebuilds the list items from the dataset, keeping the
// current selection when the project still exists.
func (m *ProjectListModel) SetDataset(dataset *models.Dataset) {
	selected := m.SelectedID()

	items := make([]list.Item, 0)
	for _, id := range dataset.ProjectIDs() {
		records := dataset.FilterByProject(id)
		item := ProjectItem{ID: id, TaskCount: len(records)}
		for _, rec := range records {
			item.TotalEstimated += rec.EstimatedDays
			item.TotalActual += rec.ActualDays
		}
		items = append(items, item)
	}
	m.List.SetItems(items)

	if selected != "" {
		for idx, item := range items {
			if item.(ProjectItem).ID == selected {
				m.List.Select(idx)
				break
			}
		}
	}
}

// SelectedID returns the currently selected project ID, or "" when the
// list is empty.
func (m *ProjectListModel) SelectedID() string {
	if item, ok := m.List.SelectedItem().(ProjectItem); ok {
		return item.ID
	}
	return ""
}

// Update handles list updates
func (m ProjectListModel) Update(msg tea.Msg) (ProjectListModel, tea.Cmd) {
	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// View renders the list
func (m ProjectListModel) View() string {
	return m.List.View()
}
