// Package charts renders the per-analysis terminal charts: task duration
// bars, resource utilization and a risk matrix.
package charts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"plens/internal/models"
	"plens/internal/util"
)

const (
	minWidth     = 40
	defaultWidth = 80
	labelWidth   = 14
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	estimatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	actualStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overrunStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	idleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// ForKind renders the chart matching the analysis kind.
func ForKind(kind models.AnalysisKind, records []models.ProjectRecord, width int) string {
	switch kind {
	case models.KindResource:
		return ResourceUtilization(records, width)
	case models.KindRisk:
		return RiskMatrix(records)
	default:
		return DurationBars(records, width)
	}
}

// DurationBars renders grouped horizontal bars comparing estimated and
// actual days per task.
func DurationBars(records []models.ProjectRecord, width int) string {
	if len(records) == 0 {
		return emptyStyle.Render("No records to chart.")
	}
	if width < minWidth {
		width = defaultWidth
	}

	maxDays := 0.0
	for _, rec := range records {
		if rec.EstimatedDays > maxDays {
			maxDays = rec.EstimatedDays
		}
		if rec.ActualDays > maxDays {
			maxDays = rec.ActualDays
		}
	}
	if maxDays == 0 {
		maxDays = 1
	}

	// Leave room for the label, the value column and a gutter
	barWidth := width - labelWidth - 10
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("Task Duration (estimated vs actual)"))
	b.WriteString("\n\n")

	for _, rec := range records {
		label := fmt.Sprintf("%-*s", labelWidth, util.Truncate(rec.TaskName, labelWidth))

		estBar := bar(rec.EstimatedDays, maxDays, barWidth)
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			label,
			estimatedStyle.Render(estBar),
			util.FormatDays(rec.EstimatedDays)))

		style := actualStyle
		if rec.Overrun() > 0 {
			style = overrunStyle
		}
		actBar := bar(rec.ActualDays, maxDays, barWidth)
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			strings.Repeat(" ", labelWidth),
			style.Render(actBar),
			util.FormatDays(rec.ActualDays)))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s estimated   %s actual   %s over estimate\n",
		estimatedStyle.Render("█"),
		actualStyle.Render("█"),
		overrunStyle.Render("█")))

	return b.String()
}

// ResourceUtilization renders an efficiency bar and idle time per record.
func ResourceUtilization(records []models.ProjectRecord, width int) string {
	if len(records) == 0 {
		return emptyStyle.Render("No records to chart.")
	}
	if width < minWidth {
		width = defaultWidth
	}

	barWidth := width - labelWidth - 24
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("Resource Utilization"))
	b.WriteString("\n\n")

	for _, rec := range records {
		label := fmt.Sprintf("%-*s", labelWidth, util.Truncate(rec.ResourceAllocated, labelWidth))
		effBar := bar(rec.Efficiency, 1, barWidth)
		b.WriteString(fmt.Sprintf("%s %s %s  %s\n",
			label,
			actualStyle.Render(effBar),
			util.FormatPercent(rec.Efficiency),
			idleStyle.Render(fmt.Sprintf("idle %s", util.FormatDays(rec.IdleTime)))))
	}

	return b.String()
}

// RiskMatrix renders a 3x3 likelihood / impact grid. Records whose
// likelihood or impact level is not one of low, medium, high are listed
// below the grid instead of being placed in a cell.
func RiskMatrix(records []models.ProjectRecord) string {
	if len(records) == 0 {
		return emptyStyle.Render("No records to chart.")
	}

	levels := []string{"Low", "Medium", "High"}
	cells := [3][3][]string{}
	var unplaced []models.ProjectRecord

	for _, rec := range records {
		li := levelIndex(rec.Likelihood)
		ii := levelIndex(rec.ImpactLevel)
		if li < 0 || ii < 0 {
			unplaced = append(unplaced, rec)
			continue
		}
		cells[ii][li] = append(cells[ii][li], rec.RiskType)
	}

	const cellWidth = 18

	var b strings.Builder
	b.WriteString(headingStyle.Render("Risk Matrix (likelihood × impact)"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%-8s", "Impact"))
	for _, level := range levels {
		b.WriteString(fmt.Sprintf("%-*s", cellWidth, level))
	}
	b.WriteString("\n")

	// Highest impact row first
	for impact := 2; impact >= 0; impact-- {
		b.WriteString(fmt.Sprintf("%-8s", levels[impact]))
		for likelihood := 0; likelihood < 3; likelihood++ {
			content := "·"
			if types := cells[impact][likelihood]; len(types) > 0 {
				content = util.Truncate(strings.Join(types, ", "), cellWidth-2)
				if impact == 2 && likelihood == 2 {
					content = overrunStyle.Render(content)
					// Pad after styling so ANSI codes don't skew the column
					content += strings.Repeat(" ", max(0, cellWidth-lipgloss.Width(content)))
					b.WriteString(content)
					continue
				}
			}
			b.WriteString(fmt.Sprintf("%-*s", cellWidth, content))
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%-8s%s\n", "", "Likelihood →"))

	if len(unplaced) > 0 {
		b.WriteString("\nUnclassified:\n")
		for _, rec := range unplaced {
			b.WriteString(fmt.Sprintf("  %s (%s/%s)\n", rec.RiskType, rec.Likelihood, rec.ImpactLevel))
		}
	}

	return b.String()
}

// bar renders a filled bar proportional to value/max, at least one cell
// wide for nonzero values.
func bar(value, max float64, width int) string {
	if max <= 0 || value < 0 {
		return ""
	}
	n := int(value / max * float64(width))
	if n == 0 && value > 0 {
		n = 1
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}

func levelIndex(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "low":
		return 0
	case "medium":
		return 1
	case "high":
		return 2
	default:
		return -1
	}
}
