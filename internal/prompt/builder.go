// Package prompt renders the fixed natural-language templates sent to
// the language model. Building a prompt is pure and deterministic; the
// same records and kind always produce the same string.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"plens/internal/models"
)

const timelineTemplate = `Analyze this project timeline data:
Tasks: %s
Estimated Days: %s
Actual Days: %s

Provide:
1. Timeline prediction based on historical data
2. Potential delays and bottlenecks
3. Schedule optimization suggestions`

const resourceTemplate = `Analyze resource data:
Resources: %s
Efficiency: %s
Idle Time: %s

Provide:
1. Resource utilization recommendations
2. How to minimize idle time
3. Efficiency improvement suggestions`

const riskTemplate = `Analyze project risks:
Risk Types: %s
Likelihood: %s
Impact: %s

Provide:
1. Risk assessment summary
2. Mitigation strategies
3. Priority recommendations`

// Build renders the prompt for the given analysis kind, embedding the
// relevant column values as literal lists in record order. An empty
// record slice yields a prompt with empty lists.
func Build(kind models.AnalysisKind, records []models.ProjectRecord) (string, error) {
	switch kind {
	case models.KindTimeline:
		return buildTimeline(records), nil
	case models.KindResource:
		return buildResource(records), nil
	case models.KindRisk:
		return buildRisk(records), nil
	default:
		return "", fmt.Errorf("%w: %q", models.ErrInvalidKind, kind)
	}
}

func buildTimeline(records []models.ProjectRecord) string {
	return fmt.Sprintf(timelineTemplate,
		stringList(records, func(r models.ProjectRecord) string { return r.TaskName }),
		floatList(records, func(r models.ProjectRecord) float64 { return r.EstimatedDays }),
		floatList(records, func(r models.ProjectRecord) float64 { return r.ActualDays }),
	)
}

func buildResource(records []models.ProjectRecord) string {
	return fmt.Sprintf(resourceTemplate,
		stringList(records, func(r models.ProjectRecord) string { return r.ResourceAllocated }),
		floatList(records, func(r models.ProjectRecord) float64 { return r.Efficiency }),
		floatList(records, func(r models.ProjectRecord) float64 { return r.IdleTime }),
	)
}

func buildRisk(records []models.ProjectRecord) string {
	return fmt.Sprintf(riskTemplate,
		stringList(records, func(r models.ProjectRecord) string { return r.RiskType }),
		stringList(records, func(r models.ProjectRecord) string { return r.Likelihood }),
		stringList(records, func(r models.ProjectRecord) string { return r.ImpactLevel }),
	)
}

func stringList(records []models.ProjectRecord, get func(models.ProjectRecord) string) string {
	values := make([]string, len(records))
	for i, rec := range records {
		values[i] = get(rec)
	}
	return "[" + strings.Join(values, ", ") + "]"
}

func floatList(records []models.ProjectRecord, get func(models.ProjectRecord) float64) string {
	values := make([]string, len(records))
	for i, rec := range records {
		values[i] = strconv.FormatFloat(get(rec), 'g', -1, 64)
	}
	return "[" + strings.Join(values, ", ") + "]"
}
