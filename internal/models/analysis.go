package models

import (
	"errors"
	"fmt"
	"time"
)

// AnalysisKind selects which prompt template and chart to produce.
type AnalysisKind string

const (
	// KindTimeline analyzes estimated vs actual task durations
	KindTimeline AnalysisKind = "timeline"

	// KindResource analyzes resource efficiency and idle time
	KindResource AnalysisKind = "resource"

	// KindRisk analyzes risk types, likelihood and impact
	KindRisk AnalysisKind = "risk"
)

// ErrInvalidKind is returned when an analysis kind is not recognized
var ErrInvalidKind = errors.New("invalid analysis kind")

// Kinds returns all analysis kinds in display order.
func Kinds() []AnalysisKind {
	return []AnalysisKind{KindTimeline, KindResource, KindRisk}
}

// ParseKind converts a user-supplied string to an AnalysisKind.
func ParseKind(s string) (AnalysisKind, error) {
	switch AnalysisKind(s) {
	case KindTimeline, KindResource, KindRisk:
		return AnalysisKind(s), nil
	default:
		return "", fmt.Errorf("%w: %q (expected timeline, resource or risk)", ErrInvalidKind, s)
	}
}

// Title returns a human-readable name for the analysis kind.
func (k AnalysisKind) Title() string {
	switch k {
	case KindTimeline:
		return "Predictive Scheduling"
	case KindResource:
		return "Resource Optimization"
	case KindRisk:
		return "Risk Assessment"
	default:
		return string(k)
	}
}

// AnalysisRequest pairs a project with an analysis kind.
// Requests are transient and derived per user action.
type AnalysisRequest struct {
	ProjectID string
	Kind      AnalysisKind
}

// AnalysisResult holds the outcome of one analysis run. The Response
// text is opaque model output and is redisplayed as-is.
type AnalysisResult struct {
	ID        string
	ProjectID string
	Kind      AnalysisKind
	Prompt    string
	Response  string
	Model     string
	CreatedAt time.Time
}
