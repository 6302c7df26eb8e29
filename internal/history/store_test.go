package history

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"plens/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db)
}

func newResult(projectID string, kind models.AnalysisKind, createdAt time.Time) *models.AnalysisResult {
	return &models.AnalysisResult{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Kind:      kind,
		Prompt:    "prompt text",
		Response:  "response text",
		Model:     "gemini-1.5-flash",
		CreatedAt: createdAt,
	}
}

func TestStore_SaveGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	result := newResult("P1", models.KindTimeline, time.Now().UTC().Truncate(time.Second))
	require.NoError(t, store.Save(ctx, result))

	loaded, err := store.Get(ctx, result.ID)
	require.NoError(t, err)
	require.Equal(t, result.ProjectID, loaded.ProjectID)
	require.Equal(t, result.Kind, loaded.Kind)
	require.Equal(t, result.Prompt, loaded.Prompt)
	require.Equal(t, result.Response, loaded.Response)
	require.Equal(t, result.Model, loaded.Model)
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	require.Equal(t, ErrNotFound, err)
}

func TestStore_ListRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	older := newResult("P1", models.KindTimeline, base.Add(-2*time.Hour))
	middle := newResult("P2", models.KindResource, base.Add(-time.Hour))
	newest := newResult("P1", models.KindRisk, base)

	for _, r := range []*models.AnalysisResult{older, middle, newest} {
		require.NoError(t, store.Save(ctx, r))
	}

	results, err := store.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, newest.ID, results[0].ID)
	require.Equal(t, middle.ID, results[1].ID)
}

func TestStore_ListByProject(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	p1a := newResult("P1", models.KindTimeline, base.Add(-time.Hour))
	p1b := newResult("P1", models.KindRisk, base)
	p2 := newResult("P2", models.KindResource, base)

	for _, r := range []*models.AnalysisResult{p1a, p1b, p2} {
		require.NoError(t, store.Save(ctx, r))
	}

	results, err := store.ListByProject(ctx, "P1", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, p1b.ID, results[0].ID)
	require.Equal(t, p1a.ID, results[1].ID)

	empty, err := store.ListByProject(ctx, "P9", 10)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestStore_RejectsUnknownKind(t *testing.T) {
	store := newTestStore(t)

	bad := newResult("P1", models.AnalysisKind("forecast"), time.Now())
	err := store.Save(context.Background(), bad)
	require.Error(t, err)
}
