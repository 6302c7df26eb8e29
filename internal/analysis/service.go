// Package analysis orchestrates a single analysis run: filter the
// dataset by project, build the prompt, call the model and record the
// result.
package analysis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"plens/internal/models"
	"plens/internal/prompt"
)

// Generator is the external text-generation collaborator.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Recorder persists completed analyses.
type Recorder interface {
	Save(ctx context.Context, result *models.AnalysisResult) error
}

// Service runs analyses against a loaded dataset. The dataset pointer
// may be swapped by a file watcher while analyses are in flight, so
// access goes through a mutex; each Dataset snapshot itself stays
// read-only after load.
type Service struct {
	mu        sync.RWMutex
	dataset   *models.Dataset
	generator Generator
	recorder  Recorder
	model     string
	logger    *zap.Logger
}

// NewService creates an analysis service. recorder may be nil, in which
// case results are not persisted.
func NewService(dataset *models.Dataset, generator Generator, recorder Recorder, model string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		dataset:   dataset,
		generator: generator,
		recorder:  recorder,
		model:     model,
		logger:    logger,
	}
}

// Dataset returns the dataset the service currently operates on.
func (s *Service) Dataset() *models.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// SetDataset swaps the dataset, e.g. after the source file changed.
// Analyses already in flight keep the snapshot they started with.
func (s *Service) SetDataset(dataset *models.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = dataset
}

// Run executes one analysis request. An unknown project yields a prompt
// over empty lists rather than an error; generator failures are returned
// to the caller for display.
func (s *Service) Run(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	records := s.Dataset().FilterByProject(req.ProjectID)

	p, err := prompt.Build(req.Kind, records)
	if err != nil {
		return nil, err
	}

	s.logger.Info("running analysis",
		zap.String("project", req.ProjectID),
		zap.String("kind", string(req.Kind)),
		zap.Int("records", len(records)))

	start := time.Now()
	response, err := s.generator.Generate(ctx, p)
	if err != nil {
		s.logger.Error("analysis failed",
			zap.String("project", req.ProjectID),
			zap.String("kind", string(req.Kind)),
			zap.Error(err))
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	result := &models.AnalysisResult{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Kind:      req.Kind,
		Prompt:    p,
		Response:  response,
		Model:     s.model,
		CreatedAt: time.Now().UTC(),
	}

	s.logger.Info("analysis complete",
		zap.String("project", req.ProjectID),
		zap.String("kind", string(req.Kind)),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("response_len", len(response)))

	if s.recorder != nil {
		// History is best-effort; a persistence failure must not
		// discard a response the user already paid a model call for.
		if err := s.recorder.Save(ctx, result); err != nil {
			s.logger.Warn("failed to record analysis", zap.Error(err))
		}
	}

	return result, nil
}
