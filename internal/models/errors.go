package models

import (
	"errors"
)

// Dataset-related errors
var (
	// ErrDatasetNotFound is returned when the dataset file does not exist
	ErrDatasetNotFound = errors.New("dataset file not found")

	// ErrEmptyDataset is returned when the dataset file has no header row
	ErrEmptyDataset = errors.New("dataset file is empty")

	// ErrMissingColumn is returned when a required column is absent from the header
	ErrMissingColumn = errors.New("required column missing from dataset header")
)
