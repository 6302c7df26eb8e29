package models

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Column names expected in the dataset header, in their canonical order.
var requiredColumns = []string{
	"Project_ID",
	"Task_Name",
	"Estimated_Days",
	"Actual_Days",
	"Resource_Allocated",
	"Efficiency",
	"Idle_Time",
	"Risk_Type",
	"Likelihood",
	"Impact_Level",
}

// Dataset is an ordered, read-only collection of project records
// loaded once from a CSV file.
type Dataset struct {
	// Source path the dataset was loaded from
	Path string

	// Records in original file order
	Records []ProjectRecord
}

// LoadDataset reads and parses the CSV file at path.
// The header must contain all required columns; column order is free.
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close dataset file: %v\n", err)
		}
	}()

	records, err := parseRecords(f)
	if err != nil {
		return nil, err
	}

	return &Dataset{Path: path, Records: records}, nil
}

// parseRecords parses CSV rows from r into project records.
func parseRecords(r io.Reader) ([]ProjectRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	// Map column name to index so column order in the file is free
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var records []ProjectRecord
	row := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("malformed dataset row %d: %w", row, err)
		}

		rec := ProjectRecord{
			ProjectID:         fields[index["Project_ID"]],
			TaskName:          fields[index["Task_Name"]],
			ResourceAllocated: fields[index["Resource_Allocated"]],
			RiskType:          fields[index["Risk_Type"]],
			Likelihood:        fields[index["Likelihood"]],
			ImpactLevel:       fields[index["Impact_Level"]],
		}

		numeric := []struct {
			column string
			target *float64
		}{
			{"Estimated_Days", &rec.EstimatedDays},
			{"Actual_Days", &rec.ActualDays},
			{"Efficiency", &rec.Efficiency},
			{"Idle_Time", &rec.IdleTime},
		}
		for _, n := range numeric {
			v, err := strconv.ParseFloat(fields[index[n.column]], 64)
			if err != nil {
				return nil, fmt.Errorf("dataset row %d: invalid %s value %q", row, n.column, fields[index[n.column]])
			}
			*n.target = v
		}

		records = append(records, rec)
	}

	return records, nil
}

// FilterByProject returns the records belonging to the given project,
// preserving original order. An unknown project yields an empty slice,
// never an error.
func (d *Dataset) FilterByProject(projectID string) []ProjectRecord {
	var filtered []ProjectRecord
	for _, rec := range d.Records {
		if rec.ProjectID == projectID {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// ProjectIDs returns the unique project identifiers in first-appearance order.
func (d *Dataset) ProjectIDs() []string {
	seen := make(map[string]bool, len(d.Records))
	var ids []string
	for _, rec := range d.Records {
		if !seen[rec.ProjectID] {
			seen[rec.ProjectID] = true
			ids = append(ids, rec.ProjectID)
		}
	}
	return ids
}

// Len returns the number of records in the dataset.
func (d *Dataset) Len() int {
	return len(d.Records)
}
