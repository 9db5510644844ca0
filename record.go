package skim

import (
	"context"
	"time"
)

// Record is a stored summarization: its input and output.
type Record struct {
	ID                string    `json:"id"`
	SourceURL         string    `json:"sourceUrl,omitempty"`
	Title             string    `json:"title,omitempty"`
	InputHash         string    `json:"inputHash"`
	OriginalText      string    `json:"originalText"`
	Summary           string    `json:"summary"`
	TranslatedSummary string    `json:"translatedSummary,omitempty"`
	TargetLang        string    `json:"targetLang,omitempty"`
	TopN              int       `json:"topN"`
	OriginalLength    int       `json:"originalLength"`
	SummaryLength     int       `json:"summaryLength"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.OriginalText == "" {
		return Errorf(EINVALID, "record original text required")
	}
	if r.Summary == "" {
		return Errorf(EINVALID, "record summary required")
	}
	if r.TopN <= 0 {
		return Errorf(EINVALID, "record topN must be positive")
	}
	return nil
}

// RecordService represents a service for managing stored summaries.
type RecordService interface {
	// CreateRecord stores a new record, assigning its ID, hash and timestamp.
	CreateRecord(ctx context.Context, record *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error

	// DeleteRecordsBefore removes records created before t and returns
	// the number removed.
	DeleteRecordsBefore(ctx context.Context, t time.Time) (int, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`
	InputHash *string `json:"inputHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
