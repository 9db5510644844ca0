package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/skim"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ skim.RecordService = (*RecordService)(nil)

// HashText returns the hex xxhash of text, used to find repeated inputs.
func HashText(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}

// RecordService implements skim.RecordService using SQLite.
type RecordService struct {
	db *DB

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db, Now: time.Now}
}

const recordColumns = `id, source_url, title, input_hash, original_text, summary,
	translated_summary, target_lang, top_n, original_length, summary_length, created_at`

// CreateRecord stores a new record, assigning its ID, input hash and timestamp.
func (s *RecordService) CreateRecord(ctx context.Context, record *skim.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()
	record.InputHash = HashText(record.OriginalText)
	record.CreatedAt = s.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.SourceURL, record.Title, record.InputHash, record.OriginalText, record.Summary,
		record.TranslatedSummary, record.TargetLang, record.TopN, record.OriginalLength, record.SummaryLength,
		formatTime(record.CreatedAt))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*skim.Record, error) {
	record, err := scanRecord(s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM records WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, skim.Errorf(skim.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter skim.RecordFilter) ([]*skim.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.InputHash != nil {
		query.WriteString(" AND input_hash = ?")
		args = append(args, *filter.InputHash)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*skim.Record{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return skim.Errorf(skim.ENOTFOUND, "record not found")
	}

	return nil
}

// DeleteRecordsBefore removes records created before t.
func (s *RecordService) DeleteRecordsBefore(ctx context.Context, t time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE created_at < ?", formatTime(t))
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(rows), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*skim.Record, error) {
	var record skim.Record
	var createdAt string

	if err := row.Scan(&record.ID, &record.SourceURL, &record.Title, &record.InputHash, &record.OriginalText,
		&record.Summary, &record.TranslatedSummary, &record.TargetLang, &record.TopN,
		&record.OriginalLength, &record.SummaryLength, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if record.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &record, nil
}
