package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/skim"
)

// Ensure LoggingRecordService implements skim.RecordService.
var _ skim.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with debug logging of writes.
type LoggingRecordService struct {
	next   skim.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next skim.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// CreateRecord delegates to the wrapped service and logs the new ID.
func (s *LoggingRecordService) CreateRecord(ctx context.Context, record *skim.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create record",
			"id", record.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecord(ctx, record)
}

// FindRecordByID delegates to the wrapped service.
func (s *LoggingRecordService) FindRecordByID(ctx context.Context, id string) (*skim.Record, error) {
	return s.next.FindRecordByID(ctx, id)
}

// FindRecords delegates to the wrapped service.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter skim.RecordFilter) ([]*skim.Record, error) {
	return s.next.FindRecords(ctx, filter)
}

// DeleteRecord delegates to the wrapped service and logs the call.
func (s *LoggingRecordService) DeleteRecord(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete record",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecord(ctx, id)
}

// DeleteRecordsBefore delegates to the wrapped service and logs the count.
func (s *LoggingRecordService) DeleteRecordsBefore(ctx context.Context, t time.Time) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete records",
			"before", t.Format(time.RFC3339),
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecordsBefore(ctx, t)
}
