package mock

import (
	"context"
	"time"

	"github.com/fwojciec/skim"
)

var _ skim.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of skim.RecordService.
type RecordService struct {
	CreateRecordFn        func(ctx context.Context, record *skim.Record) error
	FindRecordByIDFn      func(ctx context.Context, id string) (*skim.Record, error)
	FindRecordsFn         func(ctx context.Context, filter skim.RecordFilter) ([]*skim.Record, error)
	DeleteRecordFn        func(ctx context.Context, id string) error
	DeleteRecordsBeforeFn func(ctx context.Context, t time.Time) (int, error)
}

func (s *RecordService) CreateRecord(ctx context.Context, record *skim.Record) error {
	return s.CreateRecordFn(ctx, record)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*skim.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter skim.RecordFilter) ([]*skim.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}

func (s *RecordService) DeleteRecordsBefore(ctx context.Context, t time.Time) (int, error) {
	return s.DeleteRecordsBeforeFn(ctx, t)
}
