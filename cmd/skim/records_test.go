package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/skim"
	main "github.com/fwojciec/skim/cmd/skim"
	"github.com/fwojciec/skim/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedRecord(id string) *skim.Record {
	return &skim.Record{
		ID:           id,
		SourceURL:    "https://news.example.com/parks",
		Title:        "Parks Budget Approved",
		OriginalText: "The council met. The council approved the parks budget.",
		Summary:      "The council approved the parks budget.",
		TopN:         1,
		CreatedAt:    time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC),
	}
}

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists records with the filter applied", func(t *testing.T) {
		t.Parallel()

		var got skim.RecordFilter
		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, filter skim.RecordFilter) ([]*skim.Record, error) {
				got = filter
				r := storedRecord("rec-1")
				r.TargetLang = "fr"
				return []*skim.Record{r}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		err := (&main.HistoryCmd{Limit: 5, URL: "https://news.example.com/parks"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 5, got.Limit)
		require.NotNil(t, got.SourceURL)
		assert.Equal(t, "https://news.example.com/parks", *got.SourceURL)
		assert.Contains(t, stdout.String(), "rec-1")
		assert.Contains(t, stdout.String(), "Parks Budget Approved [fr]")
	})

	t.Run("shows hint when empty", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordsFn: func(context.Context, skim.RecordFilter) ([]*skim.Record, error) {
				return []*skim.Record{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		err := (&main.HistoryCmd{Limit: 20}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "skim summarize")
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the record as markdown", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordByIDFn: func(_ context.Context, id string) (*skim.Record, error) {
				return storedRecord(id), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		err := (&main.ShowCmd{ID: "rec-1", Full: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "id: rec-1")
		assert.Contains(t, stdout.String(), "# Parks Budget Approved")
		assert.Contains(t, stdout.String(), "## Original\n\nThe council met.")
	})

	t.Run("reports missing records", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordByIDFn: func(_ context.Context, id string) (*skim.Record, error) {
				return nil, skim.Errorf(skim.ENOTFOUND, "record not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Records: records,
		}

		err := (&main.ShowCmd{ID: "missing"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, skim.ENOTFOUND, skim.ErrorCode(err))
		assert.Contains(t, stderr.String(), "skim history")
	})
}

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes record when --force is set", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		records := &mock.RecordService{
			DeleteRecordFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		err := (&main.DeleteCmd{ID: "rec-1", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "rec-1", deletedID)
		assert.Contains(t, stdout.String(), "Deleted")
	})

	t.Run("requires --force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Records: &mock.RecordService{},
		}

		err := (&main.DeleteCmd{ID: "rec-1"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "--force")
	})
}

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	records := &mock.RecordService{
		FindRecordsFn: func(_ context.Context, filter skim.RecordFilter) ([]*skim.Record, error) {
			assert.Zero(t, filter.Limit)
			return []*skim.Record{storedRecord("rec-1"), storedRecord("rec-2")}, nil
		},
	}

	dir := filepath.Join(t.TempDir(), "summaries")
	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  &bytes.Buffer{},
		Records: records,
	}

	err := (&main.ExportCmd{Dir: dir}).Run(deps)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Exported 2 summaries")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestPruneCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes records older than the duration", func(t *testing.T) {
		t.Parallel()

		var cutoff time.Time
		records := &mock.RecordService{
			DeleteRecordsBeforeFn: func(_ context.Context, t time.Time) (int, error) {
				cutoff = t
				return 4, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		err := (&main.PruneCmd{OlderThan: 48 * time.Hour}).Run(deps)

		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(-48*time.Hour), cutoff, time.Minute)
		assert.Contains(t, stdout.String(), "Deleted 4 summaries")
	})

	t.Run("rejects non-positive durations", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Records: &mock.RecordService{},
		}

		err := (&main.PruneCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, skim.EINVALID, skim.ErrorCode(err))
	})
}
