package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(id string) *skim.Record {
	return &skim.Record{
		ID:             id,
		SourceURL:      "https://news.example.com/parks",
		Title:          "Parks Budget",
		OriginalText:   "The council met. The council approved the parks budget.",
		Summary:        "The council approved the parks budget.",
		TopN:           1,
		OriginalLength: 55,
		SummaryLength:  38,
		CreatedAt:      time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC),
	}
}

func TestExporter_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	exporter := fs.NewExporter(filepath.Join(base, "out"))

	err := exporter.Save(context.Background(), newRecord("abc"))

	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "out.tmp", "2026-03-04-abc.md"))
	require.NoError(t, err, "file should exist in temp directory")
	_, err = os.Stat(filepath.Join(base, "out"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
	assert.Equal(t, 1, exporter.Count())
}

func TestExporter_CommitReplacesFinalDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	final := filepath.Join(base, "out")
	require.NoError(t, os.MkdirAll(final, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(final, "stale.md"), []byte("old"), 0644))

	exporter := fs.NewExporter(final)
	require.NoError(t, exporter.Save(context.Background(), newRecord("abc")))

	err := exporter.Commit()

	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(final, "2026-03-04-abc.md"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(final, "stale.md"))
	assert.True(t, os.IsNotExist(err), "stale files should be replaced")
	_, err = os.Stat(filepath.Join(base, "out.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestExporter_CommitWithNoRecordsCreatesEmptyDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	exporter := fs.NewExporter(filepath.Join(base, "out"))

	require.NoError(t, exporter.Commit())

	info, err := os.Stat(filepath.Join(base, "out"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestExporter_AbortCleansUpTempDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	exporter := fs.NewExporter(filepath.Join(base, "out"))
	require.NoError(t, exporter.Save(context.Background(), newRecord("abc")))

	require.NoError(t, exporter.Abort())

	_, err := os.Stat(filepath.Join(base, "out.tmp"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(base, "out"))
	assert.True(t, os.IsNotExist(err))
}

func TestExporter_Save_RejectsRecordWithoutID(t *testing.T) {
	t.Parallel()

	exporter := fs.NewExporter(filepath.Join(t.TempDir(), "out"))

	err := exporter.Save(context.Background(), newRecord(""))

	require.Error(t, err)
	assert.Equal(t, skim.EINVALID, skim.ErrorCode(err))
}

func TestFormatRecord(t *testing.T) {
	t.Parallel()

	t.Run("includes frontmatter and summary", func(t *testing.T) {
		t.Parallel()

		content, err := fs.FormatRecord(newRecord("abc"))

		require.NoError(t, err)
		assert.Contains(t, content, "---\nid: abc\n")
		assert.Contains(t, content, "source: https://news.example.com/parks\n")
		assert.Contains(t, content, "top_n: 1\n")
		assert.Contains(t, content, "2026-03-04T10:30:00Z")
		assert.Contains(t, content, "# Parks Budget\n\nThe council approved the parks budget.\n")
		assert.NotContains(t, content, "Translation")
	})

	t.Run("appends the translation", func(t *testing.T) {
		t.Parallel()

		record := newRecord("abc")
		record.TargetLang = "de"
		record.TranslatedSummary = "Der Rat genehmigte den Parkhaushalt."

		content, err := fs.FormatRecord(record)

		require.NoError(t, err)
		assert.Contains(t, content, "lang: de\n")
		assert.Contains(t, content, "## Translation (de)\n\nDer Rat genehmigte den Parkhaushalt.\n")
	})

	t.Run("omits the heading for untitled records", func(t *testing.T) {
		t.Parallel()

		record := newRecord("abc")
		record.Title = ""
		record.SourceURL = ""

		content, err := fs.FormatRecord(record)

		require.NoError(t, err)
		assert.NotContains(t, content, "# ")
		assert.NotContains(t, content, "source:")
	})
}
