// Package fs exports stored summaries as markdown files.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/skim"
	"gopkg.in/yaml.v3"
)

// Exporter writes records with atomic update semantics.
// Files are written to <dir>.tmp and moved to <dir> on Commit.
type Exporter struct {
	baseDir string
	name    string
	count   int
}

// NewExporter creates an Exporter targeting dir.
func NewExporter(dir string) *Exporter {
	dir = filepath.Clean(dir)
	return &Exporter{
		baseDir: filepath.Dir(dir),
		name:    filepath.Base(dir),
	}
}

func (e *Exporter) tempDir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

func (e *Exporter) finalDir() string {
	return filepath.Join(e.baseDir, e.name)
}

// Count returns the number of records saved since the Exporter was created.
func (e *Exporter) Count() int {
	return e.count
}

// Save writes one record to the temporary directory.
func (e *Exporter) Save(ctx context.Context, record *skim.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if record.ID == "" {
		return skim.Errorf(skim.EINVALID, "record ID required")
	}

	content, err := FormatRecord(record)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(e.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(e.tempDir(), RecordFilename(record)), []byte(content), 0644); err != nil {
		return err
	}
	e.count++
	return nil
}

// Commit replaces the target directory with the exported files.
func (e *Exporter) Commit() error {
	if err := os.MkdirAll(e.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(e.finalDir()); err != nil {
		return err
	}
	return os.Rename(e.tempDir(), e.finalDir())
}

// Abort discards everything written since the last Commit.
func (e *Exporter) Abort() error {
	return os.RemoveAll(e.tempDir())
}

// RecordFilename returns the file name for a record: its creation date
// followed by its ID.
// Example: 2026-03-04-6f1c....md
func RecordFilename(record *skim.Record) string {
	return record.CreatedAt.UTC().Format("2006-01-02") + "-" + record.ID + ".md"
}

type frontmatter struct {
	ID         string `yaml:"id"`
	Source     string `yaml:"source,omitempty"`
	Title      string `yaml:"title,omitempty"`
	TopN       int    `yaml:"top_n"`
	TargetLang string `yaml:"lang,omitempty"`
	Created    string `yaml:"created"`
	Original   int    `yaml:"original_length"`
	Summary    int    `yaml:"summary_length"`
}

// FormatRecord formats a record as markdown with YAML frontmatter. The
// translation, when present, follows the summary under its own heading.
func FormatRecord(record *skim.Record) (string, error) {
	meta, err := yaml.Marshal(frontmatter{
		ID:         record.ID,
		Source:     record.SourceURL,
		Title:      record.Title,
		TopN:       record.TopN,
		TargetLang: record.TargetLang,
		Created:    record.CreatedAt.UTC().Format(time.RFC3339),
		Original:   record.OriginalLength,
		Summary:    record.SummaryLength,
	})
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	if record.Title != "" {
		b.WriteString("# ")
		b.WriteString(record.Title)
		b.WriteString("\n\n")
	}
	b.WriteString(record.Summary)
	b.WriteString("\n")
	if record.TranslatedSummary != "" {
		b.WriteString("\n## Translation (")
		b.WriteString(record.TargetLang)
		b.WriteString(")\n\n")
		b.WriteString(record.TranslatedSummary)
		b.WriteString("\n")
	}
	return b.String(), nil
}
