// Package trafilatura isolates news article bodies using go-trafilatura.
package trafilatura

import (
	"bytes"
	"html"
	"strings"

	"github.com/fwojciec/skim"
	"github.com/markusmobius/go-trafilatura"
	nethtml "golang.org/x/net/html"
)

var _ skim.Extractor = (*Extractor)(nil)

// Extractor implements skim.Extractor with go-trafilatura. Comments and
// tables are left out so only article prose reaches the summarizer.
type Extractor struct {
	// IncludeTables keeps table text in the content.
	IncludeTables bool
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article body and metadata of rawHTML. When
// trafilatura finds text but no content tree, each text line becomes a
// paragraph.
func (e *Extractor) Extract(rawHTML string) (*skim.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, skim.Errorf(skim.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   !e.IncludeTables,
		Deduplicate:     true,
	})
	if err != nil {
		return nil, err
	}

	var content string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := nethtml.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		content = buf.String()
	} else {
		content = textToParagraphs(result.ContentText)
	}

	return &skim.ExtractResult{
		Title:       skim.CleanTitle(result.Metadata.Title, result.Metadata.Sitename),
		Byline:      strings.TrimSpace(result.Metadata.Author),
		SiteName:    strings.TrimSpace(result.Metadata.Sitename),
		ContentHTML: content,
	}, nil
}

// textToParagraphs wraps each non-blank line of text in a <p> element.
func textToParagraphs(text string) string {
	var b strings.Builder
	for line := range strings.Lines(text) {
		if line = strings.TrimSpace(line); line != "" {
			b.WriteString("<p>")
			b.WriteString(html.EscapeString(line))
			b.WriteString("</p>\n")
		}
	}
	return b.String()
}
