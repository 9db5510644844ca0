package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/skim/fs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "summaries/{id}",
		Name:        "summary",
		Description: "A stored summary as markdown with YAML frontmatter",
		MIMEType:    "text/markdown",
	}, s.handleSummaryResource)
}

func (s *Server) handleSummaryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractSummaryID(req.Params.URI)
	if id == "" {
		return nil, fmt.Errorf("invalid summary URI: %s", req.Params.URI)
	}

	record, err := s.records.FindRecordByID(ctx, id)
	if err != nil {
		return nil, toolError(err)
	}

	content, err := fs.FormatRecord(record)
	if err != nil {
		return nil, fmt.Errorf("formatting summary: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     content,
		}},
	}, nil
}

// extractSummaryID returns the ID from a skim://summaries/{id} URI, or ""
// when the URI does not name a summary.
func extractSummaryID(uri string) string {
	id, ok := strings.CutPrefix(uri, uriScheme+"summaries/")
	if !ok || strings.Contains(id, "/") {
		return ""
	}
	return id
}
