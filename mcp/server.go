// Package mcp exposes summarization to AI assistants over the Model
// Context Protocol.
package mcp

import (
	"context"

	"github.com/fwojciec/skim"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is the MCP server version.
const Version = "0.1.0"

// uriScheme prefixes stored summary resources.
const uriScheme = "skim://"

// Server is the MCP server for skim.
type Server struct {
	summaries skim.SummaryService
	records   skim.RecordService
	server    *mcp.Server
}

// NewServer creates an MCP server. The summaries service is required;
// records is optional and enables the history tools and resources.
func NewServer(summaries skim.SummaryService, records skim.RecordService) (*Server, error) {
	if summaries == nil {
		return nil, skim.Errorf(skim.EINVALID, "mcp: summary service is required")
	}

	s := &Server{
		summaries: summaries,
		records:   records,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    "skim",
			Version: Version,
		}, nil),
	}

	s.registerTools()
	if records != nil {
		s.registerResources()
	}

	return s, nil
}

// Run serves MCP over stdio until the context is canceled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
