package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/skim"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// defaultListLimit is the number of summaries list_summaries returns when
// the caller gives no limit.
const defaultListLimit = 10

// SummarizeInput is the input schema for the summarize tool.
type SummarizeInput struct {
	Text       string `json:"text,omitempty" jsonschema:"the text to summarize; leave empty when url is given"`
	URL        string `json:"url,omitempty" jsonschema:"an article URL to fetch and summarize"`
	TopN       int    `json:"top_n,omitempty" jsonschema:"number of sentences to keep (default 3)"`
	TargetLang string `json:"target_lang,omitempty" jsonschema:"language to translate the summary into"`
}

// SummarizeOutput is the output schema for the summarize tool.
type SummarizeOutput struct {
	ID                string `json:"id,omitempty"`
	SourceURL         string `json:"source_url,omitempty"`
	Title             string `json:"title,omitempty"`
	Summary           string `json:"summary"`
	TranslatedSummary string `json:"translated_summary,omitempty"`
	TargetLang        string `json:"target_lang,omitempty"`
	OriginalLength    int    `json:"original_length"`
	SummaryLength     int    `json:"summary_length"`
}

// ListInput is the input schema for the list_summaries tool.
type ListInput struct {
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of summaries to return (default 10)"`
	URL   string `json:"url,omitempty" jsonschema:"only return summaries of this URL"`
}

// ListOutput is the output schema for the list_summaries tool.
type ListOutput struct {
	Summaries []RecordOutput `json:"summaries"`
	Count     int            `json:"count"`
}

// GetInput is the input schema for the get_summary tool.
type GetInput struct {
	ID string `json:"id" jsonschema:"the summary ID"`
}

// RecordOutput is a stored summary.
type RecordOutput struct {
	ID                string `json:"id"`
	SourceURL         string `json:"source_url,omitempty"`
	Title             string `json:"title,omitempty"`
	Summary           string `json:"summary"`
	TranslatedSummary string `json:"translated_summary,omitempty"`
	TargetLang        string `json:"target_lang,omitempty"`
	CreatedAt         string `json:"created_at"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "summarize",
		Description: "Summarize text or a web article by extracting its most salient sentences",
	}, s.handleSummarize)

	if s.records == nil {
		return
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_summaries",
		Description: "List stored summaries, newest first",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_summary",
		Description: "Get a stored summary by ID",
	}, s.handleGet)
}

func (s *Server) handleSummarize(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SummarizeInput,
) (*mcp.CallToolResult, SummarizeOutput, error) {
	result, err := s.summaries.Summarize(ctx, skim.Request{
		Text:       input.Text,
		URL:        input.URL,
		TopN:       input.TopN,
		TargetLang: input.TargetLang,
	})
	if err != nil {
		return nil, SummarizeOutput{}, toolError(err)
	}

	return nil, SummarizeOutput{
		ID:                result.ID,
		SourceURL:         result.SourceURL,
		Title:             result.Title,
		Summary:           result.Summary,
		TranslatedSummary: result.TranslatedSummary,
		TargetLang:        result.TargetLang,
		OriginalLength:    result.OriginalLength,
		SummaryLength:     result.SummaryLength,
	}, nil
}

func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	filter := skim.RecordFilter{Limit: limit}
	if input.URL != "" {
		filter.SourceURL = &input.URL
	}

	records, err := s.records.FindRecords(ctx, filter)
	if err != nil {
		return nil, ListOutput{}, toolError(err)
	}

	output := ListOutput{
		Summaries: make([]RecordOutput, len(records)),
		Count:     len(records),
	}
	for i, r := range records {
		output.Summaries[i] = recordOutput(r)
	}

	return nil, output, nil
}

func (s *Server) handleGet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetInput,
) (*mcp.CallToolResult, RecordOutput, error) {
	record, err := s.records.FindRecordByID(ctx, input.ID)
	if err != nil {
		return nil, RecordOutput{}, toolError(err)
	}
	return nil, recordOutput(record), nil
}

func recordOutput(r *skim.Record) RecordOutput {
	return RecordOutput{
		ID:                r.ID,
		SourceURL:         r.SourceURL,
		Title:             r.Title,
		Summary:           r.Summary,
		TranslatedSummary: r.TranslatedSummary,
		TargetLang:        r.TargetLang,
		CreatedAt:         r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// toolError reports application errors with their code and message and
// hides the details of internal ones.
func toolError(err error) error {
	return errors.New(skim.ErrorCode(err) + ": " + skim.ErrorMessage(err))
}
