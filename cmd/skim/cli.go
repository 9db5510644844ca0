package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/digest"
)

// BatchSummarizer summarizes many URLs in one run.
type BatchSummarizer interface {
	SummarizeURLs(ctx context.Context, urls []string, opts digest.BatchOptions, progress digest.ProgressFunc) ([]digest.BatchItem, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Summaries skim.SummaryService
	Batch     BatchSummarizer
	Records   skim.RecordService
	Sources   skim.URLSource
	Tokens    skim.TokenCounter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config kong.ConfigFlag `help:"YAML config file" placeholder:"PATH"`

	DB        string        `name:"db" env:"SKIM_DB" help:"SQLite database path (default ~/.skim/skim.db)"`
	LogLevel  string        `env:"SKIM_LOG_LEVEL" enum:"debug,info,warn,error" default:"warn" help:"Log level"`
	LogFormat string        `env:"SKIM_LOG_FORMAT" enum:"text,json" default:"text" help:"Log format"`
	Extractor string        `env:"SKIM_EXTRACTOR" enum:"trafilatura,readability,none" default:"trafilatura" help:"Main-content extractor for scraped pages"`
	Render    string        `env:"SKIM_RENDER" enum:"never,auto,always" default:"never" help:"Render pages in headless Chrome"`
	Timeout   time.Duration `env:"SKIM_TIMEOUT" default:"10s" help:"Fetch timeout per page"`
	RPS       float64       `name:"rps" env:"SKIM_RPS" default:"1" help:"Requests per second per host"`
	Model     string        `env:"SKIM_GEMINI_MODEL" default:"gemini-2.5-flash" help:"Gemini model used for translation"`
	APIKey    string        `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key, required for translation"`
	Lang      string        `env:"SKIM_LANG" help:"Default translation language"`
	Stem      string        `env:"SKIM_STEM" help:"Stem words in this Snowball language before scoring, such as english (off when empty)"`

	Stopwords   string `type:"existingfile" env:"SKIM_STOPWORDS" help:"Whitespace-separated stopword file replacing the built-in English list"`
	Terminators string `env:"SKIM_TERMINATORS" help:"Sentence terminator characters (default .!? and newline)"`
	MinInput    int    `env:"SKIM_MIN_INPUT" default:"100" help:"Minimum input length in characters"`
	MinSummary  int    `env:"SKIM_MIN_SUMMARY" default:"50" help:"Minimum summary length in characters"`
	MinPara     int    `name:"min-paragraph" env:"SKIM_MIN_PARAGRAPH" default:"40" help:"Minimum scraped paragraph length in characters (0 keeps every paragraph)"`
	MaxTopN     int    `env:"SKIM_MAX_TOP_N" default:"20" help:"Largest sentence count a request may ask for"`

	Summarize SummarizeCmd `cmd:"" help:"Summarize text, a file, a URL or standard input"`
	Batch     BatchCmd     `cmd:"" help:"Summarize many URLs concurrently"`
	Serve     ServeCmd     `cmd:"" help:"Run the JSON API"`
	History   HistoryCmd   `cmd:"" help:"List stored summaries"`
	Show      ShowCmd      `cmd:"" help:"Show a stored summary"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a stored summary"`
	Export    ExportCmd    `cmd:"" help:"Export stored summaries as markdown files"`
	Prune     PruneCmd     `cmd:"" help:"Delete stored summaries older than a duration"`
	Watch     WatchCmd     `cmd:"" help:"Summarize text files as they are written to a directory"`
	MCP       MCPCmd       `cmd:"" name:"mcp" help:"Serve summarization to AI assistants over MCP (stdio)"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	Text   string `arg:"" optional:"" help:"Text to summarize (reads stdin when omitted)"`
	URL    string `short:"u" name:"url" help:"Article URL to summarize"`
	File   string `short:"f" type:"existingfile" help:"File to summarize"`
	TopN   int    `short:"n" name:"top-n" env:"SKIM_TOP_N" help:"Number of sentences (default 3)"`
	Lang   string `short:"l" help:"Translate the summary into this language"`
	Scores bool   `help:"Show sentence scores and positions"`
	NoSave bool   `help:"Do not store the summary"`
	Tokens bool   `help:"Report the summary's token count"`
	JSON   bool   `name:"json" help:"Print the result as JSON"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string `arg:"" optional:"" name:"url" help:"Article URLs"`
	From        string   `help:"Sitemap, feed or index page to read article URLs from"`
	Include     []string `short:"i" help:"Only summarize URLs matching this regex (repeatable)"`
	Exclude     []string `short:"x" help:"Skip URLs matching this regex (repeatable)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent summarization limit"`
	TopN        int      `short:"n" name:"top-n" env:"SKIM_TOP_N" help:"Number of sentences (default 3)"`
	Lang        string   `short:"l" help:"Translate summaries into this language"`
	NoSave      bool     `help:"Do not store the summaries"`
	Preview     bool     `short:"p" help:"List the URLs without summarizing"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr          string        `env:"SKIM_ADDR" default:":8080" help:"Listen address"`
	Retention     time.Duration `env:"SKIM_RETENTION" default:"720h" help:"Delete stored summaries older than this (0 keeps everything)"`
	PruneSchedule string        `env:"SKIM_PRUNE_SCHEDULE" default:"@hourly" help:"Cron schedule for pruning"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit  int    `default:"20" help:"Maximum number of summaries"`
	Offset int    `help:"Number of summaries to skip"`
	URL    string `name:"url" help:"Only show summaries of this URL"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Summary ID"`
	Full bool   `help:"Also print the original text"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Summary ID"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" type:"path" help:"Output directory (replaced atomically)"`
	URL string `name:"url" help:"Only export summaries of this URL"`
}

// PruneCmd is the "prune" subcommand.
type PruneCmd struct {
	OlderThan time.Duration `required:"" help:"Delete summaries older than this, such as 720h"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Dir      string        `arg:"" type:"existingdir" help:"Directory to watch"`
	TopN     int           `short:"n" name:"top-n" env:"SKIM_TOP_N" help:"Number of sentences (default 3)"`
	Lang     string        `short:"l" help:"Translate summaries into this language"`
	Ext      []string      `default:".txt,.md" help:"File extensions to summarize"`
	Debounce time.Duration `default:"500ms" help:"Wait until a file is unchanged for this long"`
	NoSave   bool          `help:"Do not store the summaries"`
}

// MCPCmd is the "mcp" subcommand.
type MCPCmd struct{}
