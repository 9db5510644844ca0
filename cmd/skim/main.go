package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/digest"
	"github.com/fwojciec/skim/gemini"
	skimhttp "github.com/fwojciec/skim/http"
	"github.com/fwojciec/skim/readability"
	"github.com/fwojciec/skim/rod"
	skimslog "github.com/fwojciec/skim/slog"
	"github.com/fwojciec/skim/snowball"
	"github.com/fwojciec/skim/sqlite"
	"github.com/fwojciec/skim/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when neither --db nor SKIM_DB is set.
	DBPath string

	// Config files read by kong, in order. Missing files are ignored.
	ConfigPaths []string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Closers run by Close after the database is closed.
	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:      defaultDBPath(),
		ConfigPaths: []string{defaultConfigPath},
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	if m.DB != nil {
		firstErr = m.DB.Close()
	}
	for _, c := range m.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("skim"),
		kong.Description("Extractive summaries of articles and text"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(YAMLConfig, m.ConfigPaths...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'skim --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := newLogger(stderr, cli.LogLevel, cli.LogFormat)
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	noSave := (cmd == "summarize" && cli.Summarize.NoSave) ||
		(cmd == "batch" && (cli.Batch.NoSave || cli.Batch.Preview)) ||
		(cmd == "watch" && cli.Watch.NoSave)
	if !noSave {
		dbPath := cli.DB
		if dbPath == "" {
			dbPath = m.DBPath
		}
		if dbPath != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SKIM_DB or --db to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		deps.Records = skimslog.NewLoggingRecordService(sqlite.NewRecordService(m.DB), logger)
	}
	defer m.Close()

	httpClient := &http.Client{Timeout: cli.Timeout}
	deps.Sources = skimslog.NewLoggingURLSource(skimhttp.NewURLSource(httpClient), logger)

	switch cmd {
	case "summarize", "batch", "serve", "watch", "mcp":
		if cmd == "batch" && cli.Batch.Preview {
			return kongCtx.Run(deps)
		}

		service, err := m.newService(ctx, cli, cmd, deps, stderr)
		if err != nil {
			return err
		}
		deps.Summaries = skimslog.NewLoggingSummaryService(service, logger)
		deps.Batch = service
	}

	if cmd == "summarize" && cli.Summarize.Tokens {
		counter, err := gemini.NewTokenCounter(gemini.DefaultModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		deps.Tokens = counter
	}

	return kongCtx.Run(deps)
}

// newService wires the summarization pipeline for cmd.
func (m *Main) newService(ctx context.Context, cli *CLI, cmd string, deps *Dependencies, stderr io.Writer) (*digest.Service, error) {
	logger := deps.Logger
	policy := skim.DefaultPolicy()
	policy.MinInputLength = cli.MinInput
	policy.MinSummaryLength = cli.MinSummary
	policy.MinParagraphLength = cli.MinPara
	policy.MaxTopN = cli.MaxTopN

	opts, err := summarizerOptions(cli)
	if err != nil {
		return nil, err
	}

	fetcher, err := m.newFetcher(cli, policy, logger, stderr)
	if err != nil {
		return nil, err
	}

	scraper := &digest.Scraper{
		Fetcher:            fetcher,
		Extractor:          newExtractor(cli.Extractor),
		RateLimiter:        digest.NewDomainLimiter(cli.RPS, 1),
		MinParagraphLength: policy.MinParagraphLength,
		Logger:             logger,
	}

	service := digest.NewService(skim.NewSummarizer(opts...), policy)
	service.Scraper = skimslog.NewLoggingScraper(scraper, logger)
	service.Records = deps.Records
	service.TargetLang = cli.Lang

	wantsTranslation := cli.Lang != "" ||
		(cmd == "summarize" && cli.Summarize.Lang != "") ||
		(cmd == "batch" && cli.Batch.Lang != "") ||
		(cmd == "watch" && cli.Watch.Lang != "")
	if cli.APIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		service.Translator = skimslog.NewLoggingTranslator(gemini.NewTranslator(client, cli.Model), logger)
	} else if wantsTranslation {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	return service, nil
}

// newFetcher returns the page fetcher selected by --render. Browser-backed
// fetchers are closed by Main.Close.
func (m *Main) newFetcher(cli *CLI, policy skim.Policy, logger *slog.Logger, stderr io.Writer) (skim.Fetcher, error) {
	var fetcher skim.Fetcher = skimhttp.NewFetcher(skimhttp.WithTimeout(cli.Timeout))

	if cli.Render != "never" {
		browser, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed to use --render")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}

		if cli.Render == "always" {
			fetcher = browser
		} else {
			fetcher = &digest.FallbackFetcher{
				Static:             fetcher,
				Rendered:           browser,
				MinChars:           policy.MinInputLength,
				MinParagraphLength: policy.MinParagraphLength,
			}
		}
	}

	fetcher = skimslog.NewLoggingFetcher(fetcher, logger)
	m.closers = append(m.closers, fetcher)
	return fetcher, nil
}

// summarizerOptions returns the core options selected by the global flags.
func summarizerOptions(cli *CLI) ([]skim.SummarizerOption, error) {
	var opts []skim.SummarizerOption

	if cli.Stopwords != "" {
		data, err := os.ReadFile(cli.Stopwords)
		if err != nil {
			return nil, fmt.Errorf("failed to read stopwords: %w", err)
		}
		opts = append(opts, skim.WithStopwords(skim.NewStopwordSet(strings.Fields(string(data))...)))
	}
	if cli.Terminators != "" {
		opts = append(opts, skim.WithTerminators(cli.Terminators))
	}
	if cli.Stem != "" {
		stemmer, err := snowball.NewStemmer(cli.Stem)
		if err != nil {
			return nil, err
		}
		opts = append(opts, skim.WithStemmer(stemmer))
	}

	return opts, nil
}

func newExtractor(name string) skim.Extractor {
	switch name {
	case "readability":
		return readability.NewExtractor()
	case "none":
		return nil
	default:
		return trafilatura.NewExtractor()
	}
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
