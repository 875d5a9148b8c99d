package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobsnap"
	"github.com/fwojciec/jobsnap/fs"
	"github.com/fwojciec/jobsnap/gemini"
	"github.com/fwojciec/jobsnap/goquery"
	"github.com/fwojciec/jobsnap/graphql"
	"github.com/fwojciec/jobsnap/htmltomarkdown"
	jshttp "github.com/fwojciec/jobsnap/http"
	"github.com/fwojciec/jobsnap/rod"
	"github.com/fwojciec/jobsnap/scrape"
	jsslog "github.com/fwojciec/jobsnap/slog"
	"github.com/fwojciec/jobsnap/sqlite"
	"github.com/lmittmann/tint"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Overridden by --db or JOBSNAP_DB.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	Jobs    jobsnap.JobService
	Resumes jobsnap.ResumeService

	closers []func() error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close releases the browser and database, in reverse order of creation.
func (m *Main) Close() error {
	var firstErr error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobsnap"),
		kong.Description("Scrape job postings, keep them locally and match them against your resume."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobsnap --help' to see available commands")
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

	deps.Logger = newLogger(stderr, cli.Verbose)

	dbPath := m.DBPath
	if cli.DB != "" {
		dbPath = cli.DB
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set JOBSNAP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	m.closers = append(m.closers, m.DB.Close)
	defer m.Close()

	m.Jobs = sqlite.NewJobService(m.DB)
	m.Resumes = sqlite.NewResumeService(m.DB)
	deps.Jobs = m.Jobs
	deps.Resumes = m.Resumes

	switch cmd {
	case "scrape", "select", "serve":
		static := cmd == "scrape" && cli.Scrape.Static
		if err := m.wireScraper(deps, cli, static); err != nil {
			return err
		}
	case "analyze":
		analyzer, err := newAnalyzer(ctx, &cli.Analyze, stderr)
		if err != nil {
			return err
		}
		deps.Analyzer = jsslog.NewLoggingAnalyzer(analyzer, deps.Logger)
	case "export":
		deps.Converter = htmltomarkdown.NewConverter()
		deps.NewJobStore = func(dir string) jobsnap.JobStore {
			dir = filepath.Clean(dir)
			return fs.NewJobStore(filepath.Dir(dir), filepath.Base(dir))
		}
	}

	return kongCtx.Run(deps)
}

// wireScraper opens a browser and builds the scrapers on top of it.
func (m *Main) wireScraper(deps *Dependencies, cli *CLI, static bool) error {
	var browser jobsnap.Browser
	if static {
		browser = jshttp.NewBrowser()
	} else {
		var opts []rod.ManagerOption
		if cli.BrowserURL != "" {
			opts = append(opts, rod.WithControlURL(cli.BrowserURL))
		}
		b, err := rod.NewBrowser(rod.WithManagerOptions(opts...))
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed, or set JOBSNAP_BROWSER_URL to attach to a running one")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		browser = b
	}
	m.closers = append(m.closers, browser.Close)

	s := &scrape.Scraper{
		Browser:     rod.NewLoggingBrowser(browser, deps.Logger),
		Extractor:   goquery.NewExtractor(nil),
		RateLimiter: scrape.NewDomainLimiter(defaultRatePerDomain),
		Concurrency: cli.Scrape.Concurrency,
		Logf: func(format string, args ...any) {
			deps.Logger.Warn(fmt.Sprintf(format, args...))
		},
	}
	deps.Batch = s
	deps.Scraper = jsslog.NewLoggingScraper(s, deps.Logger)
	return nil
}

func newAnalyzer(ctx context.Context, cmd *AnalyzeCmd, stderr io.Writer) (jobsnap.Analyzer, error) {
	if cmd.Backend != "gemini" {
		var opts []graphql.Option
		if cmd.BackendURL != "" {
			opts = append(opts, graphql.WithEndpoint(cmd.BackendURL))
		}
		return graphql.NewClient(opts...), nil
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	counter, err := gemini.NewTokenCounter(gemini.DefaultModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create token counter: %w", err)
	}
	return gemini.NewAnalyzer(client, gemini.WithTokenLimit(counter, maxPromptTokens)), nil
}

// newLogger logs to stderr with tint when verbose and discards otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))
}

// defaultRatePerDomain is one page load per second per job board.
const defaultRatePerDomain = 1.0

// maxPromptTokens rejects postings far beyond any real job description.
const maxPromptTokens = 100_000

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "jobsnap.db"
	}
	dir := filepath.Join(home, ".jobsnap")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "jobsnap.db")
}
