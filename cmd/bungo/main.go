package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/bungo"
	"github.com/fwojciec/bungo/gemini"
	"github.com/fwojciec/bungo/geocode"
	"github.com/fwojciec/bungo/goquery"
	bungohttp "github.com/fwojciec/bungo/http"
	"github.com/fwojciec/bungo/kagome"
	bslog "github.com/fwojciec/bungo/slog"
	"github.com/fwojciec/bungo/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	WorkService    bungo.WorkService
	MentionService bungo.MentionService
	StatsService   bungo.StatsService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
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
		kong.Name("bungo"),
		kong.Description("Collect place-name mentions from Japanese literary works."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'bungo --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set BUNGO_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.WorkService = sqlite.NewWorkService(m.DB)
	m.MentionService = sqlite.NewMentionService(m.DB)
	m.StatsService = sqlite.NewStatsService(m.DB)
	deps.Works = m.WorkService
	deps.Mentions = m.MentionService
	deps.Stats = m.StatsService
	deps.Logger = newLogger(stderr, cli.Verbose)

	deps.Source = newSource(cli, deps.Logger)
	deps.Geocoder = newGeocoder(cli, deps.Logger)
	deps.NewRecognizer = func() (bungo.Recognizer, error) {
		r, err := newRecognizer(ctx, cli, stderr)
		if err != nil {
			return nil, err
		}
		if cli.Verbose {
			return bslog.NewLoggingRecognizer(r, deps.Logger), nil
		}
		return r, nil
	}

	return kongCtx.Run(deps)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newSource(cli *CLI, logger *slog.Logger) bungo.DocumentSource {
	var fetcher bungo.Fetcher = bungohttp.NewFetcher(bungohttp.WithUserAgent(cli.UserAgent))
	if cli.Verbose {
		fetcher = bslog.NewLoggingFetcher(fetcher, logger)
	}
	var source bungo.DocumentSource = bungohttp.NewAozoraSource(fetcher, goquery.NewAozoraExtractor())
	if cli.Verbose {
		source = bslog.NewLoggingSource(source, logger)
	}
	return source
}

func newRecognizer(ctx context.Context, cli *CLI, stderr io.Writer) (bungo.Recognizer, error) {
	if cli.Extract.Recognizer != recognizerGemini {
		r, err := kagome.NewRecognizer()
		if err != nil {
			return nil, err
		}
		return r, nil
	}

	if cli.GeminiAPIKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, bungo.Errorf(bungo.ECONFIG, "GEMINI_API_KEY not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cli.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, bungo.Errorf(bungo.ECONFIG, "connect to Gemini API: %v", err)
	}
	r, err := gemini.NewRecognizer(ctx, client, cli.Extract.Model)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func newGeocoder(cli *CLI, logger *slog.Logger) bungo.Geocoder {
	opts := []bungohttp.GeocoderOption{bungohttp.WithGeocoderUserAgent(cli.UserAgent)}

	var gsi bungo.Geocoder = bungohttp.NewGSIGeocoder(opts...)
	var nominatim bungo.Geocoder = bungohttp.NewNominatimGeocoder(opts...)
	if cli.Verbose {
		gsi = bslog.NewLoggingGeocoder(gsi, logger)
		nominatim = bslog.NewLoggingGeocoder(nominatim, logger)
	}

	chain := geocode.Chain{
		geocode.NewRetry(gsi, nil, logger),
		geocode.NewRetry(nominatim, nil, logger),
	}
	return geocode.NewCache(geocode.NewNormalizer(chain), geocode.DefaultCacheTTL)
}

func defaultDBPath() string {
	if path := os.Getenv("BUNGO_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "bungo.db"
	}
	dir := filepath.Join(home, ".bungo")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "bungo.db")
}
