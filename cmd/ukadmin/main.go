package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/ukeeper/ukadmin"
	"github.com/ukeeper/ukadmin/goquery"
	"github.com/ukeeper/ukadmin/htmltomarkdown"
	ukhttp "github.com/ukeeper/ukadmin/http"
	ukslog "github.com/ukeeper/ukadmin/slog"
	"github.com/ukeeper/ukadmin/sqlite"
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

	// ConfigPath is the JSON file holding flag defaults.
	ConfigPath string

	// Stdin is read for a password when none is given.
	Stdin io.Reader

	// Editor opens the rule form for the edit command.
	Editor EditorFunc

	// SQLite database holding the stored credentials.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: defaultConfigPath(),
		Stdin:      os.Stdin,
		Editor:     runEditor,
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
		Editor: m.Editor,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ukadmin"),
		kong.Description("Manage the extraction rules of a ukeeper service."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(kong.JSON, m.ConfigPath),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ukadmin --help' to see available commands")
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

	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set UKADMIN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	session, err := ukadmin.NewSession(ctx, sqlite.NewCredentialStore(m.DB))
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}
	deps.Session = session

	client := ukhttp.NewClient(session,
		ukhttp.WithBaseURL(cli.API),
		ukhttp.WithTimeout(cli.Timeout),
		ukhttp.WithRateLimit(cli.Rate),
		ukhttp.WithLogger(logger),
	)
	deps.Auth = ukslog.NewLoggingAuthenticator(client, logger)
	deps.Rules = ukslog.NewLoggingRuleService(client, logger)
	deps.Extractor = ukslog.NewLoggingExtractor(client, logger)
	deps.Renderers = defaultRenderers()

	return kongCtx.Run(deps)
}

// defaultRenderers renders rich content as Markdown and the other slots as
// plain text.
func defaultRenderers() map[ukadmin.PreviewSlot]ukadmin.Renderer {
	text := goquery.NewTextRenderer()
	return map[ukadmin.PreviewSlot]ukadmin.Renderer{
		ukadmin.SlotTitle:       text,
		ukadmin.SlotContent:     text,
		ukadmin.SlotRichContent: htmltomarkdown.NewRenderer(),
		ukadmin.SlotExcerpt:     text,
	}
}

func defaultDBPath() string {
	if path := os.Getenv("UKADMIN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "ukadmin.db"
	}
	dir := filepath.Join(home, ".ukadmin")
	_ = os.MkdirAll(dir, 0700)
	return filepath.Join(dir, "ukadmin.db")
}

func defaultConfigPath() string {
	if path := os.Getenv("UKADMIN_CONFIG"); path != "" {
		return path
	}
	return "~/.ukadmin/config.json"
}

// runEditor opens path in $VISUAL or $EDITOR, falling back to vi.
func runEditor(ctx context.Context, path string) error {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", editor+` "$1"`, "sh", path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q failed: %w", editor, err)
	}
	return nil
}
