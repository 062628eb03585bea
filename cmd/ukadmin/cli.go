package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/ukeeper/ukadmin"
)

// EditorFunc opens path in an interactive editor and returns when the
// operator is done.
type EditorFunc func(ctx context.Context, path string) error

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Session   *ukadmin.Session
	Auth      ukadmin.Authenticator
	Rules     ukadmin.RuleService
	Extractor ukadmin.Extractor
	Renderers map[ukadmin.PreviewSlot]ukadmin.Renderer
	Editor    EditorFunc
}

// CLI defines the command-line interface structure for Kong. Global flags
// can also be set from the JSON file at UKADMIN_CONFIG, by default
// ~/.ukadmin/config.json.
type CLI struct {
	API     string        `default:"http://localhost:8080/api" env:"UKADMIN_API" help:"Extraction service API root"`
	Timeout time.Duration `default:"30s" env:"UKADMIN_TIMEOUT" help:"Timeout for each API call"`
	Rate    float64       `default:"0" env:"UKADMIN_RATE" help:"Maximum API calls per second (0 = unlimited)"`
	Debug   bool          `help:"Log API calls to stderr"`

	Login   LoginCmd   `cmd:"" help:"Check credentials with the service and remember them"`
	Logout  LogoutCmd  `cmd:"" help:"Forget stored credentials"`
	Rules   RulesCmd   `cmd:"" help:"List extraction rules"`
	Toggle  ToggleCmd  `cmd:"" help:"Enable or disable a rule"`
	Edit    EditCmd    `cmd:"" help:"Create a rule or edit an existing one"`
	Preview PreviewCmd `cmd:"" help:"Run extraction on a rule's test URLs"`
}

// LoginCmd is the "login" subcommand.
type LoginCmd struct {
	Login    string `arg:"" help:"Login name"`
	Password string `env:"UKADMIN_PASSWORD" help:"Password; read from stdin when empty"`
	Back     string `help:"Location to continue at after login"`
}

// LogoutCmd is the "logout" subcommand.
type LogoutCmd struct{}

// RulesCmd is the "rules" subcommand.
type RulesCmd struct{}

// ToggleCmd is the "toggle" subcommand.
type ToggleCmd struct {
	ID string `arg:"" help:"Rule ID"`
}

// EditCmd is the "edit" subcommand.
type EditCmd struct {
	ID   string `help:"Rule ID; omit to create a new rule"`
	File string `short:"f" help:"Read the form from FILE ('-' for stdin) instead of opening an editor"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	ID     string   `arg:"" optional:"" help:"Rule ID whose test URLs are previewed"`
	URL    []string `name:"url" short:"u" help:"Test URL to preview (repeatable); used instead of a rule's test URLs"`
	Line   int      `short:"l" default:"1" help:"1-based line of the test URLs to preview"`
	Cursor int      `default:"-1" help:"Character offset into the test URLs; overrides --line when set"`
	All    bool     `short:"a" help:"Preview every test URL"`
	Out    string   `short:"o" help:"With --all, save results as markdown files in this directory"`
}
