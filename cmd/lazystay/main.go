// Package main is the entry point for the lazystay application.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazystay/internal/app"
	"github.com/chmouel/lazystay/internal/buildinfo"
	"github.com/chmouel/lazystay/internal/catalog"
	"github.com/chmouel/lazystay/internal/config"
	"github.com/chmouel/lazystay/internal/filter"
	"github.com/chmouel/lazystay/internal/log"
	"github.com/chmouel/lazystay/internal/models"
	urfavecli "github.com/urfave/cli/v3"
	"golang.org/x/term"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// errNoTerminal is returned when the TUI is started without a terminal.
var errNoTerminal = errors.New("lazystay needs an interactive terminal on stdout")

// isTerminal is swapped in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func main() {
	buildinfo.Set(version, commit, date, builtBy)

	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:    "lazystay",
		Usage:   "Browse lodging listings from the terminal",
		Version: buildinfo.Version(),
		Flags:   globalFlags(),
		Commands: []*urfavecli.Command{
			catalogCommand(),
			themesCommand(),
			versionCommand(),
		},
		EnableShellCompletion: true,
		ShellComplete:         completeRoot,
		Action:                runTUI,
	}
}

// runTUI is the default action that launches the TUI when no subcommand is given.
func runTUI(ctx context.Context, cmd *urfavecli.Command) error {
	defer func() {
		_ = log.Close()
	}()

	if !isTerminal() {
		return errNoTerminal
	}

	cfg, err := loadCLIConfig(cmd)
	if err != nil {
		return err
	}
	listings, err := loadListings(cfg)
	if err != nil {
		return err
	}

	model := app.NewModel(cfg, listings)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	_, err = p.Run()
	model.Close()
	if err != nil {
		return fmt.Errorf("error running app: %w", err)
	}

	if output := cmd.String("output-criteria"); output != "" {
		criteria, applied := model.LastCriteria()
		if err := writeOutputCriteria(output, criteria, applied); err != nil {
			return err
		}
	}
	return nil
}

// loadCLIConfig builds the configuration from the config file, the global
// flags and the --config overrides, in increasing precedence.
func loadCLIConfig(cmd *urfavecli.Command) (*config.AppConfig, error) {
	// --debug-log takes precedence over debug_log from the config file.
	debugLog := cmd.String("debug-log")
	if debugLog != "" {
		openDebugLog(debugLog)
	}

	cfg, err := config.LoadConfig(cmd.String("config-file"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if debugLog == "" {
		if cfg.DebugLog != "" {
			openDebugLog(cfg.DebugLog)
		} else {
			_ = log.SetFile("")
		}
	} else {
		cfg.DebugLog = debugLog
	}

	if name := cmd.String("theme"); name != "" {
		normalized := config.NormalizeThemeName(name)
		if normalized == "" {
			return nil, fmt.Errorf("unknown theme %q", name)
		}
		cfg.Theme = normalized
	}
	if raw := cmd.String("dismiss-policy"); raw != "" {
		policy, ok := filter.ParseDismissPolicy(raw)
		if !ok {
			return nil, fmt.Errorf("invalid dismiss policy %q: expected %s or %s", raw, filter.DismissKeep, filter.DismissDiscard)
		}
		cfg.DismissPolicy = policy
	}
	if path := cmd.String("catalog"); path != "" {
		cfg.CatalogFile = path
	}
	if cmd.Bool("watch") {
		cfg.WatchCatalog = true
	}

	if overrides := cmd.StringSlice("config"); len(overrides) > 0 {
		if err := cfg.ApplyCLIOverrides(overrides); err != nil {
			return nil, fmt.Errorf("error applying config overrides: %w", err)
		}
	}

	if cfg.CatalogFile != "" {
		expanded, err := config.ExpandPath(cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("error expanding catalog path: %w", err)
		}
		cfg.CatalogFile = expanded
	}
	return cfg, nil
}

func openDebugLog(path string) {
	if expanded, err := config.ExpandPath(path); err == nil {
		path = expanded
	}
	if err := log.SetFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", path, err)
	}
}

// loadListings returns the configured catalog, or the embedded one.
func loadListings(cfg *config.AppConfig) ([]models.Listing, error) {
	if cfg.CatalogFile == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.CatalogFile)
}

// writeOutputCriteria writes the last applied criteria as JSON. The file is
// left empty when nothing was applied.
func writeOutputCriteria(path string, criteria filter.Criteria, applied bool) error {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("error expanding output-criteria: %w", err)
	}
	const defaultDirPerms = 0o750
	if err := os.MkdirAll(filepath.Dir(expanded), defaultDirPerms); err != nil {
		return fmt.Errorf("error creating output-criteria dir: %w", err)
	}

	var data []byte
	if applied {
		data, err = json.Marshal(criteria)
		if err != nil {
			return err
		}
		data = append(data, '\n')
	}
	const defaultFilePerms = 0o600
	if err := os.WriteFile(expanded, data, defaultFilePerms); err != nil {
		return fmt.Errorf("error writing output-criteria: %w", err)
	}
	return nil
}
