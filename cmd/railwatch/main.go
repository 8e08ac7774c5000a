package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/railwatch/railwatch-cli/internal/api"
	"github.com/railwatch/railwatch-cli/internal/cache"
	"github.com/railwatch/railwatch-cli/internal/config"
	"github.com/railwatch/railwatch-cli/internal/models"
	"github.com/railwatch/railwatch-cli/internal/output"
	"github.com/railwatch/railwatch-cli/internal/session"
	"github.com/railwatch/railwatch-cli/internal/tui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		output.RenderError(os.Stderr, err.Error(), output.NewColors(errorColorMode()))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "railwatch",
	Short: "Look up live train running status from the terminal",
	Long: `railwatch looks up the running status of a train by its 5-digit number
and can turn the result into a short travel summary.

Features:
  - Interactive terminal UI with a status card and travel summary
  - One-shot status lookups for scripting, with JSON output
  - Delays of 5 minutes or more are highlighted
  - Response caching for faster repeated queries

Quick Start:
  1. Launch TUI:               railwatch (or railwatch tui)
  2. Look up a train:          railwatch status 12345
  3. Add a travel summary:     railwatch status 12345 --summary
  4. Output as JSON:           railwatch status 12345 --json
  5. Clear cached responses:   railwatch cache clear`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, launch TUI
		if len(args) == 0 {
			return runTUI(cmd, args)
		}
		return cmd.Help()
	},
}

// Global flags
var (
	flagConfig         string
	flagColor          string
	flagNoCache        bool
	flagLookupLatency  time.Duration
	flagSummaryLatency time.Duration
	flagLogFile        string
	flagDebug          bool
)

// resolvedColor is the color setting after config and flags are merged.
// It is empty until loadConfig has run.
var resolvedColor string

// errorColorMode picks the color mode for top-level errors
func errorColorMode() output.ColorMode {
	if resolvedColor != "" {
		return output.ParseColorMode(resolvedColor)
	}
	return output.ParseColorMode(flagColor)
}

// Status flags
var (
	flagJSON    bool
	flagSummary bool
)

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default $XDG_CONFIG_HOME/railwatch/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Disable response caching")
	rootCmd.PersistentFlags().DurationVar(&flagLookupLatency, "lookup-latency", api.DefaultLookupLatency, "Simulated status lookup latency")
	rootCmd.PersistentFlags().DurationVar(&flagSummaryLatency, "summary-latency", api.DefaultSummaryLatency, "Simulated summary latency")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Status-specific flags
	statusCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	statusCmd.Flags().BoolVarP(&flagSummary, "summary", "s", false, "Also generate a travel summary")
}

// loadConfig reads the config file and applies explicitly set flags on top
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path, !flags.Changed("config"))
	if err != nil {
		return cfg, err
	}

	if flags.Changed("color") {
		cfg.Color = flagColor
	}
	if flags.Changed("no-cache") {
		cfg.NoCache = flagNoCache
	}
	if flags.Changed("lookup-latency") {
		cfg.LookupLatency.Duration = flagLookupLatency
	}
	if flags.Changed("summary-latency") {
		cfg.SummaryLatency.Duration = flagSummaryLatency
	}
	if flags.Changed("log-file") {
		cfg.LogFile = flagLogFile
	}
	if flags.Changed("debug") {
		cfg.Debug = flagDebug
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	resolvedColor = cfg.Color
	return cfg, nil
}

// newLogger configures a zerolog logger writing to w.
// RAILWATCH_LOG_FORMAT=JSON switches off the console writer.
func newLogger(w io.Writer, debug bool) zerolog.Logger {
	if os.Getenv("RAILWATCH_LOG_FORMAT") != "JSON" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: w != os.Stderr}
	}

	logger := zerolog.New(w).With().Timestamp().Logger()
	if debug || os.Getenv("RAILWATCH_DEBUG") == "YES" {
		return logger.Level(zerolog.DebugLevel)
	}
	return logger.Level(zerolog.InfoLevel)
}

// openLogOutput opens path for appending, or returns fallback when path is empty
func openLogOutput(path string, fallback io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return fallback, func() {}, nil
	}
	// #nosec G304 -- log file path is chosen by the user
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// createProviders builds the status resolver and summarizer with common options
func createProviders(cfg config.Config, logger zerolog.Logger) (api.StatusResolver, api.Summarizer) {
	var resolver api.StatusResolver = api.NewMockResolver(
		api.WithLatency(cfg.LookupLatency.Duration),
		api.WithLogger(logger),
	)

	// Enable caching unless disabled
	if !cfg.NoCache {
		resolver = api.NewDefaultCachedResolver(resolver, cfg.CacheTTL.Duration, logger)
	}

	summarizer := api.NewMockSummarizer(
		api.WithLatency(cfg.SummaryLatency.Duration),
		api.WithLogger(logger),
	)
	return resolver, summarizer
}

// logTransitions returns a session observer that debug logs every state change
func logTransitions(logger zerolog.Logger) session.Option {
	return session.WithObserver(func(from, to session.State) {
		logger.Debug().Str("from", from.String()).Str("to", to.String()).Msg("Session state changed")
	})
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch an interactive terminal UI for looking up train status.

Keyboard shortcuts:
  Enter        Look up the train number
  Tab          Switch between input and status card
  s            Generate a travel summary (status card)
  /            Jump to the input
  Esc          Clear the input
  q            Quit (status card)
  Ctrl+C       Quit`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Logs must not be written to the terminal the UI is drawing on
	logOut, closeLog, err := openLogOutput(cfg.LogFile, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(logOut, cfg.Debug)

	resolver, summarizer := createProviders(cfg, logger)
	model := tui.New(resolver, summarizer, logTransitions(logger))
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

var statusCmd = &cobra.Command{
	Use:   "status <train_number>",
	Short: "Show the running status of a train",
	Long: `Show the running status of a train by its 5-digit number.

Delays of 5 minutes or more are shown as delayed.

Examples:
  railwatch status 12345                 # Status card
  railwatch status 12345 --summary       # Status card and travel summary
  railwatch status 12345 --json          # JSON output
  railwatch status 12345 --no-cache      # Skip the response cache`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

// statusReport is the JSON form of a status lookup
type statusReport struct {
	TrainNumber string             `json:"train_number"`
	Status      models.TrainStatus `json:"status"`
	DelayClass  models.DelayClass  `json:"delay_class"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Summary     string             `json:"summary,omitempty"`
}

// fetchStatus runs one lookup, and optionally a summary, through a session.
// The returned error carries the user-facing message.
func fetchStatus(ctx context.Context, resolver api.StatusResolver, summarizer api.Summarizer, input string, withSummary bool, logger zerolog.Logger) (statusReport, error) {
	s := session.New(logTransitions(logger))

	tok, number, ok := s.BeginSearch(input)
	if !ok {
		return statusReport{}, errors.New(s.Err())
	}

	rec, err := resolver.Lookup(ctx, number)
	if err != nil {
		logger.Debug().Err(err).Str("train_number", number).Msg("Status lookup failed")
	}
	if err == nil && rec == nil {
		logger.Debug().Err(api.ErrNoData).Str("train_number", number).Msg("Status lookup returned nothing")
	}
	s.CompleteLookup(tok, rec, err, time.Now())
	if s.State() == session.ErrorShown {
		return statusReport{}, errors.New(s.Err())
	}

	status, _ := s.Record()
	report := statusReport{
		TrainNumber: number,
		Status:      status,
		DelayClass:  status.DelayClass(),
		UpdatedAt:   s.UpdatedAt(),
	}
	if !withSummary {
		return report, nil
	}

	tok, status, _ = s.BeginSummary()
	text, err := summarizer.Summarize(ctx, status)
	if err != nil {
		logger.Debug().Err(err).Str("train_number", number).Msg("Summary failed")
	}
	s.CompleteSummary(tok, text, err)
	if msg := s.SummaryErr(); msg != "" {
		return report, errors.New(msg)
	}
	report.Summary = s.Summary()
	return report, nil
}

// writeStatus renders a report as a card or as JSON
func writeStatus(w io.Writer, report statusReport, asJSON bool, colors *output.Colors) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	output.RenderStatus(w, report.Status, output.CardOptions{
		Colors:    colors,
		UpdatedAt: report.UpdatedAt,
	})
	if report.Summary != "" {
		output.RenderSummary(w, report.Summary, 72, colors)
	}
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLogOutput(cfg.LogFile, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(logOut, cfg.Debug)

	resolver, summarizer := createProviders(cfg, logger)
	colors := output.NewColors(output.ParseColorMode(cfg.Color))

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	report, err := fetchStatus(ctx, resolver, summarizer, args[0], flagSummary, logger)
	if report.TrainNumber == "" {
		return err
	}

	// A failed summary still shows the status it was asked for
	if werr := writeStatus(cmd.OutOrStdout(), report, flagJSON, colors); werr != nil {
		return werr
	}
	return err
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the status response cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached status responses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return clearCache(cmd.OutOrStdout(), cache.DefaultCacheDir(), cfg.CacheTTL.Duration)
	},
}

// clearCache empties the file cache in dir
func clearCache(w io.Writer, dir string, ttl time.Duration) error {
	fc, err := cache.NewFileCache(dir, ttl)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := fc.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Cache cleared: %s\n", fc.Dir())
	return nil
}
