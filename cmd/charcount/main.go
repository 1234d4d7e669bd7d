// Package main provides the CLI entrypoint for charcount.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/charcount/internal/config"
	"github.com/verte-zerg/charcount/internal/logging"
	"github.com/verte-zerg/charcount/internal/metrics"
	"github.com/verte-zerg/charcount/internal/model"
	"github.com/verte-zerg/charcount/internal/store"
	"github.com/verte-zerg/charcount/internal/tui"
)

const (
	defaultWPM   = metrics.DefaultWordsPerMinute
	defaultScope = "ascii"
	defaultTheme = string(model.ThemeLight)
)

var (
	analysisExcludeSpaces bool
	analysisWPM           int
	analysisScope         string
	analysisAllLetters    bool
	analysisLimit         int

	// Set from the config file; --limit decides on its own when given.
	analysisLimitEnabled bool

	uiTheme string

	logFile  string
	logDebug bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "charcount",
		Short:         "Live character, word, and sentence counter",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runCounterCmd,
	}

	analysisLimitEnabled = false

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&analysisExcludeSpaces, "exclude-spaces", false, "do not count whitespace characters")
	flags.IntVar(&analysisWPM, "wpm", defaultWPM, "reading speed in words per minute")
	flags.StringVar(&analysisScope, "letter-scope", defaultScope, "letters counted for density: ascii or unicode")
	flags.BoolVar(&analysisAllLetters, "all-letters", false, "show every letter instead of the top 5")
	flags.IntVar(&analysisLimit, "limit", 0, "character limit (0 disables)")
	flags.StringVar(&logFile, "log-file", "", "log file path (default: $XDG_DATA_HOME/charcount/charcount.log)")
	flags.BoolVar(&logDebug, "debug", false, "enable debug logging")

	rootCmd.Flags().StringVar(&uiTheme, "theme", defaultTheme, "color theme: light or dark")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newThemeCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runCounterCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFileConfig(cmd, fileCfg)
	applyStringConfig(cmd, "theme", &uiTheme, fileCfg.UI.Theme)

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() {
		// Best-effort sync.
		_ = logger.Sync()
	}()

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	if err := applyStoredPreferences(cmd.Context(), cmd, st, &settings); err != nil {
		logger.Warn("failed to load preferences", zap.Error(err))
	}
	if err := validateSettings(settings); err != nil {
		return err
	}

	logger.Info("starting counter",
		zap.Bool("exclude_spaces", settings.ExcludeSpaces),
		zap.Int("wpm", settings.WordsPerMinute),
		zap.Stringer("letter_scope", settings.LetterScope),
		zap.Bool("limit_enabled", settings.LimitEnabled),
		zap.Int("limit_value", settings.LimitValue),
		zap.String("theme", string(settings.Theme)))

	counter := tui.NewModel(settings, st, logger)
	program := tea.NewProgram(counter, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// applyFileConfig copies config file values into flags the user did not set.
func applyFileConfig(cmd *cobra.Command, fileCfg config.FileConfig) {
	applyBoolConfig(cmd, "exclude-spaces", &analysisExcludeSpaces, fileCfg.Analysis.ExcludeSpaces)
	applyIntConfig(cmd, "wpm", &analysisWPM, fileCfg.Analysis.WordsPerMinute)
	applyStringConfig(cmd, "letter-scope", &analysisScope, fileCfg.Analysis.LetterScope)
	applyBoolConfig(cmd, "all-letters", &analysisAllLetters, fileCfg.Analysis.AllLetters)
	applyBoolConfig(cmd, "debug", &logDebug, fileCfg.Log.Debug)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)
	applyLimitConfig(cmd, fileCfg.Limit)
}

// applyLimitConfig keeps the configured value even when the limit starts
// disabled, so toggling it on restores that value. A value without an
// enabled key turns the limit on.
func applyLimitConfig(cmd *cobra.Command, cfg config.LimitConfig) {
	if cmd.Flags().Changed("limit") {
		return
	}
	if cfg.Value != nil {
		analysisLimit = *cfg.Value
		analysisLimitEnabled = true
	}
	if cfg.Enabled != nil {
		analysisLimitEnabled = *cfg.Enabled
	}
}

func resolveSettings(cmd *cobra.Command) (model.Settings, error) {
	scope, err := metrics.ParseLetterScope(analysisScope)
	if err != nil {
		return model.Settings{}, fmt.Errorf("invalid --letter-scope: %w", err)
	}
	limitEnabled := analysisLimitEnabled
	if cmd.Flags().Changed("limit") {
		limitEnabled = analysisLimit > 0
	}
	settings := model.Settings{
		ExcludeSpaces:  analysisExcludeSpaces,
		WordsPerMinute: analysisWPM,
		LetterScope:    scope,
		AllLetters:     analysisAllLetters,
		LimitEnabled:   limitEnabled,
		LimitValue:     analysisLimit,
	}
	if cmd.Flags().Lookup("theme") != nil {
		theme, err := model.ParseTheme(uiTheme)
		if err != nil {
			return model.Settings{}, fmt.Errorf("invalid --theme: %w", err)
		}
		settings.Theme = theme
	}
	return settings, nil
}

// Preferences saved from the TUI win over the config file but never over
// flags given on this run.
func applyStoredPreferences(ctx context.Context, cmd *cobra.Command, st *store.Store, settings *model.Settings) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !cmd.Flags().Changed("theme") {
		theme, ok, err := st.Theme(ctx)
		if err != nil {
			return fmt.Errorf("failed to load theme: %w", err)
		}
		if ok {
			settings.Theme = theme
		}
	}
	if !cmd.Flags().Changed("exclude-spaces") {
		v, ok, err := st.Bool(ctx, store.KeyExcludeSpaces)
		if err != nil {
			return fmt.Errorf("failed to load exclude-spaces: %w", err)
		}
		if ok {
			settings.ExcludeSpaces = v
		}
	}
	if cmd.Flags().Changed("limit") {
		return nil
	}
	raw, ok, err := st.Get(ctx, store.KeyLimitValue)
	if err != nil {
		return fmt.Errorf("failed to load limit value: %w", err)
	}
	if ok {
		if n, perr := strconv.Atoi(raw); perr == nil && n > 0 {
			settings.LimitValue = n
		}
	}
	enabled, ok, err := st.Bool(ctx, store.KeyLimitEnabled)
	if err != nil {
		return fmt.Errorf("failed to load limit-enabled: %w", err)
	}
	if ok {
		settings.LimitEnabled = enabled
	}
	return nil
}

func validateSettings(settings model.Settings) error {
	if settings.WordsPerMinute <= 0 {
		return fmt.Errorf("--wpm must be > 0")
	}
	if settings.LimitValue < 0 {
		return fmt.Errorf("--limit must be >= 0")
	}
	return nil
}

func newLogger() (*zap.Logger, error) {
	path := logFile
	if path == "" {
		path = config.DefaultLogPath()
	}
	logger, err := logging.New(logging.Options{Path: path, Debug: logDebug})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the saved color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE:      runThemeCmd,
	}
}

func runThemeCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	current, _, err := st.Theme(ctx)
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}
	next := current
	if len(args) == 1 {
		if strings.EqualFold(strings.TrimSpace(args[0]), "toggle") {
			next = current.Toggle()
		} else if next, err = model.ParseTheme(args[0]); err != nil {
			return err
		}
		if err := st.SaveTheme(ctx, next); err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), next); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeConfigTemplate creates the config file unless it already exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# charcount configuration
# Uncomment a value to enable it. CLI flags override config values.
# Toggles changed in the TUI are remembered and override this file.

[analysis]
# exclude-spaces = false   # Do not count whitespace characters
# wpm = %d                # Reading speed in words per minute
# letter-scope = %q    # Letters counted for density: "ascii" or "unicode"
# all-letters = false      # Show every letter instead of the top %d

[limit]
# enabled = false          # Enforce a character limit
# value = 280              # Maximum number of characters

[ui]
# theme = %q          # "light" or "dark"

[log]
# file = ""                # Log file path (empty keeps the default location)
# debug = false            # Enable debug logging
`,
		defaultWPM,
		defaultScope,
		metrics.DensityTop,
		defaultTheme,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
