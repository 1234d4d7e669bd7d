package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/charcount/internal/config"
	"github.com/verte-zerg/charcount/internal/limit"
	"github.com/verte-zerg/charcount/internal/metrics"
	"github.com/verte-zerg/charcount/internal/report"
)

var (
	analyzeFormat string
	analyzeColor  bool
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file...]",
		Short: "Print metrics for files or stdin",
		RunE:  runAnalyzeCmd,
	}
	cmd.Flags().StringVar(&analyzeFormat, "format", string(report.FormatText), "output format: text, json, or yaml")
	cmd.Flags().BoolVar(&analyzeColor, "color", false, "force colored bars even when not writing to a terminal")
	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFileConfig(cmd, fileCfg)

	format, err := report.ParseFormat(analyzeFormat)
	if err != nil {
		return fmt.Errorf("invalid --format: %w", err)
	}
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	if err := validateSettings(settings); err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	lim := limit.New(settings.LimitEnabled, strconv.Itoa(settings.LimitValue))
	text, _, truncated := lim.Enforce(text, 0)
	if truncated {
		logErrf("input truncated to %d characters\n", settings.LimitValue)
	}

	res := metrics.Analyze(text, metrics.Options{
		ExcludeSpaces:  settings.ExcludeSpaces,
		WordsPerMinute: settings.WordsPerMinute,
		Scope:          settings.LetterScope,
		AllLetters:     settings.AllLetters,
	})
	logger.Debug("analyzed input",
		zap.Int("files", len(args)),
		zap.Int("characters", res.Characters),
		zap.Int("words", res.Words),
		zap.Bool("truncated", truncated))

	out := cmd.OutOrStdout()
	if format == report.FormatText {
		opts := report.TextOptions{
			Width: report.TerminalWidth(out),
			Color: report.ShouldUseColor(out, analyzeColor),
		}
		if err := report.RenderText(out, res, opts); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if err := report.Encode(out, report.NewDocument(res, truncated), format); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// readInput concatenates the named files, or reads r when there are none.
// A "-" argument also reads r.
func readInput(r io.Reader, paths []string) (string, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	var buf bytes.Buffer
	for _, path := range paths {
		if path == "-" {
			if _, err := io.Copy(&buf, r); err != nil {
				return "", fmt.Errorf("failed to read stdin: %w", err)
			}
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		buf.Write(data)
	}
	return buf.String(), nil
}
