// Package cmd implements the lore command-line interface.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fleetinglore/lore-cli/internal/config"
	"github.com/fleetinglore/lore-cli/internal/output"
)

var (
	// Version information is set at build time.
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo sets the version information from build flags.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Global flags
var (
	titleFlag  string
	stylesheet string
	outputFmt  string
	outputType output.Format
	configFile string
	queryExpr  string
	queryFile  string
	errorFmt   string
	quietFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "lore <input-path> <output-path>",
	Short: "Convert lore markup into a collapsible HTML document",
	Long: `lore converts an indentation-based line markup file ("lore") into a
static HTML document with collapsible sections.

One construct per non-blank line; two leading spaces are one indentation
level. Lines starting with "+" open a domain that owns the deeper lines
below it, "name = value" lines become hyperlinks, "#" lines are comments
and placeholders, and everything else is plain text.`,
	Version: version,
	Args:    cobra.ExactArgs(2),
	RunE:    runConvert,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceErrors = true

		skipConfigLoad := cmd.Name() == "config" || (cmd.Parent() != nil && cmd.Parent().Name() == "config")
		var cfg *config.Config
		if !skipConfigLoad {
			loadedCfg, err := loadConfigFromFlag()
			if err != nil {
				return formatConfigLoadError(err)
			}
			cfg = loadedCfg
		}

		// Output format selection: --output > config > default.
		formatStr := outputFmt
		if !flagChanged(cmd, "output") && !flagChanged(cmd, "format") && cfg != nil && strings.TrimSpace(cfg.OutputFormat) != "" {
			formatStr = strings.TrimSpace(cfg.OutputFormat)
		}
		if !flagChanged(cmd, "output") && !flagChanged(cmd, "format") && !isTerminal(cmd.OutOrStdout()) {
			formatStr = "json"
		}
		format, err := output.ParseFormat(formatStr)
		if err != nil {
			return err
		}
		outputType = format
		outputFmt = string(format)

		// Document title and stylesheet: flag > config > derived/default.
		if cfg != nil {
			if !flagChanged(cmd, "title") && strings.TrimSpace(cfg.Title) != "" {
				titleFlag = strings.TrimSpace(cfg.Title)
			}
			if !flagChanged(cmd, "stylesheet") && strings.TrimSpace(cfg.Stylesheet) != "" {
				stylesheet = strings.TrimSpace(cfg.Stylesheet)
			}
		}

		// jq query
		if queryExpr != "" && queryFile != "" {
			return fmt.Errorf("use only one of --query or --query-file")
		}
		if queryFile != "" {
			loaded, err := readInputSource(queryFile, cmd.InOrStdin())
			if err != nil {
				return err
			}
			queryExpr = strings.TrimSpace(loaded)
		}

		// Default quiet mode for non-interactive structured output.
		if !flagChanged(cmd, "quiet") && !isTerminal(cmd.OutOrStdout()) && output.IsStructured(outputType) {
			quietFlag = true
		}

		ctx := cmd.Context()
		ctx = withIO(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		ctx = output.WithFormat(ctx, outputType)
		ctx = output.WithQuery(ctx, queryExpr)
		ctx = output.WithQuiet(ctx, quietFlag)
		ctx = WithErrorFormat(ctx, errorFmt)
		cmd.SetContext(ctx)
		if root := cmd.Root(); root != cmd {
			root.SetContext(ctx)
		}

		if err := validateErrorFormat(errorFmt); err != nil {
			return err
		}
		if effectiveErrorFormat(ctx) != "text" {
			cmd.SilenceUsage = true
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printCommandError(rootCmd.Context(), err)
		return err
	}
	return nil
}

// GetOutputFormat returns the configured output format.
func GetOutputFormat() output.Format {
	if outputType != "" {
		return outputType
	}
	parsed, err := output.ParseFormat(outputFmt)
	if err != nil {
		return output.FormatText
	}
	return parsed
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("lore version %s (commit: %s, built: %s)\n", version, commit, date))

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&titleFlag, "title", "t", "", "Document title (default: output file name)")
	rootCmd.PersistentFlags().StringVar(&stylesheet, "stylesheet", "", "Stylesheet URL linked from the generated document")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "Output format for inspect/config (text|json|ndjson|table|yaml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "format", "text", "Alias for --output")
	rootCmd.PersistentFlags().StringVar(&queryExpr, "query", "", "jq expression to filter JSON output")
	rootCmd.PersistentFlags().StringVar(&queryFile, "query-file", "", "Read jq expression from file (use - for stdin)")
	rootCmd.PersistentFlags().StringVar(&errorFmt, "error-format", "auto", "Error output format (auto|text|json|yaml)")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.config/lore/config.yaml)")
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
