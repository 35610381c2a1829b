package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/orayew2002/rast-columns/config"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "colname",
	Short: "Convert between column indices and spreadsheet column names",
	Long: `colname maps signed 64-bit column indices to spreadsheet column names
and back: 0 is "A", 25 is "Z", 26 is "AA"; -1 is "nA", -27 is "nAA".

It can also write header rows into xlsx workbooks and expand column
placeholders ({{column}}, {{index:LABEL}}, {{headers:START:COUNT}}) in templates.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}

		logger, err = newLogger(cfg.Logging.Level, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "colname.yaml", "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(encodeCmd, decodeCmd, joinCmd, headersCmd, fillCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
