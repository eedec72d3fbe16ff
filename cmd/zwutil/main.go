package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zwutils/zwutil"
)

var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	CommitSHA = "unknown"
)

type rootOptions struct {
	logLevel  string
	logFormat string
	verbose   bool
	codesFile string
}

var logger = slog.New(slog.DiscardHandler)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:           "zwutil",
		Short:         "Inspect error codes and exercise the zwutil helpers",
		Version:       fmt.Sprintf("%s (built: %s, commit: %s)", Version, BuildTime, CommitSHA),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd, opts)
			if opts.codesFile != "" {
				if err := zwutil.LoadCodesFile(opts.codesFile); err != nil {
					return err
				}
				logger.Debug("loaded code names", "file", opts.codesFile)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output (sets log level to debug)")
	flags.StringVar(&opts.codesFile, "codes", "", "YAML file with extra code names")

	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newRedactCmd())
	rootCmd.AddCommand(newCodesCmd())
	rootCmd.AddCommand(newNameCmd())
	rootCmd.AddCommand(newPrintCmd())

	return rootCmd
}

func setupLogging(cmd *cobra.Command, opts rootOptions) {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	} else {
		switch opts.logLevel {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if opts.logFormat == "json" {
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), handlerOpts)
	} else {
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), handlerOpts)
	}

	logger = slog.New(handler)
	zwutil.SetLogger(logger)
}
