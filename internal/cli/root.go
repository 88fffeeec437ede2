// Package cli implements the catlink command-line interface using Cobra.
// Each subcommand validates its arguments locally, resolves the region
// selector against the credential store, and dispatches through the
// session runner.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/DengYiping/catlink-cli/internal/catlink"
	"github.com/DengYiping/catlink-cli/internal/config"
	"github.com/DengYiping/catlink-cli/internal/credentials"
	"github.com/DengYiping/catlink-cli/internal/region"
	"github.com/DengYiping/catlink-cli/internal/session"
)

var (
	cfg        config.Config
	regionFlag string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "catlink",
	Short: "Manage CatLink litter boxes and feeders from the terminal",
	Long: `catlink talks to the CatLink cloud API: list devices and pets, check
status, trigger cleaning cycles, change modes, and reset consumables.

Credentials are stored per region in the OS keyring. With --region auto
(the default), commands run against every region you are logged in to
and report each region's outcome independently.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("region") && cfg.Region != "" {
			regionFlag = cfg.Region
		}
		return nil
	},
}

// Execute runs the root command and propagates any failure to os.Exit.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&regionFlag, "region", "r", "auto",
		"API region (auto, global, china, usa, singapore)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// selectedRegions parses the --region flag.
func selectedRegions() (region.Selector, error) {
	return region.ParseSelector(regionFlag)
}

// newRunner opens the OS keyring and builds the session runner with the
// configured client defaults.
func newRunner() (*session.Runner, error) {
	store, err := credentials.OpenKeyring()
	if err != nil {
		return nil, err
	}
	return session.NewRunner(store,
		session.WithLogger(slog.Default()),
		session.WithClientOptions(clientOptions()...),
	), nil
}

func clientOptions() []catlink.Option {
	return []catlink.Option{
		catlink.WithLanguage(cfg.Language),
		catlink.WithTimeout(cfg.Timeout),
		catlink.WithRequestLogger(slogRequestLogger{slog.Default()}),
	}
}

// slogRequestLogger adapts slog to the client's RequestLogger interface.
type slogRequestLogger struct {
	l *slog.Logger
}

func (s slogRequestLogger) Errorf(format string, v ...any) { s.l.Error(fmt.Sprintf(format, v...)) }
func (s slogRequestLogger) Warnf(format string, v ...any)  { s.l.Warn(fmt.Sprintf(format, v...)) }
func (s slogRequestLogger) Debugf(format string, v ...any) { s.l.Debug(fmt.Sprintf(format, v...)) }

// report prints per-region results in resolution order. Failed regions
// go to stderr and turn into a non-zero exit without suppressing the
// successful regions' output.
func report[T any](results []session.Result[T], print func(prefix string, value T)) error {
	multi := len(results) > 1
	failed := false
	for _, res := range results {
		prefix := ""
		if multi {
			prefix = "[" + res.Region.String() + "] "
		}
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "%sError: %v\n", prefix, res.Err)
			failed = true
			continue
		}
		print(prefix, res.Value)
	}
	if failed {
		return errors.New("command failed in one or more regions")
	}
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
