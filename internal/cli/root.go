// Package cli wires the petra command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"petra/internal/config"
	"petra/internal/logging"
)

// exitError carries a process exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string { return e.err.Error() }
func (e exitError) Unwrap() error { return e.err }

// ExitCode maps an Execute error to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

type rootOptions struct {
	configPath string
	logLevel   string
	logPretty  bool
	logOut     io.Writer
}

// Execute runs the command tree with args, writing command output to out.
func Execute(args []string, out io.Writer) error {
	root := newRootCmd(&rootOptions{logOut: os.Stderr})
	root.SetArgs(args)
	root.SetOut(out)
	return root.ExecuteContext(context.Background())
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "petra",
		Short:         "Oil-spill detection dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (.yaml, .yml, .json, .toml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: off|error|warn|info|debug (defaults PETRA_LOG_LEVEL or info)")
	root.PersistentFlags().BoolVar(&opts.logPretty, "log-pretty", false, "Human-readable console logs")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newPredictCmd(opts))
	root.AddCommand(newPointsCmd())
	return root
}

// resolve loads configuration and applies the persistent flags.
func (o *rootOptions) resolve() (config.Config, error) {
	cfg, err := config.Resolve(o.configPath)
	if err != nil {
		return cfg, err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logPretty {
		cfg.LogPretty = true
	}
	return cfg, nil
}

func (o *rootOptions) logger(cfg config.Config) zerolog.Logger {
	return logging.New(cfg.LogLevel, cfg.LogPretty, o.logOut)
}

func validate(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return exitError{code: 2, err: fmt.Errorf("invalid config: %w", err)}
	}
	return nil
}
