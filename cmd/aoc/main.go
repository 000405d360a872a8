package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/aestallon/advent-of-code-2023/internal/config"
	"github.com/aestallon/advent-of-code-2023/pkg/logging"
)

var (
	configPath string
	logLevel   string
	timeout    time.Duration
	profileOn  string
	profileDir string

	cfg     config.Config
	logger  *slog.Logger
	stopper interface{ Stop() }

	rootCmd = &cobra.Command{
		Use:           "aoc",
		Short:         "Solve the Advent of Code 2023 puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(configPath); err != nil {
				return err
			}
			logCfg := cfg.Logging()
			if logLevel != "" {
				if logCfg.Level, err = logging.ParseLevel(logLevel); err != nil {
					return err
				}
			}
			logger = logging.New(logCfg)
			return startProfile()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if stopper != nil {
				stopper.Stop()
			}
		},
	}
)

func startProfile() error {
	var mode func(*profile.Profile)
	switch profileOn {
	case "":
		return nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		return fmt.Errorf("unknown profile %q, want cpu or mem", profileOn)
	}
	stopper = profile.Start(mode, profile.ProfilePath(profileDir), profile.Quiet, profile.NoShutdownHook)
	logger.Info("profiling", "profile", profileOn, "dir", profileDir)
	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML config file (defaults are used when empty)")
	flags.StringVar(&logLevel, "log-level", "", "debug, info, warn or error; overrides the config")
	flags.DurationVar(&timeout, "timeout", time.Minute, "give up after this long (0 disables)")
	flags.StringVar(&profileOn, "profile", "", "write a cpu or mem profile")
	flags.StringVar(&profileDir, "profile-dir", ".", "directory the profile is written to")

	rootCmd.AddCommand(solveCmd, listCmd, configCmd)
}

// commandContext returns the context a command runs under: cancelled on
// interrupt and after the --timeout.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	if timeout <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("Error:"), err)
		os.Exit(1)
	}
}
