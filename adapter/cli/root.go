package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/felixgeelhaar/pawsit/pkg/observability"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *slog.Logger
)

type commandStartKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pawsit",
	Short: "Pawsit - sitter availability and entitlement checks",
	Long: `Pawsit answers two questions for the pet-sitting marketplace:
which dates a sitter can take, and whether a user holds paid or trial access.

Availability lookups fail open; entitlement lookups fail closed.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = observability.WithCorrelationID(ctx, "")
		ctx = context.WithValue(ctx, commandStartKey{}, time.Now())
		cmd.SetContext(ctx)
		observability.LogOperation(logger, cmd.CommandPath(),
			observability.CorrelationIDKey, observability.CorrelationIDFromContext(ctx),
		).Debug("command start")
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		startedAt, ok := cmd.Context().Value(commandStartKey{}).(time.Time)
		if !ok {
			return
		}
		commandLogger := logger.With(observability.CorrelationIDKey, observability.CorrelationIDFromContext(cmd.Context()))
		observability.LogDuration(commandLogger, cmd.CommandPath(), startedAt)
	},
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// AddCommand adds a command to the root command.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// Verbose reports whether --verbose was given.
func Verbose() bool {
	return verbose
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}
