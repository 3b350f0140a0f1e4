package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/pb/internal/config"
	"github.com/raphi011/pb/internal/git"
	"github.com/raphi011/pb/internal/log"
	"github.com/raphi011/pb/internal/output"
	"github.com/raphi011/pb/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pb",
	Short: "Plan-based feature branch automation",
	Long: `pb cuts git feature branches from plans.

A plan is a unit of work stored as a directory named <id>--<name>.
pb resolves a plan, derives a deterministic branch name of the form
feature/<id>--<name>, and creates and switches to that branch - but
only from a trunk branch and only on a clean working tree.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed by now; rebuild the context logger so -v
		// and -q actually take effect.
		base := log.FromContext(cmd.Context())
		cmd.SetContext(log.WithLogger(cmd.Context(), log.New(base.Writer(), verbose, quiet)))

		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}
		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Logger on stderr for status and diagnostics, printer on stdout
	// for data. The flags aren't parsed yet; PersistentPreRunE rebuilds
	// the logger with the -v/-q values, reusing this writer.
	ctx = log.WithLogger(ctx, log.New(os.Stderr, false, false))
	ctx = output.WithPrinter(ctx, os.Stdout)

	styles.SetColorEnabled(styles.Detect(cfg.Color, os.Stderr))

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pb:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all status output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newBranchCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newConfigCmd())
}

// resolvePlansDir applies the flag > config precedence for the plan
// search root.
func resolvePlansDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.PlansDir
}
