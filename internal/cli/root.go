// Package cli wires the lifegen command tree.
package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lifegen/internal/app"
	_ "lifegen/internal/sims/briansbrain"
	_ "lifegen/internal/sims/hexlife"
	_ "lifegen/internal/sims/life"
)

// NewRootCommand builds the command tree. Each call returns fresh flag state.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "lifegen",
		Short: "Cellular automata on rectangular and hexagonal boards",
	}
	configure(root)

	root.AddCommand(newRunCommand())
	root.AddCommand(newPlayCommand())
	root.AddCommand(newSweepCommand())
	root.AddCommand(newSimsCommand())
	root.AddCommand(newRulesCommand())
	root.AddCommand(NewGUICommand(app.Run))
	return root
}

// configure applies the settings every top-level command shares: quiet
// error handling and the --log flag.
func configure(cmd *cobra.Command) {
	var logLevel string
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error)")
}

// Execute runs the lifegen command tree against os.Args.
func Execute() {
	ExecuteCommand(NewRootCommand())
}

// ExecuteCommand runs cmd until it finishes or the process is interrupted,
// exiting non-zero on error.
func ExecuteCommand(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
