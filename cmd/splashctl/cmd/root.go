// Package cmd implements the splashctl command-line tool: a thin host
// around the splash codec, grounded in jpfielding-dicos.go's cmd/ctl Cobra
// layout (NewRoot, PersistentFlags, per-subcommand constructors).
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cocosip/splash-codec/internal/logging"
)

// NewRoot builds the splashctl root command.
func NewRoot(ctx context.Context, gitSHA string) *cobra.Command {
	root := &cobra.Command{
		Use:   "splashctl",
		Short: "encode and decode frames with the splash progressive codec",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			levelFlag, _ := cmd.Flags().GetString("log-level")
			logFile, _ := cmd.Flags().GetString("log-file")

			var level slog.Level
			if err := level.UnmarshalText([]byte(strings.ToUpper(levelFlag))); err != nil {
				level = slog.LevelInfo
			}
			slog.SetDefault(logging.Logger(os.Stderr, logFile, level))
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "splashctl: encode or decode raw RGB frames with the splash codec")
			fmt.Fprintln(cmd.OutOrStdout(), "  git:", gitSHA)
			_ = cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.String("log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")
	pf.String("log-file", "", "optional rotating log file path")

	root.AddCommand(newEncodeCmd(ctx), newDecodeCmd(ctx))
	return root
}
