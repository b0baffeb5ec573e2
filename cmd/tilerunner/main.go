// tilerunner is a tile-grid platformer.
//
// Usage:
//
//	tilerunner play            - Open a window and play the campaign
//	tilerunner run             - Run the simulation headless for a number of ticks
//	tilerunner levels          - List the campaign levels
//
// Global flags:
//
//	--setup <path>      - Engine tuning YAML (default: prefabs/setup.yaml or embedded)
//	--level <id>        - Start at this level id (default: first)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagSetup    string
	flagLevel    int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilerunner",
	Short: "Tile-grid platformer",
	Long: `tilerunner plays a side-scrolling platformer on a 32 unit tile grid.

Examples:
  tilerunner play
  tilerunner play --level 2 --mute
  tilerunner run --ticks 500 --script "right:120,right+jump:15,right:200"
  tilerunner levels`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSetup, "setup", "", "Path to engine setup YAML")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 0, "Level id to start at (0 = first)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(levelsCmd)
}
