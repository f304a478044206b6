// bumblebees is a terminal wave shooter: hold the line against descending
// swarms, clear waves, chase the high score.
//
// Usage:
//
//	bumblebees play          - Play in the current terminal
//	bumblebees scores        - Show high scores
//	bumblebees serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.bumblebees/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bumblebees",
	Short: "BumbleBees - a terminal wave shooter",
	Long: `BumbleBees is a terminal wave shooter. Move your ship, fire at the
descending swarm, and clear wave after wave before the formation
reaches your defender line.

Available commands:
  play     - Play in the current terminal
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  bumblebees play
  bumblebees play --difficulty hard
  bumblebees scores
  bumblebees serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bumblebees/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
