// runner is an endless runner with a shield, played in the terminal.
//
// Usage:
//
//	runner [play]           - Play (the default command)
//	runner serve            - Start SSH server for remote play
//	runner prefs            - Show saved best score, skin and sound setting
//	runner prefs reset      - Forget saved preferences
//	runner skins            - List available skins
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--store <kind>    - Preference backend: sqlite, gdata or none
//	--db <path>       - Set database path (default: ~/.runner/runner.db)
//	--log <path>      - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shield-runner/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagStore   string
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Shield Runner - an endless runner for your terminal",
	Long: `Shield Runner is a one-button endless runner. Jump over spikes and
blocks; after 200 points hold the button to raise a shield that destroys
obstacles at the cost of energy.

Available commands:
  play     - Play (default)
  serve    - Start SSH server for remote play
  prefs    - Show or reset saved preferences
  skins    - List available skins

Examples:
  runner
  runner play --difficulty hard
  runner serve --ssh :2222
  runner prefs reset`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storage.KindSQLite, "Preference storage: sqlite, gdata or none")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultDBPath, "Path to preferences database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	// play flags are also accepted by the root command
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(skinsCmd)
}

// newLogger builds the process logger. It writes to --log when set,
// otherwise to fallback.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
	return logger, closeFn, nil
}

// openPrefs opens the configured preference backend. Failure is not
// fatal: the game runs without saving and logs a warning.
func openPrefs(logger *log.Logger) *storage.Prefs {
	backend, err := storage.OpenBackend(flagStore, flagDBPath)
	if err != nil {
		logger.Warn("could not open preference storage", "store", flagStore, "error", err)
		// Continue without storage
		backend = nil
	}
	return storage.NewPrefs(backend, logger)
}
