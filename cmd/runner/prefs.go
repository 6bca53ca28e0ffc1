package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shield-runner/internal/games/runner"
	"github.com/vovakirdan/shield-runner/internal/storage"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show saved preferences",
	Long: `Display the saved best score, skin and sound setting.

Examples:
  runner prefs
  runner prefs --store gdata
  runner prefs reset`,
	Args: cobra.NoArgs,
	RunE: runPrefs,
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the best score, skin and sound setting",
	Args:  cobra.NoArgs,
	RunE:  runPrefsReset,
}

func init() {
	prefsCmd.AddCommand(prefsResetCmd)
}

// prefKeys lists the preferences the game persists.
var prefKeys = []struct {
	key      string
	label    string
	fallback string
}{
	{runner.KeyBestScore, "Best score", "0"},
	{runner.KeySkin, "Skin", runner.DefaultSkin},
	{runner.KeySound, "Sound", "1"},
}

func openPrefsBackend() (storage.Backend, error) {
	backend, err := storage.OpenBackend(flagStore, flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening preferences: %w", err)
	}
	if backend == nil {
		return nil, fmt.Errorf("no preference storage configured (--store %s)", flagStore)
	}
	return backend, nil
}

func runPrefs(_ *cobra.Command, _ []string) error {
	backend, err := openPrefsBackend()
	if err != nil {
		return err
	}
	defer backend.Close()

	prefs := storage.NewPrefs(backend, log.New(io.Discard))

	fmt.Printf("Preferences (%s)\n", flagStore)
	fmt.Println()
	for _, p := range prefKeys {
		value := prefs.Get(p.key, p.fallback)
		if p.key == runner.KeySound {
			value = map[bool]string{true: "on", false: "off"}[value != "0"]
		}
		fmt.Printf("  %-11s %s\n", p.label+":", value)
	}

	// The sqlite backend also records when each value was written
	if store, ok := backend.(*storage.Store); ok {
		entries, err := store.Entries()
		if err != nil {
			return fmt.Errorf("reading preferences: %w", err)
		}
		if len(entries) > 0 {
			fmt.Println()
			fmt.Printf("  %-12s  %-8s  %s\n", "Key", "Value", "Updated")
			fmt.Printf("  %-12s  %-8s  %s\n", "---", "-----", "-------")
			for _, e := range entries {
				fmt.Printf("  %-12s  %-8s  %s\n", e.Key, e.Value, e.UpdatedAt.Format("2006-01-02 15:04"))
			}
		}
	}
	return nil
}

func runPrefsReset(_ *cobra.Command, _ []string) error {
	backend, err := openPrefsBackend()
	if err != nil {
		return err
	}
	prefs := storage.NewPrefs(backend, log.New(io.Discard))
	defer prefs.Close()

	keys := make([]string, 0, len(prefKeys))
	for _, p := range prefKeys {
		keys = append(keys, p.key)
	}
	if err := prefs.Reset(keys...); err != nil {
		return fmt.Errorf("resetting preferences: %w", err)
	}

	fmt.Println("Preferences cleared.")
	return nil
}
