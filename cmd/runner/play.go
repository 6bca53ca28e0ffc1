package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shield-runner/internal/audio"
	"github.com/vovakirdan/shield-runner/internal/config"
	"github.com/vovakirdan/shield-runner/internal/games/runner"
	"github.com/vovakirdan/shield-runner/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the runner",
	Long: `Start the runner on its menu screen.

Controls:
  Space/Up   - Jump
  Enter      - Hold the shield; press again to release
  Mouse      - Click to jump, hold the left button to shield
  P/Esc      - Pause
  R          - Restart (after game over)
  H          - Back to menu
  M          - Toggle sound
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start and slower ramp
  normal - Configured speeds
  hard   - Faster start and faster ramp
  fixed  - No speed ramp

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml
  runner play --mute --log runner.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addGameFlags registers the flags that shape the game itself.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func addPlayFlags(cmd *cobra.Command) {
	addGameFlags(cmd)
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Never open the audio device")
}

// loadGameConfig loads the runner config and applies the difficulty preset.
func loadGameConfig() (config.RunnerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	config.ApplyRunnerPreset(&cfg, preset)
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// Bubble Tea owns the terminal, so logs are discarded unless --log is set
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	prefs := openPrefs(logger)
	defer func() {
		if err := prefs.Close(); err != nil {
			logger.Warn("could not close preference storage", "error", err)
		}
	}()

	var sound runner.Audio
	if flagMute {
		sound = audio.NewNop()
	} else {
		player := audio.NewPlayer(logger)
		defer player.Close()
		sound = player
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.Run(tui.Options{
		Config: cfg,
		FPS:    flagFPS,
		Seed:   flagSeed,
		Width:  width,
		Height: height,
		Audio:  sound,
		Prefs:  prefs,
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
