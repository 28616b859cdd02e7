package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/audio"
	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Brick Blitz in a desktop window drawn one pixel per field unit.

Controls:
  Left/Right, A/D   - Move paddle (the mouse takes over once it moves)
  Space/Enter/Click - Start
  1-3, Up/Down      - Choose level on the start screen
  P                 - Pause
  R                 - Restart
  Esc/Q             - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	if err := playWindow(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func playWindow() error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(nil)
	if err != nil {
		return err
	}

	rt := runtimeConfig(flagFPS, flagSeed)
	rt.ScreenW = int(cfg.Field.Width)
	rt.ScreenH = int(cfg.Field.Height)

	logger.Info("opening window", "width", cfg.Field.Width, "height", cfg.Field.Height, "locale", cfg.Locale)
	return withPlayer(openPlayer(cfg.Sound, logger), func(player audio.Player) error {
		if runErr := window.Run(window.Options{
			Config:  cfg,
			Runtime: rt,
			Audio:   player,
			Logger:  logger,
		}); runErr != nil {
			return fmt.Errorf("running game: %w", runErr)
		}
		return nil
	})
}
