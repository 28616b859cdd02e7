package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/audio"
	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/platform/tui"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Brick Blitz in the terminal.

Controls:
  Left/Right, A/D   - Move paddle (mouse works too)
  Space/Enter       - Start
  Up/Down, 1-9      - Choose level on the start screen
  P                 - Pause
  R                 - Restart
  Esc/B             - Back to menu
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Five lives, wider paddle, no speed-up
  normal - Ball speeds up with score
  hard   - Two lives, narrower paddle, ball starts faster
  fixed  - No progression

Examples:
  blitz play
  blitz play --level 3
  blitz play --difficulty hard --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Skip the menu and start on this level")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := playTerminal(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playTerminal runs a terminal session. Deferred cleanup finishes
// before runPlay exits the process.
func playTerminal() error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	// Get terminal size early so the first frame fits
	rt := runtimeConfig(flagFPS, flagSeed)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	return withPlayer(openPlayer(cfg.Sound, logger), func(player audio.Player) error {
		runErr := tui.Run(tui.Options{
			Config:     cfg,
			Runtime:    rt,
			Audio:      player,
			Logger:     logger,
			StartLevel: flagLevel,
		})
		if runErr != nil {
			logger.Error("terminal session failed", "err", runErr)
			return fmt.Errorf("running game: %w", runErr)
		}
		return nil
	})
}
