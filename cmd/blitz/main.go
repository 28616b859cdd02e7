// blitz is a paddle-and-ball brick breaker for the terminal and the desktop.
//
// Usage:
//
//	blitz play              - Play in the terminal
//	blitz window            - Play in a desktop window
//	blitz serve             - Start SSH server for remote play
//	blitz levels            - Show the level table
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for brick colours
//	--config <path>        - Custom game config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--locale <code>        - Label language (en, ur)
//	--mute                 - Disable sound cues
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/audio"
	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/config"
	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLocale     string
	flagMute       bool
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blitz",
	Short: "Brick Blitz - break bricks in your terminal or a window",
	Long: `Brick Blitz is a single-screen paddle-and-ball game with three levels,
score, lives and sound cues.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  levels   - Show the level table

Examples:
  blitz play
  blitz play --level 2 --difficulty hard
  blitz window --locale ur
  blitz serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for brick colours (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Label language: "+strings.Join(config.Locales(), ", "))
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound cues")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
}

// loadGameConfig loads the YAML config and applies the global flags.
func loadGameConfig() (config.BlitzConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagLocale != "" {
		cfg.Locale = flagLocale
	}
	if flagMute {
		cfg.Sound.Enabled = false
	}
	return cfg, nil
}

// runtimeConfig applies --fps and --seed to the runtime defaults.
func runtimeConfig(fps int, seed int64) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if fps > 0 {
		rt.TickRate = fps
	}
	rt.Seed = seed
	return rt
}

// newLogger creates the command logger. A non-nil out overrides stderr.
func newLogger(out io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if out == nil {
		out = os.Stderr
	}
	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "blitz",
		Level:           level,
	}), nil
}

// openLogFile opens ~/.blitz/blitz.log for appending. The terminal
// frontend owns the screen, so its logs go there.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".blitz")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "blitz.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// withPlayer runs fn and closes p afterwards, whatever fn returns.
func withPlayer(p audio.Player, fn func(audio.Player) error) error {
	defer p.Close()
	return fn(p)
}

// openPlayer starts audio, falling back to silence when no device is available.
func openPlayer(cfg config.SoundConfig, logger *log.Logger) audio.Player {
	p, err := audio.New(cfg)
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "err", err)
		return audio.NopPlayer{}
	}
	return p
}
