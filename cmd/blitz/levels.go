package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long:  `Shows every level with its brick grid, paddle and ball settings after --config and --difficulty are applied.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, lvl := range cfg.Levels {
		if len(lvl.Name) > maxNameLen {
			maxNameLen = len(lvl.Name)
		}
	}

	fmt.Printf("Field %vx%v, %d lives\n\n", cfg.Field.Width, cfg.Field.Height, cfg.Gameplay.Lives)
	fmt.Printf("  #  %-*s  Grid    Paddle  Speed  Ball  Start\n", maxNameLen, "Name")
	fmt.Printf("  -  %-*s  ----    ------  -----  ----  -----\n", maxNameLen, "----")

	for i, lvl := range cfg.Levels {
		grid := fmt.Sprintf("%dx%d", lvl.Rows, lvl.Cols)
		fmt.Printf("  %d  %-*s  %-6s  %6v  %5v  %4v  %s\n",
			i+1, maxNameLen, lvl.Name, grid, lvl.PaddleWidth, lvl.PaddleSpeed, lvl.BallSpeed, lvl.BallStart)
	}

	fmt.Println()
	fmt.Println("Run 'blitz play --level <n>' to start on a level.")
}
