package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/muker/internal/app"
	"github.com/llehouerou/muker/internal/config"
	"github.com/llehouerou/muker/internal/icons"
	"github.com/llehouerou/muker/internal/library"
	"github.com/llehouerou/muker/internal/mpris"
	"github.com/llehouerou/muker/internal/player"
	"github.com/llehouerou/muker/internal/playlist"
	"github.com/llehouerou/muker/internal/state"
	"github.com/llehouerou/muker/internal/stderr"
	"github.com/llehouerou/muker/internal/tags"
)

func main() {
	// Capture fd 2 before the audio stack initializes; ALSA writes
	// there directly and would tear up the TUI.
	if err := stderr.Start(); err == nil {
		defer stderr.Stop()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	icons.Init(cfg.IconStyle)

	stateMgr, err := state.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening state: %v\n", err)
		os.Exit(1)
	}

	m, err := app.New(cfg, stateMgr, player.New())
	if err != nil {
		stateMgr.Close()
		fmt.Fprintf(os.Stderr, "Error initializing: %v\n", err)
		os.Exit(1)
	}

	// Files given on the command line replace the restored queue.
	if paths := collectArgs(os.Args[1:]); len(paths) > 0 {
		m.Service.ReplaceTracks(playlist.FromPaths(paths)...)
	}

	if adapter, mprisErr := mpris.New(m.Service); mprisErr == nil {
		m.Mpris = adapter
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// collectArgs expands file and directory arguments into playable paths.
func collectArgs(args []string) []string {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", arg, err)
			continue
		}
		if info.IsDir() {
			paths = append(paths, library.Scan([]string{arg}).Files...)
			continue
		}
		if tags.IsMusicFile(arg) {
			paths = append(paths, arg)
		}
	}
	return paths
}
