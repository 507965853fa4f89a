// ABOUTME: Entry point for the driftwave terminal player
// ABOUTME: Parses CLI flags, sets up file logging, runs the session
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/driftwave/driftwave-go/internal/app"
)

var (
	dir       = flag.String("dir", defaultMusicDir(), "Directory to scan for music")
	alternate = flag.Bool("alternate", false, "Use the alternate screen buffer, hiding terminal history")
	volume    = flag.Float64("volume", 1.0, "Starting volume fraction (0.0-1.0)")
	logFile   = flag.String("log-file", "driftwave.log", "Log file path")
)

func defaultMusicDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Music")
}

func main() {
	flag.Parse()

	// The TUI owns the terminal, so logs go to a file only.
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()
	log.SetOutput(f)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("Starting driftwave: dir=%s alternate=%v volume=%.2f", *dir, *alternate, *volume)

	a, err := app.New(app.Config{
		MusicDir:        *dir,
		AlternateScreen: *alternate,
		StartVolume:     *volume,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "driftwave: %v\n", err)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		log.Printf("Session error: %v", err)
		fmt.Fprintf(os.Stderr, "driftwave: %v\n", err)
		os.Exit(1)
	}
}
