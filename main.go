// ABOUTME: Entry point for the Cadenza audio player
// ABOUTME: Parses CLI flags and starts the TUI or headless playback
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Cadenza-Audio/cadenza-go/internal/ui"
	"github.com/Cadenza-Audio/cadenza-go/pkg/cadenza"
)

var (
	configPath = flag.String("config", "", "YAML config file path (default: built-in defaults)")
	logFile    = flag.String("log-file", "cadenza-player.log", "Log file path")
	noTUI      = flag.Bool("no-tui", false, "Disable TUI, play the tracks once and exit")
	fadeMs     = flag.Int("fade-ms", 0, "Fade-in duration for headless playback, in milliseconds")
)

func main() {
	flag.Parse()

	tracks := flag.Args()
	if len(tracks) == 0 {
		log.Fatalf("usage: %s [flags] <audio files...>", os.Args[0])
	}

	useTUI := !*noTUI

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if useTUI {
		// TUI mode: log only to file
		log.SetOutput(f)
	} else {
		// Headless mode: log to both stdout and file
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	}

	cfg := cadenza.DefaultConfig()
	if *configPath != "" {
		cfg, err = cadenza.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("error loading config: %v", err)
		}
	}

	engine := cadenza.New(cfg)
	if err := engine.Init(); err != nil {
		log.Fatalf("error opening audio device: %v", err)
	}
	defer func() {
		if err := engine.Close(); err != nil {
			log.Printf("Error closing engine: %v", err)
		}
	}()

	if useTUI {
		if err := ui.Run(engine, tracks, cfg.TickRate); err != nil {
			log.Fatalf("TUI error: %v", err)
		}
		return
	}

	runHeadless(engine, cfg, tracks)
}

// runHeadless plays each track to completion in order, driving the fade
// clock itself. Interruptible with SIGINT/SIGTERM.
func runHeadless(engine *cadenza.Engine, cfg cadenza.Config, tracks []string) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TickRate))
	defer ticker.Stop()

	for _, track := range tracks {
		if *fadeMs > 0 {
			err := engine.FadeInMusic(track, 1, *fadeMs)
			if err != nil {
				log.Printf("Skipping %s: %v", track, err)
				continue
			}
		} else if err := engine.PlayMusic(track); err != nil {
			log.Printf("Skipping %s: %v", track, err)
			continue
		}

		for engine.IsMusicPlaying() || engine.IsMusicFading() {
			select {
			case <-ticker.C:
				engine.Tick()
			case <-sigChan:
				log.Printf("Shutdown signal received")
				return
			}
		}
	}

	log.Printf("Playback finished")
}
