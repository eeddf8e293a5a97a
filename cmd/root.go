package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1byung/tepdash/config"
	"github.com/1byung/tepdash/engine"
	"github.com/1byung/tepdash/server"
	"github.com/1byung/tepdash/ui"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

// Config holds CLI configuration.
type Config struct {
	Interval   time.Duration
	Seed       int64
	JSONMode   bool
	WatchMode  bool
	WatchCount int
	ServeMode  bool
	ServeAddr  string
	RecordPath string
	ReplayPath string
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `tepdash v%s — Operations dashboard for simulated Tennessee Eastman telemetry

Usage:
  tepdash [OPTIONS] [INTERVAL]

Modes:
  (default)         Interactive TUI (bubbletea, fullscreen)
  -watch            CLI output mode — prints to terminal with auto-refresh
  -json             Single JSON snapshot to stdout, then exit
  -serve            Headless feed — websocket snapshots + Prometheus metrics
  -version          Print version and exit

Options:
  -interval N       Update interval in seconds (default: 1)
  -seed N           Seed the simulation (0 = time-seeded, default: 0)
  -count N          Number of iterations for -watch mode (0 = infinite, default: 0)
  -addr HOST:PORT   Listen address for -serve (default: 127.0.0.1:8086)
  -record FILE      Run TUI while recording snapshots to FILE
  -replay FILE      Replay a recorded file through the TUI

Positional:
  INTERVAL          First positional arg sets interval: tepdash 5 = tepdash -interval 5

Examples:
  tepdash                          Interactive TUI, 1s updates
  tepdash 5                        Interactive TUI, 5s updates
  tepdash -watch -count 10         CLI mode, 10 iterations then exit
  tepdash -json | jq '.kpi'
  tepdash -seed 42                 Reproducible simulation
  tepdash -serve -addr :8086      Websocket feed + /metrics
  tepdash -record /tmp/shift.jsonl
  tepdash -replay /tmp/shift.jsonl
  tepdash -version
`, Version)
}

// Run parses flags and starts the application.
func Run() error {
	fileCfg := config.Load()

	var cfg Config
	var intervalSec int
	var showVersion bool

	flag.IntVar(&intervalSec, "interval", fileCfg.IntervalSec, "Update interval in seconds")
	flag.Int64Var(&cfg.Seed, "seed", 0, "Simulation seed (0 = time-seeded)")
	flag.BoolVar(&cfg.JSONMode, "json", false, "Output a single JSON snapshot and exit")
	flag.BoolVar(&cfg.WatchMode, "watch", false, "CLI output mode (no TUI, prints to terminal)")
	flag.IntVar(&cfg.WatchCount, "count", 0, "Number of iterations for -watch (0=infinite)")
	flag.BoolVar(&cfg.ServeMode, "serve", false, "Headless websocket + metrics server")
	flag.StringVar(&cfg.ServeAddr, "addr", fileCfg.ServeAddr, "Listen address for -serve")
	flag.StringVar(&cfg.RecordPath, "record", "", "Record snapshots to file for later replay")
	flag.StringVar(&cfg.ReplayPath, "replay", "", "Replay snapshots from a recorded file")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("tepdash v%s\n", Version)
		return nil
	}

	// Support positional arg for interval: `tepdash 5` = `tepdash -interval 5`
	if args := flag.Args(); len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			intervalSec = n
		}
	}
	if intervalSec <= 0 {
		intervalSec = 1
	}
	cfg.Interval = time.Duration(intervalSec) * time.Second

	// -replay mode needs no engine of its own
	if cfg.ReplayPath != "" {
		return runReplay(cfg)
	}

	rng := engine.NewTimeSeeded()
	if cfg.Seed != 0 {
		rng = engine.NewSeeded(cfg.Seed)
	}
	eng := engine.New(engine.Options{
		Rand:        rng,
		ChartWindow: fileCfg.ChartWindow,
		LogCapacity: fileCfg.LogCapacity,
	})

	// -json mode: single snapshot to stdout
	if cfg.JSONMode {
		return runJSON(eng)
	}

	// -serve mode: headless feed
	if cfg.ServeMode {
		return server.Run(server.Config{
			Addr:     cfg.ServeAddr,
			Interval: cfg.Interval,
			Engine:   eng,
			Version:  Version,
		})
	}

	// -watch mode: CLI output to terminal
	if cfg.WatchMode {
		return runWatch(eng, cfg)
	}

	// -record mode: TUI + recording
	if cfg.RecordPath != "" {
		return runRecord(eng, cfg)
	}

	return runTUI(eng, cfg)
}

func runTUI(ticker engine.Ticker, cfg Config) error {
	model := ui.NewModel(ticker, cfg.Interval)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// runJSON outputs a single snapshot as JSON and exits.
func runJSON(eng *engine.Engine) error {
	snap := eng.Tick()
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// runRecord runs the TUI while writing every frame to a JSONL file.
func runRecord(eng *engine.Engine, cfg Config) error {
	f, err := os.OpenFile(cfg.RecordPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open record file: %w", err)
	}
	defer f.Close()

	return runTUI(engine.NewRecorder(eng, f), cfg)
}

// runReplay drives the TUI from a recorded file instead of the simulation.
func runReplay(cfg Config) error {
	f, err := os.Open(cfg.ReplayPath)
	if err != nil {
		return fmt.Errorf("open replay file: %w", err)
	}
	defer f.Close()

	player, err := engine.NewPlayer(f)
	if err != nil {
		return fmt.Errorf("load replay: %w", err)
	}
	if player.Len() == 0 {
		return fmt.Errorf("replay file %s contains no frames", cfg.ReplayPath)
	}

	return runTUI(player, cfg)
}
