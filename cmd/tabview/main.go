package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tabview/internal/config"
	"tabview/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: $HOME/.config/tabview.toml)")
	maxTabs := flag.Int("tabs.max", 0, "Maximum open tabs. Override value from configuration file if set")
	logPath := flag.String("log", "", "path to a debug log file (default: logging disabled)")
	flag.Parse()

	// Resolve config file path
	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}

	// Load config; missing file is silently ignored (Load handles it gracefully)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config %s: %v.\n", cfgPath, err)
		os.Exit(1)
	}

	if *maxTabs > 0 {
		cfg.Tabs.Max = *maxTabs
	}

	logger, closeLog, err := setupLogger(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v.\n", *logPath, err)
		os.Exit(1)
	}
	defer closeLog()

	p := tea.NewProgram(
		ui.InitialModel(cfg, logger),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogger builds the error-log sink. The TUI owns the terminal, so logs
// go to a file when -log is set and are discarded otherwise.
func setupLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	return logger, func() { _ = f.Close() }, nil
}
