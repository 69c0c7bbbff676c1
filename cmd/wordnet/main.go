package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"wordnet/internal/adapters/tui"
	"wordnet/internal/app"
	"wordnet/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "config file (default $XDG_CONFIG_HOME/wordnet/config.yaml)")
	synsetsFlag := flag.String("synsets", "", "path to synsets.txt")
	hypernymsFlag := flag.String("hypernyms", "", "path to hypernyms.txt")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *synsetsFlag != "" {
		cfg.Synsets = *synsetsFlag
	}
	if *hypernymsFlag != "" {
		cfg.Hypernyms = *hypernymsFlag
	}

	// Loading happens before the alt screen takes over stderr
	a := app.New(cfg, os.Stderr)
	wn, err := a.LoadWordNet(a.Context(context.Background()))
	a.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.NewApp(wn), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
