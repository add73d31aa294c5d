// Command fract is an interactive menu for generating images.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fractkit/fract"
	"github.com/fractkit/fract/internal/menu"
)

func main() {
	var (
		out     = flag.String("out", "fract.png", "output file used by the save key")
		workers = flag.Int("workers", fract.DefaultWorkers, "worker goroutines (<= 0 uses GOMAXPROCS)")
		logPath = flag.String("log", "", "write debug log to this file")
		version = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println("fract", fract.Version)
		return
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		fract.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	m := menu.New(menu.Config{Out: *out, Workers: *workers})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
