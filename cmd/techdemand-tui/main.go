package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/techridge/demand/internal/tui"
)

func main() {
	dataPath := ""
	if len(os.Args) > 1 {
		dataPath = os.Args[1]
	} else {
		fmt.Println("Usage: techdemand-tui <roster-dir>")
		os.Exit(1)
	}

	if _, err := os.Stat(dataPath); os.IsNotExist(err) {
		fmt.Printf("Error: roster directory not found: %s\n", dataPath)
		os.Exit(1)
	}

	model := tui.NewModel(dataPath)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
