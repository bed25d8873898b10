// cmd/client/main.go
package main

import (
	"fmt"
	"os"

	"chatbox/internal/client/config"
	"chatbox/internal/client/logger"
	"chatbox/internal/client/models"
	"chatbox/internal/client/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// log file; the terminal belongs to the TUI
	logErr := logger.Init(cfg.LogFile, cfg.Debug)
	defer logger.Close()

	logger.Info("starting chat, session=%s auto_reply=%v", logger.Session(), cfg.AutoReply)

	model := tui.NewModel(cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if logErr != nil {
		go p.Send(models.ErrorMsg{Error: logErr.Error()})
	}

	if _, err := p.Run(); err != nil {
		logger.Error("error running program: %v", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
