package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iyhunko/treko-inventory/internal/tui"
	"github.com/spf13/cobra"
)

func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	p := tea.NewProgram(tui.New(a.client, a.gate),
		tea.WithAltScreen(),
		tea.WithInput(a.in),
		tea.WithOutput(a.out),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	return nil
}
