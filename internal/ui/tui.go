// ABOUTME: TUI initialization and control
// ABOUTME: Wraps bubbletea program for the player UI
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the TUI over player with the given playlist. Blocks until
// the user quits.
func Run(player Player, tracks []string, tickRate int) error {
	p := tea.NewProgram(NewModel(player, tracks, tickRate), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
