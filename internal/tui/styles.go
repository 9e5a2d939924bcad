package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles for the board view. Dumb terminals get unstyled output.
type Styles struct {
	Header   lipgloss.Style
	Tile     lipgloss.Style
	Worms    lipgloss.Style
	Player   lipgloss.Style
	Acting   lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style
	Info     lipgloss.Style
	GameOver lipgloss.Style
}

// DefaultStyles builds the style set for the current terminal.
func DefaultStyles() Styles {
	if termenv.ColorProfile() == termenv.Ascii {
		plain := lipgloss.NewStyle()
		return Styles{
			Header: plain, Tile: plain, Worms: plain, Player: plain,
			Acting: plain, Success: plain, Failure: plain, Info: plain,
			GameOver: plain,
		}
	}
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),
		Tile: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		Worms:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Player:  lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
		Acting:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		GameOver: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#04B575")).
			Bold(true).
			Padding(0, 1),
	}
}
