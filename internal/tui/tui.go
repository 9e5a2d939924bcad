// Package tui is a terminal viewer for a game in progress: each keypress
// resolves one turn and redraws the board.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtruel/pikomino/internal/game"
)

// keyMap defines the viewer's bindings.
type keyMap struct {
	Step key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Step: key.NewBinding(
		key.WithKeys(" ", "enter", "n"),
		key.WithHelp("space", "next turn"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// Model steps through a game one turn per keypress.
type Model struct {
	engine *game.Engine
	styles Styles
	keys   keyMap
	last   *game.TurnRecord
	done   bool
}

// New builds a viewer around an engine. The caller seeds the engine; the
// model only drives and renders it.
func New(engine *game.Engine) Model {
	return Model{
		engine: engine,
		styles: DefaultStyles(),
		keys:   keys,
		done:   engine.Session().GameOver(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Step):
		if m.done {
			return m, tea.Quit
		}
		result := m.engine.ResolveTurn()
		m.last = &result.Record
		m.engine.Session().AdvancePlayer()
		m.done = m.engine.Session().GameOver()
	}
	return m, nil
}

func (m Model) View() string {
	s := m.engine.Session()
	var b strings.Builder

	b.WriteString(m.styles.Header.Render(fmt.Sprintf("Pikomino · turn %d", s.TurnNumber())))
	b.WriteString("\n\n")

	b.WriteString(m.renderCenter(s))
	b.WriteString("\n")
	b.WriteString(m.renderPlayers(s))

	if m.last != nil {
		b.WriteString("\n")
		b.WriteString(m.renderLastTurn())
	}

	b.WriteString("\n")
	if m.done {
		winner := s.Winner()
		b.WriteString(m.styles.GameOver.Render(
			fmt.Sprintf("Game over: %s wins with %d worms", winner.Name, winner.Score())))
		b.WriteString("\n")
		b.WriteString(m.styles.Info.Render("press any step key or q to exit"))
	} else {
		b.WriteString(m.styles.Info.Render("space: next turn · q: quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderCenter(s *game.Session) string {
	center := s.Center()
	if len(center) == 0 {
		return m.styles.Info.Render("center row empty") + "\n"
	}
	parts := make([]string, len(center))
	for i, t := range center {
		parts[i] = fmt.Sprintf("%d%s", t.Value, m.styles.Worms.Render(strings.Repeat("~", t.Worms)))
	}
	return m.styles.Tile.Render(strings.Join(parts, "  ")) + "\n"
}

func (m Model) renderPlayers(s *game.Session) string {
	var b strings.Builder
	current := s.CurrentPlayer()
	for _, p := range s.Players() {
		style := m.styles.Player
		marker := "  "
		if p == current && !m.done {
			style = m.styles.Acting
			marker = "> "
		}
		stack := "-"
		if len(p.Tiles) > 0 {
			values := make([]string, len(p.Tiles))
			for i, t := range p.Tiles {
				values[i] = fmt.Sprintf("%d", t.Value)
			}
			stack = strings.Join(values, " ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s worms  [%s]\n",
			marker,
			style.Render(p.Name),
			m.styles.Worms.Render(fmt.Sprintf("%d", p.Score())),
			stack))
	}
	return b.String()
}

func (m Model) renderLastTurn() string {
	rec := m.last
	style := m.styles.Success
	if rec.Outcome.Failed() {
		style = m.styles.Failure
	}
	line := fmt.Sprintf("%s: %s (score %d", rec.Player, rec.Outcome, rec.Score)
	if rec.TileTaken != nil {
		line += fmt.Sprintf(", took %d", rec.TileTaken.Value)
		if rec.StolenFrom != "" {
			line += " from " + rec.StolenFrom
		}
	}
	line += ")"

	var rolls []string
	for _, r := range rec.Rolls {
		s := strings.Join(game.FaceStrings(r.Dice), "")
		if r.Chosen != game.NoFace {
			s += "→" + r.Chosen.String()
		}
		rolls = append(rolls, s)
	}
	return style.Render(line) + "\n" + m.styles.Info.Render(strings.Join(rolls, "  ")) + "\n"
}
