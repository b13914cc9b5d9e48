// Command puzzlekit-demo is an interactive grid explorer.
//
// It loads an ASCII grid from the file given as the first argument (falling
// back to a built-in sample), renders it, and lets you move a cursor around
// with the arrow keys. The status bar shows the cursor cell and the numbers
// extracted from the cursor's row.
package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/puzzlekit"
	"github.com/iw2rmb/puzzlekit/grid"
	"github.com/iw2rmb/puzzlekit/internal/ascii"
)

//go:embed sample.txt
var sampleGrid []byte

// KeyMap defines the explorer key bindings.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding
	Quit                  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Home:  key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "row start")),
		End:   key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "row end")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Style controls the explorer's rendering.
type Style struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Cursor lipgloss.Style
	Status lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Cell:   lipgloss.NewStyle(),
		Cursor: lipgloss.NewStyle().Reverse(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

type model struct {
	grid   *grid.Grid[byte]
	name   string
	x, y   int
	keys   KeyMap
	style  Style
	width  int
	height int
}

func newModel(g *grid.Grid[byte], name string) model {
	return model{
		grid:  g,
		name:  name,
		keys:  DefaultKeyMap(),
		style: DefaultStyle(),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			if m.x > 0 {
				m.x--
			}
		case key.Matches(msg, m.keys.Right):
			if m.x < m.grid.Width()-1 {
				m.x++
			}
		case key.Matches(msg, m.keys.Up):
			if m.y > 0 {
				m.y--
			}
		case key.Matches(msg, m.keys.Down):
			if m.y < m.grid.Height()-1 {
				m.y++
			}
		case key.Matches(msg, m.keys.Home):
			m.x = 0
		case key.Matches(msg, m.keys.End):
			m.x = m.grid.Width() - 1
		}
	}
	return m, nil
}

func (m model) View() string {
	var sb strings.Builder

	header := fmt.Sprintf("%s — %dx%d", m.name, m.grid.Width(), m.grid.Height())
	sb.WriteString(m.style.Header.Render(header))
	sb.WriteByte('\n')

	rows := m.grid.RowsIter()
	for {
		row, ok := rows.Next()
		if !ok {
			break
		}
		var line strings.Builder
		for x := 0; x < row.Len(); x++ {
			c := displayByte(row.At(x))
			if x == m.x && row.Index() == m.y {
				line.WriteString(m.style.Cursor.Render(string(rune(c))))
			} else {
				line.WriteByte(c)
			}
		}
		sb.WriteString(m.style.Cell.Render(line.String()))
		sb.WriteByte('\n')
	}

	sb.WriteString(m.statusLine())
	return sb.String()
}

func (m model) statusLine() string {
	cell := m.grid.At(m.x, m.y)
	left := fmt.Sprintf("(%d, %d) = %q", m.x, m.y, cell)

	rowText := string(m.grid.MustRow(m.y).Values())
	numbers := puzzlekit.ExtractNumbers(rowText).Collect()
	right := "no numbers in row"
	if len(numbers) > 0 {
		right = "row numbers: " + strings.Join(numbers, " ")
	}

	gap := m.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return m.style.Status.Render(left + strings.Repeat(" ", gap) + right)
}

// displayByte substitutes a placeholder for bytes that would break the
// terminal layout.
func displayByte(c byte) byte {
	if !ascii.IsPrint(c) {
		return '?'
	}
	return c
}

func loadGrid() (*grid.Grid[byte], string, error) {
	if len(os.Args) < 2 {
		g, err := grid.Parse(sampleGrid)
		return g, "sample", err
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		return nil, "", err
	}
	g, err := grid.Parse(data)
	return g, os.Args[1], err
}

func main() {
	g, name, err := loadGrid()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	if g.Len() == 0 {
		_, _ = os.Stderr.WriteString("empty grid\n")
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(g, name), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
