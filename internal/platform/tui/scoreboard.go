package tui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/moon-runner/internal/core"
	"github.com/vovakirdan/moon-runner/internal/storage"
)

// ScoreSource lists and clears stored high scores. *storage.Store
// implements it.
type ScoreSource interface {
	HighScores() ([]storage.ProfileScore, error)
	ClearHighScore(profile string) error
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Clear key.Binding
	Quit  key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Clear, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Clear, k.Quit}}
}

// DefaultScoreboardKeyMap uses vim-style scrolling and x to clear a profile.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "clear profile"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	boardErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	boardHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// boardTableStyles highlights the selected profile in purple.
func boardTableStyles() table.Styles {
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	return st
}

// ScoreboardModel lists the best score of every profile.
type ScoreboardModel struct {
	source ScoreSource
	scores []storage.ProfileScore
	err    error

	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel loads the scores from source.
func NewScoreboardModel(source ScoreSource, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		source: source,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.loadScores()
	return m
}

// newTable sizes the table to the terminal. The profile column takes
// whatever the fixed columns leave, within 10..24 cells.
func (m *ScoreboardModel) newTable() table.Model {
	profileW := core.Clamp(m.width-46, 10, 24)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Profile", Width: profileW},
			{Title: "Score", Width: 10},
			{Title: "Updated", Width: 18},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
		table.WithStyles(boardTableStyles()),
	)
	t.SetRows(scoreRows(m.scores))
	return t
}

func (m *ScoreboardModel) loadScores() {
	m.scores, m.err = nil, nil
	if m.source != nil {
		m.scores, m.err = m.source.HighScores()
	}
	m.table = m.newTable()
}

// scoreRows formats scores as table rows. Damaged entries keep their
// raw text so they can be spotted and cleared.
func scoreRows(scores []storage.ProfileScore) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		score := fmt.Sprintf("%d", s.Score)
		if !s.Valid {
			score = fmt.Sprintf("? (%q)", s.Raw)
		}
		updated := "-"
		if !s.UpdatedAt.IsZero() {
			updated = s.UpdatedAt.Format("Jan 02 15:04")
		}
		rows[i] = table.Row{fmt.Sprintf("#%d", i+1), s.Profile, score, updated}
	}
	return rows
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Clear):
			if m.source != nil && len(m.scores) > 0 {
				profile := m.scores[m.table.Cursor()].Profile
				if err := m.source.ClearHighScore(profile); err != nil {
					m.err = err
					return m, nil
				}
				m.loadScores()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.newTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	body := m.table.View()
	if len(m.scores) == 0 {
		body = boardEmptyStyle.Render("No scores recorded yet.\nLaunch a run to set a high score!")
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n\n")
	b.WriteString(centerText(boardFrameStyle.Render(body), m.width))
	if m.err != nil {
		b.WriteString("\n" + boardErrStyle.Render(m.err.Error()))
	}
	b.WriteString("\n" + boardHelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// centerText pads text so that its widest line sits in the middle of width.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	prefix := strings.Repeat(" ", pad)
	return prefix + strings.ReplaceAll(text, "\n", "\n"+prefix)
}

// RunScoreboard runs the interactive scoreboard screen.
func RunScoreboard(source ScoreSource, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// WriteScores prints scores as an aligned plain-text table.
func WriteScores(w io.Writer, scores []storage.ProfileScore) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tPROFILE\tSCORE\tUPDATED")
	for _, row := range scoreRows(scores) {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
