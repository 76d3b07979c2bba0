package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui48/internal/registry"
	"github.com/vovakirdan/tui48/internal/storage"
)

const (
	sidebarMinWidth = 90  // narrower terminals get mode tabs instead of a sidebar
	sidebarWidth    = 20
	scoreboardLimit = 100 // results loaded per mode
	dateLayout      = "Jan 02 15:04"
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextMode, k.PrevMode}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev mode")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeModeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	modeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	emptyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	boxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ScoreboardModel shows the results log of one mode at a time.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	results    []storage.Result
	stats      *storage.GameStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard showing the first registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = newResultsTable(height)
	m.selectMode(0)
	return m
}

func newResultsTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 8},
			{Title: "Max Tile", Width: 8},
			{Title: "Moves", Width: 6},
			{Title: "Won", Width: 4},
			{Title: "Date", Width: len(dateLayout) + 1},
		}),
		table.WithFocused(true),
		// title, stats line, borders, header and help
		table.WithHeight(max(height-10, 3)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)
	return t
}

// selectMode switches to mode i and reloads its results.
func (m *ScoreboardModel) selectMode(i int) {
	m.results, m.stats = nil, nil
	if len(m.games) == 0 {
		m.table.SetRows(nil)
		return
	}
	m.gameCursor = (i%len(m.games) + len(m.games)) % len(m.games)

	if m.store != nil {
		id := m.games[m.gameCursor].ID
		if results, err := m.store.TopScores(id, scoreboardLimit); err == nil {
			m.results = results
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.table.SetRows(resultRows(m.results))
	m.table.GotoTop()
}

func resultRows(results []storage.Result) []table.Row {
	rows := make([]table.Row, 0, len(results))
	for i, r := range results {
		won := ""
		if r.Won {
			won = "yes"
		}
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.MaxTile),
			strconv.Itoa(r.Moves),
			won,
			r.CreatedAt.Local().Format(dateLayout),
		})
	}
	return rows
}

// statsLine summarizes a mode's aggregated results.
func statsLine(s *storage.GameStats) string {
	if s == nil || s.GamesCount == 0 {
		return "no games played"
	}
	parts := []string{
		fmt.Sprintf("%d games", s.GamesCount),
		fmt.Sprintf("%d won", s.Wins),
		fmt.Sprintf("best tile %d", s.BestTile),
		fmt.Sprintf("avg %.0f", s.AvgScore),
	}
	if !s.LastPlayed.IsZero() {
		parts = append(parts, "last "+s.LastPlayed.Local().Format(dateLayout))
	}
	return strings.Join(parts, " | ")
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.selectMode(m.gameCursor + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.selectMode(m.gameCursor - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newResultsTable(msg.Height)
		m.table.SetRows(resultRows(m.results))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title += " - " + m.games[m.gameCursor].Title
	}

	var body string
	if m.width >= sidebarMinWidth {
		sidebar := boxStyle.Width(sidebarWidth).Render(m.modeList())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", boxStyle.Render(m.tableView()))
	} else {
		body = centerText(m.modeTabs(), m.width) + "\n\n" + boxStyle.Render(m.tableView())
	}

	return strings.Join([]string{
		centerText(scoreTitleStyle.Render(title), m.width),
		centerText(helpStyle.Render(statsLine(m.stats)), m.width),
		"",
		body,
		helpStyle.Render(m.help.View(m.keys)),
	}, "\n")
}

// modeList is the sidebar listing every mode.
func (m ScoreboardModel) modeList() string {
	lines := []string{"Modes", strings.Repeat("─", sidebarWidth-4)}
	for i, g := range m.games {
		lines = append(lines, menuLine(i == m.gameCursor, g.Title))
	}
	return strings.Join(lines, "\n")
}

// modeTabs is the single-line mode switcher used on narrow terminals.
func (m ScoreboardModel) modeTabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = activeModeStyle.Render(g.Title)
		} else {
			tabs[i] = modeStyle.Render(g.Title)
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.games) > 0 {
		line = fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
	}
	return line
}

func (m ScoreboardModel) tableView() string {
	if len(m.results) == 0 {
		return emptyStyle.Render("No games recorded yet.\nFinish a game to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard. It returns true when the user
// wants to go back to the menu and false when they quit.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
