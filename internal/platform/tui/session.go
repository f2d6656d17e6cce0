package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/splt/internal/core"
	"github.com/vovakirdan/splt/internal/registry"
)

// SessionModel chains the menu, the scoreboard and games inside one
// program, for SSH sessions where each screen cannot be its own program.
// Children still end themselves with tea.Quit; the session swallows that
// command and switches screens instead.
type SessionModel struct {
	opts     RecorderOptions
	config   core.RuntimeConfig
	active   tea.Model // MenuModel, ScoreboardModel or Model
	quitting bool
}

// NewSessionModel starts a session on the menu.
func NewSessionModel(opts RecorderOptions, cfg core.RuntimeConfig) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return SessionModel{
		opts:   opts,
		config: cfg,
		active: NewMenuModel(opts.Store, cfg),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return m.active.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	next, cmd := m.active.Update(msg)
	m.active = next

	switch child := next.(type) {
	case MenuModel:
		switch {
		case child.IsQuitting():
			return m.quit()
		case child.WantsScoreboard():
			return m.open(NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH))
		case child.Selected() != nil:
			game, err := registry.Create(child.Selected().GameID)
			if err != nil {
				m.opts.Logger.Error("cannot create game", "err", err)
				return m.open(NewMenuModel(m.opts.Store, m.config))
			}
			return m.open(NewModel(game, m.opts, m.config))
		}

	case ScoreboardModel:
		switch {
		case child.IsQuitting():
			return m.quit()
		case child.IsGoingBack():
			return m.open(NewMenuModel(m.opts.Store, m.config))
		}

	case Model:
		switch {
		case child.IsQuitting():
			return m.quit()
		case child.BackToMenu():
			return m.open(NewMenuModel(m.opts.Store, m.config))
		}
	}
	return m, cmd
}

// open makes child the active screen and runs its Init.
func (m SessionModel) open(child tea.Model) (tea.Model, tea.Cmd) {
	m.active = child
	return m, child.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	return m.active.View()
}
