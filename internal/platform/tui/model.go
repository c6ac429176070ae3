package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// chromeLines is the number of terminal rows used around the board: the HUD
// line above it and the short help line below.
const chromeLines = 2

var (
	hudStyle     = lipgloss.NewStyle().Bold(true)
	bestStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	overStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger

	termW, termH int
	paused       bool
	best         int // Highest score this session
	quitting     bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// cfg.ScreenW and cfg.ScreenH are the terminal size in columns and rows.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	termW, termH := cfg.ScreenW, cfg.ScreenH
	cfg.ScreenW, cfg.ScreenH = boardCells(termW, termH)
	game.Reset(cfg)

	w, h := cfg.ScreenW, cfg.ScreenH
	if b, ok := game.(registry.Board); ok {
		w, h = b.Width(), b.Height()
	}

	h2 := help.New()
	h2.Width = termW

	logger.Info("session started", "game", game.ID(), "board", fmt.Sprintf("%dx%d", w, h), "seed", cfg.Seed)

	return Model{
		game:       game,
		screen:     core.NewScreen(w, h),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keys:       DefaultKeyMap(),
		help:       h2,
		logger:     logger,
		termW:      termW,
		termH:      termH,
	}
}

// boardCells converts a terminal size into the board cells that fit it.
func boardCells(termW, termH int) (int, int) {
	return termW / cellWidth, max(termH-chromeLines, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.termW = msg.Width
		m.termH = msg.Height
		m.help.Width = msg.Width
		m.config.ScreenW, m.config.ScreenH = boardCells(msg.Width, msg.Height)
		m.resize()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// resize fits the screen to the current terminal. Fixed boards keep their
// size; boards that follow the terminal are refitted and start a new round.
func (m *Model) resize() {
	switch g := m.game.(type) {
	case registry.Resizable:
		if g.Resize(m.config.ScreenW, m.config.ScreenH) {
			m.screen.Resize(g.Width(), g.Height())
			m.gameState = m.game.State()
			m.gameState.Paused = m.paused
			m.logger.Debug("board resized", "board", fmt.Sprintf("%dx%d", g.Width(), g.Height()))
		}
	case registry.Board:
	default:
		m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	}
}

// restart starts a new round with the next seed.
func (m *Model) restart() {
	m.config.Seed++
	m.game.Reset(m.config)
	if b, ok := m.game.(registry.Board); ok {
		m.screen.Resize(b.Width(), b.Height())
	}
	m.inputFrame.Clear()
	m.gameState = m.game.State()
	m.gameState.Paused = m.paused
	m.logger.Info("restarted", "seed", m.config.Seed)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Shot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("session ended", "best", m.best)
		return m, tea.Quit
	case core.ActionRestart:
		m.restart()
	case core.ActionPause:
		m.paused = !m.paused
		m.gameState.Paused = m.paused
		m.inputFrame.Clear()
		m.logger.Debug("pause toggled", "paused", m.paused)
	case core.ActionNone:
	default:
		if !m.paused {
			m.inputFrame.Set(action)
		}
	}
	return m, nil
}

// handleTick processes simulation ticks. Nothing advances while paused or
// while the terminal is too small to show the board.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || m.tooSmall() {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State
	m.gameState.Paused = m.paused
	m.logTransition(prev, m.gameState)

	if m.gameState.Score > m.best {
		m.best = m.gameState.Score
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logTransition(prev, cur core.GameState) {
	switch {
	case !prev.GameOver && cur.GameOver:
		m.logger.Info("game over", "score", cur.Score, "best", max(m.best, cur.Score))
	case prev.GameOver && !cur.GameOver:
		m.logger.Info("restarted")
	case cur.Score > prev.Score:
		m.logger.Debug("food eaten", "score", cur.Score)
	}
}

// tooSmall reports whether the terminal cannot fit the board and its chrome.
func (m Model) tooSmall() bool {
	w, h := m.required()
	return m.termW < w || m.termH < h
}

// required returns the terminal size needed to show the board, the HUD and
// the help view as currently expanded.
func (m Model) required() (int, int) {
	helpLines := lipgloss.Height(m.help.View(m.keys))
	return m.screen.Width() * cellWidth, m.screen.Height() + 1 + helpLines
}

// saveScreenshot writes the board as plain text to ~/.snake/screenshots.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	m.game.Render(m.screen)
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405.000"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		w, h := m.required()
		return warningStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d", w, h, m.termW, m.termH))
	}

	m.game.Render(m.screen)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, "PAUSED")
	}

	var b strings.Builder
	b.WriteString(m.hud())
	b.WriteRune('\n')
	b.WriteString(RenderScreen(m.screen))
	b.WriteRune('\n')
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// hud builds the status line above the board.
func (m Model) hud() string {
	status := m.game.Title()
	if r, ok := m.game.(registry.StatusReporter); ok {
		status = r.Status()
	}

	line := hudStyle.Render(status) + "  " + bestStyle.Render(fmt.Sprintf("Best: %d", m.best))
	if m.gameState.GameOver {
		line += "  " + overStyle.Render("GAME OVER")
	}
	return line
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
