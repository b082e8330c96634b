// Package tui is the terminal twin of the raylib dashboard: the same
// snapshot stream rendered with Bubble Tea and lipgloss for displays
// without a window system.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nkubana0/brainiac/internal/env"
	"github.com/nkubana0/brainiac/internal/snapshot"
)

const historyCapacity = 120

// Options configures the terminal dashboard.
type Options struct {
	FPS           int
	Steps         int // 0 means run until quit
	Seed          int64
	EpisodeLength int
	ActionNames   []string
}

type TickMsg time.Time

// Model drives a scripted environment at the configured frame rate and
// renders each snapshot.
type Model struct {
	opts Options
	env  *env.Scripted

	snap snapshot.Snapshot
	info snapshot.StepInfo

	engagementHist []float64
	rendered       int

	lastAction int
	actionLeft int
	showAction bool
}

func NewModel(opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 4
	}
	if opts.EpisodeLength <= 0 {
		opts.EpisodeLength = 200
	}
	if opts.ActionNames == nil {
		opts.ActionNames = snapshot.DefaultActionNames()
	}
	return Model{
		opts:           opts,
		env:            env.NewScripted(opts.Seed, opts.EpisodeLength),
		snap:           snapshot.Snapshot{},
		engagementHist: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case TickMsg:
		m.snap, m.info = m.env.Step()
		m.observeAction()

		m.engagementHist = append(m.engagementHist, m.snap.Engagement())
		if len(m.engagementHist) > historyCapacity {
			m.engagementHist = m.engagementHist[1:]
		}

		m.rendered++
		if m.opts.Steps > 0 && m.rendered >= m.opts.Steps {
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

// observeAction mirrors the GUI's action-visibility countdown: a new
// action stays on screen for 2×FPS frames after the frame that set it.
func (m *Model) observeAction() {
	if m.info.Action != nil {
		m.lastAction = *m.info.Action
		m.actionLeft = 2 * m.opts.FPS
		m.showAction = true
		return
	}
	if m.actionLeft > 0 {
		m.actionLeft--
		m.showAction = true
		return
	}
	m.showAction = false
}
