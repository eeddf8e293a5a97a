package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/1byung/tepdash/engine"
	"github.com/1byung/tepdash/model"
)

// Page identifies the current screen.
type Page int

const (
	PageOverview Page = iota
	PageSensors
	PageTrends
	PageLog
	pageCount
)

var pageNames = []string{"Overview", "Sensors", "Trends", "Log"}

// The three periodic timers are independent: sharing a period is the only
// relationship between them, ordering is never relied upon.
type sensorTickMsg time.Time
type clockTickMsg time.Time
type uptimeTickMsg time.Time

type snapshotMsg struct {
	snap *model.Snapshot
}

// Model is the bubbletea model.
type Model struct {
	ticker   engine.Ticker
	interval time.Duration
	width    int
	height   int

	snap *model.Snapshot

	// Navigation
	page   Page
	cursor int // rank index into the risk-ordered sensor list
	keys   keyMap
	help   help.Model

	// Auto-refresh control
	paused bool

	// Clock and uptime panels, each driven by its own 1-second timer
	clock  string
	uptime string

	logView viewport.Model
}

// NewModel creates a new TUI model.
func NewModel(ticker engine.Ticker, interval time.Duration) Model {
	vp := viewport.New(80, 20)
	return Model{
		ticker:   ticker,
		interval: interval,
		page:     loadDefaultPage(),
		keys:     keys,
		help:     help.New(),
		clock:    time.Now().Format("15:04:05"),
		uptime:   engine.FormatUptime(0),
		logView:  vp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		sensorTick(m.interval),
		clockTick(),
		uptimeTick(),
		collectOnce(m.ticker),
	)
}

func sensorTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return sensorTickMsg(t) })
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

func uptimeTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return uptimeTickMsg(t) })
}

func collectOnce(ticker engine.Ticker) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg{snap: ticker.Tick()}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logView.Width = msg.Width - 2
		m.logView.Height = msg.Height - 7
		return m, nil

	case sensorTickMsg:
		if m.paused {
			return m, nil
		}
		return m, tea.Batch(sensorTick(m.interval), collectOnce(m.ticker))

	case snapshotMsg:
		if msg.snap != nil {
			m.snap = msg.snap
			m.logView.SetContent(logContent(m.snap))
			if m.cursor >= len(m.snap.Sensors) {
				m.cursor = len(m.snap.Sensors) - 1
			}
		}
		return m, nil

	case clockTickMsg:
		m.clock = time.Time(msg).Format("15:04:05")
		return m, clockTick()

	case uptimeTickMsg:
		m.uptime = engine.FormatUptime(m.ticker.Base().Uptime())
		return m, uptimeTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		if !m.paused {
			// Resume: restart the sensor timer immediately
			return m, tea.Batch(sensorTick(m.interval), collectOnce(m.ticker))
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.page = (m.page + 1) % pageCount
		_ = saveDefaultPage(m.page)
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.page = (m.page + pageCount - 1) % pageCount
		_ = saveDefaultPage(m.page)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.page == PageLog {
			m.logView.LineUp(1)
		} else if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.page == PageLog {
			m.logView.LineDown(1)
		} else if m.snap != nil && m.cursor < len(m.snap.Sensors)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		// During replay the displayed frames come from the tape; the
		// backing engine is detached and must not leak into the view.
		if _, replaying := m.ticker.(*engine.Player); replaying {
			return m, nil
		}
		// Selection applies synchronously; the next rendered frame
		// already reflects it.
		if m.snap != nil && m.cursor >= 0 && m.cursor < len(m.snap.Sensors) {
			m.ticker.Base().Toggle(m.snap.Sensors[m.cursor].ID)
			return m, collectSnapshot(m.ticker)
		}
		return m, nil

	case key.Matches(msg, m.keys.Step):
		if m.paused {
			if p, ok := m.ticker.(*engine.Player); ok {
				if snap := p.Tick(); snap != nil {
					m.snap = snap
					m.logView.SetContent(logContent(m.snap))
				}
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.SeekBack):
		return m.seek(-10), nil

	case key.Matches(msg, m.keys.SeekFwd):
		return m.seek(+10), nil
	}

	return m, nil
}

// collectSnapshot refreshes state without advancing the simulation.
func collectSnapshot(ticker engine.Ticker) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg{snap: ticker.Base().Snapshot()}
	}
}

func (m Model) seek(delta int) Model {
	p, ok := m.ticker.(*engine.Player)
	if !ok {
		return m
	}
	if snap := p.Seek(p.Index() + delta); snap != nil {
		m.snap = snap
		m.logView.SetContent(logContent(m.snap))
	}
	return m
}

func (m Model) View() string {
	if m.snap == nil {
		return "\n  Generating sensor set..."
	}

	var sb strings.Builder
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")

	contentH := m.height - 5
	switch m.page {
	case PageOverview:
		sb.WriteString(renderOverview(m.snap, m.cursor, m.clock, m.uptime, m.paused, m.width, contentH))
	case PageSensors:
		sb.WriteString(renderSensorsPage(m.snap, m.cursor, m.width, contentH))
	case PageTrends:
		sb.WriteString(renderTrendsPage(m.snap, m.width, contentH))
	case PageLog:
		sb.WriteString(renderLogPage(m.logView.View(), m.snap))
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range pageNames {
		if Page(i) == m.page {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}
	title := titleStyle.Render(" tepdash")
	line := title + dimStyle.Render("  │  ") + strings.Join(tabs, dimStyle.Render(" · "))
	if m.paused {
		line += "  " + warnStyle.Render("[paused]")
	}
	if p, ok := m.ticker.(*engine.Player); ok {
		line += dimStyle.Render(fmt.Sprintf("  replay %d/%d", p.Index(), p.Len()))
	}
	return line
}
