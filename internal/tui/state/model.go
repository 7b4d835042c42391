package state

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/pairup/internal/bus"
	"github.com/cristianoliveira/pairup/internal/catalog"
	"github.com/cristianoliveira/pairup/internal/core"
	"github.com/cristianoliveira/pairup/internal/matchmaking"
	"github.com/cristianoliveira/pairup/internal/settings"
	"github.com/cristianoliveira/pairup/internal/tui/render"
)

// Tab identifies a top-level screen.
type Tab int

const (
	TabChats Tab = iota
	TabNotifications
	TabRanking
	TabRandomChat
	TabRandomVideo
	TabSettings
	tabCount
)

var tabNames = []string{"채팅", "알림", "랭킹", "랜덤 채팅", "랜덤 영상", "설정"}

func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return "unknown"
	}
	return tabNames[t]
}

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the root TUI model.
type Model struct {
	ctx     context.Context
	backend Backend

	width  int
	height int

	tab    Tab
	cursor int

	palette render.Palette

	// Reloaded on focus.
	unread        int
	chats         []core.ChatView
	ranking       []core.RankedView
	notifications []catalog.Notification
	appSettings   settings.AppSettings
	language      string

	search  *matchmaking.Search
	waiting matchmaking.Snapshot
	matched *matchmaking.SessionParams

	room  *matchmaking.ChatRoom
	input textinput.Model

	themeEvents chan bus.Event
	unsubscribe func()

	status    string
	statusSeq int
}

// NewModel creates the root model. The bus subscription is taken here so
// theme changes made before the program starts are not missed.
func NewModel(ctx context.Context, backend Backend) *Model {
	input := textinput.New()
	input.Placeholder = "메시지를 입력하세요"
	input.CharLimit = 200

	m := &Model{
		ctx:         ctx,
		backend:     backend,
		width:       defaultWidth,
		height:      defaultHeight,
		input:       input,
		themeEvents: make(chan bus.Event, 1),
	}
	m.unsubscribe = backend.SubscribeTheme(m.forwardTheme)
	m.palette = render.PaletteFor(backend.Theme(ctx))
	m.reload()
	return m
}

// forwardTheme runs on the publisher's goroutine, which may be Update itself,
// so it must never block. Only the latest event matters.
func (m *Model) forwardTheme(e bus.Event) {
	for {
		select {
		case m.themeEvents <- e:
			return
		default:
		}
		select {
		case <-m.themeEvents:
		default:
		}
	}
}

// Init starts listening for theme changes.
func (m *Model) Init() tea.Cmd {
	return waitForTheme(m.themeEvents)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-4, 10)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case searchEventMsg:
		return m.handleSearchEvent(msg.event)
	case searchClosedMsg:
		if m.search != nil && m.search.ID() == msg.id && m.matched == nil {
			m.search = nil
		}
		return m, nil
	case themeChangedMsg:
		m.palette = render.PaletteFor(settings.Theme(msg.event.Payload))
		return m, waitForTheme(m.themeEvents)
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	if m.room != nil {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Shutdown cancels any running search and drops the bus subscription.
func (m *Model) Shutdown() {
	m.cancelSearch()
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.Shutdown()
	return m, tea.Quit
}

// focus switches tabs, leaving any search or room on the old tab, and
// reloads persisted state for the new one.
func (m *Model) focus(t Tab) tea.Cmd {
	if t == m.tab {
		return nil
	}
	m.leaveSession()
	m.tab = t
	m.cursor = 0
	m.reload()
	if t == TabNotifications {
		m.backend.ResetUnread(m.ctx)
		m.unread = 0
	}
	return nil
}

// reload re-reads everything the screens render from storage.
func (m *Model) reload() {
	m.unread = m.backend.UnreadCount(m.ctx)
	m.chats = m.backend.Chats(m.ctx)
	m.ranking = m.backend.Ranking(m.ctx)
	m.notifications = m.backend.Notifications()
	m.appSettings = m.backend.Settings(m.ctx)
	m.language = m.backend.Language(m.ctx)
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.statusSeq++
	m.status = text
	return clearStatusAfter(m.statusSeq)
}

func (m *Model) listLen() int {
	switch m.tab {
	case TabChats:
		return len(m.chats)
	case TabNotifications:
		return len(m.notifications)
	case TabRanking:
		return len(m.ranking)
	case TabSettings:
		return len(settingRows)
	default:
		return 0
	}
}

func (m *Model) moveCursor(delta int) {
	n := m.listLen()
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}
