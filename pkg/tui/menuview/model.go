// Package menuview renders the cheatsheet as a navigable terminal overlay and
// turns key presses into router gestures.
package menuview

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/trustme000777/niftymenu/pkg/app"
	"github.com/trustme000777/niftymenu/pkg/menu"
	"github.com/trustme000777/niftymenu/pkg/prefs"
	"github.com/trustme000777/niftymenu/pkg/router"
	"github.com/trustme000777/niftymenu/pkg/store"
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
)

const helpText = "j/k move · enter click · d double · x check · a arrow · s shortcut · / search · esc clear · D/E/B/A controls · t trace · q quit"

type row struct {
	node  menu.Node
	depth int
}

type menuChangedMsg struct{ path string }

type watchClosedMsg struct{}

// Model is the Bubble Tea model for the menu overlay.
type Model struct {
	svc     *app.Service
	ctx     context.Context
	cancel  context.CancelFunc
	changes <-chan store.Event

	mode  mode
	input textinput.Model

	rows   []row
	cursor int
	offset int

	width  int
	height int

	status  string
	err     error
	tracing bool
	trace   *traceWriter
}

// New creates a model over svc showing the top-level items.
func New(svc *app.Service) *Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search the menus, e.g. insert>toc"
	ti.CharLimit = 128

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		svc:    svc,
		ctx:    ctx,
		cancel: cancel,
		input:  ti,
		trace:  &traceWriter{},
	}
	m.refresh(nil)
	return m
}

// Run launches the Bubble Tea program for svc.
func Run(svc *app.Service) error {
	m := New(svc)
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Close stops the menu file watch.
func (m *Model) Close() {
	m.cancel()
}

// Init starts watching the menu file when there is one.
func (m *Model) Init() tea.Cmd {
	if m.svc.MenuPath == "" {
		return nil
	}
	ch, err := m.svc.Watch(m.ctx)
	if err != nil {
		m.err = err
		return nil
	}
	m.changes = ch
	return waitForChange(ch)
}

func waitForChange(ch <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return menuChangedMsg{path: ev.Path}
	}
}

// Update routes key presses to the browse or search handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll()
	case menuChangedMsg:
		if err := m.svc.ReloadFile(); err != nil {
			m.err = err
		} else {
			m.err = nil
			m.status = "reloaded " + msg.path
			m.cursor, m.offset = 0, 0
			m.refresh(nil)
		}
		if m.changes != nil {
			return m, waitForChange(m.changes)
		}
	case watchClosedMsg:
		m.changes = nil
	case tea.KeyPressMsg:
		m.err = nil
		if m.mode == modeSearch {
			return m, m.updateSearch(msg)
		}
		return m, m.updateBrowse(msg)
	}
	return m, nil
}

func (m *Model) updateBrowse(key tea.KeyPressMsg) tea.Cmd {
	switch key.String() {
	case "ctrl+c", "q":
		m.Close()
		return tea.Quit
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "home", "g":
		m.move(-len(m.rows))
	case "end", "G", "shift+g":
		m.move(len(m.rows))
	case "enter", "space", " ":
		m.pointer(router.Click, router.Modifiers{})
	case "d":
		m.pointer(router.DoubleClick, router.Modifiers{})
	case "x":
		m.pointer(router.Click, router.Modifiers{Primary: true})
	case "a":
		m.pointer(router.Click, router.Modifiers{Secondary: true})
	case "s":
		m.pointer(router.Click, router.Modifiers{Tertiary: true})
	case "esc":
		m.dispatch(router.Event{Gesture: router.Click})
	case "/":
		m.mode = modeSearch
		m.dispatch(router.Event{Gesture: router.FocusSearch})
		return m.input.Focus()
	case "D", "shift+d":
		m.control(router.ControlDarkMode)
	case "E", "shift+e":
		m.control(router.ControlExpose)
	case "B", "shift+b":
		m.control(router.ControlBackground)
	case "A", "shift+a":
		m.control(router.ControlArrowStyle)
	case "t":
		m.toggleTrace()
	}
	return nil
}

func (m *Model) updateSearch(key tea.KeyPressMsg) tea.Cmd {
	switch key.String() {
	case "ctrl+c":
		m.Close()
		return tea.Quit
	case "enter":
		m.dispatch(router.Event{Gesture: router.Commit, Text: m.input.Value()})
		m.leaveSearch()
		return nil
	case "esc":
		m.dispatch(router.Event{Gesture: router.Cancel})
		m.leaveSearch()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	m.syncQuery()
	return cmd
}

// syncQuery reports the field's text to the router when it changed.
func (m *Model) syncQuery() {
	value := m.input.Value()
	if value == m.svc.Router.Query() {
		return
	}
	m.dispatch(router.Event{Gesture: router.QueryChanged, Text: value})
	if h := m.svc.Callouts.Highlighted(); h != nil {
		m.focusOn(h)
	}
}

func (m *Model) leaveSearch() {
	m.input.Blur()
	m.input.SetValue("")
	m.mode = modeBrowse
	m.dispatch(router.Event{Gesture: router.Blur})
}

func (m *Model) pointer(g router.Gesture, mods router.Modifiers) {
	target := m.selected()
	if target == nil {
		return
	}
	m.dispatch(router.Event{Gesture: g, Target: target, Mods: mods})
}

func (m *Model) control(id router.ControlID) {
	m.dispatch(router.Event{Gesture: router.Control, Control: id})
	if m.err == nil {
		m.status = string(id)
	}
}

func (m *Model) dispatch(ev router.Event) {
	res, err := m.svc.Dispatch(ev)
	if err != nil {
		m.err = err
	}
	m.refresh(res.Reveal)
}

func (m *Model) toggleTrace() {
	m.tracing = !m.tracing
	if m.tracing {
		m.svc.SetDebugWriter(m.trace)
		m.status = "trace on"
		return
	}
	m.svc.SetDebugWriter(nil)
	m.trace.last = ""
	m.status = "trace off"
}

// refresh recomputes the visible rows, keeping the cursor on the selected
// item or moving it to reveal.
func (m *Model) refresh(reveal menu.Node) {
	current := m.selected()
	m.rows = m.visibleRows()
	if reveal != nil {
		current = reveal
	}
	if current != nil {
		m.focusOn(current)
	}
	m.clamp()
}

func (m *Model) visibleRows() []row {
	expose := m.svc.Prefs.GetBool(prefs.ExposeMode)
	var rows []row
	var walk func(nodes []menu.Node, depth int)
	walk = func(nodes []menu.Node, depth int) {
		for _, n := range nodes {
			rows = append(rows, row{node: n, depth: depth})
			if expose || m.svc.Callouts.Open(n) {
				walk(n.Children(), depth+1)
			}
		}
	}
	walk(m.svc.Tree.Roots(), 0)
	return rows
}

func (m *Model) selected() menu.Node {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].node
}

func (m *Model) focusOn(n menu.Node) {
	for i, r := range m.rows {
		if r.node == n {
			m.cursor = i
			m.scroll()
			return
		}
	}
}

func (m *Model) move(delta int) {
	m.cursor += delta
	m.clamp()
}

func (m *Model) clamp() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scroll()
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	visible := m.listHeight()
	if visible <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

// listHeight is the number of rows that fit above the footer, or 0 when the
// terminal size is unknown.
func (m *Model) listHeight() int {
	if m.height <= 0 {
		return 0
	}
	h := m.height - 1
	if m.svc.Prefs.GetBool(prefs.BackgroundImage) {
		h -= 2
	}
	return max(h, 1)
}

type traceWriter struct {
	last string
}

func (t *traceWriter) Write(p []byte) (int, error) {
	if line := strings.TrimSpace(string(p)); line != "" {
		t.last = line
	}
	return len(p), nil
}
