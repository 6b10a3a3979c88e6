// Package callout tracks which menu items carry the arrow, shortcut,
// checkmark, clicked, persist and search-highlight overlays. Every transition
// clears conflicting state before setting new state, so the exclusivity rules
// hold no matter which input source drives the machine.
package callout

import (
	"errors"
	"fmt"
	"io"

	"github.com/trustme000777/niftymenu/pkg/index"
	"github.com/trustme000777/niftymenu/pkg/menu"
)

// Machine holds the overlay state of one menu tree.
type Machine struct {
	states map[menu.Node]*State

	arrow      menu.Node
	shortcut   menu.Node
	active     menu.Node
	emphasized menu.Node
	highlight  menu.Node
	search     menu.Node

	// path is the clicked chain, active item first.
	path    []menu.Node
	checked []menu.Node

	debug io.Writer
}

// New returns a machine with every item in its initial state. search is the
// item hosting the search affordance and may be nil.
func New(search menu.Node) *Machine {
	return &Machine{
		states: make(map[menu.Node]*State),
		search: search,
	}
}

// SetDebugWriter configures an optional writer tracing each transition.
func (m *Machine) SetDebugWriter(w io.Writer) {
	m.debug = w
}

func (m *Machine) logf(format string, args ...interface{}) {
	if m.debug == nil {
		return
	}
	fmt.Fprintf(m.debug, "callout: "+format+"\n", args...)
}

// Reset drops all overlay state, typically after the tree was replaced.
func (m *Machine) Reset(search menu.Node) {
	m.states = make(map[menu.Node]*State)
	m.arrow, m.shortcut, m.active, m.emphasized, m.highlight = nil, nil, nil, nil, nil
	m.path, m.checked = nil, nil
	m.search = search
	m.logf("reset")
}

// State returns a copy of the overlay flags for n.
func (m *Machine) State(n menu.Node) State {
	if st, ok := m.states[n]; ok {
		return *st
	}
	return State{}
}

// Arrowed returns the item carrying the arrow, or nil.
func (m *Machine) Arrowed() menu.Node { return m.arrow }

// ShortcutItem returns the item whose shortcut is called out, or nil.
func (m *Machine) ShortcutItem() menu.Node { return m.shortcut }

// Active returns the deepest clicked item, or nil.
func (m *Machine) Active() menu.Node { return m.active }

// Highlighted returns the transient search match, or nil.
func (m *Machine) Highlighted() menu.Node { return m.highlight }

// Emphasized returns the double-clicked item, or nil.
func (m *Machine) Emphasized() menu.Node { return m.emphasized }

// SearchItem returns the designated search affordance, or nil.
func (m *Machine) SearchItem() menu.Node { return m.search }

// Checked returns the checked items in the order they were checked.
func (m *Machine) Checked() []menu.Node {
	out := make([]menu.Node, len(m.checked))
	copy(out, m.checked)
	return out
}

// ClickedPath returns the clicked chain, active item first.
func (m *Machine) ClickedPath() []menu.Node {
	out := make([]menu.Node, len(m.path))
	copy(out, m.path)
	return out
}

// Holds reports whether n currently carries the callout of kind.
func (m *Machine) Holds(n menu.Node, kind Kind) bool {
	if n == nil {
		return false
	}
	switch kind {
	case Arrow:
		return m.arrow == n
	case Shortcut:
		return m.shortcut == n
	}
	return false
}

// Open reports whether n has its children revealed: it is on the clicked
// path, persisted, or leads to the search highlight.
func (m *Machine) Open(n menu.Node) bool {
	if n == nil {
		return false
	}
	if st, ok := m.states[n]; ok && (st.Clicked || st.Persist) {
		return true
	}
	if m.highlight != nil && (m.highlight == n || menu.IsAncestor(n, m.highlight)) {
		return true
	}
	return false
}

// Activate places the callout of kind on item. Both callouts and the previous
// clicked path are cleared first; item and its ancestors become clicked.
func (m *Machine) Activate(item menu.Node, kind Kind) {
	if item == nil {
		return
	}
	m.Deactivate(Arrow)
	m.Deactivate(Shortcut)
	m.resetPointer()
	m.markPath(item)

	st := m.state(item)
	switch kind {
	case Arrow:
		st.Arrow = true
		st.Direction = Right
		if menu.HasChildren(item) {
			st.Direction = Left
		}
		m.arrow = item
	case Shortcut:
		st.Shortcut = true
		m.shortcut = item
	}
	m.logf("activate %s on %q", kind, index.PathOf(item))
}

// Deactivate clears the callout of kind wherever it is. It is a no-op when
// no item carries it.
func (m *Machine) Deactivate(kind Kind) {
	var n menu.Node
	switch kind {
	case Arrow:
		n, m.arrow = m.arrow, nil
	case Shortcut:
		n, m.shortcut = m.shortcut, nil
	}
	if n == nil {
		return
	}
	if st, ok := m.states[n]; ok {
		switch kind {
		case Arrow:
			st.Arrow = false
			st.Direction = Right
		case Shortcut:
			st.Shortcut = false
		}
		m.tidy(n)
	}
	m.logf("deactivate %s on %q", kind, index.PathOf(n))
}

// Toggle removes the callout of kind from item if it has it, otherwise clears
// the other callout and activates kind on item.
func (m *Machine) Toggle(item menu.Node, kind Kind) {
	if item == nil {
		m.Deactivate(kind)
		return
	}
	if m.Holds(item, kind) {
		m.Deactivate(kind)
		return
	}
	m.Deactivate(kind.other())
	m.Activate(item, kind)
}

// ToggleCheckmark flips the checkmark on item alone and returns the new value.
func (m *Machine) ToggleCheckmark(item menu.Node) bool {
	if item == nil {
		return false
	}
	st := m.state(item)
	st.Checked = !st.Checked
	if st.Checked {
		m.checked = append(m.checked, item)
	} else {
		m.checked = remove(m.checked, item)
	}
	checked := st.Checked
	m.tidy(item)
	m.logf("checkmark %q=%v", index.PathOf(item), checked)
	return checked
}

// ClearAll removes both callouts, the clicked path, emphasis and search
// highlight. The search affordance keeps its persist flag unless clearPersist
// is set.
func (m *Machine) ClearAll(clearPersist bool) {
	m.Deactivate(Arrow)
	m.Deactivate(Shortcut)
	m.resetPointer()
	if clearPersist {
		m.ReleasePersist()
	}
	m.logf("clear all persist=%v", clearPersist)
}

// Click makes item the active clicked item, dropping any callout and the
// previous path.
func (m *Machine) Click(item menu.Node) {
	m.Deactivate(Arrow)
	m.Deactivate(Shortcut)
	m.resetPointer()
	if item == nil {
		return
	}
	m.markPath(item)
	m.logf("click %q", index.PathOf(item))
}

// Emphasize marks the active item with the double-click emphasis. It reports
// false when item is not the active item.
func (m *Machine) Emphasize(item menu.Node) bool {
	if item == nil || item != m.active {
		return false
	}
	m.clearEmphasis()
	m.state(item).Emphasized = true
	m.emphasized = item
	return true
}

// Highlight moves the transient search highlight to item. A nil item clears it.
func (m *Machine) Highlight(item menu.Node) {
	m.ClearHighlight()
	if item == nil {
		return
	}
	m.state(item).Highlighted = true
	m.highlight = item
	m.logf("highlight %q", index.PathOf(item))
}

// ClearHighlight removes the transient search highlight.
func (m *Machine) ClearHighlight() {
	n := m.highlight
	m.highlight = nil
	if n == nil {
		return
	}
	if st, ok := m.states[n]; ok {
		st.Highlighted = false
		m.tidy(n)
	}
}

// FocusSearch clears the pointer state and opens the search affordance,
// pinning it with the persist flag.
func (m *Machine) FocusSearch() {
	m.ClearAll(false)
	if m.search == nil {
		return
	}
	m.markPath(m.search)
	m.state(m.search).Persist = true
	m.logf("focus search %q", index.PathOf(m.search))
}

// ReleasePersist drops the persist flag from the search affordance.
func (m *Machine) ReleasePersist() {
	if m.search == nil {
		return
	}
	if st, ok := m.states[m.search]; ok && st.Persist {
		st.Persist = false
		m.tidy(m.search)
	}
}

// SetSearchItem designates a new search affordance.
func (m *Machine) SetSearchItem(n menu.Node) {
	m.ReleasePersist()
	m.search = n
}

// Verify checks the global invariants and returns the first violation.
func (m *Machine) Verify() error {
	arrows, shortcuts, highlights := 0, 0, 0
	clicked := map[menu.Node]bool{}
	for n, st := range m.states {
		if st.Arrow {
			arrows++
		}
		if st.Shortcut {
			shortcuts++
		}
		if st.Highlighted {
			highlights++
		}
		if st.Clicked {
			clicked[n] = true
		}
		if st.Persist && n != m.search {
			return fmt.Errorf("callout: persist outside the search item on %q", index.PathOf(n))
		}
		if st.Emphasized && n != m.active {
			return fmt.Errorf("callout: emphasis on inactive item %q", index.PathOf(n))
		}
	}
	switch {
	case arrows > 1:
		return errors.New("callout: more than one arrow")
	case shortcuts > 1:
		return errors.New("callout: more than one shortcut callout")
	case highlights > 1:
		return errors.New("callout: more than one search highlight")
	}
	if m.active == nil {
		if len(clicked) > 0 {
			return errors.New("callout: clicked items without an active item")
		}
		return nil
	}
	chain := append([]menu.Node{m.active}, menu.Ancestors(m.active)...)
	if len(chain) != len(clicked) {
		return fmt.Errorf("callout: %d clicked items, expected %d", len(clicked), len(chain))
	}
	for i, n := range chain {
		if !clicked[n] {
			return fmt.Errorf("callout: %q missing from clicked path", index.PathOf(n))
		}
		if i > 0 && !m.states[n].AncestorOfClicked {
			return fmt.Errorf("callout: %q not flagged as ancestor", index.PathOf(n))
		}
	}
	return nil
}

func (m *Machine) state(n menu.Node) *State {
	st, ok := m.states[n]
	if !ok {
		st = &State{}
		m.states[n] = st
	}
	return st
}

func (m *Machine) tidy(n menu.Node) {
	if st, ok := m.states[n]; ok && st.zero() {
		delete(m.states, n)
	}
}

func (m *Machine) markPath(item menu.Node) {
	m.active = item
	m.path = append(m.path[:0], item)
	m.state(item).Clicked = true
	for _, a := range menu.Ancestors(item) {
		st := m.state(a)
		st.Clicked = true
		st.AncestorOfClicked = true
		m.path = append(m.path, a)
	}
}

// resetPointer clears the clicked path, emphasis and search highlight.
func (m *Machine) resetPointer() {
	m.clearEmphasis()
	m.ClearHighlight()
	for _, n := range m.path {
		if st, ok := m.states[n]; ok {
			st.Clicked = false
			st.AncestorOfClicked = false
			m.tidy(n)
		}
	}
	m.path = m.path[:0]
	m.active = nil
}

func (m *Machine) clearEmphasis() {
	n := m.emphasized
	m.emphasized = nil
	if n == nil {
		return
	}
	if st, ok := m.states[n]; ok {
		st.Emphasized = false
		m.tidy(n)
	}
}

func remove(list []menu.Node, n menu.Node) []menu.Node {
	out := list[:0]
	for _, v := range list {
		if v != n {
			out = append(out, v)
		}
	}
	return out
}
