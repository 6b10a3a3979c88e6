package callout

import (
	"math/rand"
	"testing"

	"github.com/trustme000777/niftymenu/pkg/menu"
)

type fixture struct {
	tree       *menu.Tree
	file       *menu.Item
	newItem    *menu.Item
	toc        *menu.Item
	section    *menu.Item
	subsection *menu.Item
	help       *menu.Item
}

func newFixture() fixture {
	tree := menu.FromPaths(
		"File/New",
		"Insert/Table of Contents/Section",
		"Insert/Table of Contents/Subsection",
		"Help/Search",
	)
	return fixture{
		tree:       tree,
		file:       tree.ItemAt("File"),
		newItem:    tree.ItemAt("File/New"),
		toc:        tree.ItemAt("Insert/Table of Contents"),
		section:    tree.ItemAt("Insert/Table of Contents/Section"),
		subsection: tree.ItemAt("Insert/Table of Contents/Subsection"),
		help:       tree.ItemAt("Help"),
	}
}

func mustVerify(t *testing.T, m *Machine) {
	t.Helper()
	if err := m.Verify(); err != nil {
		t.Fatalf("invariant violated: %v", err)
	}
}

func TestActivateArrowThenShortcut(t *testing.T) {
	f := newFixture()
	m := New(f.tree.SearchItem())

	m.Activate(f.newItem, Arrow)
	if !m.State(f.newItem).Arrow || !m.State(f.file).Clicked {
		t.Fatalf("expected arrow on New with File clicked")
	}
	mustVerify(t, m)

	m.Activate(f.section, Shortcut)
	if m.State(f.newItem).Arrow {
		t.Fatalf("expected arrow to be cleared")
	}
	if !m.State(f.section).Shortcut {
		t.Fatalf("expected shortcut callout on Section")
	}
	for _, n := range []*menu.Item{f.section, f.toc, f.tree.ItemAt("Insert")} {
		if !m.State(n).Clicked {
			t.Fatalf("expected %q to be clicked", n.Title())
		}
	}
	if !m.State(f.toc).AncestorOfClicked || m.State(f.section).AncestorOfClicked {
		t.Fatalf("unexpected ancestor flags")
	}
	if m.State(f.file).Clicked || m.State(f.newItem).Clicked {
		t.Fatalf("expected the previous clicked path to be cleared")
	}
	if m.Arrowed() != nil || m.ShortcutItem() != menu.Node(f.section) {
		t.Fatalf("unexpected callout owners")
	}
	mustVerify(t, m)
}

func TestArrowDirection(t *testing.T) {
	f := newFixture()
	m := New(nil)
	m.Activate(f.toc, Arrow)
	if m.State(f.toc).Direction != Left {
		t.Fatalf("expected left arrow for an item with children")
	}
	m.Activate(f.section, Arrow)
	if m.State(f.section).Direction != Right {
		t.Fatalf("expected right arrow for a leaf")
	}
}

func TestDeactivateIsIdempotent(t *testing.T) {
	f := newFixture()
	m := New(nil)
	m.Activate(f.section, Arrow)
	m.Deactivate(Arrow)
	once := m.State(f.section)
	m.Deactivate(Arrow)
	if m.State(f.section) != once {
		t.Fatalf("second deactivate changed state")
	}
	if once.Arrow || !once.Clicked {
		t.Fatalf("deactivate should only remove the arrow, got %+v", once)
	}
	m.Deactivate(Shortcut)
	mustVerify(t, m)
}

func TestToggle(t *testing.T) {
	f := newFixture()
	m := New(nil)

	m.Toggle(f.section, Arrow)
	if !m.Holds(f.section, Arrow) {
		t.Fatalf("expected arrow after first toggle")
	}
	m.Toggle(f.section, Arrow)
	if m.Holds(f.section, Arrow) || m.Arrowed() != nil {
		t.Fatalf("expected arrow removed after second toggle")
	}

	m.Toggle(f.newItem, Shortcut)
	m.Toggle(f.section, Arrow)
	if m.ShortcutItem() != nil {
		t.Fatalf("toggling the arrow must clear the shortcut callout")
	}
	if !m.Holds(f.section, Arrow) {
		t.Fatalf("expected arrow on Section")
	}
	mustVerify(t, m)
}

func TestToggleCheckmarkIsLocal(t *testing.T) {
	f := newFixture()
	m := New(nil)
	m.Activate(f.newItem, Arrow)
	before := map[menu.Node]State{}
	f.tree.Walk(func(i *menu.Item) bool {
		before[i] = m.State(i)
		return true
	})

	if !m.ToggleCheckmark(f.section) {
		t.Fatalf("expected first toggle to check")
	}
	if m.ToggleCheckmark(f.section) {
		t.Fatalf("expected second toggle to uncheck")
	}
	f.tree.Walk(func(i *menu.Item) bool {
		if m.State(i) != before[i] {
			t.Fatalf("state of %q changed: %+v vs %+v", i.Title(), m.State(i), before[i])
		}
		return true
	})

	m.ToggleCheckmark(f.section)
	m.ToggleCheckmark(f.newItem)
	if got := m.Checked(); len(got) != 2 || got[0] != menu.Node(f.section) {
		t.Fatalf("expected two checked items in order, got %d", len(got))
	}
}

func TestClearAllPersist(t *testing.T) {
	f := newFixture()
	m := New(f.help)

	m.FocusSearch()
	if !m.State(f.help).Persist || !m.State(f.help).Clicked {
		t.Fatalf("expected search item to be clicked and persisted")
	}
	mustVerify(t, m)

	m.ClearAll(false)
	if !m.State(f.help).Persist {
		t.Fatalf("persist must survive ClearAll(false)")
	}
	if m.State(f.help).Clicked || m.Active() != nil {
		t.Fatalf("expected clicked path cleared")
	}
	if !m.Open(f.help) {
		t.Fatalf("persisted item stays open")
	}

	m.ClearAll(true)
	if m.State(f.help).Persist {
		t.Fatalf("persist must be cleared by ClearAll(true)")
	}
	mustVerify(t, m)
}

func TestHighlightAndEmphasis(t *testing.T) {
	f := newFixture()
	m := New(nil)

	m.Highlight(f.section)
	if m.State(f.section).Clicked {
		t.Fatalf("highlight is not a click")
	}
	if !m.Open(f.toc) || !m.Open(f.tree.ItemAt("Insert")) {
		t.Fatalf("ancestors of the highlight are open")
	}
	m.Highlight(f.newItem)
	if m.State(f.section).Highlighted {
		t.Fatalf("only one highlight at a time")
	}

	if m.Emphasize(f.newItem) {
		t.Fatalf("cannot emphasize an item that is not active")
	}
	m.Click(f.newItem)
	if m.Highlighted() != nil {
		t.Fatalf("click clears the transient highlight")
	}
	if !m.Emphasize(f.newItem) || !m.State(f.newItem).Emphasized {
		t.Fatalf("expected emphasis on the active item")
	}
	m.Click(f.section)
	if m.State(f.newItem).Emphasized {
		t.Fatalf("emphasis follows the active item")
	}
	mustVerify(t, m)
}

func TestResetDropsEverything(t *testing.T) {
	f := newFixture()
	m := New(f.help)
	m.Activate(f.section, Arrow)
	m.ToggleCheckmark(f.newItem)
	m.FocusSearch()
	m.Reset(nil)
	f.tree.Walk(func(i *menu.Item) bool {
		if m.State(i) != (State{}) {
			t.Fatalf("expected %q reset", i.Title())
		}
		return true
	})
	if m.SearchItem() != nil || len(m.Checked()) != 0 {
		t.Fatalf("expected empty machine after reset")
	}
}

func TestRandomTransitionsKeepInvariants(t *testing.T) {
	f := newFixture()
	var items []menu.Node
	f.tree.Walk(func(i *menu.Item) bool {
		items = append(items, i)
		return true
	})
	m := New(f.help)
	rng := rand.New(rand.NewSource(7))
	for step := 0; step < 2000; step++ {
		item := items[rng.Intn(len(items))]
		kind := Kind(rng.Intn(2))
		switch rng.Intn(10) {
		case 0:
			m.Activate(item, kind)
		case 1:
			m.Deactivate(kind)
		case 2:
			m.Toggle(item, kind)
		case 3:
			m.ToggleCheckmark(item)
		case 4:
			m.ClearAll(rng.Intn(2) == 0)
		case 5:
			m.Click(item)
		case 6:
			m.Emphasize(item)
		case 7:
			m.Highlight(item)
		case 8:
			m.FocusSearch()
		case 9:
			m.ReleasePersist()
		}
		if err := m.Verify(); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
	}
}
