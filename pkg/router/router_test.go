package router

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/trustme000777/niftymenu/pkg/callout"
	"github.com/trustme000777/niftymenu/pkg/index"
	"github.com/trustme000777/niftymenu/pkg/menu"
	"github.com/trustme000777/niftymenu/pkg/prefs"
	"github.com/trustme000777/niftymenu/pkg/search"
)

type memoryBackend map[string][]byte

func (m memoryBackend) Read(key string) ([]byte, error) {
	v, ok := m[key]
	if !ok {
		return nil, os.ErrNotExist
	}
	return v, nil
}

func (m memoryBackend) Write(key string, val []byte) error {
	m[key] = val
	return nil
}

type harness struct {
	tree    *menu.Tree
	machine *callout.Machine
	router  *Router
	prefs   *prefs.Store
}

func newHarness(t *testing.T) harness {
	t.Helper()
	tree := menu.FromPaths(
		"File/New",
		"Insert/Table of Contents/Section",
		"Insert/Table of Contents/Subsection",
		"Help/Search",
	)
	store, err := prefs.Load(memoryBackend{})
	if err != nil {
		t.Fatalf("prefs: %v", err)
	}
	machine := callout.New(tree.SearchItem())
	resolver := search.NewResolver(index.New(tree))
	return harness{
		tree:    tree,
		machine: machine,
		router:  New(machine, resolver, store, Options{}),
		prefs:   store,
	}
}

func (h harness) dispatch(t *testing.T, ev Event) Result {
	t.Helper()
	res, err := h.router.Dispatch(ev)
	if err != nil {
		t.Fatalf("dispatch %s: %v", ev.Gesture, err)
	}
	if err := h.machine.Verify(); err != nil {
		t.Fatalf("after %s: %v", ev.Gesture, err)
	}
	return res
}

func TestClickOpensPathAndSecondClickCloses(t *testing.T) {
	h := newHarness(t)
	section := h.tree.ItemAt("Insert/Table of Contents/Section")

	res := h.dispatch(t, Event{Gesture: Click, Target: section})
	if res.Reveal != menu.Node(section) {
		t.Fatalf("expected section to be revealed")
	}
	if !h.machine.State(section).Clicked || !h.machine.State(h.tree.ItemAt("Insert")).Clicked {
		t.Fatalf("expected section path clicked")
	}

	h.dispatch(t, Event{Gesture: Click, Target: section})
	if h.machine.Active() != nil {
		t.Fatalf("clicking a clicked item clears the path")
	}
}

func TestModifierPriority(t *testing.T) {
	h := newHarness(t)
	item := h.tree.ItemAt("File/New")

	h.dispatch(t, Event{Gesture: Click, Target: item, Mods: Modifiers{Primary: true, Secondary: true}})
	if !h.machine.State(item).Checked || h.machine.Arrowed() != nil {
		t.Fatalf("primary modifier wins and only toggles the checkmark")
	}

	h.dispatch(t, Event{Gesture: Click, Target: item, Mods: Modifiers{Secondary: true}})
	if h.machine.Arrowed() != menu.Node(item) {
		t.Fatalf("secondary modifier toggles the arrow")
	}
	h.dispatch(t, Event{Gesture: Click, Target: item, Mods: Modifiers{Tertiary: true}})
	if h.machine.Arrowed() != nil || h.machine.ShortcutItem() != menu.Node(item) {
		t.Fatalf("tertiary modifier swaps the arrow for the shortcut callout")
	}
	if !h.machine.State(item).Checked {
		t.Fatalf("checkmark is independent of callouts")
	}
}

func TestDoubleClickEmphasizes(t *testing.T) {
	h := newHarness(t)
	item := h.tree.ItemAt("File/New")
	h.dispatch(t, Event{Gesture: DoubleClick, Target: item})
	if !h.machine.State(item).Emphasized {
		t.Fatalf("expected emphasis after double click")
	}
}

func TestBackgroundClickClearsPersist(t *testing.T) {
	h := newHarness(t)
	h.dispatch(t, Event{Gesture: FocusSearch})
	help := h.tree.ItemAt("Help")
	if !h.machine.State(help).Persist {
		t.Fatalf("expected persist after focusing search")
	}

	h.dispatch(t, Event{Gesture: Click, Target: h.tree.ItemAt("File")})
	if !h.machine.State(help).Persist {
		t.Fatalf("item clicks keep persist")
	}

	h.dispatch(t, Event{Gesture: Click})
	if h.machine.State(help).Persist || h.machine.Active() != nil {
		t.Fatalf("background click clears everything")
	}
}

func TestLiveSearch(t *testing.T) {
	h := newHarness(t)
	section := h.tree.ItemAt("Insert/Table of Contents/Section")
	h.dispatch(t, Event{Gesture: FocusSearch})

	h.dispatch(t, Event{Gesture: QueryChanged, Text: "t"})
	if h.machine.Highlighted() != nil {
		t.Fatalf("single characters do not search")
	}

	h.dispatch(t, Event{Gesture: QueryChanged, Text: "toc/section"})
	if h.machine.Highlighted() != menu.Node(section) {
		t.Fatalf("expected section highlighted")
	}
	if h.machine.State(section).Clicked {
		t.Fatalf("highlight must not click")
	}
	if !h.machine.State(h.tree.ItemAt("Help")).Persist {
		t.Fatalf("search keeps the persisted search item")
	}

	res := h.dispatch(t, Event{Gesture: Commit, Text: "toc/section"})
	if res.Reveal != menu.Node(section) || !h.machine.State(section).Clicked {
		t.Fatalf("commit promotes the match to clicked")
	}
	if h.machine.Highlighted() != nil {
		t.Fatalf("commit drops the transient highlight")
	}

	h.dispatch(t, Event{Gesture: Cancel})
	if h.router.Query() != "" || h.machine.Active() != nil || h.machine.State(h.tree.ItemAt("Help")).Persist {
		t.Fatalf("cancel clears query and all state")
	}
}

func TestBlankQueryKeepsPersist(t *testing.T) {
	h := newHarness(t)
	h.dispatch(t, Event{Gesture: FocusSearch})
	h.dispatch(t, Event{Gesture: QueryChanged, Text: "new"})
	h.dispatch(t, Event{Gesture: QueryChanged, Text: ""})
	if h.machine.Highlighted() != nil {
		t.Fatalf("blank query clears the highlight")
	}
	if !h.machine.State(h.tree.ItemAt("Help")).Persist {
		t.Fatalf("blank query leaves persist untouched")
	}
	h.dispatch(t, Event{Gesture: Blur})
	if h.machine.State(h.tree.ItemAt("Help")).Persist {
		t.Fatalf("blur releases persist")
	}
}

func TestEmptyCommitAfterEarlierSearchClicksNothing(t *testing.T) {
	h := newHarness(t)
	h.dispatch(t, Event{Gesture: FocusSearch})
	h.dispatch(t, Event{Gesture: QueryChanged, Text: "toc/section"})
	h.dispatch(t, Event{Gesture: Commit, Text: "toc/section"})
	if h.router.Query() != "" {
		t.Fatalf("commit ends the query, got %q", h.router.Query())
	}
	h.dispatch(t, Event{Gesture: Blur})

	h.dispatch(t, Event{Gesture: FocusSearch})
	res := h.dispatch(t, Event{Gesture: Commit, Text: ""})
	if res.Reveal != nil || h.machine.Active() != nil {
		t.Fatalf("empty commit must not click %q", index.PathOf(h.machine.Active()))
	}
	if !h.machine.State(h.tree.ItemAt("Help")).Persist {
		t.Fatalf("empty commit only clears transient state")
	}
}

func TestQueryForgottenWhenSearchRefocused(t *testing.T) {
	h := newHarness(t)
	h.dispatch(t, Event{Gesture: FocusSearch})
	h.dispatch(t, Event{Gesture: QueryChanged, Text: "new"})
	h.dispatch(t, Event{Gesture: Blur})
	if h.router.Query() != "" {
		t.Fatalf("blur forgets the query, got %q", h.router.Query())
	}
	h.dispatch(t, Event{Gesture: QueryChanged, Text: "new"})
	h.dispatch(t, Event{Gesture: FocusSearch})
	if h.router.Query() != "" {
		t.Fatalf("focusing search starts empty, got %q", h.router.Query())
	}
	h.dispatch(t, Event{Gesture: QueryChanged, Text: "sub"})
	h.router.Reset()
	if h.router.Query() != "" {
		t.Fatalf("reset forgets the query")
	}
}

func TestNoMatchClearsHighlight(t *testing.T) {
	h := newHarness(t)
	h.dispatch(t, Event{Gesture: QueryChanged, Text: "new"})
	if h.machine.Highlighted() == nil {
		t.Fatalf("expected a highlight")
	}
	h.dispatch(t, Event{Gesture: QueryChanged, Text: "qqzz"})
	if h.machine.Highlighted() != nil {
		t.Fatalf("no match clears the highlight")
	}
	res := h.dispatch(t, Event{Gesture: Commit, Text: "qqzz"})
	if res.Reveal != nil {
		t.Fatalf("commit without a match reveals nothing")
	}
}

func TestControlsPersistPreferences(t *testing.T) {
	h := newHarness(t)
	h.dispatch(t, Event{Gesture: Control, Control: ControlDarkMode})
	if !h.prefs.GetBool(prefs.DarkMode) {
		t.Fatalf("expected dark mode on")
	}
	h.dispatch(t, Event{Gesture: Control, Control: ControlBackground})
	if h.prefs.GetBool(prefs.BackgroundImage) {
		t.Fatalf("expected background image off")
	}
	h.dispatch(t, Event{Gesture: Control, Control: ControlExpose})
	if !h.prefs.GetBool(prefs.ExposeMode) {
		t.Fatalf("expected expose on")
	}
	h.dispatch(t, Event{Gesture: Control, Control: ControlArrowStyle})
	if h.router.ArrowStyle() != prefs.StyleCircle {
		t.Fatalf("expected circle arrow style")
	}
	h.dispatch(t, Event{Gesture: Control, Control: ControlArrowStyle})
	if h.router.ArrowStyle() != prefs.StyleArrow {
		t.Fatalf("expected arrow style back")
	}

	if _, err := h.router.Dispatch(Event{Gesture: Control, Control: "bogus"}); !errors.Is(err, ErrUnknownControl) {
		t.Fatalf("expected ErrUnknownControl, got %v", err)
	}
}

func TestDebugTrace(t *testing.T) {
	h := newHarness(t)
	var b strings.Builder
	h.router.SetDebugWriter(&b)
	h.dispatch(t, Event{Gesture: Click, Target: h.tree.ItemAt("File/New")})
	if !strings.Contains(b.String(), `click target="File/New"`) {
		t.Fatalf("expected click trace, got %q", b.String())
	}
}
