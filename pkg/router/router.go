// Package router turns input gestures into callout transitions, preference
// writes, and search queries.
package router

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/trustme000777/niftymenu/pkg/callout"
	"github.com/trustme000777/niftymenu/pkg/index"
	"github.com/trustme000777/niftymenu/pkg/menu"
	"github.com/trustme000777/niftymenu/pkg/prefs"
	"github.com/trustme000777/niftymenu/pkg/search"
)

// DefaultMinQuery is the shortest query that is matched against the index.
const DefaultMinQuery = 2

// Gesture enumerates the inputs the router understands.
type Gesture int

const (
	// Click is a single activation of an item or the background.
	Click Gesture = iota
	// DoubleClick is a double activation of an item or the background.
	DoubleClick
	// QueryChanged reports new text in the search field.
	QueryChanged
	// Commit confirms the search for Event.Text; empty text clears.
	Commit
	// Cancel abandons the current search.
	Cancel
	// FocusSearch opens the search affordance.
	FocusSearch
	// Blur reports that the search field lost focus.
	Blur
	// Control presses one of the display toggles.
	Control
)

var gestureNames = map[Gesture]string{
	Click:        "click",
	DoubleClick:  "dblclick",
	QueryChanged: "query",
	Commit:       "commit",
	Cancel:       "cancel",
	FocusSearch:  "focus-search",
	Blur:         "blur",
	Control:      "control",
}

func (g Gesture) String() string {
	if name, ok := gestureNames[g]; ok {
		return name
	}
	return fmt.Sprintf("gesture(%d)", int(g))
}

// Modifiers are the modifier keys held during a pointer gesture.
type Modifiers struct {
	// Primary toggles the checkmark.
	Primary bool
	// Secondary toggles the arrow.
	Secondary bool
	// Tertiary toggles the shortcut callout.
	Tertiary bool
}

// ControlID names a display toggle.
type ControlID string

const (
	ControlDarkMode   ControlID = "darkModeToggle"
	ControlExpose     ControlID = "exposeToggle"
	ControlBackground ControlID = "backgroundToggle"
	ControlArrowStyle ControlID = "arrowStyle"
)

// ErrUnknownControl is returned for Control gestures naming no toggle.
var ErrUnknownControl = errors.New("router: unrecognized control")

// Event is one discrete input.
type Event struct {
	Gesture Gesture
	// Target is the item under the pointer; nil means the background.
	Target  menu.Node
	Mods    Modifiers
	Text    string
	Control ControlID
}

// Result describes the outcome of a dispatched event.
type Result struct {
	// Reveal is the item the input collaborator should scroll into view.
	Reveal menu.Node
}

type handler func(r *Router, ev Event) (Result, error)

// dispatch is the gesture → handler table.
var dispatch = map[Gesture]handler{
	Click:        (*Router).pointer,
	DoubleClick:  (*Router).pointer,
	QueryChanged: (*Router).queryChanged,
	Commit:       (*Router).commit,
	Cancel:       (*Router).cancel,
	FocusSearch:  (*Router).focusSearch,
	Blur:         (*Router).blur,
	Control:      (*Router).control,
}

// Options configures a Router.
type Options struct {
	// MinQuery is the minimum query length, in runes, before resolving.
	MinQuery int
}

// Router forwards gestures to the callout machine, resolver, and preference
// store. Its only state is the current search query.
type Router struct {
	machine  *callout.Machine
	resolver *search.Resolver
	prefs    *prefs.Store

	minQuery int
	query    string

	debug io.Writer
}

// New wires a router. prefs may be nil, in which case Control gestures fail.
func New(machine *callout.Machine, resolver *search.Resolver, store *prefs.Store, opts Options) *Router {
	minQuery := opts.MinQuery
	if minQuery <= 0 {
		minQuery = DefaultMinQuery
	}
	return &Router{
		machine:  machine,
		resolver: resolver,
		prefs:    store,
		minQuery: minQuery,
	}
}

// SetDebugWriter configures an optional writer tracing dispatched events.
func (r *Router) SetDebugWriter(w io.Writer) {
	r.debug = w
}

func (r *Router) logf(format string, args ...interface{}) {
	if r.debug == nil {
		return
	}
	fmt.Fprintf(r.debug, "router: "+format+"\n", args...)
}

// Query returns the current search text.
func (r *Router) Query() string { return r.query }

// Reset forgets the current search text.
func (r *Router) Reset() { r.query = "" }

// MinQuery returns the minimum query length.
func (r *Router) MinQuery() int { return r.minQuery }

// Dispatch runs the handler registered for ev.Gesture to completion.
func (r *Router) Dispatch(ev Event) (Result, error) {
	h, ok := dispatch[ev.Gesture]
	if !ok {
		return Result{}, fmt.Errorf("router: no handler for %s", ev.Gesture)
	}
	r.logf("%s target=%q mods=%+v", ev.Gesture, index.PathOf(ev.Target), ev.Mods)
	return h(r, ev)
}

func (r *Router) pointer(ev Event) (Result, error) {
	item := ev.Target
	switch {
	case item != nil && ev.Mods.Primary:
		r.machine.ToggleCheckmark(item)
		return Result{}, nil
	case item != nil && ev.Mods.Secondary:
		r.machine.Toggle(item, callout.Arrow)
		return Result{}, nil
	case item != nil && ev.Mods.Tertiary:
		r.machine.Toggle(item, callout.Shortcut)
		return Result{}, nil
	}

	if item == nil {
		r.machine.ClearAll(true)
		return Result{}, nil
	}
	if r.machine.State(item).Clicked {
		r.machine.ClearAll(false)
		return Result{}, nil
	}
	r.machine.ClearAll(false)
	r.machine.Click(item)
	if ev.Gesture == DoubleClick {
		r.machine.Emphasize(item)
	}
	return Result{Reveal: item}, nil
}

func (r *Router) queryChanged(ev Event) (Result, error) {
	r.query = ev.Text
	if utf8.RuneCountInString(strings.TrimSpace(r.query)) < r.minQuery {
		r.machine.ClearAll(false)
		return Result{}, nil
	}
	match, err := r.resolver.Resolve(r.query)
	r.machine.ClearAll(false)
	if err != nil {
		return Result{}, err
	}
	if match != nil {
		r.machine.Highlight(match)
	}
	return Result{}, nil
}

func (r *Router) commit(ev Event) (Result, error) {
	// The committed text is taken as given; the session's query ends here.
	query := ev.Text
	r.query = ""
	if utf8.RuneCountInString(strings.TrimSpace(query)) < r.minQuery {
		r.machine.ClearAll(false)
		return Result{}, nil
	}
	match, err := r.resolver.Resolve(query)
	r.machine.ClearAll(false)
	if err != nil || match == nil {
		return Result{}, err
	}
	r.machine.Click(match)
	return Result{Reveal: match}, nil
}

func (r *Router) cancel(Event) (Result, error) {
	r.query = ""
	r.machine.ClearAll(true)
	return Result{}, nil
}

func (r *Router) focusSearch(Event) (Result, error) {
	r.query = ""
	r.machine.FocusSearch()
	return Result{Reveal: r.machine.SearchItem()}, nil
}

func (r *Router) blur(Event) (Result, error) {
	r.query = ""
	r.machine.ReleasePersist()
	return Result{}, nil
}
