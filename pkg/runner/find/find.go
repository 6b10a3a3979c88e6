// Package find resolves menu queries from the command line.
package find

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/trustme000777/niftymenu/pkg/app"
	"github.com/trustme000777/niftymenu/pkg/index"
	"github.com/trustme000777/niftymenu/pkg/menu"
	"github.com/trustme000777/niftymenu/pkg/printers"
)

// ErrNoMatch is returned when a query matches no item.
var ErrNoMatch = errors.New("find: no matching item")

// Find resolves Query against the menu.
type Find struct {
	Service *app.Service
	Query   string
	// All lists every match best first instead of the winner only.
	All bool
	// Click runs the query through the click automation, DoubleClick through
	// the double-click one; the resulting clicked path is printed.
	Click       bool
	DoubleClick bool
	Force       bool
	JSON        bool
	Out         io.Writer
}

type result struct {
	Path     string   `json:"path"`
	Shortcut string   `json:"shortcut,omitempty"`
	Clicked  []string `json:"clicked,omitempty"`
}

func (f *Find) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return color.Output
}

// Do runs the query and prints the outcome.
func (f *Find) Do(_ context.Context) error {
	if f.Service == nil {
		return errors.New("find: no menu loaded")
	}
	switch {
	case f.Click || f.DoubleClick:
		return f.click()
	case f.All:
		return f.rank()
	}

	entry, ok, err := f.Service.Find(f.Query)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoMatch, f.Query)
	}
	return f.print([]result{toResult(entry)})
}

func (f *Find) rank() error {
	entries, err := f.Service.Rank(f.Query)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("%w: %q", ErrNoMatch, f.Query)
	}
	if !f.JSON {
		pp := printers.PrettyPrint{Out: f.out(), ShowShortcuts: true}
		pp.TitleWithCount(f.Query, len(entries))
		pp.Entries(entries)
		return nil
	}
	out := make([]result, 0, len(entries))
	for _, e := range entries {
		out = append(out, toResult(e))
	}
	return f.print(out)
}

func (f *Find) click() error {
	var (
		item menu.Node
		err  error
	)
	if f.DoubleClick {
		item, err = f.Service.DoubleClick(f.Query, f.Force)
	} else {
		item, err = f.Service.Click(f.Query, f.Force)
	}
	if err != nil {
		return err
	}
	if item == nil {
		if f.Force || f.Query == "" {
			return f.print(nil)
		}
		return fmt.Errorf("%w: %q", ErrNoMatch, f.Query)
	}
	r := result{Path: index.PathOf(item), Shortcut: menu.ShortcutOf(item)}
	for _, n := range f.Service.Callouts.ClickedPath() {
		r.Clicked = append(r.Clicked, index.PathOf(n))
	}
	return f.print([]result{r})
}

func (f *Find) print(results []result) error {
	if f.JSON {
		if results == nil {
			results = []result{}
		}
		b, err := json.Marshal(results)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(f.out(), string(b))
		return nil
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	for _, r := range results {
		_, _ = bold.Fprint(f.out(), r.Path)
		if r.Shortcut != "" {
			_, _ = faint.Fprint(f.out(), "  "+r.Shortcut)
		}
		_, _ = fmt.Fprintln(f.out(), "")
		for _, c := range r.Clicked {
			_, _ = faint.Fprintln(f.out(), "  clicked "+c)
		}
	}
	return nil
}

func toResult(e index.Entry) result {
	return result{Path: e.Path, Shortcut: menu.ShortcutOf(e.Item)}
}
