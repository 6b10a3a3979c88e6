// Package outline prints the indexed menu.
package outline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/trustme000777/niftymenu/pkg/app"
	"github.com/trustme000777/niftymenu/pkg/printers"
)

// Outline lists every menu path, or the menu as a tree.
type Outline struct {
	Service *app.Service
	Tree    bool
	JSON    bool
	Out     io.Writer
}

func (o *Outline) Do(_ context.Context) error {
	if o.Service == nil {
		return errors.New("outline: no menu loaded")
	}
	out := o.Out
	if out == nil {
		out = color.Output
	}
	entries, err := o.Service.Entries()
	if err != nil {
		return err
	}

	if o.JSON {
		paths := make([]string, 0, len(entries))
		for _, e := range entries {
			paths = append(paths, e.Path)
		}
		b, err := json.Marshal(paths)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: out, ShowShortcuts: true}
	title := "Menu"
	if o.Service.MenuPath != "" {
		title = o.Service.MenuPath
	}
	pp.TitleWithCount(title, len(entries))
	if o.Tree {
		pp.Outline(o.Service.Tree.Roots())
		return nil
	}
	pp.Entries(entries)
	return nil
}
