package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/trustme000777/niftymenu/pkg/index"
	"github.com/trustme000777/niftymenu/pkg/menu"
	"github.com/trustme000777/niftymenu/pkg/prefs"
)

// PrettyPrint writes menus, search results and preferences for humans.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// ShowShortcuts adds key chords next to items.
	ShowShortcuts bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " item")
	default:
		_, _ = c.Fprintln(pp.out(), " items")
	}
}

// Outline prints the menu as an indented tree.
func (pp *PrettyPrint) Outline(roots []menu.Node) {
	if len(roots) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	var walk func(nodes []menu.Node, depth int)
	walk = func(nodes []menu.Node, depth int) {
		for _, n := range nodes {
			indent := strings.Repeat("  ", depth)
			if depth == 0 {
				_, _ = bold.Fprint(pp.out(), indent+n.Title())
			} else {
				_, _ = fmt.Fprint(pp.out(), indent+"- "+n.Title())
			}
			if sc := menu.ShortcutOf(n); pp.ShowShortcuts && sc != "" {
				_, _ = faint.Fprint(pp.out(), "  "+sc)
			}
			_, _ = fmt.Fprintln(pp.out(), "")
			walk(n.Children(), depth+1)
		}
	}
	walk(roots, 0)
	pp.NewLine()
}

// Entries prints indexed paths as a numbered table.
func (pp *PrettyPrint) Entries(entries []index.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for i, e := range entries {
		row := []interface{}{faint.Sprintf("%d", i+1), e.Path}
		if pp.ShowShortcuts {
			row = append(row, faint.Sprint(menu.ShortcutOf(e.Item)))
		}
		tbl.AddRow(row...)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Prefs prints preference values in key order.
func (pp *PrettyPrint) Prefs(values map[string]string) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Preference"), bold.Sprint("Value"))
	for _, k := range prefs.Keys() {
		if v, ok := values[k]; ok {
			tbl.AddRow(k, v)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
