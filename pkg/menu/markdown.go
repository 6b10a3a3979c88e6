package menu

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Option customises markdown loading.
type Option func(*loadOptions)

type loadOptions struct {
	searchItem string
}

// WithSearchItem selects the item (by "/"-separated title path) that hosts the
// search affordance. An empty path disables the search affordance.
func WithSearchItem(path string) Option {
	return func(o *loadOptions) {
		o.searchItem = path
	}
}

// LoadFile reads a markdown cheatsheet from disk.
func LoadFile(path string, opts ...Option) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("menu: read %s: %w", path, err)
	}
	return ParseMarkdown(data, opts...), nil
}

// ParseMarkdown builds a menu from nested markdown lists. Headings become
// top-level items that adopt the lists following them; lists before the
// first heading contribute top-level items directly. Inline code in an item's
// label is taken as its shortcut.
func ParseMarkdown(src []byte, opts ...Option) *Tree {
	config := &loadOptions{searchItem: DefaultSearchItem}
	for _, opt := range opts {
		opt(config)
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	t := &Tree{}
	var section *Item
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			label, shortcut := inlineLabel(node, src)
			section = t.AddRoot(NewItem(label).SetShortcut(shortcut))
		case *ast.List:
			for _, item := range listItems(node, src) {
				if section != nil {
					section.Append(item)
				} else {
					t.AddRoot(item)
				}
			}
		}
	}

	if config.searchItem != "" {
		t.DesignateSearch(config.searchItem)
	}
	return t
}

func listItems(list *ast.List, src []byte) []*Item {
	var out []*Item
	for n := list.FirstChild(); n != nil; n = n.NextSibling() {
		li, ok := n.(*ast.ListItem)
		if !ok {
			continue
		}
		out = append(out, listItem(li, src))
	}
	return out
}

func listItem(li *ast.ListItem, src []byte) *Item {
	item := &Item{}
	labeled := false
	for n := li.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.List:
			for _, child := range listItems(node, src) {
				item.Append(child)
			}
		case *ast.TextBlock, *ast.Paragraph:
			if labeled {
				continue
			}
			label, shortcut := inlineLabel(node, src)
			item.title = FirstLine(label)
			item.SetShortcut(shortcut)
			labeled = true
		}
	}
	return item
}

// inlineLabel flattens the inline content of a block into plain text,
// pulling code spans out as the shortcut.
func inlineLabel(block ast.Node, src []byte) (string, string) {
	var label, shortcut bytes.Buffer
	var collect func(n ast.Node, dst *bytes.Buffer)
	collect = func(n ast.Node, dst *bytes.Buffer) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch node := c.(type) {
			case *ast.Text:
				dst.Write(node.Segment.Value(src))
				if node.SoftLineBreak() || node.HardLineBreak() {
					dst.WriteByte('\n')
				}
			case *ast.String:
				dst.Write(node.Value)
			case *ast.CodeSpan:
				if shortcut.Len() > 0 {
					shortcut.WriteByte(' ')
				}
				collect(node, &shortcut)
			default:
				collect(node, dst)
			}
		}
	}
	collect(block, &label)
	return collapseSpaces(label.String()), strings.TrimSpace(shortcut.String())
}

// collapseSpaces squeezes runs of blanks left behind by removed code spans
// while preserving line breaks.
func collapseSpaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Join(lines, "\n")
}
