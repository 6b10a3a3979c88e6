// Package menu models the hierarchical cheatsheet menu as a tree of items.
package menu

import (
	"strings"
)

// Node is the read-only view of a menu item the indexing, search, and callout
// layers consume. Implementations must be pointer-like so nodes can be used
// as map keys.
type Node interface {
	Title() string
	Children() []Node
	Parent() Node
}

// Item is the concrete menu node.
type Item struct {
	title    string
	shortcut string
	parent   *Item
	children []*Item
}

// NewItem creates a detached item. Only the first line of label is kept as
// the title.
func NewItem(label string) *Item {
	return &Item{title: FirstLine(label)}
}

// FirstLine returns the first line of s with surrounding whitespace removed.
func FirstLine(s string) string {
	if idx := strings.IndexAny(s, "\r\n"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// Title implements Node.
func (i *Item) Title() string { return i.title }

// Shortcut returns the key chord displayed next to the item, if any.
func (i *Item) Shortcut() string { return i.shortcut }

// SetShortcut assigns the key chord displayed next to the item.
func (i *Item) SetShortcut(s string) *Item {
	i.shortcut = strings.TrimSpace(s)
	return i
}

// Children implements Node.
func (i *Item) Children() []Node {
	if len(i.children) == 0 {
		return nil
	}
	out := make([]Node, len(i.children))
	for idx, child := range i.children {
		out[idx] = child
	}
	return out
}

// Items returns the concrete children.
func (i *Item) Items() []*Item { return i.children }

// Parent implements Node. Roots return a nil Node, never a typed nil.
func (i *Item) Parent() Node {
	if i.parent == nil {
		return nil
	}
	return i.parent
}

// Append attaches child under i and returns the child.
func (i *Item) Append(child *Item) *Item {
	child.parent = i
	i.children = append(i.children, child)
	return child
}

// Add creates a child with the given label.
func (i *Item) Add(label string) *Item {
	return i.Append(NewItem(label))
}

// Find returns the first direct child titled title.
func (i *Item) Find(title string) *Item {
	for _, child := range i.children {
		if child.title == title {
			return child
		}
	}
	return nil
}

// ShortcutOf returns the key chord of n when it carries one.
func ShortcutOf(n Node) string {
	if s, ok := n.(interface{ Shortcut() string }); ok {
		return s.Shortcut()
	}
	return ""
}

// HasChildren reports whether n has at least one child.
func HasChildren(n Node) bool {
	return n != nil && len(n.Children()) > 0
}

// Ancestors returns the strict ancestors of n, nearest first.
func Ancestors(n Node) []Node {
	var out []Node
	if n == nil {
		return out
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		out = append(out, p)
	}
	return out
}

// Depth returns the number of strict ancestors of n.
func Depth(n Node) int {
	return len(Ancestors(n))
}

// IsAncestor reports whether a is a strict ancestor of n.
func IsAncestor(a, n Node) bool {
	if a == nil || n == nil {
		return false
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p == a {
			return true
		}
	}
	return false
}
