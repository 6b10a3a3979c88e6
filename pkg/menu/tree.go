package menu

import (
	"strings"
)

// DefaultSearchItem is the title of the top-level item that hosts the search
// field when no other is configured.
const DefaultSearchItem = "Help"

// Tree owns the root items of a menu and remembers which item hosts the search
// affordance.
type Tree struct {
	roots  []*Item
	search *Item
}

// NewTree returns a tree over the provided roots.
func NewTree(roots ...*Item) *Tree {
	t := &Tree{}
	for _, r := range roots {
		t.AddRoot(r)
	}
	return t
}

// AddRoot appends a top-level item.
func (t *Tree) AddRoot(item *Item) *Item {
	item.parent = nil
	t.roots = append(t.roots, item)
	return item
}

// Roots returns the top-level nodes in order.
func (t *Tree) Roots() []Node {
	if t == nil {
		return nil
	}
	out := make([]Node, len(t.roots))
	for idx, r := range t.roots {
		out[idx] = r
	}
	return out
}

// Items returns the concrete top-level items.
func (t *Tree) Items() []*Item {
	if t == nil {
		return nil
	}
	return t.roots
}

// SearchItem returns the designated search affordance, or nil.
func (t *Tree) SearchItem() Node {
	if t == nil || t.search == nil {
		return nil
	}
	return t.search
}

// SetSearchItem designates the item hosting the search field.
func (t *Tree) SetSearchItem(item *Item) {
	t.search = item
}

// DesignateSearch marks the item at the "/"-separated title path as the search
// affordance. It reports whether such an item exists.
func (t *Tree) DesignateSearch(path string) bool {
	item := t.ItemAt(path)
	t.search = item
	return item != nil
}

// ItemAt resolves an exact "/"-separated title path, matching titles case
// insensitively. Empty path segments are ignored.
func (t *Tree) ItemAt(path string) *Item {
	if t == nil {
		return nil
	}
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	level := t.roots
	var found *Item
	for _, part := range parts {
		found = nil
		for _, item := range level {
			if strings.EqualFold(item.title, part) {
				found = item
				break
			}
		}
		if found == nil {
			return nil
		}
		level = found.children
	}
	return found
}

// Walk visits every item in pre-order. Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(*Item) bool) {
	if t == nil {
		return
	}
	var visit func(items []*Item) bool
	visit = func(items []*Item) bool {
		for _, item := range items {
			if !fn(item) {
				return false
			}
			if !visit(item.children) {
				return false
			}
		}
		return true
	}
	visit(t.roots)
}

// Len returns the number of items in the tree.
func (t *Tree) Len() int {
	n := 0
	t.Walk(func(*Item) bool {
		n++
		return true
	})
	return n
}

// FromPaths builds a tree from "/"-separated title paths. Intermediate items
// are created on demand; sibling order follows first appearance.
func FromPaths(paths ...string) *Tree {
	t := &Tree{}
	for _, raw := range paths {
		var parent *Item
		for _, part := range strings.Split(raw, "/") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			var next *Item
			if parent == nil {
				for _, r := range t.roots {
					if r.title == part {
						next = r
						break
					}
				}
				if next == nil {
					next = t.AddRoot(NewItem(part))
				}
			} else {
				next = parent.Find(part)
				if next == nil {
					next = parent.Add(part)
				}
			}
			parent = next
		}
	}
	t.DesignateSearch(DefaultSearchItem)
	return t
}
