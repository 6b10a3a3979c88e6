// Package index derives the searchable path list for a menu tree and caches
// it until the tree owner invalidates it.
package index

import (
	"errors"
	"strings"

	"github.com/trustme000777/niftymenu/pkg/menu"
)

// Separator joins ancestor titles in a path.
const Separator = "/"

// ErrNotReady is returned when the index is requested before a tree is attached.
var ErrNotReady = errors.New("index: menu tree not attached")

// Source supplies the roots of the tree being indexed.
type Source interface {
	Roots() []menu.Node
}

// Entry pairs a derived path with the node it was derived from.
type Entry struct {
	Path string
	Item menu.Node
}

// PathOf joins the non-empty titles of every strict ancestor of n, root first,
// followed by the title of n itself.
func PathOf(n menu.Node) string {
	if n == nil {
		return ""
	}
	ancestors := menu.Ancestors(n)
	parts := make([]string, 0, len(ancestors)+1)
	for i := len(ancestors) - 1; i >= 0; i-- {
		if title := ancestors[i].Title(); title != "" {
			parts = append(parts, title)
		}
	}
	parts = append(parts, n.Title())
	return strings.Join(parts, Separator)
}

// Build walks src in pre-order and returns one entry per node.
func Build(src Source) []Entry {
	if src == nil {
		return nil
	}
	var entries []Entry
	var visit func(nodes []menu.Node)
	visit = func(nodes []menu.Node) {
		for _, n := range nodes {
			entries = append(entries, Entry{Path: PathOf(n), Item: n})
			visit(n.Children())
		}
	}
	visit(src.Roots())
	return entries
}

// Indexer owns the cached path list for one tree.
type Indexer struct {
	source  Source
	entries []Entry
	valid   bool
	builds  int
}

// New returns an indexer for src. src may be nil and attached later.
func New(src Source) *Indexer {
	return &Indexer{source: src}
}

// Attach replaces the indexed tree and invalidates the cache.
func (ix *Indexer) Attach(src Source) {
	ix.source = src
	ix.Invalidate()
}

// Ready reports whether a tree is attached.
func (ix *Indexer) Ready() bool {
	return ix != nil && ix.source != nil
}

// Entries returns the cached path list, building it on first use. Until the
// next Invalidate the exact same slice is returned.
func (ix *Indexer) Entries() ([]Entry, error) {
	if !ix.Ready() {
		return nil, ErrNotReady
	}
	if !ix.valid {
		ix.entries = Build(ix.source)
		ix.valid = true
		ix.builds++
	}
	return ix.entries, nil
}

// Invalidate drops the cache; the next Entries call rebuilds it.
func (ix *Indexer) Invalidate() {
	ix.entries = nil
	ix.valid = false
}

// Rebuild invalidates and immediately rebuilds the cache.
func (ix *Indexer) Rebuild() ([]Entry, error) {
	ix.Invalidate()
	return ix.Entries()
}

// Paths returns the cached paths in index order.
func (ix *Indexer) Paths() ([]string, error) {
	entries, err := ix.Entries()
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths, nil
}

// Lookup returns the first node whose path equals path exactly. It fails with
// ErrNotReady when no tree is attached.
func (ix *Indexer) Lookup(path string) (menu.Node, bool, error) {
	entries, err := ix.Entries()
	if err != nil {
		return nil, false, err
	}
	for _, e := range entries {
		if e.Path == path {
			return e.Item, true, nil
		}
	}
	return nil, false, nil
}

// Builds returns how many indexing passes have run.
func (ix *Indexer) Builds() int {
	return ix.builds
}
