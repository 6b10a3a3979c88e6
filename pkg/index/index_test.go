package index

import (
	"errors"
	"testing"

	"github.com/trustme000777/niftymenu/pkg/menu"
)

func sampleTree() *menu.Tree {
	return menu.FromPaths(
		"File/New",
		"File/Open Recent/Clear Menu",
		"Insert/Table of Contents/Section",
		"Insert/Table of Contents/Subsection",
		"Help/Search",
	)
}

func TestEntriesFollowPreOrder(t *testing.T) {
	ix := New(sampleTree())
	paths, err := ix.Paths()
	if err != nil {
		t.Fatalf("paths: %v", err)
	}
	want := []string{
		"File",
		"File/New",
		"File/Open Recent",
		"File/Open Recent/Clear Menu",
		"Insert",
		"Insert/Table of Contents",
		"Insert/Table of Contents/Section",
		"Insert/Table of Contents/Subsection",
		"Help",
		"Help/Search",
	}
	if len(paths) != len(want) {
		t.Fatalf("expected %d paths, got %d: %v", len(want), len(paths), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("path %d: expected %q, got %q", i, want[i], paths[i])
		}
	}
}

func TestEntriesAreCachedUntilInvalidated(t *testing.T) {
	ix := New(sampleTree())
	first, err := ix.Entries()
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	second, err := ix.Entries()
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if &first[0] != &second[0] {
		t.Fatalf("expected the cached slice to be returned")
	}
	if ix.Builds() != 1 {
		t.Fatalf("expected one build, got %d", ix.Builds())
	}

	ix.Invalidate()
	third, err := ix.Entries()
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if ix.Builds() != 2 {
		t.Fatalf("expected a rebuild after invalidate, got %d builds", ix.Builds())
	}
	if len(third) != len(first) {
		t.Fatalf("expected deterministic length")
	}
	for i := range first {
		if first[i] != third[i] {
			t.Fatalf("entry %d differs after rebuild: %+v vs %+v", i, first[i], third[i])
		}
	}
}

func TestPathRoundTrip(t *testing.T) {
	ix := New(sampleTree())
	entries, err := ix.Rebuild()
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	for _, e := range entries {
		if got := PathOf(e.Item); got != e.Path {
			t.Fatalf("round trip mismatch: %q vs %q", got, e.Path)
		}
	}
}

func TestEmptyAncestorTitlesAreSkipped(t *testing.T) {
	root := menu.NewItem("")
	leaf := root.Add("Child").Add("Leaf")
	tree := menu.NewTree(root)
	if got := PathOf(leaf); got != "Child/Leaf" {
		t.Fatalf("expected Child/Leaf, got %q", got)
	}
	node, ok, err := New(tree).Lookup("Child/Leaf")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !ok || node != menu.Node(leaf) {
		t.Fatalf("expected lookup to find the leaf")
	}
}

func TestNotReady(t *testing.T) {
	ix := New(nil)
	if _, err := ix.Entries(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
	if _, ok, err := ix.Lookup("File"); ok || !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected lookup to fail with ErrNotReady, got %v %v", ok, err)
	}
	ix.Attach(sampleTree())
	if _, err := ix.Entries(); err != nil {
		t.Fatalf("expected entries after attach, got %v", err)
	}
	if _, ok, err := ix.Lookup("No/Such/Path"); ok || err != nil {
		t.Fatalf("an absent path is a plain miss, got %v %v", ok, err)
	}
}
