package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/trustme000777/niftymenu/pkg/callout"
	"github.com/trustme000777/niftymenu/pkg/index"
	"github.com/trustme000777/niftymenu/pkg/menu"
	"github.com/trustme000777/niftymenu/pkg/prefs"
	"github.com/trustme000777/niftymenu/pkg/router"
	"github.com/trustme000777/niftymenu/pkg/search"
	"github.com/trustme000777/niftymenu/pkg/store"
)

// Service wires the menu tree, index, callouts and preferences together so
// the CLI and the TUI can share one set of operations.
type Service struct {
	Tree     *menu.Tree
	Index    *index.Indexer
	Resolver *search.Resolver
	Callouts *callout.Machine
	Prefs    *prefs.Store
	Router   *router.Router

	// MenuPath is the cheatsheet the tree was read from; empty for the
	// built-in menu.
	MenuPath string

	searchItem string
}

// Options tune how a Service searches.
type Options struct {
	MinQuery      int
	TypoTolerance bool
	// SearchItem is the title path of the item hosting the search field.
	SearchItem string
}

var errNoTree = errors.New("app: no menu loaded")

// New builds a service over tree and the preference store p.
func New(tree *menu.Tree, p *prefs.Store, opts Options) (*Service, error) {
	if tree == nil {
		return nil, errNoTree
	}
	if p == nil {
		return nil, errors.New("app: no preference store configured")
	}
	ix := index.New(tree)
	resolver := search.NewResolver(ix, search.WithTypoTolerance(opts.TypoTolerance))
	machine := callout.New(tree.SearchItem())
	searchItem := opts.SearchItem
	if searchItem == "" {
		searchItem = menu.DefaultSearchItem
	}
	return &Service{
		Tree:       tree,
		Index:      ix,
		Resolver:   resolver,
		Callouts:   machine,
		Prefs:      p,
		Router:     router.New(machine, resolver, p, router.Options{MinQuery: opts.MinQuery}),
		searchItem: searchItem,
	}, nil
}

// Load reads the configured cheatsheet and preference record. Without a
// configured menu the built-in cheatsheet is used.
func Load(cfg store.Config) (*Service, error) {
	opt := menu.WithSearchItem(cfg.SearchItem())
	var tree *menu.Tree
	if path := cfg.MenuPath(); path != "" {
		t, err := menu.LoadFile(path, opt)
		if err != nil {
			return nil, err
		}
		tree = t
	} else {
		tree = menu.ParseMarkdown([]byte(DefaultMenu), opt)
	}

	p, err := prefs.Open(cfg.PrefsPath())
	if err != nil {
		return nil, err
	}
	s, err := New(tree, p, Options{
		MinQuery:      cfg.MinQuery(),
		TypoTolerance: cfg.TypoTolerance(),
		SearchItem:    cfg.SearchItem(),
	})
	if err != nil {
		return nil, err
	}
	s.MenuPath = cfg.MenuPath()
	return s, nil
}

// SetDebugWriter routes the callout and router traces to w.
func (s *Service) SetDebugWriter(w io.Writer) {
	s.Callouts.SetDebugWriter(w)
	s.Router.SetDebugWriter(w)
	s.Prefs.SetDebugWriter(w)
}

// Reload swaps in a new tree. The index is rebuilt on next use and all
// overlay state and the search query are dropped; preferences are kept.
func (s *Service) Reload(tree *menu.Tree) error {
	if tree == nil {
		return errNoTree
	}
	s.Tree = tree
	s.Index.Attach(tree)
	s.Callouts.Reset(tree.SearchItem())
	s.Router.Reset()
	return nil
}

// ReloadFile re-reads MenuPath and reloads the tree from it.
func (s *Service) ReloadFile() error {
	if s.MenuPath == "" {
		return errors.New("app: menu path unknown")
	}
	tree, err := menu.LoadFile(s.MenuPath, menu.WithSearchItem(s.searchItem))
	if err != nil {
		return err
	}
	return s.Reload(tree)
}

// Watch subscribes to changes of the menu file.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.MenuPath == "" {
		return nil, errors.New("app: menu path unknown")
	}
	return store.WatchMenu(ctx, s.MenuPath)
}

// Dispatch forwards ev to the router.
func (s *Service) Dispatch(ev router.Event) (router.Result, error) {
	return s.Router.Dispatch(ev)
}

// Click resolves query and clicks the best match. A forced or blank query
// clicks the background, clearing every callout including search persistence.
// It returns the matched item, or nil when nothing matched. Clicking an item
// that is already clicked closes its path; the item is still returned.
func (s *Service) Click(query string, force bool) (menu.Node, error) {
	return s.pointer(router.Click, query, force)
}

// DoubleClick is Click followed by emphasis of the match.
func (s *Service) DoubleClick(query string, force bool) (menu.Node, error) {
	return s.pointer(router.DoubleClick, query, force)
}

func (s *Service) pointer(g router.Gesture, query string, force bool) (menu.Node, error) {
	if force || search.Blank(query) {
		_, err := s.Router.Dispatch(router.Event{Gesture: g})
		return nil, err
	}
	item, err := s.Resolver.Resolve(query)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if _, err := s.Router.Dispatch(router.Event{Gesture: g, Target: item}); err != nil {
		return nil, fmt.Errorf("app: %s %q: %w", g, index.PathOf(item), err)
	}
	return item, nil
}

// Find resolves query without touching any callout.
func (s *Service) Find(query string) (index.Entry, bool, error) {
	return s.Resolver.Match(query)
}

// Rank returns every entry matching query, best first.
func (s *Service) Rank(query string) ([]index.Entry, error) {
	return s.Resolver.Rank(query)
}

// Lookup returns the item at the exact path. A Service always has a tree
// attached, so a miss means the path is absent.
func (s *Service) Lookup(path string) (menu.Node, bool) {
	n, ok, err := s.Index.Lookup(path)
	return n, ok && err == nil
}

// Entries returns the indexed paths in menu order.
func (s *Service) Entries() ([]index.Entry, error) {
	return s.Index.Entries()
}
