// Package settings reads and writes display preferences from the command line.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/trustme000777/niftymenu/pkg/prefs"
	"github.com/trustme000777/niftymenu/pkg/printers"
)

// Settings operates on one preference store.
type Settings struct {
	Store *prefs.Store
	JSON  bool
	Out   io.Writer
}

func (s *Settings) out() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return color.Output
}

// List prints every preference.
func (s *Settings) List(_ context.Context) error {
	if s.Store == nil {
		return errors.New("settings: no preference store")
	}
	return s.print(s.Store.All())
}

// Get prints the named preferences.
func (s *Settings) Get(_ context.Context, keys ...string) error {
	if s.Store == nil {
		return errors.New("settings: no preference store")
	}
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		v, ok := s.Store.Get(k)
		if !ok {
			return fmt.Errorf("%w: %q", prefs.ErrUnknownKey, k)
		}
		values[k] = v
	}
	return s.print(values)
}

// Set writes all changes in one save and prints the result.
func (s *Settings) Set(_ context.Context, changes map[string]interface{}) error {
	if s.Store == nil {
		return errors.New("settings: no preference store")
	}
	if err := s.Store.SetMany(changes); err != nil {
		return err
	}
	return s.print(s.Store.All())
}

func (s *Settings) print(values map[string]string) error {
	if s.JSON {
		b, err := json.Marshal(values)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(s.out(), string(b))
		return nil
	}
	pp := printers.PrettyPrint{Out: s.out()}
	pp.Prefs(values)
	return nil
}
