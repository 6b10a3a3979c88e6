// Package prefs persists the handful of display toggles the menu remembers
// between runs.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"github.com/spf13/cast"
)

// RecordKey is the single namespaced storage key holding every preference.
const RecordKey = "niftymenu.prefs"

// Recognised preference keys.
const (
	ArrowStyle      = "arrowStyle"
	BackgroundImage = "backgroundImage"
	ExposeMode      = "exposeMode"
	DarkMode        = "darkMode"
)

// Arrow styles.
const (
	StyleArrow  = "arrow"
	StyleCircle = "circle"
)

// ErrUnknownKey is returned by Set for keys outside the fixed key set.
var ErrUnknownKey = errors.New("prefs: unknown key")

// ErrInvalidValue is returned by Set for values outside a key's allowed set.
var ErrInvalidValue = errors.New("prefs: invalid value")

var defaults = map[string]string{
	ArrowStyle:      StyleArrow,
	BackgroundImage: "1",
	ExposeMode:      "0",
	DarkMode:        "0",
}

var affirmative = regexp.MustCompile(`(?i)^\s*(y|yes|true|on)\s*$`)

// Defaults returns a copy of the static default record.
func Defaults() map[string]string {
	out := make(map[string]string, len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	return out
}

// Keys returns the recognised keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Known reports whether key is a recognised preference.
func Known(key string) bool {
	_, ok := defaults[key]
	return ok
}

// IsBool reports whether key holds a boolean toggle.
func IsBool(key string) bool {
	return Known(key) && key != ArrowStyle
}

// Normalize validates value for key and returns its stored form: "arrow" or
// "circle" for the arrow style, "1" or "0" for boolean toggles.
func Normalize(key string, value interface{}) (string, error) {
	if !Known(key) {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	str, err := cast.ToStringE(value)
	if err != nil {
		return "", fmt.Errorf("prefs: value for %q: %w", key, err)
	}
	if key == ArrowStyle {
		switch v := strings.ToLower(strings.TrimSpace(str)); v {
		case StyleArrow, StyleCircle:
			return v, nil
		}
		return "", fmt.Errorf("%w: %s=%q (want %s or %s)", ErrInvalidValue, key, str, StyleArrow, StyleCircle)
	}
	if Truthy(str) {
		return "1", nil
	}
	return "0", nil
}

// Backend is the durable key-value storage behind a Store. *diskv.Diskv
// satisfies it.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
}

// Store holds the preference record in memory and writes it through to the
// backend on every mutation.
type Store struct {
	backend Backend
	values  map[string]string
	debug   io.Writer
}

// Open loads the record kept under basePath.
func Open(basePath string) (*Store, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("prefs: base path required")
	}
	d := diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 64 * 1024,
	})
	return Load(d)
}

// Load reads the record from backend, filling missing keys from defaults. A
// missing or unreadable record is replaced by the defaults and written back.
func Load(backend Backend) (*Store, error) {
	if backend == nil {
		return nil, errors.New("prefs: backend required")
	}
	s := &Store{backend: backend, values: Defaults()}
	if data, err := backend.Read(RecordKey); err == nil {
		stored, err := decode(data)
		if err == nil {
			for k, v := range stored {
				if norm, err := Normalize(k, v); err == nil {
					s.values[k] = norm
				}
			}
		}
	}
	if err := s.save(); err != nil {
		return nil, err
	}
	return s, nil
}

func decode(data []byte) (map[string]string, error) {
	raw := map[string]interface{}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		str, err := cast.ToStringE(v)
		if err != nil {
			continue
		}
		out[k] = str
	}
	return out, nil
}

// SetDebugWriter configures an optional writer for diagnostic output.
func (s *Store) SetDebugWriter(w io.Writer) {
	s.debug = w
}

func (s *Store) logf(format string, args ...interface{}) {
	if s.debug == nil {
		return
	}
	fmt.Fprintf(s.debug, "prefs: "+format+"\n", args...)
}

// Get returns the raw value for key. Unknown keys report false.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// GetBool coerces the value for key: a non-zero number or an affirmative
// word is true, anything else (including unknown keys) is false.
func (s *Store) GetBool(key string) bool {
	v, ok := s.values[key]
	if !ok {
		return false
	}
	return Truthy(v)
}

// Truthy applies the preference boolean coercion to v.
func Truthy(v string) bool {
	if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
		return f != 0
	}
	return affirmative.MatchString(v)
}

// Set stores value under key and persists the record.
func (s *Store) Set(key string, value interface{}) error {
	return s.SetMany(map[string]interface{}{key: value})
}

// SetMany applies several changes with a single write. Nothing is stored
// unless every change is valid.
func (s *Store) SetMany(changes map[string]interface{}) error {
	next := make(map[string]string, len(changes))
	for k, v := range changes {
		str, err := Normalize(k, v)
		if err != nil {
			return err
		}
		next[k] = str
	}
	for k, v := range next {
		s.values[k] = v
		s.logf("set %s=%q", k, v)
	}
	return s.save()
}

// Toggle flips a boolean preference and returns the new value.
func (s *Store) Toggle(key string) (bool, error) {
	if !Known(key) {
		return false, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if !IsBool(key) {
		return false, fmt.Errorf("%w: %q is not a toggle", ErrInvalidValue, key)
	}
	next := !s.GetBool(key)
	value := 0
	if next {
		value = 1
	}
	if err := s.Set(key, value); err != nil {
		return !next, err
	}
	return next, nil
}

// All returns a copy of the current record.
func (s *Store) All() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

func (s *Store) save() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return err
	}
	if err := s.backend.Write(RecordKey, data); err != nil {
		return fmt.Errorf("prefs: write record: %w", err)
	}
	return nil
}
