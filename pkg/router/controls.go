package router

import (
	"errors"
	"fmt"

	"github.com/trustme000777/niftymenu/pkg/prefs"
)

var controlPrefs = map[ControlID]string{
	ControlDarkMode:   prefs.DarkMode,
	ControlExpose:     prefs.ExposeMode,
	ControlBackground: prefs.BackgroundImage,
}

func (r *Router) control(ev Event) (Result, error) {
	if r.prefs == nil {
		return Result{}, errors.New("router: no preference store configured")
	}
	if ev.Control == ControlArrowStyle {
		_, err := r.ToggleArrowStyle()
		return Result{}, err
	}
	key, ok := controlPrefs[ev.Control]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownControl, ev.Control)
	}
	on, err := r.prefs.Toggle(key)
	if err != nil {
		return Result{}, err
	}
	r.logf("%s=%v", key, on)
	return Result{}, nil
}

// ArrowStyle returns the persisted arrow style.
func (r *Router) ArrowStyle() string {
	if r.prefs == nil {
		return prefs.StyleArrow
	}
	if v, ok := r.prefs.Get(prefs.ArrowStyle); ok && v == prefs.StyleCircle {
		return prefs.StyleCircle
	}
	return prefs.StyleArrow
}

// SetArrowStyle persists style; anything but "circle" means "arrow".
func (r *Router) SetArrowStyle(style string) (string, error) {
	next := prefs.StyleArrow
	if style == prefs.StyleCircle {
		next = prefs.StyleCircle
	}
	if r.prefs == nil {
		return next, errors.New("router: no preference store configured")
	}
	return next, r.prefs.Set(prefs.ArrowStyle, next)
}

// ToggleArrowStyle switches between the arrow and circle styles.
func (r *Router) ToggleArrowStyle() (string, error) {
	if r.ArrowStyle() == prefs.StyleCircle {
		return r.SetArrowStyle(prefs.StyleArrow)
	}
	return r.SetArrowStyle(prefs.StyleCircle)
}
