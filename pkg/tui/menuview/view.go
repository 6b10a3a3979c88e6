package menuview

import (
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/trustme000777/niftymenu/pkg/callout"
	"github.com/trustme000777/niftymenu/pkg/menu"
	"github.com/trustme000777/niftymenu/pkg/prefs"
	"github.com/trustme000777/niftymenu/pkg/tui/theme"
)

// View renders the visible rows and the footer.
func (m *Model) View() string {
	th := theme.New(theme.Options{
		Dark:   m.svc.Prefs.GetBool(prefs.DarkMode),
		Framed: m.svc.Prefs.GetBool(prefs.BackgroundImage),
	})

	rows := m.rows
	if visible := m.listHeight(); visible > 0 && len(rows) > visible {
		end := min(m.offset+visible, len(rows))
		rows = rows[m.offset:end]
	}

	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		lines = append(lines, m.renderRow(th, r, m.offset+i == m.cursor))
	}
	if len(lines) == 0 {
		lines = append(lines, th.Footer.Help.Render("(empty menu)"))
	}

	return th.Frame.Render(strings.Join(lines, "\n")) + "\n" + m.footer(th)
}

func (m *Model) renderRow(th theme.Theme, r row, selected bool) string {
	mc := m.svc.Callouts
	st := mc.State(r.node)

	var b strings.Builder
	if selected {
		b.WriteString(th.Item.Cursor.Render("› "))
	} else {
		b.WriteString("  ")
	}
	b.WriteString(strings.Repeat("  ", r.depth))
	if st.Checked {
		b.WriteString(th.Item.Check.Render("✓ "))
	} else {
		b.WriteString("  ")
	}
	switch {
	case !menu.HasChildren(r.node):
		b.WriteString("  ")
	case mc.Open(r.node) || m.svc.Prefs.GetBool(prefs.ExposeMode):
		b.WriteString(th.Item.Marker.Render("▾ "))
	default:
		b.WriteString(th.Item.Marker.Render("▸ "))
	}

	style := th.Item.Normal
	switch {
	case st.Emphasized:
		style = th.Item.Emphasized
	case st.Highlighted:
		style = th.Item.Highlighted
	case r.node == mc.Active():
		style = th.Item.Active
	case st.Clicked:
		style = th.Item.Clicked
	case st.Persist:
		style = th.Item.Persist
	}
	b.WriteString(style.Render(r.node.Title()))

	shortcut := menu.ShortcutOf(r.node)
	switch {
	case st.Shortcut:
		if shortcut == "" {
			shortcut = "…"
		}
		b.WriteString("  " + th.Callout.ShortcutCalledOut.Render(" "+shortcut+" "))
	case shortcut != "":
		b.WriteString("  " + th.Callout.Shortcut.Render(shortcut))
	}

	line := b.String()
	if st.Arrow {
		glyph := th.Callout.Arrow.Render(arrowGlyph(m.svc.Router.ArrowStyle(), st.Direction))
		if st.Direction == callout.Left {
			line = glyph + " " + line
		} else {
			line = line + " " + glyph
		}
	}
	return m.fit(line)
}

func (m *Model) footer(th theme.Theme) string {
	var line string
	switch {
	case m.mode == modeSearch:
		line = m.input.View()
	case m.err != nil:
		line = th.Footer.Error.Render(m.err.Error())
	case m.tracing && m.trace.last != "":
		line = th.Footer.Status.Render(m.trace.last)
	case m.status != "":
		line = th.Footer.Status.Render(m.status) + "  " + th.Footer.Help.Render(helpText)
	default:
		line = th.Footer.Help.Render(helpText)
	}
	return m.fit(line)
}

func (m *Model) fit(s string) string {
	if m.width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(m.width), "…")
}

func arrowGlyph(style string, dir callout.Direction) string {
	if style == prefs.StyleCircle {
		return "◉"
	}
	if dir == callout.Left {
		return "━━▶"
	}
	return "◀━━"
}
