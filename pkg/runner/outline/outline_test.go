package outline

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/trustme000777/niftymenu/pkg/app"
	"github.com/trustme000777/niftymenu/pkg/menu"
	"github.com/trustme000777/niftymenu/pkg/prefs"
)

func newService(t *testing.T) *app.Service {
	t.Helper()
	color.NoColor = true
	p, err := prefs.Open(t.TempDir())
	if err != nil {
		t.Fatalf("prefs: %v", err)
	}
	svc, err := app.New(menu.FromPaths("File/New", "File/Open", "Help/About"), p, app.Options{})
	if err != nil {
		t.Fatalf("service: %v", err)
	}
	return svc
}

func TestOutlineJSON(t *testing.T) {
	var out bytes.Buffer
	o := Outline{Service: newService(t), JSON: true, Out: &out}
	if err := o.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var paths []string
	if err := json.Unmarshal(out.Bytes(), &paths); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := strings.Join(paths, ","); got != "File,File/New,File/Open,Help,Help/About" {
		t.Fatalf("unexpected paths %q", got)
	}
}

func TestOutlineTree(t *testing.T) {
	var out bytes.Buffer
	o := Outline{Service: newService(t), Tree: true, Out: &out}
	if err := o.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	s := out.String()
	if !strings.Contains(s, "Menu - 5 items") {
		t.Fatalf("expected count header, got:\n%s", s)
	}
	if !strings.Contains(s, "\n  - Open\n") {
		t.Fatalf("expected indented child, got:\n%s", s)
	}
}
