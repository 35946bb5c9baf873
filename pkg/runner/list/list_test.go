package list

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/tasklist/pkg/printers"
)

type staticStore map[string]string

func (s staticStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s[key]
	return v, ok, nil
}

func TestListPrintsStoredTasks(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	l := List{
		Persistence: staticStore{"tasks": `["buy milk"]`},
		Key:         "tasks",
		Log:         log.New(io.Discard, "", 0),
		Printer:     &printers.PrettyPrint{Out: &buf},
	}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(buf.String(), "Tasks - 1 task") || !strings.Contains(buf.String(), "1.  buy milk") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestListJSONFromCorruptValueIsEmpty(t *testing.T) {
	var buf, logs bytes.Buffer
	l := List{
		JSON:        true,
		Persistence: staticStore{"tasks": `{"oops":true}`},
		Log:         log.New(&logs, "", 0),
		Printer:     &printers.PrettyPrint{Out: &buf},
	}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if buf.String() != "[]\n" {
		t.Fatalf("expected empty JSON list, got %q", buf.String())
	}
	if !strings.Contains(logs.String(), "hydrate") {
		t.Fatalf("expected corrupt value to be logged, got %q", logs.String())
	}
}
