package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestTasksNumbersFromOne(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	pp.TitleWithCount("Tasks", 2)
	pp.Tasks("buy milk", "call mom")

	out := buf.String()
	for _, want := range []string{"Tasks - 2 tasks", "1.  buy milk", "2.  call mom"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output %q", want, out)
		}
	}
}

func TestTasksEmptyAndSingular(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	pp.TitleWithCount("Tasks", 1)
	pp.Tasks()

	out := buf.String()
	if !strings.Contains(out, "Tasks - 1 task\n") || !strings.Contains(out, "none") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	if err := pp.JSON(nil); err != nil {
		t.Fatalf("json: %v", err)
	}
	if err := pp.JSON([]string{"a"}); err != nil {
		t.Fatalf("json: %v", err)
	}
	if buf.String() != "[]\n[\"a\"]\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
