package export

import (
	"strings"
	"testing"
)

func TestHTML(t *testing.T) {
	out, err := HTML([]byte("# Title\n\nSome **bold** and *italic* text\n"))
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	for _, want := range []string{"<h1", "Title", "<strong>bold</strong>", "<em>italic</em>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestHTMLExtensions(t *testing.T) {
	out, err := HTML([]byte("~~gone~~\n\n- [ ] todo\n"))
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if !strings.Contains(out, "<del>gone</del>") {
		t.Fatalf("strikethrough not rendered:\n%s", out)
	}
	if !strings.Contains(out, "checkbox") {
		t.Fatalf("task list not rendered:\n%s", out)
	}
}
