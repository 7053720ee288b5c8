package document

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseHeadingAndInline(t *testing.T) {
	blocks := Parse("# Title\n\nSome **bold** and *italic* text")

	if len(blocks) != 2 {
		t.Fatalf("blocks=%d, want 2", len(blocks))
	}

	h := blocks[0]
	if h.Level != 1 {
		t.Fatalf("level=%d, want 1", h.Level)
	}
	if h.Text() != "Title" {
		t.Fatalf("heading text=%q, want %q", h.Text(), "Title")
	}

	p := blocks[1]
	if p.Level != 0 {
		t.Fatalf("level=%d, want 0 (paragraph)", p.Level)
	}
	want := []Span{
		{Text: "Some ", Style: StylePlain},
		{Text: "bold", Style: StyleBold},
		{Text: " and ", Style: StylePlain},
		{Text: "italic", Style: StyleItalic},
		{Text: " text", Style: StylePlain},
	}
	if !reflect.DeepEqual(p.Spans, want) {
		t.Fatalf("spans=%v, want %v", p.Spans, want)
	}
}

func TestParseHeadingLevels(t *testing.T) {
	tests := []struct {
		line  string
		level int
		text  string
	}{
		{"# One", 1, "One"},
		{"## Two", 2, "Two"},
		{"### Three", 3, "Three"},
		{"#### Four", 4, "Four"},
		{"##### Five", 5, "Five"},
		{"###### Six", 6, "Six"},
		{"####### Seven", 0, "####### Seven"}, // 7 hashes is not a heading
		{"#NoSpace", 0, "#NoSpace"},
		{"plain line", 0, "plain line"},
	}
	for _, tt := range tests {
		blocks := Parse(tt.line)
		if len(blocks) != 1 {
			t.Fatalf("%q: blocks=%d, want 1", tt.line, len(blocks))
		}
		if blocks[0].Level != tt.level {
			t.Fatalf("%q: level=%d, want %d", tt.line, blocks[0].Level, tt.level)
		}
		if blocks[0].Text() != tt.text {
			t.Fatalf("%q: text=%q, want %q", tt.line, blocks[0].Text(), tt.text)
		}
	}
}

func TestParseBlankLinesSeparate(t *testing.T) {
	blocks := Parse("one\n\n\n\ntwo\n   \nthree\n")
	if len(blocks) != 3 {
		t.Fatalf("blocks=%d, want 3", len(blocks))
	}
	for i, b := range blocks {
		if b.Index != i {
			t.Fatalf("block %d has index %d", i, b.Index)
		}
	}
}

func TestParseInlinePriorityAndFallback(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Span
	}{
		{
			name: "code wins over bold inside",
			in:   "a `x**y**z` b",
			want: []Span{
				{Text: "a ", Style: StylePlain},
				{Text: "x**y**z", Style: StyleCode},
				{Text: " b", Style: StylePlain},
			},
		},
		{
			name: "underscore bold",
			in:   "__strong__ _em_",
			want: []Span{
				{Text: "strong", Style: StyleBold},
				{Text: " ", Style: StylePlain},
				{Text: "em", Style: StyleItalic},
			},
		},
		{
			name: "unmatched bold opener is literal",
			in:   "a **b c",
			want: []Span{{Text: "a **b c", Style: StylePlain}},
		},
		{
			name: "unmatched italic opener is literal",
			in:   "a *b c",
			want: []Span{{Text: "a *b c", Style: StylePlain}},
		},
		{
			name: "unmatched backtick is literal",
			in:   "a `b c",
			want: []Span{{Text: "a `b c", Style: StylePlain}},
		},
		{
			name: "single star inside bold is content",
			in:   "**a*b**",
			want: []Span{{Text: "a*b", Style: StyleBold}},
		},
		{
			name: "no nesting, inner delimiters are content",
			in:   "*a `b` c*",
			want: []Span{{Text: "a `b` c", Style: StyleItalic}},
		},
	}
	for _, tt := range tests {
		blocks := Parse(tt.in)
		if len(blocks) != 1 {
			t.Fatalf("%s: blocks=%d, want 1", tt.name, len(blocks))
		}
		if !reflect.DeepEqual(blocks[0].Spans, tt.want) {
			t.Fatalf("%s: spans=%v, want %v", tt.name, blocks[0].Spans, tt.want)
		}
	}
}

func TestParseCRLF(t *testing.T) {
	blocks := Parse("# A\r\n\r\nB\r\n")
	if len(blocks) != 2 {
		t.Fatalf("blocks=%d, want 2", len(blocks))
	}
	if blocks[0].Text() != "A" || blocks[1].Text() != "B" {
		t.Fatalf("texts=%q,%q", blocks[0].Text(), blocks[1].Text())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talk.md")
	if err := os.WriteFile(path, []byte("# Hi\n\nthere\n"), 0644); err != nil {
		t.Fatal(err)
	}

	blocks, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("blocks=%d, want 2", len(blocks))
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.md")); err == nil {
		t.Fatal("expected error for missing file")
	} else if _, ok := err.(*LoadError); !ok {
		t.Fatalf("error type %T, want *LoadError", err)
	}

	bad := filepath.Join(dir, "bad.md")
	if err := os.WriteFile(bad, []byte{0xff, 0xfe, 0x00, 0x80}, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatal("expected error for invalid UTF-8")
	} else if _, ok := err.(*LoadError); !ok {
		t.Fatalf("error type %T, want *LoadError", err)
	}
}
