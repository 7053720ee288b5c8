package document

import "strings"

// Parse splits raw markdown into an ordered block list. Each non-blank
// line becomes one block; blank lines separate blocks and are not
// emitted. A line starting with 1-6 '#' characters followed by
// whitespace is a heading of that level with the markers stripped.
// Parse never fails: anything unrecognized is a plain paragraph.
func Parse(text string) []Block {
	var blocks []Block
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		level, rest := headingLevel(trimmed)
		content := line
		if level > 0 {
			content = rest
		}
		blocks = append(blocks, Block{
			Level: level,
			Spans: parseInline(content),
			Index: len(blocks),
		})
	}
	return blocks
}

// headingLevel returns the heading level (1-6) and the text after the
// markers, or 0 when the line is not a heading. The markers must be
// followed by whitespace, so "#hashtag" stays a paragraph.
func headingLevel(line string) (int, string) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n < 1 || n > 6 || n >= len(line) {
		return 0, ""
	}
	if line[n] != ' ' && line[n] != '\t' {
		return 0, ""
	}
	return n, strings.TrimLeft(line[n:], " \t")
}

// parseInline scans a block's text left to right and splits it into
// styled spans. Delimiters are matched non-recursively in priority
// order: backtick code, then ** / __ bold, then * / _ italic. An
// opening delimiter with no closing match degrades to literal text and
// the scan continues after it.
func parseInline(text string) []Span {
	rs := []rune(text)
	var spans []Span
	var plain []rune

	flush := func() {
		if len(plain) > 0 {
			spans = append(spans, Span{Text: string(plain), Style: StylePlain})
			plain = plain[:0]
		}
	}
	emit := func(from, to int, style SpanStyle) {
		if to > from {
			flush()
			spans = append(spans, Span{Text: string(rs[from:to]), Style: style})
		}
	}

	for i := 0; i < len(rs); {
		c := rs[i]
		switch {
		case c == '`':
			if j := nextRune(rs, i+1, '`'); j >= 0 {
				emit(i+1, j, StyleCode)
				i = j + 1
			} else {
				plain = append(plain, c)
				i++
			}
		case c == '*' || c == '_':
			if i+1 < len(rs) && rs[i+1] == c {
				if j := nextPair(rs, i+2, c); j >= 0 {
					emit(i+2, j, StyleBold)
					i = j + 2
				} else {
					plain = append(plain, c, c)
					i += 2
				}
			} else if j := nextRune(rs, i+1, c); j >= 0 {
				emit(i+1, j, StyleItalic)
				i = j + 1
			} else {
				plain = append(plain, c)
				i++
			}
		default:
			plain = append(plain, c)
			i++
		}
	}
	flush()
	return spans
}

// nextRune finds the next occurrence of c at or after from.
func nextRune(rs []rune, from int, c rune) int {
	for i := from; i < len(rs); i++ {
		if rs[i] == c {
			return i
		}
	}
	return -1
}

// nextPair finds the next doubled occurrence of c at or after from.
// Single occurrences inside bold content are content, not closers.
func nextPair(rs []rune, from int, c rune) int {
	for i := from; i+1 < len(rs); i++ {
		if rs[i] == c && rs[i+1] == c {
			return i
		}
	}
	return -1
}
