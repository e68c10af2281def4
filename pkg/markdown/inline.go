package markdown

// SpanKind identifies one inline formatting family.
type SpanKind string

// Inline formatting families.
const (
	SpanBold          SpanKind = "bold"
	SpanItalic        SpanKind = "italic"
	SpanStrikethrough SpanKind = "strikethrough"
	SpanCode          SpanKind = "code"
	SpanLink          SpanKind = "link"
)

// FormatSpan is a half-open character range [Start, End) in a block's plain
// text, tagged with one formatting family. Spans of the same family never
// overlap; spans of independent families may (bold text inside a link, for
// example).
//
// All offsets in this package count Unicode code points, matching the
// character-based index space of the positional document protocol.
type FormatSpan struct {
	Start int
	End   int
	Kind  SpanKind

	// URL carries the link target for SpanLink.
	URL string
}

// InlineText is the result of stripping inline markers from one line.
type InlineText struct {
	// Text is the line with all recognized markers removed.
	Text string

	// Spans locate the formatting runs within Text.
	Spans []FormatSpan
}

// removal records a marker sequence cut out of the text during one family
// pass, positioned in the coordinates of that pass's input.
type removal struct {
	pos    int
	length int
}

// ExtractInline strips inline Markdown markers from a single line and
// returns the plain text together with the formatting spans it carried.
//
// Families are processed in a fixed order: link, code, bold, italic,
// strikethrough. Once a marker pair is consumed its characters are removed
// from further matching, so a bold marker inside a link label never starts
// a second bold span over the raw source.
func ExtractInline(line string) InlineText {
	text := []rune(line)
	var spans []FormatSpan

	text, spans = extractLinks(text, spans)
	text, spans = extractPairs(text, spans, SpanCode, "`")
	text, spans = extractPairs(text, spans, SpanBold, "**", "__")
	text, spans = extractItalic(text, spans)
	text, spans = extractPairs(text, spans, SpanStrikethrough, "~~")

	return InlineText{Text: string(text), Spans: spans}
}

// extractLinks consumes [label](url) pairs.
func extractLinks(text []rune, spans []FormatSpan) ([]rune, []FormatSpan) {
	var out []rune
	var found []FormatSpan
	var cuts []removal

	for i := 0; i < len(text); {
		open, label, url, next := matchLink(text, i)
		if open < 0 {
			out = append(out, text[i])
			i++
			continue
		}
		// Copy any text between the cursor and the opening bracket.
		out = append(out, text[i:open]...)
		start := len(out)
		out = append(out, label...)
		found = append(found, FormatSpan{Start: start, End: len(out), Kind: SpanLink, URL: string(url)})
		cuts = append(cuts, removal{pos: open, length: 1})
		cuts = append(cuts, removal{pos: open + 1 + len(label), length: next - (open + 1 + len(label))})
		i = next
	}

	return out, append(shiftSpans(spans, cuts), found...)
}

// matchLink attempts to match [label](url) with the opening bracket at or
// after from. It returns the bracket position, label, url, and the position
// one past the closing parenthesis, or open=-1 when no link starts at from.
//
// Only a link whose opening bracket is exactly at from is consumed; the
// caller advances one rune otherwise.
func matchLink(text []rune, from int) (open int, label, url []rune, next int) {
	if from >= len(text) || text[from] != '[' {
		return -1, nil, nil, 0
	}
	close := indexRune(text, ']', from+1)
	if close < 0 || close == from+1 {
		return -1, nil, nil, 0
	}
	if close+1 >= len(text) || text[close+1] != '(' {
		return -1, nil, nil, 0
	}
	end := indexRune(text, ')', close+2)
	if end < 0 || end == close+2 {
		return -1, nil, nil, 0
	}
	return from, text[from+1 : close], text[close+2 : end], end + 1
}

// extractPairs consumes symmetric marker pairs such as **bold** or ~~gone~~.
// Multiple marker spellings for the same family are matched left to right.
func extractPairs(text []rune, spans []FormatSpan, kind SpanKind, markers ...string) ([]rune, []FormatSpan) {
	var out []rune
	var found []FormatSpan
	var cuts []removal

	for i := 0; i < len(text); {
		marker, inner, next := matchPair(text, i, markers)
		if marker == 0 {
			out = append(out, text[i])
			i++
			continue
		}
		start := len(out)
		out = append(out, inner...)
		found = append(found, FormatSpan{Start: start, End: len(out), Kind: kind})
		cuts = append(cuts, removal{pos: i, length: marker})
		cuts = append(cuts, removal{pos: i + marker + len(inner), length: marker})
		i = next
	}

	return out, append(shiftSpans(spans, cuts), found...)
}

// matchPair matches marker+inner+marker with the opening marker exactly at
// from. It returns the marker length, the inner text, and the position one
// past the closing marker, or marker=0 when nothing matches.
func matchPair(text []rune, from int, markers []string) (marker int, inner []rune, next int) {
	for _, m := range markers {
		mr := []rune(m)
		if !hasRunesAt(text, from, mr) {
			continue
		}
		// Nearest closer, non-greedy.
		for j := from + len(mr) + 1; j+len(mr) <= len(text); j++ {
			if hasRunesAt(text, j, mr) {
				return len(mr), text[from+len(mr) : j], j + len(mr)
			}
		}
	}
	return 0, nil, 0
}

// extractItalic consumes single *text* and _text_ pairs. A single marker
// adjacent to another marker of the same rune is skipped so leftovers of an
// unbalanced bold pair are not misread as italic, and the inner text may not
// contain the marker rune itself.
func extractItalic(text []rune, spans []FormatSpan) ([]rune, []FormatSpan) {
	var out []rune
	var found []FormatSpan
	var cuts []removal

	for i := 0; i < len(text); {
		inner, next := matchItalic(text, i)
		if inner == nil {
			out = append(out, text[i])
			i++
			continue
		}
		start := len(out)
		out = append(out, inner...)
		found = append(found, FormatSpan{Start: start, End: len(out), Kind: SpanItalic})
		cuts = append(cuts, removal{pos: i, length: 1})
		cuts = append(cuts, removal{pos: i + 1 + len(inner), length: 1})
		i = next
	}

	return out, append(shiftSpans(spans, cuts), found...)
}

func matchItalic(text []rune, from int) (inner []rune, next int) {
	if from >= len(text) {
		return nil, 0
	}
	m := text[from]
	if m != '*' && m != '_' {
		return nil, 0
	}
	// Opener must be a lone marker.
	if from > 0 && text[from-1] == m {
		return nil, 0
	}
	if from+1 >= len(text) || text[from+1] == m {
		return nil, 0
	}
	for j := from + 1; j < len(text); j++ {
		if text[j] != m {
			continue
		}
		// Closer must be a lone marker too.
		if j+1 < len(text) && text[j+1] == m {
			return nil, 0
		}
		return text[from+1 : j], j + 1
	}
	return nil, 0
}

// shiftSpans remaps spans recorded by earlier passes into the coordinates
// that result from the given cuts. A boundary moves left by the total length
// removed before it, so spans spanning a removed marker shrink accordingly.
func shiftSpans(spans []FormatSpan, cuts []removal) []FormatSpan {
	if len(cuts) == 0 || len(spans) == 0 {
		return spans
	}
	shifted := make([]FormatSpan, len(spans))
	for i, s := range spans {
		s.Start -= removedBefore(cuts, s.Start)
		s.End -= removedBefore(cuts, s.End)
		shifted[i] = s
	}
	return shifted
}

func removedBefore(cuts []removal, pos int) int {
	total := 0
	for _, c := range cuts {
		if c.pos < pos {
			total += min(c.length, pos-c.pos)
		}
	}
	return total
}

func indexRune(text []rune, r rune, from int) int {
	for i := from; i < len(text); i++ {
		if text[i] == r {
			return i
		}
	}
	return -1
}

func hasRunesAt(text []rune, pos int, want []rune) bool {
	if pos+len(want) > len(text) {
		return false
	}
	for i, r := range want {
		if text[pos+i] != r {
			return false
		}
	}
	return true
}
