package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docpatch/docpatch/pkg/markdown"
)

func TestExtractInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		text string
		want []markdown.FormatSpan
	}{
		{
			name: "plain text untouched",
			line: "nothing to see here",
			text: "nothing to see here",
			want: nil,
		},
		{
			name: "bold double asterisk",
			line: "Hello **world**.",
			text: "Hello world.",
			want: []markdown.FormatSpan{
				{Start: 6, End: 11, Kind: markdown.SpanBold},
			},
		},
		{
			name: "bold double underscore",
			line: "__strong__ start",
			text: "strong start",
			want: []markdown.FormatSpan{
				{Start: 0, End: 6, Kind: markdown.SpanBold},
			},
		},
		{
			name: "italic asterisk",
			line: "an *emphasis* here",
			text: "an emphasis here",
			want: []markdown.FormatSpan{
				{Start: 3, End: 11, Kind: markdown.SpanItalic},
			},
		},
		{
			name: "italic underscore",
			line: "_lean_",
			text: "lean",
			want: []markdown.FormatSpan{
				{Start: 0, End: 4, Kind: markdown.SpanItalic},
			},
		},
		{
			name: "strikethrough",
			line: "drop ~~this~~ part",
			text: "drop this part",
			want: []markdown.FormatSpan{
				{Start: 5, End: 9, Kind: markdown.SpanStrikethrough},
			},
		},
		{
			name: "inline code",
			line: "run `go test` now",
			text: "run go test now",
			want: []markdown.FormatSpan{
				{Start: 4, End: 11, Kind: markdown.SpanCode},
			},
		},
		{
			name: "link",
			line: "see [the docs](https://example.com) please",
			text: "see the docs please",
			want: []markdown.FormatSpan{
				{Start: 4, End: 12, Kind: markdown.SpanLink, URL: "https://example.com"},
			},
		},
		{
			name: "bold wrapping a link overlaps both families",
			line: "**[docs](https://example.com)**",
			text: "docs",
			want: []markdown.FormatSpan{
				{Start: 0, End: 4, Kind: markdown.SpanLink, URL: "https://example.com"},
				{Start: 0, End: 4, Kind: markdown.SpanBold},
			},
		},
		{
			name: "bold and italic side by side",
			line: "**a** and *b*",
			text: "a and b",
			want: []markdown.FormatSpan{
				{Start: 0, End: 1, Kind: markdown.SpanBold},
				{Start: 6, End: 7, Kind: markdown.SpanItalic},
			},
		},
		{
			// The bold pass still runs over text freed by the code pass;
			// the code span shrinks with the removed markers.
			name: "code pass runs before bold",
			line: "`**tagged**`",
			text: "tagged",
			want: []markdown.FormatSpan{
				{Start: 0, End: 6, Kind: markdown.SpanCode},
				{Start: 0, End: 6, Kind: markdown.SpanBold},
			},
		},
		{
			name: "unterminated bold left alone",
			line: "**half open",
			text: "**half open",
			want: nil,
		},
		{
			name: "lone asterisk is not italic",
			line: "2 * 3 = 6",
			text: "2 * 3 = 6",
			want: nil,
		},
		{
			name: "multiple spans keep shrunk offsets",
			line: "**a** b **c**",
			text: "a b c",
			want: []markdown.FormatSpan{
				{Start: 0, End: 1, Kind: markdown.SpanBold},
				{Start: 4, End: 5, Kind: markdown.SpanBold},
			},
		},
		{
			name: "multibyte text keeps character offsets",
			line: "héllo **wörld**",
			text: "héllo wörld",
			want: []markdown.FormatSpan{
				{Start: 6, End: 11, Kind: markdown.SpanBold},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := markdown.ExtractInline(tt.line)
			assert.Equal(t, tt.text, got.Text)
			assert.Equal(t, tt.want, got.Spans)
		})
	}
}

// A link label carrying bold markers yields overlapping spans from two
// families, with both mapped to the final shrunk text.
func TestExtractInlinePrecedence(t *testing.T) {
	t.Parallel()

	got := markdown.ExtractInline("[a **b** c](https://example.com)")

	assert.Equal(t, "a b c", got.Text)
	assert.Equal(t, []markdown.FormatSpan{
		{Start: 0, End: 5, Kind: markdown.SpanLink, URL: "https://example.com"},
		{Start: 2, End: 3, Kind: markdown.SpanBold},
	}, got.Spans)
}
