package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docpatch/docpatch/pkg/markdown"
)

func TestParseClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []markdown.Block
	}{
		{
			name:   "empty source",
			source: "",
			want:   nil,
		},
		{
			name:   "blank lines produce no blocks",
			source: "\n\n\n",
			want:   nil,
		},
		{
			name:   "heading with level",
			source: "### Section",
			want: []markdown.Block{
				{Type: markdown.BlockHeading, Level: 3, Content: "Section"},
			},
		},
		{
			name:   "heading and paragraph",
			source: "# Title\n\nHello **world**.",
			want: []markdown.Block{
				{Type: markdown.BlockHeading, Level: 1, Content: "Title"},
				{Type: markdown.BlockParagraph, Content: "Hello **world**."},
			},
		},
		{
			name:   "seven hashes is a paragraph",
			source: "####### too deep",
			want: []markdown.Block{
				{Type: markdown.BlockParagraph, Content: "####### too deep"},
			},
		},
		{
			name:   "horizontal rule variants",
			source: "---\n***\n___",
			want: []markdown.Block{
				{Type: markdown.BlockHorizontalRule},
				{Type: markdown.BlockHorizontalRule},
				{Type: markdown.BlockHorizontalRule},
			},
		},
		{
			name:   "rule beats bullet for asterisks",
			source: "*** \n* item",
			want: []markdown.Block{
				{Type: markdown.BlockHorizontalRule},
				{Type: markdown.BlockBulletItem, Content: "item"},
			},
		},
		{
			name:   "standalone image",
			source: "![logo](https://example.com/logo.png)",
			want: []markdown.Block{
				{Type: markdown.BlockImage, ImageAlt: "logo", ImageURL: "https://example.com/logo.png"},
			},
		},
		{
			name:   "inline image stays a paragraph",
			source: "see ![logo](https://example.com/logo.png) here",
			want: []markdown.Block{
				{Type: markdown.BlockParagraph, Content: "see ![logo](https://example.com/logo.png) here"},
			},
		},
		{
			name:   "bullet indent from leading spaces",
			source: "- top\n  - nested\n    - deeper",
			want: []markdown.Block{
				{Type: markdown.BlockBulletItem, Indent: 0, Content: "top"},
				{Type: markdown.BlockBulletItem, Indent: 1, Content: "nested"},
				{Type: markdown.BlockBulletItem, Indent: 2, Content: "deeper"},
			},
		},
		{
			name:   "numbered items",
			source: "1. first\n2. second\n10. tenth",
			want: []markdown.Block{
				{Type: markdown.BlockNumberedItem, Content: "first"},
				{Type: markdown.BlockNumberedItem, Content: "second"},
				{Type: markdown.BlockNumberedItem, Content: "tenth"},
			},
		},
		{
			name:   "blockquote",
			source: "> quoted text\n>",
			want: []markdown.Block{
				{Type: markdown.BlockQuote, Content: "quoted text"},
				{Type: markdown.BlockQuote, Content: ""},
			},
		},
		{
			name:   "fallback paragraph keeps raw line",
			source: "just text with | a pipe inside",
			want: []markdown.Block{
				{Type: markdown.BlockParagraph, Content: "just text with | a pipe inside"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := markdown.Parse(tt.source)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTable(t *testing.T) {
	t.Parallel()

	source := "| Name | Age |\n|------|-----|\n| Ada | 36 |\n| Alan | 41 |"

	blocks := markdown.Parse(source)
	require.Len(t, blocks, 1)
	require.Equal(t, markdown.BlockTable, blocks[0].Type)

	want := [][]string{
		{"Name", "Age"},
		{"Ada", "36"},
		{"Alan", "41"},
	}
	assert.Equal(t, want, blocks[0].Rows)
}

func TestParseTableStopsAtNonPipeLine(t *testing.T) {
	t.Parallel()

	blocks := markdown.Parse("| a | b |\n| 1 | 2 |\nplain text after")
	require.Len(t, blocks, 2)
	assert.Equal(t, markdown.BlockTable, blocks[0].Type)
	assert.Equal(t, markdown.BlockParagraph, blocks[1].Type)
	assert.Equal(t, "plain text after", blocks[1].Content)
}

func TestParseCodeFence(t *testing.T) {
	t.Parallel()

	source := "```go\nfunc main() {\n\n\tprintln(\"hi\")\n}\n```\nafter"

	blocks := markdown.Parse(source)
	require.Len(t, blocks, 2)

	code := blocks[0]
	assert.Equal(t, markdown.BlockCode, code.Type)
	assert.Equal(t, "go", code.Language)
	// Empty lines inside the fence survive; the fence lines do not.
	assert.Equal(t, "func main() {\n\n\tprintln(\"hi\")\n}", code.Content)

	assert.Equal(t, markdown.BlockParagraph, blocks[1].Type)
}

func TestParseUnterminatedCodeFence(t *testing.T) {
	t.Parallel()

	blocks := markdown.Parse("```\nline one\nline two")
	require.Len(t, blocks, 1)
	assert.Equal(t, markdown.BlockCode, blocks[0].Type)
	assert.Equal(t, "line one\nline two", blocks[0].Content)
}
