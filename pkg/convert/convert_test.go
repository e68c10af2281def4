package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docpatch/docpatch/pkg/convert"
	"github.com/docpatch/docpatch/pkg/docops"
	"github.com/docpatch/docpatch/pkg/doctree"
	"github.com/docpatch/docpatch/pkg/markdown"
)

func TestGenerateHeadingAndParagraph(t *testing.T) {
	t.Parallel()

	blocks := markdown.Parse("# Title\n\nHello **world**.")
	ops := convert.Generate(blocks, convert.Options{EndIndex: 2})

	require.NoError(t, docops.ValidateAll(ops))
	require.Len(t, ops, 4)

	// Insertions first, in block order.
	require.NotNil(t, ops[0].InsertText)
	assert.Equal(t, 1, ops[0].InsertText.Location.Index)
	assert.Equal(t, "Title\n", ops[0].InsertText.Text)

	require.NotNil(t, ops[1].InsertText)
	assert.Equal(t, 7, ops[1].InsertText.Location.Index)
	assert.Equal(t, "Hello world.\n", ops[1].InsertText.Text)

	// Paragraph styles after all insertions.
	require.NotNil(t, ops[2].UpdateParagraphStyle)
	assert.Equal(t, doctree.StyleHeading1, ops[2].UpdateParagraphStyle.ParagraphStyle.NamedStyleType)
	assert.Equal(t, docops.Range{StartIndex: 1, EndIndex: 6}, ops[2].UpdateParagraphStyle.Range)

	// Character styles last: "world" sits at offsets 6-11 of the
	// paragraph, which starts at index 7.
	require.NotNil(t, ops[3].UpdateTextStyle)
	assert.Equal(t, docops.Range{StartIndex: 13, EndIndex: 18}, ops[3].UpdateTextStyle.Range)
	assert.True(t, ops[3].UpdateTextStyle.TextStyle.Bold)
	assert.Equal(t, "bold", ops[3].UpdateTextStyle.Fields)
}

func TestGenerateReplaceAll(t *testing.T) {
	t.Parallel()

	blocks := markdown.Parse("fresh start")
	ops := convert.Generate(blocks, convert.Options{ReplaceAll: true, EndIndex: 120})

	require.NotEmpty(t, ops)
	require.NotNil(t, ops[0].DeleteContentRange)
	// Everything except the body's final line terminator.
	assert.Equal(t, docops.Range{StartIndex: 1, EndIndex: 119}, ops[0].DeleteContentRange.Range)

	require.NotNil(t, ops[1].InsertText)
	assert.Equal(t, 1, ops[1].InsertText.Location.Index)
}

func TestGenerateReplaceAllEmptyBody(t *testing.T) {
	t.Parallel()

	ops := convert.Generate(markdown.Parse("x"), convert.Options{ReplaceAll: true, EndIndex: 2})

	// Nothing to delete in an empty body.
	require.Len(t, ops, 1)
	assert.NotNil(t, ops[0].InsertText)
}

func TestGenerateAppendsBeforeFinalNewline(t *testing.T) {
	t.Parallel()

	ops := convert.Generate(markdown.Parse("tail"), convert.Options{EndIndex: 42})

	require.NotEmpty(t, ops)
	assert.Equal(t, 41, ops[0].InsertText.Location.Index)
}

func TestGenerateCursorAdvancesByRenderedLength(t *testing.T) {
	t.Parallel()

	source := "first\n\n![pic](https://example.com/p.png)\n\n| a | b |\n| 1 | 2 |\n\nlast"
	blocks := markdown.Parse(source)
	ops := convert.Generate(blocks, convert.Options{EndIndex: 2})

	var inserts []docops.Request
	for _, op := range ops {
		if op.InsertText != nil || op.InsertInlineImage != nil || op.InsertTable != nil {
			inserts = append(inserts, op)
		}
	}
	require.Len(t, inserts, 4)

	// "first\n" occupies 6 positions starting at 1.
	assert.Equal(t, 1, inserts[0].InsertText.Location.Index)

	// The image occupies exactly one position.
	require.NotNil(t, inserts[1].InsertInlineImage)
	assert.Equal(t, 7, inserts[1].InsertInlineImage.Location.Index)

	// Table of 2x2 follows the image slot.
	require.NotNil(t, inserts[2].InsertTable)
	assert.Equal(t, 8, inserts[2].InsertTable.Location.Index)
	assert.Equal(t, 2, inserts[2].InsertTable.Rows)
	assert.Equal(t, 2, inserts[2].InsertTable.Columns)

	// 1 + rows*(cols*2+1) = 11 positions for the empty grid.
	require.NotNil(t, inserts[3].InsertText)
	assert.Equal(t, 19, inserts[3].InsertText.Location.Index)
}

func TestGenerateListBlocks(t *testing.T) {
	t.Parallel()

	blocks := markdown.Parse("- top\n  - nested\n\n1. one")
	ops := convert.Generate(blocks, convert.Options{EndIndex: 2})
	require.NoError(t, docops.ValidateAll(ops))

	var bullets []*docops.CreateParagraphBulletsRequest
	var inserts []*docops.InsertTextRequest
	for _, op := range ops {
		if op.CreateParagraphBullets != nil {
			bullets = append(bullets, op.CreateParagraphBullets)
		}
		if op.InsertText != nil {
			inserts = append(inserts, op.InsertText)
		}
	}
	require.Len(t, bullets, 3)
	require.Len(t, inserts, 3)

	// Nesting is expressed as a leading tab consumed by the bullet op.
	assert.Equal(t, "top\n", inserts[0].Text)
	assert.Equal(t, "\tnested\n", inserts[1].Text)
	assert.Equal(t, "one\n", inserts[2].Text)

	assert.Equal(t, docops.BulletDiscCircleSquare, bullets[0].BulletPreset)
	assert.Equal(t, docops.BulletDiscCircleSquare, bullets[1].BulletPreset)
	assert.Equal(t, docops.NumberedDecimalAlphaRoman, bullets[2].BulletPreset)
}

func TestGenerateCodeBlock(t *testing.T) {
	t.Parallel()

	blocks := markdown.Parse("```\nx := 1\n```")
	ops := convert.Generate(blocks, convert.Options{EndIndex: 2})

	require.Len(t, ops, 2)
	assert.Equal(t, "x := 1\n", ops[0].InsertText.Text)

	style := ops[1].UpdateTextStyle
	require.NotNil(t, style)
	assert.Equal(t, docops.Range{StartIndex: 1, EndIndex: 7}, style.Range)
	assert.Equal(t, doctree.MonospaceFontFamily, style.TextStyle.WeightedFontFamily.FontFamily)
}

func TestGenerateQuoteIndents(t *testing.T) {
	t.Parallel()

	blocks := markdown.Parse("> wise words")
	ops := convert.Generate(blocks, convert.Options{EndIndex: 2})

	require.Len(t, ops, 2)
	para := ops[1].UpdateParagraphStyle
	require.NotNil(t, para)
	assert.Equal(t, "indentStart,indentFirstLine", para.Fields)
	require.NotNil(t, para.ParagraphStyle.IndentStart)
	assert.InDelta(t, 36, para.ParagraphStyle.IndentStart.Magnitude, 0.01)
}

func TestGenerateEmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, convert.Generate(nil, convert.Options{EndIndex: 2}))
	assert.Empty(t, convert.Generate(markdown.Parse("\n\n"), convert.Options{EndIndex: 2}))
}

func TestGenerateImageSizeOverride(t *testing.T) {
	t.Parallel()

	size := &docops.ObjectSize{Width: docops.PT(80), Height: docops.PT(60)}
	blocks := markdown.Parse("![](https://example.com/i.png)")
	ops := convert.Generate(blocks, convert.Options{EndIndex: 2, ImageSize: size})

	require.Len(t, ops, 1)
	img := ops[0].InsertInlineImage
	require.NotNil(t, img)
	assert.Equal(t, "https://example.com/i.png", img.URI)
	assert.InDelta(t, 80, img.ObjectSize.Width.Magnitude, 0.01)
}
