// Package convert turns a parsed Markdown block list into an ordered batch
// of offset-addressed edit operations for the remote document API.
//
// The generator is a pure fold over the block list: an offset cursor starts
// at the insertion point and advances by exactly the rendered length of each
// block. Every operation references offsets computed before any operation
// of its own batch is applied, because the remote side executes a batch as
// one atomic sequence in array order.
package convert

import (
	"strings"
	"unicode/utf8"

	"github.com/docpatch/docpatch/pkg/docops"
	"github.com/docpatch/docpatch/pkg/doctree"
	"github.com/docpatch/docpatch/pkg/markdown"
)

// Default rendered box for images when the caller specifies none.
const (
	DefaultImageWidthPT  = 300
	DefaultImageHeightPT = 200
)

// Indentation applied to blockquote paragraphs.
const quoteIndentPT = 36

// Options control one generation pass.
type Options struct {
	// ReplaceAll deletes the existing document body before inserting.
	ReplaceAll bool

	// EndIndex is the current end index of the target document body, as
	// reported by the remote API. 0 or 1 means the body is empty.
	EndIndex int

	// ImageSize overrides the default rendered box for images.
	ImageSize *docops.ObjectSize
}

// Generate produces the operation batch for a block list.
//
// The result is ordered as: optional leading delete, all content
// insertions in block order, all paragraph-style operations, then all
// character-style operations. Paragraph styles must apply after their text
// exists, and character styles after paragraph styles so a named-style
// reset cannot clobber finer-grained formatting.
func Generate(blocks []markdown.Block, opts Options) []docops.Request {
	var deletes, inserts, paraOps, charOps []docops.Request

	cursor := 1
	if !opts.ReplaceAll && opts.EndIndex > 1 {
		// Append before the body's final line terminator.
		cursor = opts.EndIndex - 1
	}
	if opts.ReplaceAll && opts.EndIndex > 2 {
		// Clear the existing body except its final line terminator.
		deletes = append(deletes, docops.Request{
			DeleteContentRange: &docops.DeleteContentRangeRequest{
				Range: docops.Range{StartIndex: 1, EndIndex: opts.EndIndex - 1},
			},
		})
	}

	for _, block := range blocks {
		r := renderBlock(block, cursor, opts)
		inserts = append(inserts, r.inserts...)
		paraOps = append(paraOps, r.paraOps...)
		charOps = append(charOps, r.charOps...)
		cursor += r.advance
	}

	out := make([]docops.Request, 0, len(deletes)+len(inserts)+len(paraOps)+len(charOps))
	out = append(out, deletes...)
	out = append(out, inserts...)
	out = append(out, paraOps...)
	return append(out, charOps...)
}

// rendered is the outcome of converting one block at a given cursor.
type rendered struct {
	inserts []docops.Request
	paraOps []docops.Request
	charOps []docops.Request

	// advance is the number of index positions the block occupies once
	// inserted, including the trailing line break of text blocks.
	advance int
}

func renderBlock(block markdown.Block, cursor int, opts Options) rendered {
	switch block.Type {
	case markdown.BlockHeading:
		r := renderText(block.Content, cursor, 0)
		r.paragraphStyle(cursor, docops.ParagraphStyle{
			NamedStyleType: doctree.HeadingStyle(block.Level),
		}, "namedStyleType")
		return r

	case markdown.BlockParagraph:
		return renderText(block.Content, cursor, 0)

	case markdown.BlockBulletItem:
		r := renderText(block.Content, cursor, block.Indent)
		r.bullets(cursor, docops.BulletDiscCircleSquare)
		return r

	case markdown.BlockNumberedItem:
		r := renderText(block.Content, cursor, block.Indent)
		r.bullets(cursor, docops.NumberedDecimalAlphaRoman)
		return r

	case markdown.BlockQuote:
		r := renderText(block.Content, cursor, 0)
		r.paragraphStyle(cursor, docops.ParagraphStyle{
			IndentStart:     ptr(docops.PT(quoteIndentPT)),
			IndentFirstLine: ptr(docops.PT(quoteIndentPT)),
		}, "indentStart", "indentFirstLine")
		return r

	case markdown.BlockCode:
		text := block.Content + "\n"
		r := rendered{advance: runeLen(text)}
		r.insertText(cursor, text)
		if block.Content != "" {
			r.charOps = append(r.charOps, docops.Request{
				UpdateTextStyle: &docops.UpdateTextStyleRequest{
					Range: docops.Range{StartIndex: cursor, EndIndex: cursor + r.advance - 1},
					TextStyle: docops.TextStyle{
						WeightedFontFamily: &doctree.WeightedFontFamily{FontFamily: doctree.MonospaceFontFamily},
					},
					Fields: "weightedFontFamily",
				},
			})
		}
		return r

	case markdown.BlockHorizontalRule:
		// The protocol has no dedicated rule operation; a literal dash
		// line keeps the forward and reverse directions consistent.
		r := rendered{advance: 4}
		r.insertText(cursor, "---\n")
		return r

	case markdown.BlockImage:
		r := rendered{advance: 1}
		size := opts.ImageSize
		if size == nil {
			size = &docops.ObjectSize{
				Width:  docops.PT(DefaultImageWidthPT),
				Height: docops.PT(DefaultImageHeightPT),
			}
		}
		r.inserts = append(r.inserts, docops.Request{
			InsertInlineImage: &docops.InsertInlineImageRequest{
				Location:   docops.Location{Index: cursor},
				URI:        block.ImageURL,
				ObjectSize: size,
			},
		})
		return r

	case markdown.BlockTable:
		rows := len(block.Rows)
		cols := 0
		for _, row := range block.Rows {
			if len(row) > cols {
				cols = len(row)
			}
		}
		if rows == 0 || cols == 0 {
			return rendered{}
		}
		r := rendered{advance: tableAdvance(rows, cols)}
		r.inserts = append(r.inserts, docops.Request{
			InsertTable: &docops.InsertTableRequest{
				Location: docops.Location{Index: cursor},
				Rows:     rows,
				Columns:  cols,
			},
		})
		return r

	default:
		return rendered{}
	}
}

// renderText builds the insertion and character-style operations for a
// text-bearing block. Inline markers are stripped; spans map from
// block-relative to document-relative offsets before the cursor advances.
// List nesting is expressed as leading tabs, which the bullet operation
// later consumes.
func renderText(content string, cursor, indent int) rendered {
	inline := markdown.ExtractInline(content)
	text := strings.Repeat("\t", indent) + inline.Text + "\n"

	r := rendered{advance: runeLen(text)}
	r.insertText(cursor, text)

	for _, span := range inline.Spans {
		op := &docops.UpdateTextStyleRequest{
			Range: docops.Range{
				StartIndex: cursor + indent + span.Start,
				EndIndex:   cursor + indent + span.End,
			},
		}
		switch span.Kind {
		case markdown.SpanBold:
			op.TextStyle.Bold = true
			op.Fields = "bold"
		case markdown.SpanItalic:
			op.TextStyle.Italic = true
			op.Fields = "italic"
		case markdown.SpanStrikethrough:
			op.TextStyle.Strikethrough = true
			op.Fields = "strikethrough"
		case markdown.SpanCode:
			op.TextStyle.WeightedFontFamily = &doctree.WeightedFontFamily{FontFamily: doctree.MonospaceFontFamily}
			op.Fields = "weightedFontFamily"
		case markdown.SpanLink:
			op.TextStyle.Link = &doctree.Link{URL: span.URL}
			op.Fields = "link"
		default:
			continue
		}
		r.charOps = append(r.charOps, docops.Request{UpdateTextStyle: op})
	}
	return r
}

func (r *rendered) insertText(cursor int, text string) {
	r.inserts = append(r.inserts, docops.Request{
		InsertText: &docops.InsertTextRequest{
			Location: docops.Location{Index: cursor},
			Text:     text,
		},
	})
}

// paragraphStyle adds a paragraph-style operation over the block's text
// span. Empty paragraphs get no style operation.
func (r *rendered) paragraphStyle(cursor int, style docops.ParagraphStyle, fields ...string) {
	if r.advance <= 1 {
		return
	}
	r.paraOps = append(r.paraOps, docops.Request{
		UpdateParagraphStyle: &docops.UpdateParagraphStyleRequest{
			Range:          docops.Range{StartIndex: cursor, EndIndex: cursor + r.advance - 1},
			ParagraphStyle: style,
			Fields:         docops.FieldMask(fields...),
		},
	})
}

func (r *rendered) bullets(cursor int, preset docops.BulletPreset) {
	if r.advance <= 1 {
		return
	}
	r.paraOps = append(r.paraOps, docops.Request{
		CreateParagraphBullets: &docops.CreateParagraphBulletsRequest{
			Range:        docops.Range{StartIndex: cursor, EndIndex: cursor + r.advance - 1},
			BulletPreset: preset,
		},
	})
}

// tableAdvance estimates the index space a fresh rows-by-columns table
// occupies: one position for the table itself, one per row, and two per
// cell (the cell break plus its empty paragraph). Cell text is not
// populated in this pass, so the estimate only has to cover the empty
// grid the insert operation creates.
func tableAdvance(rows, cols int) int {
	return 1 + rows*(cols*2+1)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func ptr[T any](v T) *T {
	return &v
}
