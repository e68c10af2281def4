// Package markdown parses a bounded Markdown subset into a flat list of
// structural blocks. The subset covers headings, paragraphs, bullet and
// numbered lists, pipe tables, fenced code blocks, blockquotes, horizontal
// rules, standalone images, and the inline bold/italic/strikethrough/code/link
// spans extracted by ExtractInline.
package markdown

// BlockType classifies the type of a parsed block.
type BlockType string

// Block types produced by Parse.
const (
	BlockHeading        BlockType = "heading"
	BlockParagraph      BlockType = "paragraph"
	BlockBulletItem     BlockType = "bullet_item"
	BlockNumberedItem   BlockType = "numbered_item"
	BlockTable          BlockType = "table"
	BlockCode           BlockType = "code"
	BlockQuote          BlockType = "quote"
	BlockHorizontalRule BlockType = "horizontal_rule"
	BlockImage          BlockType = "image"
)

// Block is one structural unit of a Markdown document.
// Blocks are immutable once produced by Parse.
type Block struct {
	// Type identifies what kind of block this is.
	Type BlockType

	// Content is the raw text for text-bearing block types. Inline markers
	// are left in place; they are stripped later by ExtractInline.
	Content string

	// Level is the heading depth (1-6) for BlockHeading.
	Level int

	// Indent is the list nesting depth for list items, derived from
	// leading whitespace (two spaces per level).
	Indent int

	// Rows holds the cell grid for BlockTable, outer slice ordered by row.
	// Separator rows are already discarded.
	Rows [][]string

	// Language is the fence info string for BlockCode, if any.
	Language string

	// ImageURL and ImageAlt describe a standalone BlockImage line.
	ImageURL string
	ImageAlt string
}

// IsListItem returns true for bullet and numbered list items.
func (b Block) IsListItem() bool {
	return b.Type == BlockBulletItem || b.Type == BlockNumberedItem
}
