// Package doctree models the positional document tree returned by the
// remote document API. Every character of a document body occupies a unique,
// monotonically increasing index; structural elements carry the half-open
// [StartIndex, EndIndex) span they cover. Table cells nest the same element
// type, so the tree is recursive with unbounded depth.
package doctree

// NamedStyle identifies a document-defined paragraph style.
type NamedStyle string

// Named paragraph styles understood by docpatch.
const (
	StyleNormalText NamedStyle = "NORMAL_TEXT"
	StyleTitle      NamedStyle = "TITLE"
	StyleSubtitle   NamedStyle = "SUBTITLE"
	StyleHeading1   NamedStyle = "HEADING_1"
	StyleHeading2   NamedStyle = "HEADING_2"
	StyleHeading3   NamedStyle = "HEADING_3"
	StyleHeading4   NamedStyle = "HEADING_4"
	StyleHeading5   NamedStyle = "HEADING_5"
	StyleHeading6   NamedStyle = "HEADING_6"
)

// HeadingStyle returns the named style for a heading level 1-6, or
// StyleNormalText when the level is out of range.
func HeadingStyle(level int) NamedStyle {
	switch level {
	case 1:
		return StyleHeading1
	case 2:
		return StyleHeading2
	case 3:
		return StyleHeading3
	case 4:
		return StyleHeading4
	case 5:
		return StyleHeading5
	case 6:
		return StyleHeading6
	default:
		return StyleNormalText
	}
}

// HeadingLevel returns the heading depth 1-6 for a heading named style,
// or 0 for any other style.
func (s NamedStyle) HeadingLevel() int {
	switch s {
	case StyleHeading1:
		return 1
	case StyleHeading2:
		return 2
	case StyleHeading3:
		return 3
	case StyleHeading4:
		return 4
	case StyleHeading5:
		return 5
	case StyleHeading6:
		return 6
	default:
		return 0
	}
}

// Document is the root of a fetched document.
type Document struct {
	DocumentID string `json:"documentId,omitempty"`
	Title      string `json:"title,omitempty"`
	Body       *Body  `json:"body,omitempty"`
}

// Body holds the top-level structural elements of a document.
type Body struct {
	Content []StructuralElement `json:"content"`
}

// StructuralElement is one node of the document tree. Exactly one of
// Paragraph, Table, or SectionBreak is set.
type StructuralElement struct {
	StartIndex int `json:"startIndex"`
	EndIndex   int `json:"endIndex"`

	Paragraph    *Paragraph    `json:"paragraph,omitempty"`
	Table        *Table        `json:"table,omitempty"`
	SectionBreak *SectionBreak `json:"sectionBreak,omitempty"`
}

// Paragraph is a run of text ending in a newline character.
type Paragraph struct {
	Elements       []ParagraphElement `json:"elements"`
	ParagraphStyle *ParagraphStyle    `json:"paragraphStyle,omitempty"`
	Bullet         *Bullet            `json:"bullet,omitempty"`
}

// ParagraphElement is one positioned run inside a paragraph.
type ParagraphElement struct {
	StartIndex int `json:"startIndex"`
	EndIndex   int `json:"endIndex"`

	TextRun *TextRun `json:"textRun,omitempty"`
}

// TextRun is a contiguous run of identically styled text.
type TextRun struct {
	Content   string     `json:"content"`
	TextStyle *TextStyle `json:"textStyle,omitempty"`
}

// TextStyle carries character-level formatting for a text run.
type TextStyle struct {
	Bold               bool                `json:"bold,omitempty"`
	Italic             bool                `json:"italic,omitempty"`
	Underline          bool                `json:"underline,omitempty"`
	Strikethrough      bool                `json:"strikethrough,omitempty"`
	WeightedFontFamily *WeightedFontFamily `json:"weightedFontFamily,omitempty"`
	Link               *Link               `json:"link,omitempty"`
}

// IsMonospace reports whether the run renders in a fixed-width font.
func (s *TextStyle) IsMonospace() bool {
	return s != nil && s.WeightedFontFamily != nil && s.WeightedFontFamily.FontFamily == MonospaceFontFamily
}

// MonospaceFontFamily is the font used for code content.
const MonospaceFontFamily = "Courier New"

// WeightedFontFamily names a font and weight.
type WeightedFontFamily struct {
	FontFamily string `json:"fontFamily"`
	Weight     int    `json:"weight,omitempty"`
}

// Link is a hyperlink target.
type Link struct {
	URL string `json:"url,omitempty"`
}

// ParagraphStyle carries paragraph-level formatting.
type ParagraphStyle struct {
	NamedStyleType  NamedStyle `json:"namedStyleType,omitempty"`
	IndentStart     *Dimension `json:"indentStart,omitempty"`
	IndentFirstLine *Dimension `json:"indentFirstLine,omitempty"`
}

// Dimension is a magnitude in a typographic unit, normally "PT".
type Dimension struct {
	Magnitude float64 `json:"magnitude"`
	Unit      string  `json:"unit"`
}

// Bullet marks a paragraph as a list item.
type Bullet struct {
	ListID       string `json:"listId,omitempty"`
	NestingLevel int    `json:"nestingLevel,omitempty"`
}

// Table is a grid of cells; every cell nests its own structural elements.
type Table struct {
	Rows      int        `json:"rows"`
	Columns   int        `json:"columns"`
	TableRows []TableRow `json:"tableRows"`
}

// TableRow is one row of table cells.
type TableRow struct {
	TableCells []TableCell `json:"tableCells"`
}

// TableCell holds nested structural elements plus its own index span.
type TableCell struct {
	StartIndex int                 `json:"startIndex"`
	EndIndex   int                 `json:"endIndex"`
	Content    []StructuralElement `json:"content"`
}

// SectionBreak separates document sections. It carries no content of its
// own but still occupies index space.
type SectionBreak struct {
	SectionStyle map[string]any `json:"sectionStyle,omitempty"`
}

// Text returns the concatenated text run content of a paragraph.
func (p *Paragraph) Text() string {
	if p == nil {
		return ""
	}
	var out string
	for _, el := range p.Elements {
		if el.TextRun != nil {
			out += el.TextRun.Content
		}
	}
	return out
}

// EndIndex returns the end index of the document body, or 0 for an empty
// document. This is the seed for appending content.
func (d *Document) EndIndex() int {
	if d == nil || d.Body == nil || len(d.Body.Content) == 0 {
		return 0
	}
	return d.Body.Content[len(d.Body.Content)-1].EndIndex
}
