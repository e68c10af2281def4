package markdown

import (
	"regexp"
	"strings"
)

// Line classification patterns, checked in Parse in precedence order.
var (
	headingPattern  = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	imagePattern    = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]+)\)$`)
	bulletPattern   = regexp.MustCompile(`^(\s*)[-*+]\s+(.*)$`)
	numberedPattern = regexp.MustCompile(`^(\s*)\d+\.\s+(.*)$`)
	tableSepPattern = regexp.MustCompile(`^\|[-:\s|]+\|?$`)
)

// parser holds the cursor state for a single Parse pass.
type parser struct {
	lines  []string
	pos    int
	blocks []Block
}

// Parse converts Markdown source into an ordered list of blocks.
// Blank lines separate blocks and produce no block of their own. A line
// matching no other classification always becomes a paragraph, so Parse
// cannot fail.
func Parse(source string) []Block {
	p := &parser{lines: strings.Split(source, "\n")}
	for p.pos < len(p.lines) {
		p.parseLine()
	}
	return p.blocks
}

func (p *parser) parseLine() {
	line := p.lines[p.pos]
	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		p.pos++
		return
	}

	// Horizontal rule wins over bullet markers, so "---" and "***" are
	// checked before list classification.
	if isHorizontalRule(trimmed) {
		p.emit(Block{Type: BlockHorizontalRule})
		p.pos++
		return
	}

	if m := headingPattern.FindStringSubmatch(trimmed); m != nil {
		p.emit(Block{Type: BlockHeading, Level: len(m[1]), Content: m[2]})
		p.pos++
		return
	}

	// A standalone image occupies the whole line. Images embedded in
	// running text stay part of their paragraph.
	if m := imagePattern.FindStringSubmatch(trimmed); m != nil {
		p.emit(Block{Type: BlockImage, ImageAlt: m[1], ImageURL: m[2]})
		p.pos++
		return
	}

	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		p.emit(Block{Type: BlockBulletItem, Indent: len(m[1]) / 2, Content: m[2]})
		p.pos++
		return
	}

	if m := numberedPattern.FindStringSubmatch(line); m != nil {
		p.emit(Block{Type: BlockNumberedItem, Indent: len(m[1]) / 2, Content: m[2]})
		p.pos++
		return
	}

	if strings.HasPrefix(trimmed, "|") {
		p.parseTable()
		return
	}

	if strings.HasPrefix(trimmed, "```") {
		p.parseCodeFence(trimmed)
		return
	}

	if strings.HasPrefix(trimmed, ">") {
		p.emit(Block{Type: BlockQuote, Content: strings.TrimSpace(strings.TrimPrefix(trimmed, ">"))})
		p.pos++
		return
	}

	p.emit(Block{Type: BlockParagraph, Content: line})
	p.pos++
}

// parseTable consumes consecutive pipe-prefixed lines as one table block.
// Separator rows ("|---|---|") are discarded; the remaining rows are split
// on pipes with each cell trimmed.
func (p *parser) parseTable() {
	var rows [][]string
	for p.pos < len(p.lines) {
		trimmed := strings.TrimSpace(p.lines[p.pos])
		if !strings.HasPrefix(trimmed, "|") {
			break
		}
		p.pos++
		if tableSepPattern.MatchString(trimmed) {
			continue
		}
		rows = append(rows, splitTableRow(trimmed))
	}
	p.emit(Block{Type: BlockTable, Rows: rows})
}

// parseCodeFence consumes all lines between two ``` fences, keeping empty
// lines inside the fence and dropping the fence lines themselves.
func (p *parser) parseCodeFence(opening string) {
	language := strings.TrimSpace(strings.TrimPrefix(opening, "```"))
	p.pos++

	var body []string
	for p.pos < len(p.lines) {
		if strings.HasPrefix(strings.TrimSpace(p.lines[p.pos]), "```") {
			p.pos++
			break
		}
		body = append(body, p.lines[p.pos])
		p.pos++
	}

	p.emit(Block{Type: BlockCode, Content: strings.Join(body, "\n"), Language: language})
}

func (p *parser) emit(b Block) {
	p.blocks = append(p.blocks, b)
}

// isHorizontalRule reports whether a trimmed line is a thematic break:
// three or more repeats of '-', '*', or '_' with nothing else.
func isHorizontalRule(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	marker := trimmed[0]
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != marker {
			return false
		}
	}
	return true
}

// splitTableRow splits a pipe row into trimmed cells, dropping the empty
// leading and trailing fields produced by the outer pipes.
func splitTableRow(row string) []string {
	parts := strings.Split(row, "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = strings.TrimSpace(part)
	}
	return cells
}
