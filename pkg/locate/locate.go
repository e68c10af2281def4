// Package locate finds text occurrences and paragraph spans inside a
// positional document tree. It reconstructs the document's flattened text
// from the tree's text runs, searches that, and maps hits back to true
// document offsets via the segment list built during flattening.
package locate

import (
	"github.com/docpatch/docpatch/pkg/doctree"
)

// Range is a half-open [Start, End) span in the document's index space.
type Range struct {
	Start int `json:"startIndex"`
	End   int `json:"endIndex"`
}

// TextSegment maps one contiguous run of flattened text to its true
// document offset span. Segments are ordered by traversal; their spans are
// non-overlapping and increasing but not necessarily contiguous, because
// structural boundaries such as table cell breaks consume index space
// without contributing flattened text.
type TextSegment struct {
	Text  string
	Start int
	End   int
}

// FlattenSegments collects the text segments of a structural element list
// in document order, recursing into table cells.
func FlattenSegments(elements []doctree.StructuralElement) []TextSegment {
	var segments []TextSegment
	_ = doctree.Walk(elements, func(el *doctree.StructuralElement) error {
		if el.Paragraph == nil {
			return nil
		}
		for _, pe := range el.Paragraph.Elements {
			if pe.TextRun == nil || pe.TextRun.Content == "" {
				continue
			}
			segments = append(segments, TextSegment{
				Text:  pe.TextRun.Content,
				Start: pe.StartIndex,
				End:   pe.EndIndex,
			})
		}
		return nil
	})
	return segments
}

// FindTextRange locates the instance-th occurrence (1-based) of needle in
// the document and returns its true offset range. Occurrences that cannot
// be mapped back to document offsets are skipped without counting; the
// search then resumes one character past the failed hit. Returns nil when
// fewer than instance mappable occurrences exist, when needle is empty, or
// when instance is below 1.
func FindTextRange(doc *doctree.Document, needle string, instance int) *Range {
	if doc == nil || doc.Body == nil || needle == "" || instance < 1 {
		return nil
	}
	segments := FlattenSegments(doc.Body.Content)

	var full []rune
	for _, seg := range segments {
		full = append(full, []rune(seg.Text)...)
	}
	target := []rune(needle)

	found := 0
	for from := 0; ; {
		hit := indexRunes(full, target, from)
		if hit < 0 {
			return nil
		}
		r := mapToDocument(segments, hit, hit+len(target))
		if r == nil {
			// Unmappable occurrence: not counted as found.
			from = hit + 1
			continue
		}
		found++
		if found == instance {
			return r
		}
		from = hit + len(target)
	}
}

// ParagraphRange returns the full span of the paragraph containing the
// given offset, descending into table cells as needed. Returns nil when no
// paragraph contains the offset.
func ParagraphRange(doc *doctree.Document, offset int) *Range {
	if doc == nil || doc.Body == nil {
		return nil
	}
	return paragraphRangeIn(doc.Body.Content, offset)
}

func paragraphRangeIn(elements []doctree.StructuralElement, offset int) *Range {
	for i := range elements {
		el := &elements[i]
		if offset < el.StartIndex || offset >= el.EndIndex {
			continue
		}
		switch {
		case el.Paragraph != nil:
			return &Range{Start: el.StartIndex, End: el.EndIndex}
		case el.Table != nil:
			for r := range el.Table.TableRows {
				row := &el.Table.TableRows[r]
				for c := range row.TableCells {
					cell := &row.TableCells[c]
					if offset < cell.StartIndex || offset >= cell.EndIndex {
						continue
					}
					if found := paragraphRangeIn(cell.Content, offset); found != nil {
						return found
					}
				}
			}
		}
	}
	return nil
}

// mapToDocument translates a half-open match [start, end) in flattened-text
// coordinates into true document offsets. Returns nil when a boundary falls
// outside every segment or when the match straddles segments that are not
// offset-contiguous, since the translated range would then cover structural
// positions that are no part of the match.
func mapToDocument(segments []TextSegment, start, end int) *Range {
	docStart := -1
	docEnd := -1
	prevEnd := -1

	pos := 0
	for _, seg := range segments {
		length := len([]rune(seg.Text))
		segStart, segEnd := pos, pos+length
		pos = segEnd

		if start >= segEnd || end <= segStart {
			continue
		}
		if docStart < 0 {
			docStart = seg.Start + (start - segStart)
		} else if seg.Start != prevEnd {
			// The match crosses a gap in the offset space.
			return nil
		}
		prevEnd = seg.End
		if end <= segEnd {
			docEnd = seg.Start + (end - segStart)
			break
		}
	}

	if docStart < 0 || docEnd < 0 || docEnd <= docStart {
		return nil
	}
	return &Range{Start: docStart, End: docEnd}
}

// indexRunes is a rune-based Index with a starting position.
func indexRunes(haystack, needle []rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
