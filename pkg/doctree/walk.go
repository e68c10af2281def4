package doctree

// WalkFunc is the callback signature for Walk. Return a non-nil error to
// stop the walk early.
type WalkFunc func(el *StructuralElement) error

// Walk performs a pre-order traversal of structural elements, recursing
// into table cells. The callback sees every element exactly once, in
// document order.
func Walk(elements []StructuralElement, walkFunc WalkFunc) error {
	for i := range elements {
		el := &elements[i]
		if err := walkFunc(el); err != nil {
			return err
		}
		if el.Table == nil {
			continue
		}
		for r := range el.Table.TableRows {
			row := &el.Table.TableRows[r]
			for c := range row.TableCells {
				if err := Walk(row.TableCells[c].Content, walkFunc); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// WalkParagraphs walks only paragraph elements.
func WalkParagraphs(elements []StructuralElement, fn func(el *StructuralElement, p *Paragraph) error) error {
	return Walk(elements, func(el *StructuralElement) error {
		if el.Paragraph != nil {
			return fn(el, el.Paragraph)
		}
		return nil
	})
}
