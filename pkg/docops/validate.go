package docops

import "fmt"

// ValidationError describes an operation that cannot be sent to the remote
// API.
type ValidationError struct {
	Index   int // position in the operation list
	Kind    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid operation %d (%s): %s", e.Index, e.Kind, e.Message)
}

// Validate checks a single operation for protocol violations: exactly one
// populated variant, 1-based indexes, and ordered non-empty ranges where a
// range is required.
func Validate(req Request) error {
	return validateAt(req, 0)
}

// ValidateAll checks every operation in order and returns the first error.
func ValidateAll(reqs []Request) error {
	for i, req := range reqs {
		if err := validateAt(req, i); err != nil {
			return err
		}
	}
	return nil
}

func validateAt(req Request, i int) error {
	kind := req.Kind()
	if kind == "" {
		return &ValidationError{Index: i, Kind: "empty", Message: "no operation populated"}
	}
	if n := populatedCount(req); n > 1 {
		return &ValidationError{Index: i, Kind: kind, Message: fmt.Sprintf("%d operations populated in one request", n)}
	}

	switch {
	case req.InsertText != nil:
		if err := checkLocation(req.InsertText.Location); err != nil {
			return &ValidationError{Index: i, Kind: kind, Message: err.Error()}
		}
		if req.InsertText.Text == "" {
			return &ValidationError{Index: i, Kind: kind, Message: "empty text"}
		}
	case req.DeleteContentRange != nil:
		if err := checkRange(req.DeleteContentRange.Range); err != nil {
			return &ValidationError{Index: i, Kind: kind, Message: err.Error()}
		}
	case req.UpdateTextStyle != nil:
		if err := checkRange(req.UpdateTextStyle.Range); err != nil {
			return &ValidationError{Index: i, Kind: kind, Message: err.Error()}
		}
		if req.UpdateTextStyle.Fields == "" {
			return &ValidationError{Index: i, Kind: kind, Message: "empty field mask"}
		}
	case req.UpdateParagraphStyle != nil:
		if err := checkRange(req.UpdateParagraphStyle.Range); err != nil {
			return &ValidationError{Index: i, Kind: kind, Message: err.Error()}
		}
		if req.UpdateParagraphStyle.Fields == "" {
			return &ValidationError{Index: i, Kind: kind, Message: "empty field mask"}
		}
	case req.CreateParagraphBullets != nil:
		if err := checkRange(req.CreateParagraphBullets.Range); err != nil {
			return &ValidationError{Index: i, Kind: kind, Message: err.Error()}
		}
		if req.CreateParagraphBullets.BulletPreset == "" {
			return &ValidationError{Index: i, Kind: kind, Message: "missing bullet preset"}
		}
	case req.InsertInlineImage != nil:
		if err := checkLocation(req.InsertInlineImage.Location); err != nil {
			return &ValidationError{Index: i, Kind: kind, Message: err.Error()}
		}
		if req.InsertInlineImage.URI == "" {
			return &ValidationError{Index: i, Kind: kind, Message: "missing image uri"}
		}
	case req.InsertTable != nil:
		if err := checkLocation(req.InsertTable.Location); err != nil {
			return &ValidationError{Index: i, Kind: kind, Message: err.Error()}
		}
		if req.InsertTable.Rows < 1 || req.InsertTable.Columns < 1 {
			return &ValidationError{Index: i, Kind: kind, Message: "rows and columns must be positive"}
		}
	}
	return nil
}

func populatedCount(req Request) int {
	n := 0
	for _, set := range []bool{
		req.InsertText != nil,
		req.DeleteContentRange != nil,
		req.UpdateTextStyle != nil,
		req.UpdateParagraphStyle != nil,
		req.CreateParagraphBullets != nil,
		req.InsertInlineImage != nil,
		req.InsertTable != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

func checkLocation(loc Location) error {
	if loc.Index < 1 {
		return fmt.Errorf("index %d is before the document start", loc.Index)
	}
	return nil
}

func checkRange(r Range) error {
	if r.StartIndex < 1 {
		return fmt.Errorf("start index %d is before the document start", r.StartIndex)
	}
	if r.EndIndex <= r.StartIndex {
		return fmt.Errorf("end index %d does not follow start index %d", r.EndIndex, r.StartIndex)
	}
	return nil
}
