// Package docops defines the JSON batch-update protocol spoken with the
// remote document API: the tagged request union, the style payloads, and
// validation for both generated operations and user-supplied style input.
//
// All indexes are 1-based positions in a document's linear character space;
// ranges are half-open [StartIndex, EndIndex).
package docops

// Location addresses a single insertion point.
type Location struct {
	Index int `json:"index"`
}

// Range addresses a half-open span of characters.
type Range struct {
	StartIndex int `json:"startIndex"`
	EndIndex   int `json:"endIndex"`
}

// Len returns the number of characters the range covers.
func (r Range) Len() int {
	return r.EndIndex - r.StartIndex
}

// Request is one batch-update operation. Exactly one field is set; the
// populated field determines the JSON encoding on the wire.
type Request struct {
	InsertText             *InsertTextRequest             `json:"insertText,omitempty"`
	DeleteContentRange     *DeleteContentRangeRequest     `json:"deleteContentRange,omitempty"`
	UpdateTextStyle        *UpdateTextStyleRequest        `json:"updateTextStyle,omitempty"`
	UpdateParagraphStyle   *UpdateParagraphStyleRequest   `json:"updateParagraphStyle,omitempty"`
	CreateParagraphBullets *CreateParagraphBulletsRequest `json:"createParagraphBullets,omitempty"`
	InsertInlineImage      *InsertInlineImageRequest      `json:"insertInlineImage,omitempty"`
	InsertTable            *InsertTableRequest            `json:"insertTable,omitempty"`
}

// InsertTextRequest inserts text at a location.
type InsertTextRequest struct {
	Location Location `json:"location"`
	Text     string   `json:"text"`
}

// DeleteContentRangeRequest removes the characters in a range.
type DeleteContentRangeRequest struct {
	Range Range `json:"range"`
}

// UpdateTextStyleRequest applies character-level styling to a range.
// Fields is the comma-separated mask of style fields to touch.
type UpdateTextStyleRequest struct {
	Range     Range     `json:"range"`
	TextStyle TextStyle `json:"textStyle"`
	Fields    string    `json:"fields"`
}

// UpdateParagraphStyleRequest applies paragraph-level styling to a range.
type UpdateParagraphStyleRequest struct {
	Range          Range          `json:"range"`
	ParagraphStyle ParagraphStyle `json:"paragraphStyle"`
	Fields         string         `json:"fields"`
}

// CreateParagraphBulletsRequest turns the paragraphs in a range into list
// items using a bullet preset.
type CreateParagraphBulletsRequest struct {
	Range        Range        `json:"range"`
	BulletPreset BulletPreset `json:"bulletPreset"`
}

// InsertInlineImageRequest places an image at a location. The image
// occupies exactly one index position.
type InsertInlineImageRequest struct {
	Location   Location    `json:"location"`
	URI        string      `json:"uri"`
	ObjectSize *ObjectSize `json:"objectSize,omitempty"`
}

// InsertTableRequest inserts an empty rows-by-columns table at a location.
type InsertTableRequest struct {
	Location Location `json:"location"`
	Rows     int      `json:"rows"`
	Columns  int      `json:"columns"`
}

// ObjectSize is the rendered box of an inline object.
type ObjectSize struct {
	Height Dimension `json:"height"`
	Width  Dimension `json:"width"`
}

// Dimension is a magnitude in a typographic unit.
type Dimension struct {
	Magnitude float64 `json:"magnitude"`
	Unit      string  `json:"unit"`
}

// PT builds a point-unit dimension.
func PT(magnitude float64) Dimension {
	return Dimension{Magnitude: magnitude, Unit: "PT"}
}

// BatchUpdateRequest is the wire envelope for one remote call.
type BatchUpdateRequest struct {
	Requests []Request `json:"requests"`
}

// BatchUpdateResponse is the remote reply for one call. Replies holds one
// entry per request, in request order; most entries are empty objects.
type BatchUpdateResponse struct {
	DocumentID string           `json:"documentId,omitempty"`
	Replies    []map[string]any `json:"replies,omitempty"`
}

// Kind returns the wire name of the populated operation, or "" for an
// empty request.
func (r Request) Kind() string {
	switch {
	case r.InsertText != nil:
		return "insertText"
	case r.DeleteContentRange != nil:
		return "deleteContentRange"
	case r.UpdateTextStyle != nil:
		return "updateTextStyle"
	case r.UpdateParagraphStyle != nil:
		return "updateParagraphStyle"
	case r.CreateParagraphBullets != nil:
		return "createParagraphBullets"
	case r.InsertInlineImage != nil:
		return "insertInlineImage"
	case r.InsertTable != nil:
		return "insertTable"
	default:
		return ""
	}
}
