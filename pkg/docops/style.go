package docops

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/docpatch/docpatch/pkg/doctree"
)

// BulletPreset selects the glyph sequence for generated list bullets.
type BulletPreset string

// Bullet presets used by the generator.
const (
	BulletDiscCircleSquare    BulletPreset = "BULLET_DISC_CIRCLE_SQUARE"
	NumberedDecimalAlphaRoman BulletPreset = "NUMBERED_DECIMAL_ALPHA_ROMAN"
)

// TextStyle is the character-style payload of an UpdateTextStyleRequest.
// Which fields actually apply is governed by the request's field mask, so
// zero values here are inert.
type TextStyle struct {
	Bold               bool                        `json:"bold,omitempty"`
	Italic             bool                        `json:"italic,omitempty"`
	Underline          bool                        `json:"underline,omitempty"`
	Strikethrough      bool                        `json:"strikethrough,omitempty"`
	WeightedFontFamily *doctree.WeightedFontFamily `json:"weightedFontFamily,omitempty"`
	Link               *doctree.Link               `json:"link,omitempty"`
	ForegroundColor    *OptionalColor              `json:"foregroundColor,omitempty"`
}

// ParagraphStyle is the paragraph-style payload of an
// UpdateParagraphStyleRequest.
type ParagraphStyle struct {
	NamedStyleType  doctree.NamedStyle `json:"namedStyleType,omitempty"`
	IndentStart     *Dimension         `json:"indentStart,omitempty"`
	IndentFirstLine *Dimension         `json:"indentFirstLine,omitempty"`
}

// OptionalColor wraps an RGB color the way the wire protocol nests it.
type OptionalColor struct {
	Color struct {
		RGBColor RGBColor `json:"rgbColor"`
	} `json:"color"`
}

// RGBColor holds color channels in the 0.0-1.0 range.
type RGBColor struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{6})$`)

// ParseHexColor converts "#rrggbb" user input into an OptionalColor.
// Invalid input fails here, before any operation is built.
func ParseHexColor(s string) (*OptionalColor, error) {
	m := hexColorPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, &InputError{Field: "color", Value: s, Reason: "expected #rrggbb"}
	}
	var rgb [3]float64
	for i := 0; i < 3; i++ {
		var b int
		fmt.Sscanf(m[1][i*2:i*2+2], "%02x", &b)
		rgb[i] = float64(b) / 255.0
	}
	out := &OptionalColor{}
	out.Color.RGBColor = RGBColor{Red: rgb[0], Green: rgb[1], Blue: rgb[2]}
	return out, nil
}

// ParseLinkURL validates a user-supplied hyperlink target. Only absolute
// http and https URLs are accepted.
func ParseLinkURL(s string) (*doctree.Link, error) {
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, &InputError{Field: "url", Value: s, Reason: "expected absolute http(s) URL"}
	}
	return &doctree.Link{URL: s}, nil
}

// InputError reports invalid user-supplied style input.
type InputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// FieldMask joins style field names into the comma-separated form the
// update requests carry.
func FieldMask(fields ...string) string {
	return strings.Join(fields, ",")
}
