package doctree_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docpatch/docpatch/pkg/doctree"
)

func TestHeadingStyle(t *testing.T) {
	t.Parallel()

	for level := 1; level <= 6; level++ {
		style := doctree.HeadingStyle(level)
		assert.Equal(t, level, style.HeadingLevel(), "level %d should round-trip", level)
	}

	assert.Equal(t, doctree.StyleNormalText, doctree.HeadingStyle(0))
	assert.Equal(t, doctree.StyleNormalText, doctree.HeadingStyle(7))
	assert.Equal(t, 0, doctree.StyleTitle.HeadingLevel())
}

func TestParagraphText(t *testing.T) {
	t.Parallel()

	para := &doctree.Paragraph{Elements: []doctree.ParagraphElement{
		{TextRun: &doctree.TextRun{Content: "Hello "}},
		{TextRun: &doctree.TextRun{Content: "world"}},
		{}, // element without a text run
		{TextRun: &doctree.TextRun{Content: "\n"}},
	}}

	assert.Equal(t, "Hello world\n", para.Text())

	var nilPara *doctree.Paragraph
	assert.Equal(t, "", nilPara.Text())
}

func TestDocumentEndIndex(t *testing.T) {
	t.Parallel()

	doc := &doctree.Document{Body: &doctree.Body{Content: []doctree.StructuralElement{
		{StartIndex: 1, EndIndex: 13},
		{StartIndex: 13, EndIndex: 40},
	}}}

	assert.Equal(t, 40, doc.EndIndex())

	assert.Equal(t, 0, (&doctree.Document{}).EndIndex())
	assert.Equal(t, 0, (*doctree.Document)(nil).EndIndex())
}

func TestWalkRecursesIntoTableCells(t *testing.T) {
	t.Parallel()

	cellPara := doctree.StructuralElement{
		StartIndex: 5,
		EndIndex:   10,
		Paragraph:  &doctree.Paragraph{Elements: []doctree.ParagraphElement{{TextRun: &doctree.TextRun{Content: "cell\n"}}}},
	}
	elements := []doctree.StructuralElement{
		{StartIndex: 1, EndIndex: 3, Paragraph: &doctree.Paragraph{}},
		{StartIndex: 3, EndIndex: 12, Table: &doctree.Table{
			Rows:    1,
			Columns: 1,
			TableRows: []doctree.TableRow{
				{TableCells: []doctree.TableCell{{StartIndex: 4, EndIndex: 11, Content: []doctree.StructuralElement{cellPara}}}},
			},
		}},
	}

	var starts []int
	err := doctree.Walk(elements, func(el *doctree.StructuralElement) error {
		starts = append(starts, el.StartIndex)
		return nil
	})
	require.NoError(t, err)

	// Pre-order: paragraph, table, then the cell's nested paragraph.
	assert.Equal(t, []int{1, 3, 5}, starts)
}

func TestWalkStopsOnError(t *testing.T) {
	t.Parallel()

	elements := []doctree.StructuralElement{
		{StartIndex: 1, Paragraph: &doctree.Paragraph{}},
		{StartIndex: 2, Paragraph: &doctree.Paragraph{}},
	}

	stop := assert.AnError
	visited := 0
	err := doctree.Walk(elements, func(*doctree.StructuralElement) error {
		visited++
		return stop
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, visited)
}

func TestDocumentJSONFieldNames(t *testing.T) {
	t.Parallel()

	payload := `{
	  "documentId": "doc-1",
	  "title": "Notes",
	  "body": {"content": [
	    {"startIndex": 1, "endIndex": 7, "paragraph": {
	      "elements": [{"startIndex": 1, "endIndex": 7, "textRun": {
	        "content": "Title\n",
	        "textStyle": {"bold": true, "weightedFontFamily": {"fontFamily": "Courier New"}}
	      }}],
	      "paragraphStyle": {"namedStyleType": "HEADING_1"}
	    }}
	  ]}
	}`

	doc := &doctree.Document{}
	require.NoError(t, json.Unmarshal([]byte(payload), doc))

	assert.Equal(t, "doc-1", doc.DocumentID)
	assert.Equal(t, "Notes", doc.Title)
	require.Len(t, doc.Body.Content, 1)

	para := doc.Body.Content[0].Paragraph
	require.NotNil(t, para)
	assert.Equal(t, "Title\n", para.Text())
	assert.Equal(t, doctree.StyleHeading1, para.ParagraphStyle.NamedStyleType)

	style := para.Elements[0].TextRun.TextStyle
	assert.True(t, style.Bold)
	assert.True(t, style.IsMonospace())
}
