// Package export serializes a positional document tree back into Markdown.
// It is the reverse of the convert direction and uses the same inline
// marker vocabulary, so a document produced from the supported Markdown
// subset round-trips to semantically equivalent Markdown.
package export

import (
	"fmt"
	"strings"

	"github.com/docpatch/docpatch/pkg/doctree"
	"github.com/docpatch/docpatch/pkg/langdetect"
)

// Options control serialization.
type Options struct {
	// DetectLanguages annotates code fences with a language guessed from
	// the code content.
	DetectLanguages bool
}

// Markdown renders the document body with default options.
func Markdown(doc *doctree.Document) string {
	return MarkdownWith(doc, Options{DetectLanguages: true})
}

// MarkdownWith renders the document body as Markdown.
func MarkdownWith(doc *doctree.Document, opts Options) string {
	if doc == nil || doc.Body == nil {
		return ""
	}

	w := &writer{opts: opts}
	w.elements(doc.Body.Content, true)
	w.flushCode()
	return w.sb.String()
}

type writer struct {
	sb   strings.Builder
	opts Options

	// code accumulates consecutive monospace paragraphs so they emit as
	// one fenced block.
	code []string
}

func (w *writer) elements(elements []doctree.StructuralElement, topLevel bool) {
	for i := range elements {
		el := &elements[i]
		switch {
		case el.Paragraph != nil:
			w.paragraph(el.Paragraph)
		case el.Table != nil:
			w.flushCode()
			w.table(el.Table)
		case el.SectionBreak != nil:
			w.flushCode()
			// The body opens with an implicit section break; only breaks
			// between content render as a rule.
			if !(topLevel && i == 0) {
				w.sb.WriteString("---\n\n")
			}
		}
	}
}

func (w *writer) paragraph(p *doctree.Paragraph) {
	if isMonospaceParagraph(p) {
		w.code = append(w.code, strings.TrimRight(p.Text(), "\n"))
		return
	}
	w.flushCode()

	text := w.runs(p)
	if strings.TrimSpace(text) == "" {
		return
	}

	prefix := ""
	style := p.ParagraphStyle
	switch {
	case p.Bullet != nil:
		prefix = strings.Repeat("  ", p.Bullet.NestingLevel) + "- "
	case style != nil && style.NamedStyleType == doctree.StyleTitle:
		prefix = "# "
	case style != nil && style.NamedStyleType.HeadingLevel() > 0:
		prefix = strings.Repeat("#", style.NamedStyleType.HeadingLevel()) + " "
	}

	w.sb.WriteString(prefix + strings.TrimSpace(text) + "\n\n")
}

// runs renders a paragraph's text runs with inline markers re-applied.
func (w *writer) runs(p *doctree.Paragraph) string {
	var out strings.Builder
	for _, el := range p.Elements {
		if el.TextRun == nil {
			continue
		}
		out.WriteString(styledRun(el.TextRun))
	}
	return out.String()
}

// styledRun wraps one run's text in the markers its style calls for.
// The text is trimmed before wrapping and any leading or trailing single
// space is re-attached outside the markers, so marker pairs never enclose
// incidental whitespace and the output survives re-parsing.
func styledRun(run *doctree.TextRun) string {
	text := strings.TrimRight(run.Content, "\n")
	style := run.TextStyle
	if style == nil || text == "" {
		return text
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text
	}
	leading := text[:strings.Index(text, trimmed[:1])]
	trailing := text[len(leading)+len(trimmed):]

	switch {
	case style.IsMonospace():
		trimmed = "`" + trimmed + "`"
	default:
		if style.Bold {
			trimmed = "**" + trimmed + "**"
		}
		if style.Italic {
			trimmed = "*" + trimmed + "*"
		}
		if style.Strikethrough {
			trimmed = "~~" + trimmed + "~~"
		}
	}
	if style.Link != nil && style.Link.URL != "" {
		trimmed = fmt.Sprintf("[%s](%s)", trimmed, style.Link.URL)
	}

	return leading + trimmed + trailing
}

func (w *writer) table(t *doctree.Table) {
	if len(t.TableRows) == 0 {
		return
	}
	for i, row := range t.TableRows {
		w.sb.WriteString("|")
		for _, cell := range row.TableCells {
			w.sb.WriteString(" " + cellText(&cell) + " |")
		}
		w.sb.WriteString("\n")

		if i == 0 {
			w.sb.WriteString("|")
			for range row.TableCells {
				w.sb.WriteString(" --- |")
			}
			w.sb.WriteString("\n")
		}
	}
	w.sb.WriteString("\n")
}

// cellText flattens a cell's nested paragraphs into one line.
func cellText(cell *doctree.TableCell) string {
	var parts []string
	_ = doctree.WalkParagraphs(cell.Content, func(_ *doctree.StructuralElement, p *doctree.Paragraph) error {
		if text := strings.TrimSpace(p.Text()); text != "" {
			parts = append(parts, text)
		}
		return nil
	})
	return strings.ReplaceAll(strings.Join(parts, " "), "\n", " ")
}

// flushCode emits any accumulated monospace paragraphs as one fence.
func (w *writer) flushCode() {
	if len(w.code) == 0 {
		return
	}
	body := strings.Join(w.code, "\n")
	w.code = nil

	lang := ""
	if w.opts.DetectLanguages {
		if detected := langdetect.Detect([]byte(body)); detected != langdetect.Unknown {
			lang = detected
		}
	}
	w.sb.WriteString("```" + lang + "\n" + body + "\n```\n\n")
}

// isMonospaceParagraph reports whether every text run of a paragraph is
// monospace, i.e. the paragraph is code content.
func isMonospaceParagraph(p *doctree.Paragraph) bool {
	seen := false
	for _, el := range p.Elements {
		if el.TextRun == nil {
			continue
		}
		if strings.TrimSpace(el.TextRun.Content) == "" {
			continue
		}
		if !el.TextRun.TextStyle.IsMonospace() {
			return false
		}
		seen = true
	}
	return seen
}
