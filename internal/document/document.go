// Package document defines the read-only view of a thesis document that the
// formatting checks consume. The view is produced by a loader (see
// internal/docx) and never mutated by the checks.
package document

import "strings"

// Alignment is the horizontal alignment of a paragraph.
type Alignment string

const (
	AlignUnset   Alignment = ""
	AlignLeft    Alignment = "left"
	AlignRight   Alignment = "right"
	AlignCenter  Alignment = "center"
	AlignJustify Alignment = "justify"
)

// Run is a contiguous span of text sharing one set of character properties.
// Zero values mean the property is inherited from the paragraph style or the
// document defaults rather than set directly on the run.
type Run struct {
	Text       string
	FontFamily string
	FontSizePt float64
	Bold       bool
}

// ListProps carries the numbering properties of a list paragraph.
// Level is the zero-based nesting level (ilvl); NumID identifies the
// numbering definition the paragraph is bound to.
type ListProps struct {
	Level int
	NumID int
}

// Paragraph is one block-level paragraph with its formatting attributes.
// LineSpacing is a multiplier (1.0 single, 1.5 one-and-a-half); zero means
// the paragraph does not set spacing directly.
type Paragraph struct {
	StyleName   string
	Alignment   Alignment
	LineSpacing float64
	IndentCm    float64
	List        *ListProps
	Runs        []Run
}

// Text returns the concatenated text of all runs in the paragraph.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// TableCell holds the paragraphs of one table cell.
type TableCell struct {
	Paragraphs []Paragraph
}

// TableRow holds the cells of one table row.
type TableRow struct {
	Cells []TableCell
}

// Table is an ordered grid of rows and cells.
type Table struct {
	Rows []TableRow
}

// Metadata describes the document itself rather than its content.
type Metadata struct {
	FileName string
	Title    string
}

// Document is the immutable view of one loaded thesis document.
type Document struct {
	Metadata   Metadata
	Page       PageSettings
	Paragraphs []Paragraph
	Tables     []Table
}

// minimum content below which a document is considered unusable for
// validation; shared by every check's default pre-check.
const (
	minParagraphs = 3
	minWords      = 50
)

// WordCount returns the total number of whitespace-separated words across
// all paragraphs.
func (d *Document) WordCount() int {
	total := 0
	for i := range d.Paragraphs {
		total += countWords(d.Paragraphs[i].Text())
	}
	return total
}

// EstimatedPageCount approximates the page count from the paragraph count.
func (d *Document) EstimatedPageCount() int {
	pages := len(d.Paragraphs) / 25
	if pages < 1 {
		return 1
	}
	return pages
}

// IsEmpty reports whether the document has too little content to validate.
// This is the shared emptiness predicate used by check pre-checks.
func (d *Document) IsEmpty() bool {
	return len(d.Paragraphs) < minParagraphs || d.WordCount() < minWords
}

func countWords(text string) int {
	return len(strings.Fields(text))
}
