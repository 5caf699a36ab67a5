// Package docx loads DOCX files into the read-only document view consumed by
// the formatting checks. It reads only word/document.xml inside the OOXML
// container and extracts the handful of attributes the checks need; it is
// the thin external collaborator of the core, not a general OOXML library.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matejk/thesischeck/internal/document"
)

const documentPart = "word/document.xml"

// LoadError reports a failure to open or parse a DOCX container.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads a DOCX file from disk and builds the document view.
func Load(path string) (*document.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "cannot open file", Cause: err}
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, &LoadError{Path: path, Message: "cannot stat file", Cause: err}
	}

	return Parse(f, info.Size(), filepath.Base(path))
}

// Parse builds the document view from an in-memory DOCX container. fileName
// is recorded in the document metadata.
func Parse(r io.ReaderAt, size int64, fileName string) (*document.Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, &LoadError{Path: fileName, Message: "not a valid DOCX container", Cause: err}
	}

	var part *zip.File
	for _, zf := range zr.File {
		if zf.Name == documentPart {
			part = zf
			break
		}
	}
	if part == nil {
		return nil, &LoadError{Path: fileName, Message: "container has no " + documentPart}
	}

	rc, err := part.Open()
	if err != nil {
		return nil, &LoadError{Path: fileName, Message: "cannot open " + documentPart, Cause: err}
	}
	defer func() { _ = rc.Close() }()

	var raw ctDocument
	if err := decodeXML(rc, &raw); err != nil {
		return nil, &LoadError{Path: fileName, Message: "cannot parse " + documentPart, Cause: err}
	}

	doc := &document.Document{
		Page:       convertSectPr(raw.Body.SectPr),
		Paragraphs: convertParagraphs(raw.Body.Paragraphs),
		Tables:     convertTables(raw.Body.Tables),
	}
	doc.Metadata = document.Metadata{
		FileName: fileName,
		Title:    titleFor(doc, fileName),
	}
	return doc, nil
}

func decodeXML(r io.Reader, v any) error {
	return xml.NewDecoder(r).Decode(v)
}

func convertParagraphs(raw []ctParagraph) []document.Paragraph {
	paragraphs := make([]document.Paragraph, 0, len(raw))
	for i := range raw {
		paragraphs = append(paragraphs, convertParagraph(&raw[i]))
	}
	return paragraphs
}

func convertParagraph(raw *ctParagraph) document.Paragraph {
	p := document.Paragraph{
		Runs: make([]document.Run, 0, len(raw.Runs)),
	}
	for i := range raw.Runs {
		p.Runs = append(p.Runs, convertRun(&raw.Runs[i]))
	}

	props := raw.Props
	if props == nil {
		return p
	}
	if props.Style != nil {
		p.StyleName = props.Style.Val
	}
	if props.Jc != nil {
		p.Alignment = convertAlignment(props.Jc.Val)
	}
	if props.Spacing != nil {
		p.LineSpacing = convertLineSpacing(props.Spacing)
	}
	if props.NumPr != nil {
		list := &document.ListProps{}
		if props.NumPr.Ilvl != nil {
			list.Level = props.NumPr.Ilvl.Val
		}
		if props.NumPr.NumID != nil {
			list.NumID = props.NumPr.NumID.Val
		}
		p.List = list
	}
	if props.Ind != nil {
		if left, ok := parseTwips(props.Ind.Left); ok {
			p.IndentCm = document.TwipsToCm(left)
		}
	}
	return p
}

func convertRun(raw *ctRun) document.Run {
	run := document.Run{Text: strings.Join(raw.Texts, "")}
	if raw.Props == nil {
		return run
	}
	if raw.Props.Fonts != nil {
		run.FontFamily = raw.Props.Fonts.ASCII
	}
	if raw.Props.Size != nil {
		if halfPoints, err := strconv.ParseFloat(raw.Props.Size.Val, 64); err == nil {
			run.FontSizePt = document.HalfPointsToPoints(halfPoints)
		}
	}
	run.Bold = raw.Props.Bold.isOn()
	return run
}

func convertTables(raw []ctTable) []document.Table {
	if len(raw) == 0 {
		return nil
	}
	tables := make([]document.Table, 0, len(raw))
	for _, t := range raw {
		table := document.Table{}
		for _, row := range t.Rows {
			tr := document.TableRow{}
			for _, cell := range row.Cells {
				tr.Cells = append(tr.Cells, document.TableCell{
					Paragraphs: convertParagraphs(cell.Paragraphs),
				})
			}
			table.Rows = append(table.Rows, tr)
		}
		tables = append(tables, table)
	}
	return tables
}

func convertAlignment(val string) document.Alignment {
	switch val {
	case "both", "distribute":
		return document.AlignJustify
	case "center":
		return document.AlignCenter
	case "right", "end":
		return document.AlignRight
	case "left", "start":
		return document.AlignLeft
	default:
		return document.AlignUnset
	}
}

// convertLineSpacing turns a w:spacing element into a spacing multiplier.
// Only proportional spacing (lineRule auto, or no rule with a line value) is
// meaningful for the checks; exact/atLeast rules are point heights and are
// reported as unset.
func convertLineSpacing(spacing *ctSpacing) float64 {
	if spacing.Line == "" {
		return 0
	}
	if spacing.LineRule != "" && spacing.LineRule != "auto" {
		return 0
	}
	units, err := strconv.ParseFloat(spacing.Line, 64)
	if err != nil {
		return 0
	}
	return document.LineUnitsToFactor(units)
}

// convertSectPr extracts page geometry. When the document declares no page
// size the A4 defaults are kept and SizeKnown is false, so the page-format
// check can report the attribute as unreadable instead of guessing.
func convertSectPr(sectPr *ctSectPr) document.PageSettings {
	page := document.A4Portrait()
	page.SizeKnown = false
	if sectPr == nil {
		return page
	}

	if sectPr.PgSz != nil {
		w, wok := parseTwips(sectPr.PgSz.W)
		h, hok := parseTwips(sectPr.PgSz.H)
		if wok && hok {
			page.WidthCm = document.TwipsToCm(w)
			page.HeightCm = document.TwipsToCm(h)
			page.SizeKnown = true
		}
		if sectPr.PgSz.Orient != "" {
			page.Orientation = sectPr.PgSz.Orient
		} else if page.SizeKnown {
			page.Orientation = orientationFor(page)
		}
	}

	if sectPr.PgMar != nil {
		setMargin := func(raw string, dst *float64) {
			if twips, ok := parseTwips(raw); ok {
				*dst = document.TwipsToCm(twips)
			}
		}
		setMargin(sectPr.PgMar.Top, &page.TopMarginCm)
		setMargin(sectPr.PgMar.Bottom, &page.BottomMarginCm)
		setMargin(sectPr.PgMar.Left, &page.LeftMarginCm)
		setMargin(sectPr.PgMar.Right, &page.RightMarginCm)
		setMargin(sectPr.PgMar.Header, &page.HeaderMarginCm)
		setMargin(sectPr.PgMar.Footer, &page.FooterMarginCm)
	}

	return page
}

func orientationFor(page document.PageSettings) string {
	if page.IsPortrait() {
		return "portrait"
	}
	return "landscape"
}

func parseTwips(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// titleFor derives a display title: the first heading-styled paragraph's
// text, or the file name without its extension.
func titleFor(doc *document.Document, fileName string) string {
	for i := range doc.Paragraphs {
		p := &doc.Paragraphs[i]
		if strings.Contains(strings.ToLower(p.StyleName), "heading") || strings.Contains(strings.ToLower(p.StyleName), "title") {
			if text := strings.TrimSpace(p.Text()); text != "" {
				return text
			}
		}
	}
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}
