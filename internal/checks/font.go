package checks

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/matejk/thesischeck/internal/document"
	"github.com/matejk/thesischeck/internal/validation"
)

var footnoteStylePattern = regexp.MustCompile(`(?i)footnote`)

// FontConfig controls the typeface rule. Families other than BodyFamily are
// graded by how much of the text they cover; wrong sizes by their pt
// deviation or by how much text they cover, whichever grades higher.
type FontConfig struct {
	BodyFamily       string  `json:"body_family" validate:"required"`
	BodySizePt       float64 `json:"body_size_pt" validate:"gt=0"`
	FootnoteSizePt   float64 `json:"footnote_size_pt" validate:"gt=0"`
	SizeTolerancePt  float64 `json:"size_tolerance_pt" validate:"gte=0"`
	MajorShare       float64 `json:"major_share" validate:"gt=0,lte=1"`
	MinorShare       float64 `json:"minor_share" validate:"gt=0,lte=1"`
	MajorDeviationPt float64 `json:"major_deviation_pt" validate:"gt=0"`
	MinorDeviationPt float64 `json:"minor_deviation_pt" validate:"gt=0"`
	MaxFamilies      int     `json:"max_families" validate:"gt=0"`
}

// DefaultFontConfig requires Times New Roman at 12 pt for body text and
// 10 pt for footnotes.
func DefaultFontConfig() FontConfig {
	return FontConfig{
		BodyFamily:       "Times New Roman",
		BodySizePt:       12,
		FootnoteSizePt:   10,
		SizeTolerancePt:  0.5,
		MajorShare:       0.10,
		MinorShare:       0.05,
		MajorDeviationPt: 4,
		MinorDeviationPt: 2,
		MaxFamilies:      3,
	}
}

// Font verifies typeface family usage across the document and font sizes in
// body and footnote text. Heading sizes are the heading rule's concern, so
// heading-styled paragraphs are excluded from size analysis; their typeface
// still counts.
type Font struct {
	validation.Base
	cfg FontConfig
}

func NewFont(cfg FontConfig) *Font {
	return &Font{
		Base: validation.NewBase(
			"font",
			validation.Major,
			"verifies typeface family and font sizes",
		),
		cfg: cfg,
	}
}

func (f *Font) Check(doc *document.Document) (validation.Result, error) {
	stats := f.collect(doc)
	var issues []validation.Issue
	issues = append(issues, f.familyIssues(stats)...)
	issues = append(issues, f.sizeIssues(stats)...)
	return validation.ForIssues(f.Name(), issues), nil
}

// fontStats accumulates character-weighted usage. Runs without explicit
// formatting inherit the document default and are treated as conforming.
type fontStats struct {
	familyChars map[string]int
	totalChars  int
	sizeChars   map[float64]int
	sizedChars  int
}

func (f *Font) collect(doc *document.Document) fontStats {
	stats := fontStats{
		familyChars: make(map[string]int),
		sizeChars:   make(map[float64]int),
	}
	for i := range doc.Paragraphs {
		f.accumulate(&doc.Paragraphs[i], &stats)
	}
	for _, table := range doc.Tables {
		for _, row := range table.Rows {
			for _, cell := range row.Cells {
				for i := range cell.Paragraphs {
					f.accumulate(&cell.Paragraphs[i], &stats)
				}
			}
		}
	}
	return stats
}

func (f *Font) accumulate(p *document.Paragraph, stats *fontStats) {
	heading := isHeadingStyle(p)
	expectedSize := f.cfg.BodySizePt
	if isFootnoteStyle(p) {
		expectedSize = f.cfg.FootnoteSizePt
	}
	for _, run := range p.Runs {
		weight := len(strings.TrimSpace(run.Text))
		if weight == 0 {
			continue
		}
		stats.totalChars += weight
		if run.FontFamily != "" {
			stats.familyChars[run.FontFamily] += weight
		}
		if heading || run.FontSizePt == 0 {
			continue
		}
		stats.sizedChars += weight
		deviation := run.FontSizePt - expectedSize
		if math.Abs(deviation) > f.cfg.SizeTolerancePt {
			stats.sizeChars[deviation] += weight
		}
	}
}

func (f *Font) familyIssues(stats fontStats) []validation.Issue {
	if stats.totalChars == 0 {
		return nil
	}
	var issues []validation.Issue
	for _, family := range sortedKeys(stats.familyChars) {
		if family == f.cfg.BodyFamily {
			continue
		}
		share := float64(stats.familyChars[family]) / float64(stats.totalChars)
		severity := validation.Info
		switch {
		case share >= f.cfg.MajorShare:
			severity = validation.Major
		case share >= f.cfg.MinorShare:
			severity = validation.Minor
		}
		issue := validation.MustIssue(
			fmt.Sprintf("font family %q", family),
			f.cfg.BodyFamily,
			fmt.Sprintf("%s used for %s of the text", family, formatPercent(share)),
			severity,
		).WithSuggestion("Change the text set in " + family + " to " + f.cfg.BodyFamily)
		issues = append(issues, issue)
	}

	if predominant, ok := f.predominantFamily(stats); ok && predominant != f.cfg.BodyFamily {
		issues = append(issues, validation.MustIssue(
			"predominant font family",
			f.cfg.BodyFamily,
			predominant,
			validation.Major,
		).WithSuggestion("Set the document's default typeface to "+f.cfg.BodyFamily))
	}

	if len(stats.familyChars) > f.cfg.MaxFamilies {
		issues = append(issues, validation.MustIssue(
			"font family count",
			fmt.Sprintf("at most %d font families", f.cfg.MaxFamilies),
			fmt.Sprintf("%d font families in use", len(stats.familyChars)),
			validation.Minor,
		).WithSuggestion("Reduce the number of typefaces used in the document"))
	}

	return issues
}

// predominantFamily returns the explicitly-set family covering the most
// text. It reports false when explicit families cover less than half of the
// text, since the inherited default dominates in that case.
func (f *Font) predominantFamily(stats fontStats) (string, bool) {
	best := ""
	bestChars := 0
	explicit := 0
	for _, family := range sortedKeys(stats.familyChars) {
		chars := stats.familyChars[family]
		explicit += chars
		if chars > bestChars {
			best, bestChars = family, chars
		}
	}
	if best == "" || explicit*2 < stats.totalChars {
		return "", false
	}
	return best, true
}

func (f *Font) sizeIssues(stats fontStats) []validation.Issue {
	if stats.sizedChars == 0 {
		return nil
	}
	var issues []validation.Issue
	for _, deviation := range sortedKeys(stats.sizeChars) {
		share := float64(stats.sizeChars[deviation]) / float64(stats.sizedChars)
		severity := validation.Info
		switch {
		case math.Abs(deviation) >= f.cfg.MajorDeviationPt || share >= f.cfg.MajorShare:
			severity = validation.Major
		case math.Abs(deviation) >= f.cfg.MinorDeviationPt || share >= f.cfg.MinorShare:
			severity = validation.Minor
		}
		issue := validation.MustIssue(
			fmt.Sprintf("font size deviation %+.1f pt", deviation),
			fmt.Sprintf("%s for body text, %s for footnotes", formatPt(f.cfg.BodySizePt), formatPt(f.cfg.FootnoteSizePt)),
			fmt.Sprintf("%s of the sized text deviates by %+.1f pt", formatPercent(share), deviation),
			severity,
		).WithSuggestion("Set body text to " + formatPt(f.cfg.BodySizePt) + " and footnotes to " + formatPt(f.cfg.FootnoteSizePt))
		issues = append(issues, issue)
	}
	return issues
}
