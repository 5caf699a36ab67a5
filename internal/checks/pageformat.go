package checks

import (
	"github.com/matejk/thesischeck/internal/document"
	"github.com/matejk/thesischeck/internal/validation"
)

// PageFormatConfig controls the page size and orientation rule. Dimensions
// are compared in points against the expected paper size.
type PageFormatConfig struct {
	WidthPt     float64 `json:"width_pt" validate:"gt=0"`
	HeightPt    float64 `json:"height_pt" validate:"gt=0"`
	TolerancePt float64 `json:"tolerance_pt" validate:"gte=0"`
	Orientation string  `json:"orientation" validate:"oneof=portrait landscape"`
}

// DefaultPageFormatConfig requires A4 portrait with a ten-point tolerance,
// wide enough to absorb converter rounding between metric and twip sizes.
func DefaultPageFormatConfig() PageFormatConfig {
	return PageFormatConfig{
		WidthPt:     595,
		HeightPt:    842,
		TolerancePt: 10,
		Orientation: "portrait",
	}
}

// PageFormat verifies the paper size and orientation of the document.
type PageFormat struct {
	validation.Base
	cfg PageFormatConfig
}

func NewPageFormat(cfg PageFormatConfig) *PageFormat {
	return &PageFormat{
		Base: validation.NewBase(
			"page-format",
			validation.Critical,
			"verifies paper size and page orientation",
		),
		cfg: cfg,
	}
}

func (p *PageFormat) Check(doc *document.Document) (validation.Result, error) {
	if !doc.Page.SizeKnown {
		issue := validation.MustIssue(
			"page size",
			"Readable page size information",
			"Unreadable or missing page size",
			validation.Major,
		).WithSuggestion("Set an explicit paper size in the page layout settings")
		return validation.ForIssues(p.Name(), []validation.Issue{issue}), nil
	}

	var issues []validation.Issue
	widthPt := document.CmToPoints(doc.Page.WidthCm)
	heightPt := document.CmToPoints(doc.Page.HeightCm)

	if !withinTolerance(widthPt, p.cfg.WidthPt, p.cfg.TolerancePt) {
		issues = append(issues, validation.MustIssue(
			"page width",
			formatPt(p.cfg.WidthPt),
			formatPt(widthPt),
			validation.Critical,
		).WithSuggestion("Change the paper size to "+p.expectedSizeName()))
	}
	if !withinTolerance(heightPt, p.cfg.HeightPt, p.cfg.TolerancePt) {
		issues = append(issues, validation.MustIssue(
			"page height",
			formatPt(p.cfg.HeightPt),
			formatPt(heightPt),
			validation.Critical,
		).WithSuggestion("Change the paper size to "+p.expectedSizeName()))
	}

	orientation := doc.Page.Orientation
	if orientation == "" {
		if doc.Page.IsPortrait() {
			orientation = "portrait"
		} else {
			orientation = "landscape"
		}
	}
	if orientation != p.cfg.Orientation {
		issues = append(issues, validation.MustIssue(
			"page orientation",
			p.cfg.Orientation,
			orientation,
			validation.Critical,
		).WithSuggestion("Switch the page orientation to "+p.cfg.Orientation))
	}

	return validation.ForIssues(p.Name(), issues), nil
}

func (p *PageFormat) expectedSizeName() string {
	expected := document.PageSettings{
		WidthCm:  document.PointsToCm(p.cfg.WidthPt),
		HeightCm: document.PointsToCm(p.cfg.HeightPt),
	}
	return expected.SizeName()
}
