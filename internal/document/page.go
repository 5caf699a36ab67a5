package document

import (
	"fmt"
	"math"
)

// PageSettings holds the page geometry extracted from the document's section
// properties. All lengths are in centimeters. SizeKnown is false when the
// document declares no page size, in which case WidthCm/HeightCm carry the
// A4 defaults but must not be trusted by checks.
type PageSettings struct {
	WidthCm        float64
	HeightCm       float64
	Orientation    string
	TopMarginCm    float64
	BottomMarginCm float64
	LeftMarginCm   float64
	RightMarginCm  float64
	HeaderMarginCm float64
	FooterMarginCm float64
	SizeKnown      bool
}

// A4Portrait returns page settings for an A4 portrait page with 2.5 cm
// margins, the layout most institutional rulebooks require.
func A4Portrait() PageSettings {
	return PageSettings{
		WidthCm:        21.0,
		HeightCm:       29.7,
		Orientation:    "portrait",
		TopMarginCm:    2.5,
		BottomMarginCm: 2.5,
		LeftMarginCm:   2.5,
		RightMarginCm:  2.5,
		HeaderMarginCm: 1.25,
		FooterMarginCm: 1.25,
		SizeKnown:      true,
	}
}

// TextWidth returns the page width minus the left and right margins.
func (p PageSettings) TextWidth() float64 {
	return p.WidthCm - p.LeftMarginCm - p.RightMarginCm
}

// TextHeight returns the page height minus the top and bottom margins.
func (p PageSettings) TextHeight() float64 {
	return p.HeightCm - p.TopMarginCm - p.BottomMarginCm
}

// IsPortrait reports whether the page is taller than it is wide.
func (p PageSettings) IsPortrait() bool {
	return p.HeightCm > p.WidthCm
}

// IsA4 reports whether the page dimensions match A4 within 1 mm.
func (p PageSettings) IsA4() bool {
	const tolerance = 0.1
	return math.Abs(p.WidthCm-21.0) <= tolerance && math.Abs(p.HeightCm-29.7) <= tolerance
}

// SizeName returns the standard paper size name for the page dimensions, or
// "Custom" when none matches.
func (p PageSettings) SizeName() string {
	const tolerance = 0.1
	switch {
	case math.Abs(p.WidthCm-21.0) <= tolerance && math.Abs(p.HeightCm-29.7) <= tolerance:
		return "A4"
	case math.Abs(p.WidthCm-21.59) <= tolerance && math.Abs(p.HeightCm-27.94) <= tolerance:
		return "Letter"
	case math.Abs(p.WidthCm-29.7) <= tolerance && math.Abs(p.HeightCm-42.0) <= tolerance:
		return "A3"
	default:
		return "Custom"
	}
}

// EqualMargins reports whether all four margins are the same within 0.1 mm.
func (p PageSettings) EqualMargins() bool {
	const tolerance = 0.01
	return math.Abs(p.TopMarginCm-p.BottomMarginCm) <= tolerance &&
		math.Abs(p.TopMarginCm-p.LeftMarginCm) <= tolerance &&
		math.Abs(p.TopMarginCm-p.RightMarginCm) <= tolerance
}

// LayoutSummary returns a one-line description of the page layout for
// verbose output.
func (p PageSettings) LayoutSummary() string {
	margins := "mixed margins"
	if p.EqualMargins() {
		margins = fmt.Sprintf("margins: %.1f cm", p.TopMarginCm)
	}
	return fmt.Sprintf("%s %s (%.1f × %.1f cm), %s", p.SizeName(), p.Orientation, p.WidthCm, p.HeightCm, margins)
}
