package checks

import (
	"fmt"

	"github.com/matejk/thesischeck/internal/document"
	"github.com/matejk/thesischeck/internal/validation"
)

// ParagraphConfig controls the body paragraph rule. Lengths are measured in
// characters of the paragraph's concatenated text.
type ParagraphConfig struct {
	MinLength         int                `json:"min_length" validate:"gte=0"`
	MaxLength         int                `json:"max_length" validate:"gt=0"`
	RequiredAlignment document.Alignment `json:"required_alignment" validate:"required"`
	RequiredSpacing   float64            `json:"required_spacing" validate:"gt=0"`
	SpacingTolerance  float64            `json:"spacing_tolerance" validate:"gte=0"`
}

// DefaultParagraphConfig requires justified body paragraphs between 50 and
// 2000 characters at one-and-a-half spacing.
func DefaultParagraphConfig() ParagraphConfig {
	return ParagraphConfig{
		MinLength:         50,
		MaxLength:         2000,
		RequiredAlignment: document.AlignJustify,
		RequiredSpacing:   1.5,
		SpacingTolerance:  0.1,
	}
}

// Paragraph verifies the layout of body paragraphs: length bounds,
// alignment, and per-paragraph line spacing. Headings and list items are
// covered by their own rules and skipped here.
type Paragraph struct {
	validation.Base
	cfg ParagraphConfig
}

func NewParagraph(cfg ParagraphConfig) *Paragraph {
	return &Paragraph{
		Base: validation.NewBase(
			"paragraph",
			validation.Minor,
			"verifies body paragraph length, alignment, and spacing",
		),
		cfg: cfg,
	}
}

func (pc *Paragraph) Check(doc *document.Document) (validation.Result, error) {
	var issues []validation.Issue
	body := 0
	position := 0
	for i := range doc.Paragraphs {
		p := &doc.Paragraphs[i]
		text := p.Text()
		if len(text) == 0 {
			continue
		}
		position++
		if isHeadingStyle(p) || p.List != nil {
			continue
		}
		body++
		location := fmt.Sprintf("paragraph %d", position)

		if length := len([]rune(text)); length < pc.cfg.MinLength || length > pc.cfg.MaxLength {
			issues = append(issues, validation.MustIssue(
				location,
				fmt.Sprintf("between %d and %d characters", pc.cfg.MinLength, pc.cfg.MaxLength),
				fmt.Sprintf("%d characters", length),
				validation.Minor,
			).WithSuggestion("Merge or split the paragraph to keep body paragraphs readable"))
		}

		if p.Alignment != document.AlignUnset && p.Alignment != pc.cfg.RequiredAlignment {
			issues = append(issues, validation.MustIssue(
				location,
				string(pc.cfg.RequiredAlignment)+" alignment",
				string(p.Alignment)+" alignment",
				validation.Minor,
			).WithSuggestion("Justify body paragraphs"))
		}

		if p.LineSpacing != 0 && !withinTolerance(p.LineSpacing, pc.cfg.RequiredSpacing, pc.cfg.SpacingTolerance) {
			issues = append(issues, validation.MustIssue(
				location,
				fmt.Sprintf("line spacing %s", formatFactor(pc.cfg.RequiredSpacing)),
				fmt.Sprintf("line spacing %s", formatFactor(p.LineSpacing)),
				validation.Minor,
			).WithSuggestion("Set the paragraph's line spacing to "+formatFactor(pc.cfg.RequiredSpacing)))
		}
	}

	if body == 0 {
		issue := validation.MustIssue(
			"document body",
			"at least one body paragraph",
			"no body paragraphs found",
			validation.Major,
		).WithSuggestion("Add body text outside headings and lists")
		return validation.ForIssues(pc.Name(), []validation.Issue{issue}), nil
	}

	return validation.ForIssues(pc.Name(), issues), nil
}
