package checks

import (
	"fmt"

	"github.com/matejk/thesischeck/internal/document"
	"github.com/matejk/thesischeck/internal/validation"
)

// ListConfig controls the list structure rule. Depth counts nesting levels
// starting at one for a top-level item.
type ListConfig struct {
	MaxDepth          int     `json:"max_depth" validate:"gt=0"`
	IndentPerLevelCm  float64 `json:"indent_per_level_cm" validate:"gt=0"`
	IndentToleranceCm float64 `json:"indent_tolerance_cm" validate:"gte=0"`
}

// DefaultListConfig allows three nesting levels at 1.25 cm of indentation
// per level.
func DefaultListConfig() ListConfig {
	return ListConfig{
		MaxDepth:          3,
		IndentPerLevelCm:  1.25,
		IndentToleranceCm: 0.5,
	}
}

// List verifies list nesting depth, numbering consistency within a list,
// and per-level indentation. A list ends at the first non-list paragraph;
// consistency is judged per contiguous list.
type List struct {
	validation.Base
	cfg ListConfig
}

func NewList(cfg ListConfig) *List {
	return &List{
		Base: validation.NewBase(
			"list",
			validation.Minor,
			"verifies list nesting depth and indentation",
		),
		cfg: cfg,
	}
}

func (l *List) Check(doc *document.Document) (validation.Result, error) {
	var issues []validation.Issue

	// numbering definition seen per level in the current contiguous list
	levelNumID := make(map[int]int)
	item := 0
	for i := range doc.Paragraphs {
		p := &doc.Paragraphs[i]
		if p.List == nil {
			if len(p.Text()) > 0 {
				levelNumID = make(map[int]int)
			}
			continue
		}
		item++
		depth := p.List.Level + 1
		location := fmt.Sprintf("list item %d", item)

		if depth > l.cfg.MaxDepth {
			issues = append(issues, validation.MustIssue(
				location,
				fmt.Sprintf("nesting depth at most %d", l.cfg.MaxDepth),
				fmt.Sprintf("nesting depth %d", depth),
				validation.Major,
			).WithSuggestion("Flatten the list to at most "+fmt.Sprintf("%d", l.cfg.MaxDepth)+" levels"))
		}

		if known, ok := levelNumID[p.List.Level]; ok {
			if known != p.List.NumID {
				issues = append(issues, validation.MustIssue(
					location,
					fmt.Sprintf("numbering definition %d for this level", known),
					fmt.Sprintf("numbering definition %d", p.List.NumID),
					validation.Minor,
				).WithSuggestion("Use one numbering style per list level"))
			}
		} else {
			levelNumID[p.List.Level] = p.List.NumID
		}

		if p.IndentCm > 0 {
			expected := float64(depth) * l.cfg.IndentPerLevelCm
			if !withinTolerance(p.IndentCm, expected, l.cfg.IndentToleranceCm) {
				issues = append(issues, validation.MustIssue(
					location,
					formatCmPrecise(expected)+" indentation",
					formatCmPrecise(p.IndentCm)+" indentation",
					validation.Minor,
				).WithSuggestion("Indent list items by "+formatCmPrecise(l.cfg.IndentPerLevelCm)+" per level"))
			}
		}
	}

	return validation.ForIssues(l.Name(), issues), nil
}
