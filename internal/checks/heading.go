package checks

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/matejk/thesischeck/internal/document"
	"github.com/matejk/thesischeck/internal/validation"
)

var (
	headingStylePattern  = regexp.MustCompile(`(?i)heading\s*(\d+)`)
	headingNumberPattern = regexp.MustCompile(`^(\d+(?:\.\d+)*)\.?\s+(.*)`)
)

// HeadingConfig controls the heading structure rule. SizesPt maps heading
// levels to their required font size.
type HeadingConfig struct {
	SizesPt         map[int]float64 `json:"sizes_pt" validate:"required,min=1"`
	SizeTolerancePt float64         `json:"size_tolerance_pt" validate:"gte=0"`
	Family          string          `json:"family" validate:"required"`
	RequireNumbers  bool            `json:"require_numbers"`
}

// DefaultHeadingConfig requires decimal-numbered Times New Roman headings
// with sizes descending from 16 pt at level one.
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		SizesPt:         map[int]float64{1: 16, 2: 14, 3: 12, 4: 12, 5: 10, 6: 10},
		SizeTolerancePt: 0.5,
		Family:          "Times New Roman",
		RequireNumbers:  true,
	}
}

// Heading verifies heading levels, numbering, sizes, and typeface. Levels
// must not skip (a level-3 heading cannot follow a level-1 heading) and
// decimal numbers must count up, with deeper counters resetting whenever a
// shallower heading appears.
type Heading struct {
	validation.Base
	cfg HeadingConfig
}

func NewHeading(cfg HeadingConfig) *Heading {
	return &Heading{
		Base: validation.NewBase(
			"heading-hierarchy",
			validation.Major,
			"verifies heading levels, numbering, and formatting",
		),
		cfg: cfg,
	}
}

type headingInfo struct {
	level  int
	text   string
	sizePt float64
	family string
}

func (h *Heading) Check(doc *document.Document) (validation.Result, error) {
	headings := extractHeadings(doc)
	if len(headings) == 0 {
		issue := validation.MustIssue(
			"document structure",
			"at least one styled heading",
			"no heading-styled paragraphs found",
			validation.Major,
		).WithSuggestion("Apply the built-in heading styles to chapter and section titles")
		return validation.ForIssues(h.Name(), []validation.Issue{issue}), nil
	}

	var issues []validation.Issue
	issues = append(issues, h.hierarchyIssues(headings)...)
	if h.cfg.RequireNumbers {
		issues = append(issues, h.numberingIssues(headings)...)
	}
	issues = append(issues, h.formattingIssues(headings)...)
	return validation.ForIssues(h.Name(), issues), nil
}

func extractHeadings(doc *document.Document) []headingInfo {
	var headings []headingInfo
	for i := range doc.Paragraphs {
		p := &doc.Paragraphs[i]
		match := headingStylePattern.FindStringSubmatch(p.StyleName)
		if match == nil {
			continue
		}
		level, err := strconv.Atoi(match[1])
		if err != nil || level < 1 {
			continue
		}
		info := headingInfo{level: level, text: strings.TrimSpace(p.Text())}
		for _, run := range p.Runs {
			if info.sizePt == 0 && run.FontSizePt != 0 {
				info.sizePt = run.FontSizePt
			}
			if info.family == "" && run.FontFamily != "" {
				info.family = run.FontFamily
			}
		}
		headings = append(headings, info)
	}
	return headings
}

func (h *Heading) hierarchyIssues(headings []headingInfo) []validation.Issue {
	var issues []validation.Issue
	previous := 0
	for _, heading := range headings {
		if heading.level > previous+1 {
			issues = append(issues, validation.MustIssue(
				headingLocation(heading),
				fmt.Sprintf("heading level at most %d after level %d", previous+1, previous),
				fmt.Sprintf("heading level %d", heading.level),
				validation.Major,
			).WithSuggestion("Do not skip heading levels"))
		}
		previous = heading.level
	}
	return issues
}

// numberingIssues walks the headings with one counter per level. Entering
// level n increments counter n and resets all deeper counters, which yields
// the expected decimal number for every heading.
func (h *Heading) numberingIssues(headings []headingInfo) []validation.Issue {
	var issues []validation.Issue
	counters := make(map[int]int)
	for _, heading := range headings {
		counters[heading.level]++
		for level := range counters {
			if level > heading.level {
				delete(counters, level)
			}
		}
		expected := expectedNumber(counters, heading.level)

		match := headingNumberPattern.FindStringSubmatch(heading.text)
		if match == nil {
			issues = append(issues, validation.MustIssue(
				headingLocation(heading),
				fmt.Sprintf("decimal number %s", expected),
				"heading has no decimal number",
				validation.Major,
			).WithSuggestion("Number headings as "+expected+" Title"))
			continue
		}
		actual := match[1]
		if actual != expected {
			issues = append(issues, validation.MustIssue(
				headingLocation(heading),
				fmt.Sprintf("decimal number %s", expected),
				fmt.Sprintf("decimal number %s", actual),
				validation.Minor,
			).WithSuggestion("Renumber the heading to "+expected))
		}
	}
	return issues
}

func expectedNumber(counters map[int]int, level int) string {
	parts := make([]string, 0, level)
	for l := 1; l <= level; l++ {
		count := counters[l]
		if count == 0 {
			count = 1
		}
		parts = append(parts, strconv.Itoa(count))
	}
	return strings.Join(parts, ".")
}

func (h *Heading) formattingIssues(headings []headingInfo) []validation.Issue {
	var issues []validation.Issue
	for _, heading := range headings {
		if expected, ok := h.cfg.SizesPt[heading.level]; ok && heading.sizePt != 0 {
			if !withinTolerance(heading.sizePt, expected, h.cfg.SizeTolerancePt) {
				issues = append(issues, validation.MustIssue(
					headingLocation(heading),
					fmt.Sprintf("%s for level %d headings", formatPt(expected), heading.level),
					formatPt(heading.sizePt),
					validation.Minor,
				).WithSuggestion("Set the heading size to "+formatPt(expected)))
			}
		}
		if heading.family != "" && heading.family != h.cfg.Family {
			issues = append(issues, validation.MustIssue(
				headingLocation(heading),
				h.cfg.Family,
				heading.family,
				validation.Minor,
			).WithSuggestion("Set the heading typeface to "+h.cfg.Family))
		}
	}
	return issues
}

func headingLocation(heading headingInfo) string {
	text := heading.text
	if runes := []rune(text); len(runes) > 40 {
		text = string(runes[:40]) + "…"
	}
	if text == "" {
		text = "(empty)"
	}
	return fmt.Sprintf("heading %q", text)
}
