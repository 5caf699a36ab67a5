// Package config provides rulebook loading and validation for the CLI. A
// rulebook is a JSON file that overrides the default check settings and may
// disable individual checks; omitted fields keep their defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/matejk/thesischeck/internal/checks"
	"github.com/matejk/thesischeck/internal/schemas"
	"github.com/matejk/thesischeck/internal/validation"
)

// Rulebook is the loadable check configuration.
type Rulebook struct {
	Checks   checks.Config `json:"checks" validate:"required"`
	Disabled []string      `json:"disabled,omitempty" validate:"dive,oneof=page-format margin font line-spacing heading-hierarchy paragraph list"`
}

// Default returns the rulebook with the standard settings and every check
// enabled.
func Default() Rulebook {
	return Rulebook{Checks: checks.DefaultConfig()}
}

// Load reads a rulebook from a JSON file. The file is validated against the
// rulebook schema when the schema can be resolved, decoded over the defaults
// so omitted fields keep their standard values, and finally range-checked.
func Load(path string) (Rulebook, error) {
	rb := Default()
	if path == "" {
		return rb, fmt.Errorf("rulebook path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return rb, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rb, fmt.Errorf("failed to read rulebook %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.RulebookSchema); schemaPath != "" {
		schema, err := os.ReadFile(schemaPath)
		if err != nil {
			return rb, fmt.Errorf("failed to read rulebook schema: %w", err)
		}
		if err := schemas.ValidateJSONString(string(schema), string(data)); err != nil {
			return rb, fmt.Errorf("rulebook %s is invalid: %w", path, err)
		}
	}

	if err := json.Unmarshal(data, &rb); err != nil {
		return rb, fmt.Errorf("failed to parse rulebook JSON: %w", err)
	}

	if err := rb.Validate(); err != nil {
		return rb, err
	}
	return rb, nil
}

// Validate range-checks every setting in the rulebook.
func (r *Rulebook) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return fmt.Errorf("rulebook error: %w", err)
	}
	if r.Checks.Paragraph.MinLength > r.Checks.Paragraph.MaxLength {
		return fmt.Errorf("rulebook error: paragraph min_length exceeds max_length")
	}
	return nil
}

// Validators builds the configured check set, with the rulebook's disabled
// checks switched off so the runner records them as skipped.
func (r *Rulebook) Validators() []validation.Validator {
	validators := checks.All(r.Checks)
	for _, v := range validators {
		if r.isDisabled(v.Name()) {
			if s, ok := v.(interface{ SetEnabled(bool) }); ok {
				s.SetEnabled(false)
			}
		}
	}
	return validators
}

func (r *Rulebook) isDisabled(name string) bool {
	for _, d := range r.Disabled {
		if d == name {
			return true
		}
	}
	return false
}
