package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Placeholders carried by min and max violations.
const (
	PlaceholderValue = "{{ value }}"
	PlaceholderMin   = "{{ min }}"
	PlaceholderMax   = "{{ max }}"
)

// Violation is a single failed check as handed to a Reporter.
// Message is the untranslated template; Params maps placeholders to formatted values.
type Violation struct {
	Message        string
	TranslationKey string
	Params         map[string]string
}

// Reporter receives violations. It is owned by the host framework.
type Reporter interface {
	AddViolation(v Violation)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(v Violation)

func (f ReporterFunc) AddViolation(v Violation) { f(v) }

// Collector is a Reporter that records violations as ValidationErrors for one field.
type Collector struct {
	Field  string
	Errors ValidationErrors
}

func (c *Collector) AddViolation(v Violation) {
	values := make(map[string]any, len(v.Params)+1)
	values["field"] = c.Field
	for k, p := range v.Params {
		values[strings.Trim(k, "{} ")] = p
	}
	c.Errors.Add(ValidationError{
		Field:             c.Field,
		Message:           v.Message,
		TranslationKey:    v.TranslationKey,
		TranslationValues: values,
	})
}

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule is a deferred check for one field. Validate reports violations to the
// given Reporter and returns an error only for contract or configuration problems.
type Rule struct {
	Field    string
	Validate func(r Reporter) error
}

// Apply runs the rules in order. Contract and configuration errors abort and
// are returned as is; otherwise all violations are returned as ValidationErrors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		c := &Collector{Field: rule.Field}
		if err := rule.Validate(c); err != nil {
			return fmt.Errorf("%s: %w", rule.Field, err)
		}
		errs = append(errs, c.Errors...)
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
