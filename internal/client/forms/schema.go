// Package forms validates screen input before anything is sent to the API.
//
// A Schema lists fields with their rules. Validate checks every field, keeps
// the first failing message per field and reports them all together, so a
// screen can mark each field at once.
package forms

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dmitrijs2005/gobarber/internal/common"
)

// Rule checks one value and returns the failure message, or "" when it passes.
type Rule func(value string) string

type Field struct {
	Name  string
	Rules []Rule
}

type Schema []Field

// ValidationError maps field names to their first failing message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return common.ErrorValidation
}

// Validate runs every rule of every field against values. Missing keys are
// validated as empty strings. It returns nil or a *ValidationError.
func (s Schema) Validate(values map[string]string) error {
	fields := make(map[string]string)
	for _, f := range s {
		v := values[f.Name]
		for _, rule := range f.Rules {
			if msg := rule(v); msg != "" {
				fields[f.Name] = msg
				break
			}
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// Required fails on empty or whitespace-only values.
func Required(msg string) Rule {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return msg
		}
		return ""
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email fails on values that do not look like an address. Empty values pass;
// combine with Required.
func Email(msg string) Rule {
	return func(v string) string {
		if v != "" && !emailPattern.MatchString(v) {
			return msg
		}
		return ""
	}
}

// MinLength fails when v has fewer than n characters. Empty values fail too.
func MinLength(n int, msg string) Rule {
	return func(v string) string {
		if len([]rune(v)) < n {
			return msg
		}
		return ""
	}
}
