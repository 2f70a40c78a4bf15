package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Term identifier pattern, e.g. 2025FA
	TermIDPattern = `^\d{4}(SP|SU|FA)$`

	// Search query max length
	QueryMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	TermID *regexp.Regexp
}{
	TermID: regexp.MustCompile(TermIDPattern),
}

// StringValidation validates one string value
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}
	return true
}

// IsTermID reports whether s looks like a term identifier
func IsTermID(s string) bool {
	return NewStringValidation(s).WithPattern(CompiledPatterns.TermID).Validate()
}

// IsSearchQuery reports whether s is an acceptable optional search query
func IsSearchQuery(s string) bool {
	return NewStringValidation(s).WithRequired(false).WithMaxLength(QueryMaxLength).Validate()
}

// RegisterRules adds the custom struct tags to v:
//
//	duration  a string accepted by time.ParseDuration
func RegisterRules(v *validator.Validate) error {
	return v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		_, err := time.ParseDuration(fl.Field().String())
		return err == nil
	})
}
