package models

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the calendar form used for Post.Date.
const DateLayout = "2006-01-02"

var (
	slugPattern = regexp.MustCompile(`^[A-Za-z0-9]+(?:[-_][A-Za-z0-9]+)*$`)
	validate    = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks if the post meets all validation requirements.
// The date is deliberately not checked: a post with an unparsable date is
// still shown, with the raw string in place of a formatted one.
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("post %q: %w", p.Slug, err)
	}
	return nil
}

// ParsedDate returns the post date as a calendar date.
func (p *Post) ParsedDate() (time.Time, bool) {
	return ParseDate(p.Date)
}

// ParseDate accepts YYYY-MM-DD and full RFC 3339 timestamps.
func ParseDate(raw string) (time.Time, bool) {
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
