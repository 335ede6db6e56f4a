// Package shared holds rules common to every domain entity.
package shared

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/garagehq/shopapi/internal/shared/errors"
)

// NormalizeText returns s in NFC form with surrounding whitespace removed
// and inner whitespace runs collapsed to one space.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// ValidateText normalizes value and checks its length in characters.
// min of 0 allows an empty value.
func ValidateText(field, value string, min, max int) (string, error) {
	v := NormalizeText(value)
	n := utf8.RuneCountInString(v)
	if n < min {
		if min == 1 {
			return "", errors.NewValidationError(fmt.Sprintf("%s is required", field))
		}
		return "", errors.NewValidationError(fmt.Sprintf("%s must be at least %d characters long", field, min))
	}
	if n > max {
		return "", errors.NewValidationError(fmt.Sprintf("%s must be at most %d characters long", field, max))
	}
	return v, nil
}
