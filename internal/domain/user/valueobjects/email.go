package valueobjects

import (
	"net/mail"
	"strings"

	"golang.org/x/text/cases"

	"github.com/garagehq/shopapi/internal/shared/errors"
)

const maxEmailLength = 255

var folder = cases.Fold()

// Email is a case-folded email address. Two addresses that differ only in
// letter case compare equal.
type Email struct {
	value string
}

func NewEmail(value string) (*Email, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, errors.NewValidationError("email is required")
	}
	if len(trimmed) > maxEmailLength {
		return nil, errors.NewValidationError("email must be at most 255 characters long")
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed || !strings.Contains(trimmed[strings.LastIndex(trimmed, "@"):], ".") {
		return nil, errors.NewValidationError("email must be a valid email address")
	}

	return &Email{value: folder.String(trimmed)}, nil
}

func (e *Email) String() string {
	return e.value
}

func (e *Email) Equals(other *Email) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.value == other.value
}

// LocalPart returns the part before the @.
func (e *Email) LocalPart() string {
	if i := strings.LastIndex(e.value, "@"); i > 0 {
		return e.value[:i]
	}
	return e.value
}
