package customer

import (
	"regexp"
	"strings"

	"sala-agenda/internal/pkg/errs"
)

var (
	ErrInvalidName  = errs.New("name must not be empty")
	ErrInvalidPhone = errs.New("phone must be international (+NN or 00NN prefix)")
	ErrInvalidEmail = errs.New("email must contain @")
)

// International shape: "+" or "00", a 1-4 digit country code, then at least
// four more digits. Interior whitespace is ignored before matching.
var phonePattern = regexp.MustCompile(`^(\+|00)\d{1,4}\d{4,}$`)

type PersonName struct {
	value string
}

func NewPersonName(value string) (PersonName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return PersonName{}, ErrInvalidName
	}
	return PersonName{value: trimmed}, nil
}

func (n PersonName) Value() string {
	return n.value
}

type Phone struct {
	value string
}

// NewPhone validates and normalizes: the stored value has all whitespace
// removed so it can serve as the primary dedup key.
func NewPhone(value string) (Phone, error) {
	compact := strings.Join(strings.Fields(value), "")
	if compact == "" || !phonePattern.MatchString(compact) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: compact}, nil
}

func (p Phone) Value() string {
	return p.value
}

type Email struct {
	value string
}

// NewEmail applies the loose syntactic check only; full RFC validation is
// deliberately out of scope.
func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" || !strings.Contains(trimmed, "@") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) Value() string {
	return e.value
}
