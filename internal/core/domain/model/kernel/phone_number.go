package kernel

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"courierservice/internal/pkg/errs"
	"courierservice/internal/pkg/guard"
)

// phoneNumberPattern accepts an optional country prefix (8 or +7), an optional
// area code with optional parentheses and 7-10 remaining digits with optional
// dash or space separators.
var phoneNumberPattern = regexp.MustCompile(`^((8|\+7)[\- ]?)?(\(?\d{3}\)?[\- ]?)?[\d\- ]{7,10}$`)

// minPhoneDigits rejects values the pattern admits with separators alone.
const minPhoneDigits = 7

var ErrPhoneNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"phone number must be created via NewPhoneNumber constructor")

// ErrPhoneNumberFormat is the cause attached to every rejected phone number.
var ErrPhoneNumberFormat = fmt.Errorf("phone number does not match %s", phoneNumberPattern)

// PhoneNumber is a validated contact number. It is stored exactly as entered
// (after trimming surrounding whitespace) because it doubles as the login and
// as the subject of issued access tokens.
type PhoneNumber struct {
	value string
	guard guard.ConstructorGuard
}

// NewPhoneNumber validates raw against the shared phone pattern.
// A mismatch yields errs.ValueIsInvalidError; the value is never truncated or rewritten.
//
// Example:
//
//	phone, err := kernel.NewPhoneNumber("+79999999999")
//	if errors.Is(err, errs.ErrValueIsInvalid) {
//	    // report a format violation
//	}
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return PhoneNumber{}, errs.NewValueIsRequiredError("phone number")
	}
	if !phoneNumberPattern.MatchString(value) || countDigits(value) < minPhoneDigits {
		return PhoneNumber{}, errs.NewValueIsInvalidErrorWithCause("phone number", ErrPhoneNumberFormat)
	}

	return PhoneNumber{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func (p PhoneNumber) Validate() error {
	return p.guard.Validate(ErrPhoneNumberIsNotConstructed)
}

func (p PhoneNumber) IsEqual(other PhoneNumber) bool {
	return p.value == other.value
}

func (p PhoneNumber) String() string {
	return p.value
}
