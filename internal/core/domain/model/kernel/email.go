package kernel

import (
	"fmt"
	"net/mail"
	"strings"

	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

// ErrEmailIsNotConstructed is returned when validating a zero-value Email.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail")

// Email is a lower-cased, trimmed e-mail address. Users, riders and parcel
// senders are matched by it, so comparisons must not depend on letter case.
type Email struct {
	address string
	guard   guard.ConstructorGuard
}

// NewEmail validates the address with net/mail and normalizes it.
func NewEmail(address string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(address))
	if normalized == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	parsed, err := mail.ParseAddress(normalized)
	if err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	if parsed.Address != normalized {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q must be a bare address", address),
		)
	}
	return Email{address: normalized, guard: guard.NewConstructorGuard()}, nil
}

func (e Email) String() string {
	return e.address
}

func (e Email) IsEqual(other Email) bool {
	return e.address == other.address
}

func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}
