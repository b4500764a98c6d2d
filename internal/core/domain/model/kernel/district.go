package kernel

import (
	"strings"

	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

// ErrDistrictIsNotConstructed is returned when validating a zero-value District.
var ErrDistrictIsNotConstructed = errs.NewValueIsRequiredError("district must be created via NewDistrict")

// District is the service area of a sender, a receiver or a rider.
// Two districts are the same when their names match ignoring case and
// surrounding spaces; the original spelling is kept for display.
type District struct {
	name  string
	key   string
	guard guard.ConstructorGuard
}

// NewDistrict returns ValueIsRequired for a blank name.
func NewDistrict(name string) (District, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return District{}, errs.NewValueIsRequiredError("district")
	}
	return District{
		name:  trimmed,
		key:   strings.ToLower(trimmed),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (d District) String() string {
	return d.name
}

// IsSame reports whether both values name the same district.
func (d District) IsSame(other District) bool {
	return d.key != "" && d.key == other.key
}

func (d District) Validate() error {
	return d.guard.Validate(ErrDistrictIsNotConstructed)
}
