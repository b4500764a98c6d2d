package parcel

import (
	"fmt"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
)

const (
	// SameDistrictEarningPercent is the rider share when sender and receiver share a district.
	SameDistrictEarningPercent int64 = 80
	// CrossDistrictEarningPercent is the rider share for every other delivery.
	CrossDistrictEarningPercent int64 = 30
)

// EarningPercent returns the rider share, in percent, of a parcel's cost.
func EarningPercent(sender, receiver kernel.District) int64 {
	if sender.IsSame(receiver) {
		return SameDistrictEarningPercent
	}
	return CrossDistrictEarningPercent
}

// CalculateEarning applies percent to cost, both in the smallest currency unit,
// rounding half up: 1001 at 80% is 800.8 and yields 801.
func CalculateEarning(cost, percent int64) (int64, error) {
	if cost < 0 {
		return 0, errs.NewValueIsOutOfRangeError("cost", cost, 0, "+inf")
	}
	if percent < 0 || percent > 100 {
		return 0, errs.NewValueIsOutOfRangeError("percent", percent, 0, 100)
	}
	if cost > (1<<63-1-50)/100 {
		return 0, errs.NewValueIsInvalidErrorWithCause("cost", fmt.Errorf("%d overflows earning calculation", cost))
	}
	return (cost*percent + 50) / 100, nil
}
