package parcel

import (
	"strings"
	"time"

	"zapshift/internal/core/domain/model/kernel"
)

const trackingNumberPrefix = "ZS"

// NewTrackingNumber builds "ZS-YYYYMMDD-XXXXXXXX" from the booking date and the
// first eight hex digits of the parcel id. Uniqueness is enforced by the store.
func NewTrackingNumber(id kernel.UUID, bookedAt time.Time) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return trackingNumberPrefix + "-" + bookedAt.UTC().Format("20060102") + "-" + strings.ToUpper(hex[:8])
}
