// Package parcel implements the Parcel aggregate: booking, the delivery status
// state machine, sender payment and the rider cash-out.
//
// The package includes:
//   - Parcel: the aggregate root with its invariants
//   - DeliveryStatus: an explicit transition table; illegal moves fail with ErrInvalidTransition
//   - PaymentStatus and CashOutStatus: the two settlement flags
//   - EarningPercent and CalculateEarning: the rider share in integer currency units
//
// Key business rules:
//   - NotCollected parcels only leave that status through AssignRider
//   - a rider is assigned exactly when the status is RiderAssigned or later
//   - only Delivered parcels can be cashed out, and only once
//   - same-district deliveries earn 80% of the cost, others 30%, rounded half up
package parcel
