// Package services provides domain services that coordinate the Parcel and
// Rider aggregates, work that does not belong to either of them alone.
//
// The package includes:
//   - RiderAssigner: validates both sides of an assignment before mutating either
//   - RiderDispatcher: picks the best available rider for a parcel and assigns it
//   - DeliveryCompleter: applies a status advance and the resulting rider release
package services
