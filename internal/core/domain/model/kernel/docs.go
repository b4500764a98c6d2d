// Package kernel provides the value objects shared by every aggregate of the
// parcel delivery domain.
//
// The package includes:
//   - UUID: identifier of parcels, riders, users, payments and tracking events
//   - Email: normalized e-mail address used to link users, riders and parcel senders
//   - District: service district of a sender, receiver or rider
//
// All value objects are immutable, reject their zero value in Validate and must be
// built through their constructors.
package kernel
