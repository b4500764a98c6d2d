// Package rider implements the Rider aggregate: the application reviewed by an
// admin and the work status that keeps a rider on at most one parcel at a time.
package rider
