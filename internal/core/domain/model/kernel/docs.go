// Package kernel contains shared value objects used across the domain model.
// Currently this is the UUID identity type for properties and owners.
// Value objects here are immutable and validated at construction.
package kernel
