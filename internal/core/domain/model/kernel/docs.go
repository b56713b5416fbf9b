// Package kernel contains shared value objects used across the domain model.
// It currently provides the UUID identifier type that order aggregates are
// keyed by. Value objects here are immutable, validated at construction, and
// carry no behavior beyond identity and formatting.
package kernel
