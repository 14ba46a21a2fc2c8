// Package kernel provides core domain primitives for the moving marketplace.
// It implements the fundamental building blocks shared across the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - MoveType: the service-tier value object (light, regular, premium) with
//     its rank ordering used by classification and dispatch
//
// These primitives are immutable and thread-safe, and enforce their own
// invariants so domain objects built on top of them are always in a valid
// state.
package kernel
