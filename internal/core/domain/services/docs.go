// Package services provides domain services that implement business logic
// spanning multiple domain entities in the moving marketplace.
//
// The package includes:
//   - MoveClassifier: a pure service scoring an inventory into a service tier
//   - MoveDispatcher: a service matching pending moves with capable movers
//
// Domain services hold no state and perform no I/O; orchestration and
// persistence belong to the application layer.
package services
