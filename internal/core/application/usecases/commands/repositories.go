// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"moving/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MoveRepoFactory provides access to the move repository within a transaction.
	MoveRepoFactory interface {
		MoveRepository() ports.MoveRepository
	}

	// MoverRepoFactory provides access to the mover repository within a transaction.
	MoverRepoFactory interface {
		MoverRepository() ports.MoverRepository
	}

	// MoveUoW manages transactions for move-only operations.
	// Used when commands only modify move aggregates.
	MoveUoW interface {
		TxManager
		MoveRepoFactory
	}

	// MoveUoWFactory creates new move unit of work instances.
	MoveUoWFactory interface {
		Create() MoveUoW
	}

	// MoverUoW manages transactions for mover-only operations.
	// Used when commands only modify mover aggregates.
	MoverUoW interface {
		TxManager
		MoverRepoFactory
	}

	// MoverUoWFactory creates new mover unit of work instances.
	MoverUoWFactory interface {
		Create() MoverUoW
	}

	// UoW manages transactions across both move and mover aggregates.
	// Used for commands that coordinate changes between multiple aggregate types.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   moveRepo := uow.MoveRepository()
	//   moverRepo := uow.MoverRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		MoveRepoFactory
		MoverRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
