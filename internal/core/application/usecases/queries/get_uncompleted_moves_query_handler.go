package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/move"
)

// GetUncompletedMovesQueryHandler retrieves in-flight moves from the database.
// Filters out terminal moves to provide active workload visibility.
type GetUncompletedMovesQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedMovesQueryHandler creates a handler for in-flight move queries.
// Requires a GORM database connection for query execution.
func NewGetUncompletedMovesQueryHandler(db *gorm.DB) GetUncompletedMovesQueryHandler {
	return GetUncompletedMovesQueryHandler{db: db}
}

// Handle executes the query to retrieve all uncompleted moves.
// Returns moves in any non-terminal status, oldest first so the longest
// waiting bookings surface at the top.
func (h GetUncompletedMovesQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedMovesQuery,
) ([]GetUncompletedMovesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	moves := make([]GetUncompletedMovesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			mover_profile_id,
			move_type,
			status,
			created_at
		FROM moves
		WHERE status NOT IN (?, ?, ?)
		ORDER BY created_at
	`,
		move.StatusCompleted.String(),
		move.StatusCancelledByClient.String(),
		move.StatusCancelledByMover.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var moveResp GetUncompletedMovesQueryResponse
		var id, clientID uuid.UUID
		var moverProfileID uuid.NullUUID
		var moveType, status string
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&clientID,
			&moverProfileID,
			&moveType,
			&status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		moveID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		moveResp.ID = moveID

		cID, idErr := kernel.UUIDFromBytes(clientID[:])
		if idErr != nil {
			return nil, idErr
		}
		moveResp.ClientID = cID

		if moverProfileID.Valid {
			mID, mErr := kernel.UUIDFromBytes(moverProfileID.UUID[:])
			if mErr != nil {
				return nil, mErr
			}
			moveResp.MoverProfileID = &mID
		}

		parsedType, typeErr := kernel.ParseMoveType(moveType)
		if typeErr != nil {
			return nil, typeErr
		}
		moveResp.MoveType = parsedType

		parsedStatus, statusErr := move.ParseStatus(status)
		if statusErr != nil {
			return nil, statusErr
		}
		moveResp.Status = parsedStatus

		moveResp.CreatedAt = createdAt
		moves = append(moves, moveResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return moves, nil
}
