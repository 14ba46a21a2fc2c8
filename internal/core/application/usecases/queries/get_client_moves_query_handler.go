package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/move"
)

// GetClientMovesQueryHandler retrieves a client's booking history from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetClientMovesQueryHandler struct {
	db *gorm.DB
}

// NewGetClientMovesQueryHandler creates a handler for client booking history queries.
// Requires a GORM database connection for query execution.
func NewGetClientMovesQueryHandler(db *gorm.DB) GetClientMovesQueryHandler {
	return GetClientMovesQueryHandler{db: db}
}

// Handle executes the query to retrieve the client's moves, newest first.
// Converts database types to domain types for consistency.
func (h GetClientMovesQueryHandler) Handle(
	ctx context.Context,
	query GetClientMovesQuery,
) ([]GetClientMovesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	moves := make([]GetClientMovesQueryResponse, 0)

	sqlQuery := `
		SELECT
			id,
			mover_profile_id,
			move_type,
			status,
			created_at,
			completed_at
		FROM moves
		WHERE client_id = ?`
	args := []any{query.ClientID().Bytes()}

	if statusFilter := query.StatusFilter(); statusFilter != nil {
		sqlQuery += " AND status = ?"
		args = append(args, statusFilter.String())
	}

	sqlQuery += " ORDER BY created_at DESC"

	if query.Limit() > 0 {
		sqlQuery += " LIMIT ?"
		args = append(args, query.Limit())
	}
	if query.Offset() > 0 {
		sqlQuery += " OFFSET ?"
		args = append(args, query.Offset())
	}

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var moveResp GetClientMovesQueryResponse
		var id uuid.UUID
		var moverProfileID uuid.NullUUID
		var moveType, status string
		var createdAt time.Time
		var completedAt sql.NullTime

		err = rows.Scan(
			&id,
			&moverProfileID,
			&moveType,
			&status,
			&createdAt,
			&completedAt,
		)
		if err != nil {
			return nil, err
		}

		moveID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		moveResp.ID = moveID

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
		if completedAt.Valid {
			t := completedAt.Time
			moveResp.CompletedAt = &t
		}

		moves = append(moves, moveResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return moves, nil
}
