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

// GetMoverDashboardQueryHandler builds a mover's work overview from the database.
// Reads every move ever assigned to the profile in one pass, splits it into
// the active list and the counters, and attaches the crew headcount.
type GetMoverDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetMoverDashboardQueryHandler creates a handler for mover dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetMoverDashboardQueryHandler(db *gorm.DB) GetMoverDashboardQueryHandler {
	return GetMoverDashboardQueryHandler{db: db}
}

// Handle executes the query to build the mover's dashboard.
// Active moves are returned oldest first; completed moves only count toward
// the monthly counter when their completion falls in the current calendar
// month, and cancelled moves only contribute to the lifetime counter.
func (h GetMoverDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetMoverDashboardQuery,
) (GetMoverDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMoverDashboardQueryResponse{}, err
	}

	dashboard := GetMoverDashboardQueryResponse{
		MoverProfileID: query.MoverProfileID(),
		ActiveMoves:    make([]MoverDashboardMove, 0),
	}

	now := time.Now().UTC()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			move_type,
			status,
			created_at,
			completed_at
		FROM moves
		WHERE mover_profile_id = ?
		ORDER BY created_at
	`, query.MoverProfileID().Bytes()).Rows()
	if err != nil {
		return GetMoverDashboardQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, clientID uuid.UUID
		var moveType, status string
		var createdAt time.Time
		var completedAt sql.NullTime

		err = rows.Scan(
			&id,
			&clientID,
			&moveType,
			&status,
			&createdAt,
			&completedAt,
		)
		if err != nil {
			return GetMoverDashboardQueryResponse{}, err
		}

		parsedStatus, statusErr := move.ParseStatus(status)
		if statusErr != nil {
			return GetMoverDashboardQueryResponse{}, statusErr
		}

		switch parsedStatus {
		case move.StatusCompleted:
			if completedAt.Valid && !completedAt.Time.Before(firstOfMonth) {
				dashboard.CompletedThisMonth++
			}
			continue
		case move.StatusCancelledByClient, move.StatusCancelledByMover:
			dashboard.CancelledCount++
			continue
		}

		moveID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetMoverDashboardQueryResponse{}, idErr
		}

		cID, idErr := kernel.UUIDFromBytes(clientID[:])
		if idErr != nil {
			return GetMoverDashboardQueryResponse{}, idErr
		}

		parsedType, typeErr := kernel.ParseMoveType(moveType)
		if typeErr != nil {
			return GetMoverDashboardQueryResponse{}, typeErr
		}

		dashboard.ActiveMoves = append(dashboard.ActiveMoves, MoverDashboardMove{
			ID:        moveID,
			ClientID:  cID,
			MoveType:  parsedType,
			Status:    parsedStatus,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return GetMoverDashboardQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM crew_members
		WHERE mover_id = ?
	`, query.MoverProfileID().Bytes()).Row().Scan(&dashboard.CrewSize)
	if err != nil {
		return GetMoverDashboardQueryResponse{}, err
	}

	return dashboard, nil
}
