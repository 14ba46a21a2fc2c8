package http

import (
	"time"

	"github.com/google/uuid"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ClassifyMoveRequest carries one classification round: the declared tier,
// catalog selections keyed by item id, and any user-declared custom items.
type ClassifyMoveRequest struct {
	MoveType    string              `json:"moveType"`
	Selections  map[string]int      `json:"selections"`
	CustomItems []CustomItemRequest `json:"customItems"`
}

// CustomItemRequest is a user-declared item outside the catalog.
type CustomItemRequest struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Quantity          int      `json:"quantity"`
	EstimatedWeightKg *float64 `json:"estimatedWeightKg,omitempty"`
}

// ClassifyMoveResponse mirrors the classifier result.
type ClassifyMoveResponse struct {
	RecommendedType string   `json:"recommendedType"`
	TotalPoints     int      `json:"totalPoints"`
	TotalWeightKg   float64  `json:"totalWeightKg"`
	TotalVolumeCm3  int64    `json:"totalVolumeCm3"`
	TotalItems      int      `json:"totalItems"`
	Warnings        []string `json:"warnings"`
	RequiresUpgrade bool     `json:"requiresUpgrade"`
	UpgradeFrom     string   `json:"upgradeFrom,omitempty"`
	UpgradeTo       string   `json:"upgradeTo,omitempty"`
}

// CreateMoveRequest books a move at the given tier for the calling client.
type CreateMoveRequest struct {
	MoveType string `json:"moveType"`
}

// CreateMoveResponse returns the id of the booked move.
type CreateMoveResponse struct {
	ID uuid.UUID `json:"id"`
}

// MoveResponse is one move in the client's booking history.
type MoveResponse struct {
	ID             uuid.UUID  `json:"id"`
	MoverProfileID *uuid.UUID `json:"moverProfileId,omitempty"`
	MoveType       string     `json:"moveType"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

// ActiveMoveResponse is one non-terminal move in the operational listing.
type ActiveMoveResponse struct {
	ID             uuid.UUID  `json:"id"`
	ClientID       uuid.UUID  `json:"clientId"`
	MoverProfileID *uuid.UUID `json:"moverProfileId,omitempty"`
	MoveType       string     `json:"moveType"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// CreateMoverRequest registers a mover profile.
type CreateMoverRequest struct {
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	MaxTier string `json:"maxTier"`
}

// CreateMoverResponse returns the id of the new mover profile.
type CreateMoverResponse struct {
	ID uuid.UUID `json:"id"`
}

// AddCrewMemberRequest adds one crew member to a mover profile.
type AddCrewMemberRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// TransitionMoveStatusRequest asks to advance a move to the given status.
type TransitionMoveStatusRequest struct {
	Status string `json:"status"`
}

// DashboardMoveResponse is one active move on the mover's dashboard.
type DashboardMoveResponse struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"clientId"`
	MoveType  string    `json:"moveType"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// MoverDashboardResponse is the mover's workload summary.
type MoverDashboardResponse struct {
	MoverProfileID     uuid.UUID               `json:"moverProfileId"`
	ActiveMoves        []DashboardMoveResponse `json:"activeMoves"`
	CompletedThisMonth int                     `json:"completedThisMonth"`
	CancelledCount     int                     `json:"cancelledCount"`
	CrewSize           int                     `json:"crewSize"`
}
