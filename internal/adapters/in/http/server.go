// Package http exposes the application's use cases over a REST API.
// Authentication is handled upstream: the gateway resolves the caller and
// forwards its identity in the X-User-Id and X-Mover-Profile-Id headers.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"moving/internal/core/application/usecases/commands"
	"moving/internal/core/application/usecases/queries"
	"moving/internal/core/domain/model/inventory"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/move"
	"moving/internal/core/domain/services"
	"moving/internal/core/ports"
	"moving/internal/pkg/errs"
)

const (
	headerUserID         = "X-User-Id"
	headerMoverProfileID = "X-Mover-Profile-Id"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	classifier  services.MoveClassifier
	itemCatalog inventory.Catalog

	// Command handlers
	createMoveHandler           commands.CreateMoveCommandHandler
	createMoverHandler          commands.CreateMoverCommandHandler
	addCrewMemberHandler        commands.AddCrewMemberCommandHandler
	transitionMoveStatusHandler commands.TransitionMoveStatusCommandHandler

	// Query handlers
	getClientMovesHandler      queries.GetClientMovesQueryHandler
	getMoverDashboardHandler   queries.GetMoverDashboardQueryHandler
	getUncompletedMovesHandler queries.GetUncompletedMovesQueryHandler
}

// NewServer creates an HTTP server with the required handlers and the item
// catalog the classifier scores against.
func NewServer(
	itemCatalog inventory.Catalog,
	createMoveHandler commands.CreateMoveCommandHandler,
	createMoverHandler commands.CreateMoverCommandHandler,
	addCrewMemberHandler commands.AddCrewMemberCommandHandler,
	transitionMoveStatusHandler commands.TransitionMoveStatusCommandHandler,
	getClientMovesHandler queries.GetClientMovesQueryHandler,
	getMoverDashboardHandler queries.GetMoverDashboardQueryHandler,
	getUncompletedMovesHandler queries.GetUncompletedMovesQueryHandler,
) *Server {
	return &Server{
		classifier:                  services.NewMoveClassifier(),
		itemCatalog:                 itemCatalog,
		createMoveHandler:           createMoveHandler,
		createMoverHandler:          createMoverHandler,
		addCrewMemberHandler:        addCrewMemberHandler,
		transitionMoveStatusHandler: transitionMoveStatusHandler,
		getClientMovesHandler:       getClientMovesHandler,
		getMoverDashboardHandler:    getMoverDashboardHandler,
		getUncompletedMovesHandler:  getUncompletedMovesHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/moves/classification", s.ClassifyMove)
	api.POST("/moves", s.CreateMove)
	api.GET("/moves", s.GetClientMoves)
	api.GET("/moves/active", s.GetActiveMoves)
	api.POST("/movers", s.CreateMover)
	api.POST("/movers/:id/crew", s.AddCrewMember)
	api.POST("/mover/moves/:id/status", s.TransitionMoveStatus)
	api.GET("/mover/dashboard", s.GetMoverDashboard)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ClassifyMove handles POST /api/v1/moves/classification - scores an
// inventory and recommends a service tier.
func (s *Server) ClassifyMove(ctx echo.Context) error {
	var req ClassifyMoveRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	moveType, err := kernel.ParseMoveType(req.MoveType)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid move type: "+req.MoveType)
	}

	customItems := make([]inventory.CustomItem, 0, len(req.CustomItems))
	for _, item := range req.CustomItems {
		customItems = append(customItems, inventory.CustomItem{
			ID:                item.ID,
			Name:              item.Name,
			Quantity:          item.Quantity,
			EstimatedWeightKg: item.EstimatedWeightKg,
		})
	}

	classification, err := s.classifier.Classify(req.Selections, customItems, moveType, s.itemCatalog)
	if err != nil {
		return s.mapError(ctx, err, "Failed to classify move")
	}

	response := ClassifyMoveResponse{
		RecommendedType: classification.RecommendedType.String(),
		TotalPoints:     classification.TotalPoints,
		TotalWeightKg:   classification.TotalWeightKg,
		TotalVolumeCm3:  classification.TotalVolumeCm3,
		TotalItems:      classification.TotalItems,
		Warnings:        classification.Warnings,
		RequiresUpgrade: classification.RequiresUpgrade,
	}
	if classification.RequiresUpgrade {
		response.UpgradeFrom = classification.UpgradeFrom.String()
		response.UpgradeTo = classification.UpgradeTo.String()
	}
	if response.Warnings == nil {
		response.Warnings = []string{}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMove handles POST /api/v1/moves - books a move for the calling client.
func (s *Server) CreateMove(ctx echo.Context) error {
	clientID, err := callerID(ctx, headerUserID)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid "+headerUserID+" header")
	}

	var req CreateMoveRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	moveType, err := kernel.ParseMoveType(req.MoveType)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid move type: "+req.MoveType)
	}

	moveID := kernel.NewUUID()
	cmd, err := commands.NewCreateMoveCommand(moveID, clientID, moveType)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid move data: "+err.Error())
	}

	if handleErr := s.createMoveHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapError(ctx, handleErr, "Failed to create move")
	}

	return ctx.JSON(http.StatusCreated, CreateMoveResponse{ID: moveID.Bytes()})
}

// GetClientMoves handles GET /api/v1/moves - the calling client's booking
// history, optionally narrowed by status and paged via limit/offset.
func (s *Server) GetClientMoves(ctx echo.Context) error {
	clientID, err := callerID(ctx, headerUserID)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid "+headerUserID+" header")
	}

	query, err := queries.NewGetClientMovesQuery(clientID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	if status := ctx.QueryParam("status"); status != "" {
		parsedStatus, parseErr := move.ParseStatus(status)
		if parseErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid status filter: "+status)
		}
		query, err = query.WithStatusFilter(parsedStatus)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid status filter: "+err.Error())
		}
	}

	limit, offset, err := pagingParams(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid paging: "+err.Error())
	}
	query, err = query.WithPaging(limit, offset)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid paging: "+err.Error())
	}

	moves, err := s.getClientMovesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err, "Failed to retrieve moves")
	}

	response := make([]MoveResponse, len(moves))
	for i, m := range moves {
		response[i] = MoveResponse{
			ID:          m.ID.Bytes(),
			MoveType:    m.MoveType.String(),
			Status:      m.Status.String(),
			CreatedAt:   m.CreatedAt,
			CompletedAt: m.CompletedAt,
		}
		if m.MoverProfileID != nil {
			raw := m.MoverProfileID.Bytes()
			response[i].MoverProfileID = &raw
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveMoves handles GET /api/v1/moves/active - every move that has not
// reached a terminal status, for operational monitoring.
func (s *Server) GetActiveMoves(ctx echo.Context) error {
	query := queries.NewGetUncompletedMovesQuery()

	moves, err := s.getUncompletedMovesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err, "Failed to retrieve active moves")
	}

	response := make([]ActiveMoveResponse, len(moves))
	for i, m := range moves {
		response[i] = ActiveMoveResponse{
			ID:        m.ID.Bytes(),
			ClientID:  m.ClientID.Bytes(),
			MoveType:  m.MoveType.String(),
			Status:    m.Status.String(),
			CreatedAt: m.CreatedAt,
		}
		if m.MoverProfileID != nil {
			raw := m.MoverProfileID.Bytes()
			response[i].MoverProfileID = &raw
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMover handles POST /api/v1/movers - registers a mover profile.
func (s *Server) CreateMover(ctx echo.Context) error {
	var req CreateMoverRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	maxTier, err := kernel.ParseMoveType(req.MaxTier)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid max tier: "+req.MaxTier)
	}

	moverID := kernel.NewUUID()
	cmd, err := commands.NewCreateMoverCommand(moverID, req.UserID, req.Name, maxTier)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid mover data: "+err.Error())
	}

	if handleErr := s.createMoverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapError(ctx, handleErr, "Failed to create mover")
	}

	return ctx.JSON(http.StatusCreated, CreateMoverResponse{ID: moverID.Bytes()})
}

// AddCrewMember handles POST /api/v1/movers/:id/crew - adds a crew member
// to a mover profile.
func (s *Server) AddCrewMember(ctx echo.Context) error {
	moverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid mover id")
	}

	var req AddCrewMemberRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAddCrewMemberCommand(moverID, req.Name, req.Role)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid crew member data: "+err.Error())
	}

	if handleErr := s.addCrewMemberHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapError(ctx, handleErr, "Failed to add crew member")
	}

	return ctx.NoContent(http.StatusCreated)
}

// TransitionMoveStatus handles POST /api/v1/mover/moves/:id/status - the
// assigned mover advances a move to the requested status.
func (s *Server) TransitionMoveStatus(ctx echo.Context) error {
	callerProfileID, err := callerID(ctx, headerMoverProfileID)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid "+headerMoverProfileID+" header")
	}

	moveID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid move id")
	}

	var req TransitionMoveStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	requested, err := move.ParseStatus(req.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status: "+req.Status)
	}

	cmd, err := commands.NewTransitionMoveStatusCommand(moveID, callerProfileID, requested)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid transition data: "+err.Error())
	}

	if handleErr := s.transitionMoveStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapError(ctx, handleErr, "Failed to transition move status")
	}

	return ctx.NoContent(http.StatusOK)
}

// GetMoverDashboard handles GET /api/v1/mover/dashboard - the calling
// mover's active moves and completion counters.
func (s *Server) GetMoverDashboard(ctx echo.Context) error {
	moverProfileID, err := callerID(ctx, headerMoverProfileID)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid "+headerMoverProfileID+" header")
	}

	query, err := queries.NewGetMoverDashboardQuery(moverProfileID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	dashboard, err := s.getMoverDashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err, "Failed to retrieve dashboard")
	}

	response := MoverDashboardResponse{
		MoverProfileID:     dashboard.MoverProfileID.Bytes(),
		ActiveMoves:        make([]DashboardMoveResponse, len(dashboard.ActiveMoves)),
		CompletedThisMonth: dashboard.CompletedThisMonth,
		CancelledCount:     dashboard.CancelledCount,
		CrewSize:           dashboard.CrewSize,
	}
	for i, m := range dashboard.ActiveMoves {
		response.ActiveMoves[i] = DashboardMoveResponse{
			ID:        m.ID.Bytes(),
			ClientID:  m.ClientID.Bytes(),
			MoveType:  m.MoveType.String(),
			Status:    m.Status.String(),
			CreatedAt: m.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// mapError translates use case failures into HTTP status codes.
func (s *Server) mapError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrNotAuthorized):
		return errorJSON(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, move.ErrInvalidTransition):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, ports.ErrStatusConflict):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, fallback)
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

func callerID(ctx echo.Context, header string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(header))
}

func pagingParams(ctx echo.Context) (limit int, offset int, err error) {
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
	}
	if raw := ctx.QueryParam("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
	}
	return limit, offset, nil
}
