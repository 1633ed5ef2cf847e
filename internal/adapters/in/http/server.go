// Package http exposes the application's commands and queries over a JSON
// HTTP API. The acting actor is identified by the X-Actor-ID header; tracking
// search and the analytics endpoints are public reads.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorIDHeader carries the acting actor's ID on authenticated requests.
const actorIDHeader = "X-Actor-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerActorHandler      commands.RegisterActorCommandHandler
	updateActorRoleHandler    commands.UpdateActorRoleCommandHandler
	createShipmentHandler     commands.CreateShipmentCommandHandler
	transitionShipmentHandler commands.TransitionShipmentCommandHandler
	deleteShipmentHandler     commands.DeleteShipmentCommandHandler
	createOrderHandler        commands.CreateOrderCommandHandler
	createEventHandler        commands.CreateEventCommandHandler
	createWarehouseHandler    commands.CreateWarehouseCommandHandler

	// Query handlers
	resolveTrackingHandler         queries.ResolveTrackingQueryHandler
	dailyCountsHandler             queries.DailyCountsQueryHandler
	ordersByStatusHandler          queries.OrdersByStatusQueryHandler
	averageDeliveryDurationHandler queries.AverageDeliveryDurationQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerActorHandler commands.RegisterActorCommandHandler,
	updateActorRoleHandler commands.UpdateActorRoleCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	transitionShipmentHandler commands.TransitionShipmentCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	createEventHandler commands.CreateEventCommandHandler,
	createWarehouseHandler commands.CreateWarehouseCommandHandler,
	resolveTrackingHandler queries.ResolveTrackingQueryHandler,
	dailyCountsHandler queries.DailyCountsQueryHandler,
	ordersByStatusHandler queries.OrdersByStatusQueryHandler,
	averageDeliveryDurationHandler queries.AverageDeliveryDurationQueryHandler,
) *Server {
	return &Server{
		registerActorHandler:           registerActorHandler,
		updateActorRoleHandler:         updateActorRoleHandler,
		createShipmentHandler:          createShipmentHandler,
		transitionShipmentHandler:      transitionShipmentHandler,
		deleteShipmentHandler:          deleteShipmentHandler,
		createOrderHandler:             createOrderHandler,
		createEventHandler:             createEventHandler,
		createWarehouseHandler:         createWarehouseHandler,
		resolveTrackingHandler:         resolveTrackingHandler,
		dailyCountsHandler:             dailyCountsHandler,
		ordersByStatusHandler:          ordersByStatusHandler,
		averageDeliveryDurationHandler: averageDeliveryDurationHandler,
	}
}

// RegisterRoutes wires the server's handlers onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/actors", s.RegisterActor)
	api.PUT("/actors/:id/role", s.UpdateActorRole)

	api.POST("/shipments", s.CreateShipment)
	api.POST("/shipments/:id/status", s.TransitionShipment)
	api.DELETE("/shipments/:id", s.DeleteShipment)

	api.POST("/orders", s.CreateOrder)
	api.POST("/events", s.CreateEvent)
	api.POST("/warehouses", s.CreateWarehouse)

	api.GET("/tracking", s.ResolveTracking)
	api.GET("/analytics/daily-counts", s.DailyCounts)
	api.GET("/analytics/orders-by-status", s.OrdersByStatus)
	api.GET("/analytics/delivery-duration", s.AverageDeliveryDuration)
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorStatus maps domain errors onto HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConstraintConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the JSON error envelope for err.
func fail(ctx echo.Context, err error) error {
	status := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}

// actingActorID extracts the acting actor from the X-Actor-ID header.
// A missing or malformed header is treated as an anonymous caller.
func actingActorID(ctx echo.Context) (kernel.UUID, error) {
	header := ctx.Request().Header.Get(actorIDHeader)
	if header == "" {
		return kernel.UUID{}, errs.NewPermissionDeniedError("authenticate", "anonymous")
	}

	id, err := kernel.UUIDFromString(header)
	if err != nil {
		return kernel.UUID{}, errs.NewPermissionDeniedError("authenticate", "anonymous")
	}

	return id, nil
}

// optionalUUID parses a nullable UUID reference from a request body.
func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

type registerActorRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type actorCreatedResponse struct {
	ID string `json:"id"`
}

// RegisterActor handles POST /api/v1/actors - open actor registration.
func (s *Server) RegisterActor(ctx echo.Context) error {
	var req registerActorRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	// Omitting the role means "use the default"; an unparseable role is an error.
	role := actor.RoleUnknown
	if req.Role != "" {
		parsed, err := actor.RoleFromString(req.Role)
		if err != nil {
			return fail(ctx, err)
		}
		role = parsed
	}

	cmd, err := commands.NewRegisterActorCommand(req.Name, role)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.registerActorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, actorCreatedResponse{ID: cmd.ActorID().String()})
}

type updateActorRoleRequest struct {
	Role string `json:"role"`
}

// UpdateActorRole handles PUT /api/v1/actors/:id/role - admin role changes.
func (s *Server) UpdateActorRole(ctx echo.Context) error {
	acting, err := actingActorID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	targetID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var req updateActorRoleRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	role, err := actor.RoleFromString(req.Role)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateActorRoleCommand(acting, targetID, role)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.updateActorRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type createShipmentRequest struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Contents    string  `json:"contents"`
	EventID     *string `json:"eventId"`
}

type shipmentCreatedResponse struct {
	ID string `json:"id"`
}

// CreateShipment handles POST /api/v1/shipments - creates a new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	acting, err := actingActorID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req createShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	eventID, err := optionalUUID(req.EventID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(acting, req.Origin, req.Destination, req.Contents, eventID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentCreatedResponse{ID: cmd.ShipmentID().String()})
}

type transitionShipmentRequest struct {
	Status      string     `json:"status"`
	DeliveredAt *time.Time `json:"deliveredAt"`
}

// TransitionShipment handles POST /api/v1/shipments/:id/status - moves a
// shipment forward through its lifecycle.
func (s *Server) TransitionShipment(ctx echo.Context) error {
	acting, err := actingActorID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var req transitionShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	next, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewTransitionShipmentCommand(acting, shipmentID, next, req.DeliveredAt)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.transitionShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteShipment handles DELETE /api/v1/shipments/:id - removes a shipment
// and the delivery legs it owns.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	acting, err := actingActorID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteShipmentCommand(acting, shipmentID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type createOrderRequest struct {
	Number     string   `json:"number"`
	ItemIDs    []string `json:"itemIds"`
	TotalCents int64    `json:"totalCents"`
}

type orderCreatedResponse struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders - places an order for the acting
// actor. An empty number requests a generated one.
func (s *Server) CreateOrder(ctx echo.Context) error {
	acting, err := actingActorID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req createOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	itemIDs := make([]kernel.UUID, 0, len(req.ItemIDs))
	for _, raw := range req.ItemIDs {
		itemID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return fail(ctx, idErr)
		}
		itemIDs = append(itemIDs, itemID)
	}

	cmd, err := commands.NewCreateOrderCommand(acting, req.Number, itemIDs, req.TotalCents)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderCreatedResponse{ID: cmd.OrderID().String()})
}

type createEventRequest struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}

type eventCreatedResponse struct {
	ID string `json:"id"`
}

// CreateEvent handles POST /api/v1/events - creates a shared event reference.
func (s *Server) CreateEvent(ctx echo.Context) error {
	acting, err := actingActorID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req createEventRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewCreateEventCommand(acting, req.Name, req.Date, req.Location, req.Description)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, eventCreatedResponse{ID: cmd.EventID().String()})
}

type createWarehouseRequest struct {
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	Capacity  int     `json:"capacity"`
	ManagerID *string `json:"managerId"`
}

type warehouseCreatedResponse struct {
	ID string `json:"id"`
}

// CreateWarehouse handles POST /api/v1/warehouses - creates a warehouse.
func (s *Server) CreateWarehouse(ctx echo.Context) error {
	acting, err := actingActorID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req createWarehouseRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	managerID, err := optionalUUID(req.ManagerID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateWarehouseCommand(acting, req.Name, req.Location, req.Capacity, managerID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createWarehouseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, warehouseCreatedResponse{ID: cmd.WarehouseID().String()})
}

type trackingMatchResponse struct {
	ID           string     `json:"id"`
	TrackingCode string     `json:"trackingCode"`
	Status       string     `json:"status"`
	Origin       string     `json:"origin"`
	Destination  string     `json:"destination"`
	CreatedAt    time.Time  `json:"createdAt"`
	DeliveredAt  *time.Time `json:"deliveredAt,omitempty"`
}

// trackingResponse tells the caller which view to render: exactly one match
// yields the detail form, anything else yields the list form.
type trackingResponse struct {
	View    string                  `json:"view"`
	Match   *trackingMatchResponse  `json:"match,omitempty"`
	Matches []trackingMatchResponse `json:"matches,omitempty"`
}

const (
	trackingViewDetail = "detail"
	trackingViewList   = "list"
)

// ResolveTracking handles GET /api/v1/tracking?q=term - public tracking search.
func (s *Server) ResolveTracking(ctx echo.Context) error {
	query, err := queries.NewResolveTrackingQuery(ctx.QueryParam("q"))
	if err != nil {
		return fail(ctx, err)
	}

	matches, err := s.resolveTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	converted := make([]trackingMatchResponse, len(matches))
	for i, match := range matches {
		converted[i] = trackingMatchResponse{
			ID:           match.ID.String(),
			TrackingCode: match.TrackingCode,
			Status:       match.Status,
			Origin:       match.Origin,
			Destination:  match.Destination,
			CreatedAt:    match.CreatedAt,
			DeliveredAt:  match.DeliveredAt,
		}
	}

	if len(converted) == 1 {
		return ctx.JSON(http.StatusOK, trackingResponse{View: trackingViewDetail, Match: &converted[0]})
	}

	return ctx.JSON(http.StatusOK, trackingResponse{View: trackingViewList, Matches: converted})
}

// Default trailing windows when an analytics request omits the days parameter.
const (
	defaultCountWindowDays    = 7
	defaultDurationWindowDays = 30
)

// windowDaysParam parses the optional days query parameter.
func windowDaysParam(ctx echo.Context, fallback int) (int, error) {
	raw := ctx.QueryParam("days")
	if raw == "" {
		return fallback, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("days", err)
	}
	return days, nil
}

type dailyCountResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// DailyCounts handles GET /api/v1/analytics/daily-counts?kind=shipments&days=7.
func (s *Server) DailyCounts(ctx echo.Context) error {
	days, err := windowDaysParam(ctx, defaultCountWindowDays)
	if err != nil {
		return fail(ctx, err)
	}

	kind := queries.CountKind(ctx.QueryParam("kind"))
	if kind == "" {
		kind = queries.CountShipments
	}

	query, err := queries.NewDailyCountsQuery(kind, days)
	if err != nil {
		return fail(ctx, err)
	}

	counts, err := s.dailyCountsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]dailyCountResponse, len(counts))
	for i, day := range counts {
		response[i] = dailyCountResponse{
			Date:  day.Date.Format("2006-01-02"),
			Count: day.Count,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type statusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// OrdersByStatus handles GET /api/v1/analytics/orders-by-status.
func (s *Server) OrdersByStatus(ctx echo.Context) error {
	query := queries.NewOrdersByStatusQuery()

	breakdown, err := s.ordersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]statusCountResponse, len(breakdown))
	for i, entry := range breakdown {
		response[i] = statusCountResponse{Status: entry.Status, Count: entry.Count}
	}

	return ctx.JSON(http.StatusOK, response)
}

type deliveryDurationResponse struct {
	HasData        bool     `json:"hasData"`
	AverageSeconds *float64 `json:"averageSeconds,omitempty"`
}

// AverageDeliveryDuration handles GET /api/v1/analytics/delivery-duration?days=30.
func (s *Server) AverageDeliveryDuration(ctx echo.Context) error {
	days, err := windowDaysParam(ctx, defaultDurationWindowDays)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewAverageDeliveryDurationQuery(days)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.averageDeliveryDurationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := deliveryDurationResponse{HasData: result.HasData}
	if result.HasData {
		seconds := result.Average.Seconds()
		response.AverageSeconds = &seconds
	}

	return ctx.JSON(http.StatusOK, response)
}
