// Package http exposes the dispatch operations as a JSON API on echo.
// Worker-facing endpoints resolve the caller through a bearer credential;
// back-office endpoints address workers and orders by id.
package http

import (
	"errors"
	"net/http"
	"strings"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for dispatch operations.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	identity ports.IdentityResolver

	// Command handlers
	registerWorkerHandler     commands.RegisterWorkerCommandHandler
	acceptWorkerHandler       commands.AcceptWorkerCommandHandler
	rejectWorkerHandler       commands.RejectWorkerCommandHandler
	startDayHandler           commands.StartDayCommandHandler
	endDayHandler             commands.EndDayCommandHandler
	markUnavailableHandler    commands.MarkUnavailableCommandHandler
	createOrderHandler        commands.CreateOrderCommandHandler
	assignOrderHandler        commands.AssignOrderCommandHandler
	initiateCompletionHandler commands.InitiateCompletionCommandHandler
	completeDeliveryHandler   commands.CompleteDeliveryCommandHandler
	sweeper                   commands.BacklogSweeper

	// Query handlers
	getWorkerBoardHandler queries.GetWorkerBoardQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	identity ports.IdentityResolver,
	registerWorkerHandler commands.RegisterWorkerCommandHandler,
	acceptWorkerHandler commands.AcceptWorkerCommandHandler,
	rejectWorkerHandler commands.RejectWorkerCommandHandler,
	startDayHandler commands.StartDayCommandHandler,
	endDayHandler commands.EndDayCommandHandler,
	markUnavailableHandler commands.MarkUnavailableCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	initiateCompletionHandler commands.InitiateCompletionCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	sweeper commands.BacklogSweeper,
	getWorkerBoardHandler queries.GetWorkerBoardQueryHandler,
) *Server {
	return &Server{
		identity:                  identity,
		registerWorkerHandler:     registerWorkerHandler,
		acceptWorkerHandler:       acceptWorkerHandler,
		rejectWorkerHandler:       rejectWorkerHandler,
		startDayHandler:           startDayHandler,
		endDayHandler:             endDayHandler,
		markUnavailableHandler:    markUnavailableHandler,
		createOrderHandler:        createOrderHandler,
		assignOrderHandler:        assignOrderHandler,
		initiateCompletionHandler: initiateCompletionHandler,
		completeDeliveryHandler:   completeDeliveryHandler,
		sweeper:                   sweeper,
		getWorkerBoardHandler:     getWorkerBoardHandler,
	}
}

// RegisterRoutes wires all handlers into the echo router.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	// Back-office
	api.POST("/workers", s.RegisterWorker)
	api.GET("/workers", s.GetWorkerBoard)
	api.POST("/workers/:id/accept", s.AcceptWorker)
	api.POST("/workers/:id/reject", s.RejectWorker)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/assign", s.AssignOrder)
	api.POST("/backlog/sweep", s.SweepBacklog)

	// Worker-facing, caller resolved from the bearer credential
	api.POST("/shift/start", s.StartDay)
	api.POST("/shift/end", s.EndDay)
	api.POST("/shift/unavailable", s.MarkUnavailable)
	api.POST("/deliveries/current/initiate", s.InitiateCompletion)
	api.POST("/deliveries/current/complete", s.CompleteDelivery)
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterWorkerRequest is the payload for worker registration.
type RegisterWorkerRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	VehicleType  string `json:"vehicleType"`
	Registration string `json:"registration"`
}

// CreateOrderRequest is the payload for order intake.
type CreateOrderRequest struct {
	RecipientName  string `json:"recipientName"`
	RecipientEmail string `json:"recipientEmail"`
	Address        string `json:"address"`
}

// CompleteDeliveryRequest carries the recipient's confirmation code.
type CompleteDeliveryRequest struct {
	Code string `json:"code"`
}

// WorkerBoardRow is one entry of the worker board read model.
type WorkerBoardRow struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Status            string `json:"status"`
	CapacityHold      bool   `json:"capacityHold"`
	ActiveAssignments int    `json:"activeAssignments"`
}

// RegisterWorker handles POST /api/v1/workers.
func (s *Server) RegisterWorker(ctx echo.Context) error {
	var req RegisterWorkerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterWorkerCommand(
		req.Name, req.Phone, req.Email,
		worker.VehicleType(req.VehicleType), req.Registration,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.registerWorkerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AcceptWorker handles POST /api/v1/workers/:id/accept.
func (s *Server) AcceptWorker(ctx echo.Context) error {
	workerID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid worker id")
	}

	cmd, err := commands.NewAcceptWorkerCommand(workerID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.acceptWorkerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RejectWorker handles POST /api/v1/workers/:id/reject.
func (s *Server) RejectWorker(ctx echo.Context) error {
	workerID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid worker id")
	}

	cmd, err := commands.NewRejectWorkerCommand(workerID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.rejectWorkerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// StartDay handles POST /api/v1/shift/start.
func (s *Server) StartDay(ctx echo.Context) error {
	workerID, err := s.callerID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	cmd, err := commands.NewStartDayCommand(workerID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.startDayHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// EndDay handles POST /api/v1/shift/end.
func (s *Server) EndDay(ctx echo.Context) error {
	workerID, err := s.callerID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	cmd, err := commands.NewEndDayCommand(workerID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.endDayHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkUnavailable handles POST /api/v1/shift/unavailable.
func (s *Server) MarkUnavailable(ctx echo.Context) error {
	workerID, err := s.callerID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	cmd, err := commands.NewMarkUnavailableCommand(workerID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.markUnavailableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(req.RecipientName, req.RecipientEmail, req.Address)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AssignOrder handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewAssignOrderCommand(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SweepBacklog handles POST /api/v1/backlog/sweep. The sweep runs to
// completion before responding; 202 means the pass ran, not that every
// backlog order found a worker.
func (s *Server) SweepBacklog(ctx echo.Context) error {
	if err := s.sweeper.Handle(ctx.Request().Context(), commands.NewReprocessBacklogCommand()); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// InitiateCompletion handles POST /api/v1/deliveries/current/initiate.
func (s *Server) InitiateCompletion(ctx echo.Context) error {
	workerID, err := s.callerID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	cmd, err := commands.NewInitiateCompletionCommand(workerID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.initiateCompletionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CompleteDelivery handles POST /api/v1/deliveries/current/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	workerID, err := s.callerID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var req CompleteDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(workerID, req.Code)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetWorkerBoard handles GET /api/v1/workers.
func (s *Server) GetWorkerBoard(ctx echo.Context) error {
	query := queries.NewGetWorkerBoardQuery()

	rows, err := s.getWorkerBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]WorkerBoardRow, len(rows))
	for i, row := range rows {
		response[i] = WorkerBoardRow{
			ID:                row.ID.String(),
			Name:              row.Name,
			Status:            row.Status.String(),
			CapacityHold:      row.CapacityHold,
			ActiveAssignments: row.ActiveAssignments,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// callerID resolves the bearer credential to a worker id.
func (s *Server) callerID(ctx echo.Context) (kernel.UUID, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	credential, found := strings.CutPrefix(header, "Bearer ")
	if !found || credential == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("authorization")
	}

	return s.identity.Resolve(ctx.Request().Context(), credential)
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// fail converts an application error to its HTTP response.
func fail(ctx echo.Context, err error) error {
	status := statusOf(err)
	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "invalid credentials",
	})
}

// statusOf maps the error taxonomy onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidCode):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrNoCapacity),
		errors.Is(err, errs.ErrIllegalState):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
