// Package http implements the inbound REST adapter. Handlers translate wire
// requests into commands and queries and map application errors onto HTTP
// status codes.
package http

import (
	"net/http"
	"strconv"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/maintenance"

	"github.com/labstack/echo/v4"
)

// Server handles the fleet maintenance HTTP API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerVehicleHandler     commands.RegisterVehicleCommandHandler
	retireVehicleHandler       commands.RetireVehicleCommandHandler
	startMaintenanceHandler    commands.StartMaintenanceCommandHandler
	orderPartsHandler          commands.OrderPartsCommandHandler
	completeMaintenanceHandler commands.CompleteMaintenanceCommandHandler

	// Query handlers
	listVehiclesHandler     queries.ListVehiclesQueryHandler
	listMaintenancesHandler queries.ListMaintenancesQueryHandler
	listPartOrdersHandler   queries.ListPartOrdersQueryHandler
	fleetSyncHandler        queries.FleetSyncQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerVehicleHandler commands.RegisterVehicleCommandHandler,
	retireVehicleHandler commands.RetireVehicleCommandHandler,
	startMaintenanceHandler commands.StartMaintenanceCommandHandler,
	orderPartsHandler commands.OrderPartsCommandHandler,
	completeMaintenanceHandler commands.CompleteMaintenanceCommandHandler,
	listVehiclesHandler queries.ListVehiclesQueryHandler,
	listMaintenancesHandler queries.ListMaintenancesQueryHandler,
	listPartOrdersHandler queries.ListPartOrdersQueryHandler,
	fleetSyncHandler queries.FleetSyncQueryHandler,
) *Server {
	return &Server{
		registerVehicleHandler:     registerVehicleHandler,
		retireVehicleHandler:       retireVehicleHandler,
		startMaintenanceHandler:    startMaintenanceHandler,
		orderPartsHandler:          orderPartsHandler,
		completeMaintenanceHandler: completeMaintenanceHandler,
		listVehiclesHandler:        listVehiclesHandler,
		listMaintenancesHandler:    listMaintenancesHandler,
		listPartOrdersHandler:      listPartOrdersHandler,
		fleetSyncHandler:           fleetSyncHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.GET("/vehicles/", s.GetVehicles)
	e.POST("/vehicles/", s.RegisterVehicle)
	e.PUT("/vehicles/:id/retire", s.RetireVehicle)

	e.GET("/maintenance/", s.GetMaintenances)
	e.POST("/maintenance/start", s.StartMaintenance)
	e.POST("/maintenance/parts", s.OrderParts)
	e.PUT("/maintenance/:id/complete", s.CompleteMaintenance)

	e.GET("/part-orders/", s.GetPartOrders)

	e.GET("/fleet-fabric/sync", s.FleetSync)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetVehicles handles GET /vehicles/ - retrieves a page of vehicles, optionally
// restricted to an ids filter.
func (s *Server) GetVehicles(ctx echo.Context) error {
	startIndex, batchSize := pageParams(ctx)
	query := queries.NewListVehiclesQuery(startIndex, batchSize, ctx.QueryParam("ids"))

	vehicles, err := s.listVehiclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		response = append(response, vehicleFromResponse(v))
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterVehicle handles POST /vehicles/ - adds a vehicle to the fleet.
func (s *Server) RegisterVehicle(ctx echo.Context) error {
	var body RegisterVehicleRequest
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterVehicleCommand(body.Make, body.Model, body.Year, body.VIN, body.Color)
	if err != nil {
		return writeError(ctx, err)
	}

	registered, err := s.registerVehicleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, vehicleFromDomain(registered))
}

// RetireVehicle handles PUT /vehicles/:id/retire - permanently removes a
// vehicle from service.
func (s *Server) RetireVehicle(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid vehicle id")
	}

	cmd, err := commands.NewRetireVehicleCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	retired, err := s.retireVehicleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleFromDomain(retired))
}

// GetMaintenances handles GET /maintenance/ - retrieves a page of maintenance
// records, optionally restricted to an ids filter.
func (s *Server) GetMaintenances(ctx echo.Context) error {
	startIndex, batchSize := pageParams(ctx)
	query := queries.NewListMaintenancesQuery(startIndex, batchSize, ctx.QueryParam("ids"))

	records, err := s.listMaintenancesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Maintenance, 0, len(records))
	for _, m := range records {
		response = append(response, maintenanceFromResponse(m))
	}

	return ctx.JSON(http.StatusOK, response)
}

// StartMaintenance handles POST /maintenance/start - opens a maintenance
// record and pulls the vehicle out of the active pool.
func (s *Server) StartMaintenance(ctx echo.Context) error {
	var body StartMaintenanceRequest
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewStartMaintenanceCommand(
		body.VehicleID,
		body.Technician,
		maintenance.MaintenanceType(body.MaintenanceTypeID),
		body.NotesOpen,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	opened, err := s.startMaintenanceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, maintenanceFromDomain(opened))
}

// OrderParts handles POST /maintenance/parts - records a part purchase
// against an open maintenance record.
func (s *Server) OrderParts(ctx echo.Context) error {
	var body OrderPartsRequest
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewOrderPartsCommand(body.MaintenanceID, body.PurchaseCardNum, body.TotalAmount)
	if err != nil {
		return writeError(ctx, err)
	}

	ordered, err := s.orderPartsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, partOrderFromDomain(ordered))
}

// CompleteMaintenance handles PUT /maintenance/:id/complete - closes a
// maintenance record and returns the vehicle to the active pool.
func (s *Server) CompleteMaintenance(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid maintenance id")
	}

	var body CompleteMaintenanceRequest
	if err = ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCompleteMaintenanceCommand(id, body.NotesClose)
	if err != nil {
		return writeError(ctx, err)
	}

	completed, err := s.completeMaintenanceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, maintenanceFromDomain(completed))
}

// GetPartOrders handles GET /part-orders/ - retrieves a page of part orders,
// optionally restricted to an ids filter.
func (s *Server) GetPartOrders(ctx echo.Context) error {
	startIndex, batchSize := pageParams(ctx)
	query := queries.NewListPartOrdersQuery(startIndex, batchSize, ctx.QueryParam("ids"))

	orders, err := s.listPartOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PartOrder, 0, len(orders))
	for _, p := range orders {
		response = append(response, partOrderFromResponse(p))
	}

	return ctx.JSON(http.StatusOK, response)
}

// FleetSync handles GET /fleet-fabric/sync - serves the hierarchical
// vehicle/maintenance/part-order view consumed by the orchestrator.
func (s *Server) FleetSync(ctx echo.Context) error {
	startIndex, batchSize := pageParams(ctx)
	query := queries.NewFleetSyncQuery(startIndex, batchSize)

	result, err := s.fleetSyncHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, syncResponseFromQuery(result))
}

// pageParams reads the pagination query parameters. Missing or malformed
// values fall back to zero, which the query constructors normalize.
func pageParams(ctx echo.Context) (startIndex, batchSize int) {
	startIndex, _ = strconv.Atoi(ctx.QueryParam("startIndex"))
	batchSize, _ = strconv.Atoi(ctx.QueryParam("batchSize"))
	return startIndex, batchSize
}

func pathID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}
