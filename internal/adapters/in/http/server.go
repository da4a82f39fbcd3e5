// Package http exposes the listing catalog over a REST API.
// Handlers translate requests into commands and queries, delegate to the
// application layer, and wrap every result in the ApiResponse envelope.
package http

import (
	"database/sql"
	"net/http"
	"strconv"

	"propertyservice/internal/core/application/usecases/commands"
	"propertyservice/internal/core/application/usecases/queries"
	"propertyservice/internal/core/domain/model/kernel"
	"propertyservice/internal/core/domain/model/listing"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createListingHandler   commands.CreateListingCommandHandler
	updateListingHandler   commands.UpdateListingCommandHandler
	changeApprovalHandler  commands.ChangeApprovalCommandHandler
	deleteListingHandler   commands.DeleteListingCommandHandler

	// Query handlers
	getListingByIDHandler       queries.GetListingByIDQueryHandler
	listAllListingsHandler      queries.ListAllListingsQueryHandler
	listApprovedListingsHandler queries.ListApprovedListingsQueryHandler
	listPendingListingsHandler  queries.ListPendingListingsQueryHandler
	listOwnerListingsHandler    queries.ListOwnerListingsQueryHandler
	filterListingsHandler       queries.FilterListingsQueryHandler

	// sqlDB backs the health endpoint with a raw connectivity check.
	sqlDB *sql.DB
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createListingHandler commands.CreateListingCommandHandler,
	updateListingHandler commands.UpdateListingCommandHandler,
	changeApprovalHandler commands.ChangeApprovalCommandHandler,
	deleteListingHandler commands.DeleteListingCommandHandler,
	getListingByIDHandler queries.GetListingByIDQueryHandler,
	listAllListingsHandler queries.ListAllListingsQueryHandler,
	listApprovedListingsHandler queries.ListApprovedListingsQueryHandler,
	listPendingListingsHandler queries.ListPendingListingsQueryHandler,
	listOwnerListingsHandler queries.ListOwnerListingsQueryHandler,
	filterListingsHandler queries.FilterListingsQueryHandler,
	sqlDB *sql.DB,
) *Server {
	return &Server{
		createListingHandler:        createListingHandler,
		updateListingHandler:        updateListingHandler,
		changeApprovalHandler:       changeApprovalHandler,
		deleteListingHandler:        deleteListingHandler,
		getListingByIDHandler:       getListingByIDHandler,
		listAllListingsHandler:      listAllListingsHandler,
		listApprovedListingsHandler: listApprovedListingsHandler,
		listPendingListingsHandler:  listPendingListingsHandler,
		listOwnerListingsHandler:    listOwnerListingsHandler,
		filterListingsHandler:       filterListingsHandler,
		sqlDB:                       sqlDB,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")

	v1.POST("/properties", s.CreateProperty)
	v1.POST("/properties/admin", s.CreateAdminProperty)

	v1.GET("/properties", s.ListProperties)
	v1.GET("/properties/approved", s.ListApprovedProperties)
	v1.GET("/properties/pending", s.ListPendingProperties)
	v1.GET("/properties/filter", s.FilterProperties)
	v1.GET("/properties/owner/:ownerId", s.ListOwnerProperties)
	v1.GET("/properties/:id", s.GetProperty)

	v1.PUT("/properties/:id", s.UpdateProperty)
	v1.DELETE("/properties/:id", s.DeleteProperty)

	v1.PATCH("/properties/:id/submit", s.SubmitProperty)
	v1.PATCH("/properties/:id/approve", s.ApproveProperty)
	v1.PATCH("/properties/:id/reject", s.RejectProperty)
	v1.PATCH("/properties/:id/archive", s.ArchiveProperty)
}

// CreateProperty handles POST /api/v1/properties - registers a new listing
// as a draft awaiting the review workflow.
//
//	@Summary	Create a listing
//	@Tags		properties
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreatePropertyRequest	true	"listing data"
//	@Success	201		{object}	ApiResponse
//	@Router		/api/v1/properties [post]
func (s *Server) CreateProperty(ctx echo.Context) error {
	return s.createListing(ctx, false)
}

// CreateAdminProperty handles POST /api/v1/properties/admin - registers a
// listing that skips the review workflow and starts out approved.
//
//	@Summary	Create a pre-approved listing
//	@Tags		properties
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreatePropertyRequest	true	"listing data"
//	@Success	201		{object}	ApiResponse
//	@Router		/api/v1/properties/admin [post]
func (s *Server) CreateAdminProperty(ctx echo.Context) error {
	return s.createListing(ctx, true)
}

func (s *Server) createListing(ctx echo.Context, adminApproved bool) error {
	var req CreatePropertyRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("invalid owner id: "+err.Error()))
	}

	ptype, status, err := parseEnums(req.PropertyType, req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	state, err := listing.ParseRegion(req.Location.State)
	if err != nil {
		return respondError(ctx, err)
	}

	propertyID := kernel.NewUUID()
	cmd, err := commands.NewCreateListingCommand(
		propertyID,
		ownerID,
		req.Title,
		req.Description,
		ptype,
		status,
		req.Location.Address,
		req.Location.City,
		state,
		req.Location.Country,
		req.Location.Zipcode,
		req.Location.Latitude,
		req.Location.Longitude,
		adminApproved,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createListingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	created, err := s.fetchListing(ctx, propertyID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, successResponse("property created", created))
}

// GetProperty handles GET /api/v1/properties/:id - retrieves one listing
// regardless of its approval state.
//
//	@Summary	Get a listing by id
//	@Tags		properties
//	@Produce	json
//	@Param		id	path		string	true	"property id"
//	@Success	200	{object}	ApiResponse
//	@Router		/api/v1/properties/{id} [get]
func (s *Server) GetProperty(ctx echo.Context) error {
	propertyID, err := propertyIDFromPath(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("invalid property id: "+err.Error()))
	}

	response, err := s.fetchListing(ctx, propertyID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, successResponse("property retrieved", response))
}

// ListProperties handles GET /api/v1/properties - the admin catalog view
// over every listing regardless of approval state.
//
//	@Summary	List all listings
//	@Tags		properties
//	@Produce	json
//	@Param		page	query		int	false	"page number"
//	@Param		size	query		int	false	"page size"
//	@Success	200		{object}	ApiResponse
//	@Router		/api/v1/properties [get]
func (s *Server) ListProperties(ctx echo.Context) error {
	query := queries.NewListAllListingsQuery(pageFromRequest(ctx))

	response, err := s.listAllListingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pagedResponse("properties retrieved", response))
}

// ListApprovedProperties handles GET /api/v1/properties/approved - the
// public catalog of approved listings.
//
//	@Summary	List approved listings
//	@Tags		properties
//	@Produce	json
//	@Param		page	query		int	false	"page number"
//	@Param		size	query		int	false	"page size"
//	@Success	200		{object}	ApiResponse
//	@Router		/api/v1/properties/approved [get]
func (s *Server) ListApprovedProperties(ctx echo.Context) error {
	query := queries.NewListApprovedListingsQuery(pageFromRequest(ctx))

	response, err := s.listApprovedListingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pagedResponse("approved properties retrieved", response))
}

// ListPendingProperties handles GET /api/v1/properties/pending - the
// moderation queue of listings awaiting review.
//
//	@Summary	List listings pending approval
//	@Tags		properties
//	@Produce	json
//	@Param		page	query		int	false	"page number"
//	@Param		size	query		int	false	"page size"
//	@Success	200		{object}	ApiResponse
//	@Router		/api/v1/properties/pending [get]
func (s *Server) ListPendingProperties(ctx echo.Context) error {
	query := queries.NewListPendingListingsQuery(pageFromRequest(ctx))

	response, err := s.listPendingListingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pagedResponse("pending properties retrieved", response))
}

// ListOwnerProperties handles GET /api/v1/properties/owner/:ownerId - the
// seller dashboard over one owner's listings in every state.
//
//	@Summary	List an owner's listings
//	@Tags		properties
//	@Produce	json
//	@Param		ownerId	path		string	true	"owner id"
//	@Param		page	query		int		false	"page number"
//	@Param		size	query		int		false	"page size"
//	@Success	200		{object}	ApiResponse
//	@Router		/api/v1/properties/owner/{ownerId} [get]
func (s *Server) ListOwnerProperties(ctx echo.Context) error {
	ownerID, err := kernel.UUIDFromString(ctx.Param("ownerId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("invalid owner id: "+err.Error()))
	}

	query, err := queries.NewListOwnerListingsQuery(ownerID, pageFromRequest(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.listOwnerListingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pagedResponse("owner properties retrieved", response))
}

// FilterProperties handles GET /api/v1/properties/filter - searches the
// public catalog by optional status, type and state criteria combined with
// AND semantics.
//
//	@Summary	Filter approved listings
//	@Tags		properties
//	@Produce	json
//	@Param		status	query		string	false	"availability status"
//	@Param		type	query		string	false	"property type"
//	@Param		state	query		string	false	"region"
//	@Param		page	query		int		false	"page number"
//	@Param		size	query		int		false	"page size"
//	@Success	200		{object}	ApiResponse
//	@Router		/api/v1/properties/filter [get]
func (s *Server) FilterProperties(ctx echo.Context) error {
	query, err := queries.NewFilterListingsQuery(
		optionalQueryParam(ctx, "status"),
		optionalQueryParam(ctx, "type"),
		optionalQueryParam(ctx, "state"),
		pageFromRequest(ctx),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.filterListingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pagedResponse("filtered properties retrieved", response))
}

// UpdateProperty handles PUT /api/v1/properties/:id - applies a partial
// update to a listing; omitted fields stay unchanged.
//
//	@Summary	Update a listing
//	@Tags		properties
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"property id"
//	@Param		request	body		UpdatePropertyRequest	true	"fields to change"
//	@Success	200		{object}	ApiResponse
//	@Router		/api/v1/properties/{id} [put]
func (s *Server) UpdateProperty(ctx echo.Context) error {
	propertyID, err := propertyIDFromPath(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("invalid property id: "+err.Error()))
	}

	var req UpdatePropertyRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
	}

	var ptype *listing.PropertyType
	if req.PropertyType != nil {
		parsed, parseErr := listing.ParsePropertyType(*req.PropertyType)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		ptype = &parsed
	}

	var status *listing.Status
	if req.Status != nil {
		parsed, parseErr := listing.ParseStatus(*req.Status)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		status = &parsed
	}

	patch, err := req.Location.toPatch()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateListingCommand(propertyID, req.Title, req.Description, ptype, status, patch)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateListingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.fetchListing(ctx, propertyID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, successResponse("property updated", updated))
}

// DeleteProperty handles DELETE /api/v1/properties/:id - permanently
// removes a listing and its location.
//
//	@Summary	Delete a listing
//	@Tags		properties
//	@Produce	json
//	@Param		id	path		string	true	"property id"
//	@Success	200	{object}	ApiResponse
//	@Router		/api/v1/properties/{id} [delete]
func (s *Server) DeleteProperty(ctx echo.Context) error {
	propertyID, err := propertyIDFromPath(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("invalid property id: "+err.Error()))
	}

	cmd, err := commands.NewDeleteListingCommand(propertyID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteListingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, successResponse("property deleted", nil))
}

// SubmitProperty handles PATCH /api/v1/properties/:id/submit - moves a
// listing into the review queue.
//
//	@Summary	Submit a listing for approval
//	@Tags		properties
//	@Produce	json
//	@Param		id	path		string	true	"property id"
//	@Success	200	{object}	ApiResponse
//	@Router		/api/v1/properties/{id}/submit [patch]
func (s *Server) SubmitProperty(ctx echo.Context) error {
	return s.changeApproval(ctx, commands.ActionSubmit, "property submitted for approval")
}

// ApproveProperty handles PATCH /api/v1/properties/:id/approve - publishes
// a listing to the public catalog.
//
//	@Summary	Approve a listing
//	@Tags		properties
//	@Produce	json
//	@Param		id	path		string	true	"property id"
//	@Success	200	{object}	ApiResponse
//	@Router		/api/v1/properties/{id}/approve [patch]
func (s *Server) ApproveProperty(ctx echo.Context) error {
	return s.changeApproval(ctx, commands.ActionApprove, "property approved")
}

// RejectProperty handles PATCH /api/v1/properties/:id/reject - sends a
// listing back to its owner.
//
//	@Summary	Reject a listing
//	@Tags		properties
//	@Produce	json
//	@Param		id	path		string	true	"property id"
//	@Success	200	{object}	ApiResponse
//	@Router		/api/v1/properties/{id}/reject [patch]
func (s *Server) RejectProperty(ctx echo.Context) error {
	return s.changeApproval(ctx, commands.ActionReject, "property rejected")
}

// ArchiveProperty handles PATCH /api/v1/properties/:id/archive - retires a
// listing from the public catalog.
//
//	@Summary	Archive a listing
//	@Tags		properties
//	@Produce	json
//	@Param		id	path		string	true	"property id"
//	@Success	200	{object}	ApiResponse
//	@Router		/api/v1/properties/{id}/archive [patch]
func (s *Server) ArchiveProperty(ctx echo.Context) error {
	return s.changeApproval(ctx, commands.ActionArchive, "property archived")
}

func (s *Server) changeApproval(ctx echo.Context, action commands.ApprovalAction, message string) error {
	propertyID, err := propertyIDFromPath(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("invalid property id: "+err.Error()))
	}

	cmd, err := commands.NewChangeApprovalCommand(propertyID, action)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.changeApprovalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.fetchListing(ctx, propertyID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, successResponse(message, updated))
}

// Health handles GET /health - reports service and database availability.
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	ApiResponse
//	@Router		/health [get]
func (s *Server) Health(ctx echo.Context) error {
	if err := s.sqlDB.PingContext(ctx.Request().Context()); err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, errorResponse("database unreachable"))
	}

	return ctx.JSON(http.StatusOK, successResponse("healthy", nil))
}

// fetchListing reads the current state of a listing for response bodies.
// Write endpoints return the read model so clients see applied defaults.
func (s *Server) fetchListing(ctx echo.Context, propertyID kernel.UUID) (queries.ListingResponse, error) {
	query, err := queries.NewGetListingByIDQuery(propertyID)
	if err != nil {
		return queries.ListingResponse{}, err
	}

	return s.getListingByIDHandler.Handle(ctx.Request().Context(), query)
}

func propertyIDFromPath(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// pageFromRequest reads the page/size query parameters. Missing or
// malformed values fall back to the pagination defaults.
func pageFromRequest(ctx echo.Context) queries.Page {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	size, _ := strconv.Atoi(ctx.QueryParam("size"))
	return queries.NewPage(page, size)
}

func optionalQueryParam(ctx echo.Context, name string) *string {
	value := ctx.QueryParam(name)
	if value == "" {
		return nil
	}
	return &value
}

// parseEnums normalizes the optional type and status fields of a creation
// request. Empty values pass through so the aggregate defaults apply.
func parseEnums(rawType, rawStatus string) (listing.PropertyType, listing.Status, error) {
	var ptype listing.PropertyType
	if rawType != "" {
		parsed, err := listing.ParsePropertyType(rawType)
		if err != nil {
			return "", "", err
		}
		ptype = parsed
	}

	var status listing.Status
	if rawStatus != "" {
		parsed, err := listing.ParseStatus(rawStatus)
		if err != nil {
			return "", "", err
		}
		status = parsed
	}

	return ptype, status, nil
}
