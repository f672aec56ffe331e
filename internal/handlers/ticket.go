package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/ticket-tracker-api/internal/dto"
	apierrors "github.com/yukikurage/ticket-tracker-api/internal/errors"
	"github.com/yukikurage/ticket-tracker-api/internal/logger"
	"github.com/yukikurage/ticket-tracker-api/internal/middleware"
	"github.com/yukikurage/ticket-tracker-api/internal/models"
	"github.com/yukikurage/ticket-tracker-api/internal/services"
	"github.com/yukikurage/ticket-tracker-api/internal/utils"
	"github.com/yukikurage/ticket-tracker-api/internal/validation"
)

// TicketHandler coordinates ticket HTTP handlers.
type TicketHandler struct {
	ticketService *services.TicketService
}

// NewTicketHandler creates a new TicketHandler.
func NewTicketHandler(ticketService *services.TicketService) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

// ListTickets returns tickets matching the optional search/status filters.
//
//	@Summary	List tickets
//	@Tags		tickets
//	@Produce	json
//	@Security	BearerAuth
//	@Param		search		query		string	false	"case-insensitive title substring, or exact id"
//	@Param		status		query		string	false	"OPEN | IN_PROGRESS | CLOSED"
//	@Param		sortBy		query		string	false	"created_at | title"
//	@Param		sortOrder	query		string	false	"asc | desc"
//	@Success	200	{array}		dto.TicketDTO
//	@Failure	400	{object}	errors.APIError
//	@Failure	401	{object}	errors.APIError
//	@Router		/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	input := services.ListTicketsInput{
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	if status := c.Query("status"); status != "" {
		s := models.TicketStatus(status)
		input.Status = &s
	}

	params := utils.GetPaginationParams(c)
	input.Page = params.Page
	input.Limit = params.Limit

	tickets, err := h.ticketService.ListTickets(input)
	if err != nil {
		respondTicketError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketDTOs(tickets))
}

// CreateTicket creates a new ticket owned by the requester.
//
//	@Summary	Create a ticket
//	@Tags		tickets
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Success	201	{object}	dto.TicketDTO
//	@Failure	400	{object}	errors.APIError
//	@Failure	401	{object}	errors.APIError
//	@Router		/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTicketRequest struct {
		Title       string              `json:"title" binding:"required"`
		Description string              `json:"description"`
		Status      models.TicketStatus `json:"status"`
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	ticket, err := h.ticketService.CreateTicket(services.CreateTicketInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		CreatorID:   userID,
	})
	if err != nil {
		respondTicketError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketDTO(*ticket))
}

// GetTicket returns a specific ticket by ID.
//
//	@Summary	Get a ticket
//	@Tags		tickets
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"ticket id"
//	@Success	200	{object}	dto.TicketDTO
//	@Failure	404	{object}	errors.APIError
//	@Router		/tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetTicket(ticketID)
	if err != nil {
		respondTicketError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketDTO(*ticket))
}

// UpdateTicket applies a partial update to a ticket the requester created.
//
//	@Summary	Update a ticket
//	@Tags		tickets
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"ticket id"
//	@Success	200	{object}	dto.TicketDTO
//	@Failure	400	{object}	errors.APIError
//	@Failure	403	{object}	errors.APIError
//	@Failure	404	{object}	errors.APIError
//	@Router		/tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// Parse raw JSON to detect which fields were sent; absent fields keep
	// their current value.
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var input services.UpdateTicketInput
	if title, ok := rawReq["title"]; ok {
		titleStr, ok := title.(string)
		if !ok {
			apierrors.BadRequest(c, "title must be a string")
			return
		}
		input.Title = &titleStr
	}
	if description, ok := rawReq["description"]; ok {
		descStr, ok := description.(string)
		if !ok {
			apierrors.BadRequest(c, "description must be a string")
			return
		}
		input.Description = &descStr
	}
	if status, ok := rawReq["status"]; ok {
		statusStr, ok := status.(string)
		if !ok {
			apierrors.BadRequest(c, "status must be a string")
			return
		}
		s := models.TicketStatus(statusStr)
		input.Status = &s
	}

	ticket, err := h.ticketService.UpdateTicket(ticketID, userID, input)
	if err != nil {
		respondTicketError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketDTO(*ticket))
}

// DeleteTicket deletes a ticket the requester created.
//
//	@Summary	Delete a ticket
//	@Tags		tickets
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	int	true	"ticket id"
//	@Success	200	{object}	map[string]string
//	@Failure	403	{object}	errors.APIError
//	@Failure	404	{object}	errors.APIError
//	@Router		/tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ticketService.DeleteTicket(ticketID, userID); err != nil {
		respondTicketError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket deleted successfully",
	})
}

func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

func respondTicketError(c *gin.Context, err error) {
	var ruleErr *validation.RuleError
	switch {
	case errors.As(err, &ruleErr):
		apierrors.BadRequestWithDetails(c, ruleErr.Error(), gin.H{"field": ruleErr.Field})
	case errors.Is(err, services.ErrInvalidSortBy),
		errors.Is(err, services.ErrInvalidSortOrder):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTicketNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotTicketCreator):
		apierrors.Forbidden(c, err.Error())
	default:
		logger.Error("ticket request failed", "error", err)
		apierrors.InternalError(c, "")
	}
}
