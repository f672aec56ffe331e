package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/ticket-tracker-api/internal/dto"
	apierrors "github.com/yukikurage/ticket-tracker-api/internal/errors"
	"github.com/yukikurage/ticket-tracker-api/internal/logger"
	"github.com/yukikurage/ticket-tracker-api/internal/middleware"
	"github.com/yukikurage/ticket-tracker-api/internal/services"
	"github.com/yukikurage/ticket-tracker-api/internal/validation"
)

// CommentHandler coordinates comment HTTP handlers.
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// ListComments returns a ticket's comments, oldest first.
//
//	@Summary	List a ticket's comments
//	@Tags		comments
//	@Produce	json
//	@Security	BearerAuth
//	@Param		ticketId	path		int	true	"ticket id"
//	@Success	200	{array}		dto.CommentDTO
//	@Failure	404	{object}	errors.APIError
//	@Router		/comments/ticket/{ticketId} [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	ticketID, ok := parseIDParam(c, "ticketId")
	if !ok {
		return
	}

	comments, err := h.commentService.ListComments(ticketID)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentDTOs(comments))
}

// CreateComment attaches a comment to a ticket.
//
//	@Summary	Create a comment
//	@Tags		comments
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Success	201	{object}	dto.CommentDTO
//	@Failure	400	{object}	errors.APIError
//	@Failure	404	{object}	errors.APIError
//	@Router		/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	username, _ := middleware.GetUsername(c)

	type CreateCommentRequest struct {
		TicketID uint64 `json:"ticket_id" binding:"required"`
		Content  string `json:"content" binding:"required"`
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.commentService.CreateComment(services.CreateCommentInput{
		TicketID:       req.TicketID,
		Content:        req.Content,
		AuthorID:       userID,
		AuthorUsername: username,
	})
	if err != nil {
		respondCommentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentDTO(*comment))
}

// DeleteComment removes a comment the requester authored.
//
//	@Summary	Delete a comment
//	@Tags		comments
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	int	true	"comment id"
//	@Success	200	{object}	map[string]string
//	@Failure	404	{object}	errors.APIError
//	@Router		/comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	commentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(commentID, userID); err != nil {
		respondCommentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment deleted successfully",
	})
}

func respondCommentError(c *gin.Context, err error) {
	var ruleErr *validation.RuleError
	switch {
	case errors.As(err, &ruleErr):
		apierrors.BadRequestWithDetails(c, ruleErr.Error(), gin.H{"field": ruleErr.Field})
	case errors.Is(err, services.ErrTicketNotFound),
		errors.Is(err, services.ErrCommentNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		logger.Error("comment request failed", "error", err)
		apierrors.InternalError(c, "")
	}
}
