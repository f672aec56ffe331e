package dto

import (
	"time"

	"github.com/yukikurage/ticket-tracker-api/internal/models"
)

// CommentDTO represents a comment in API responses
type CommentDTO struct {
	ID             uint64    `json:"id"`
	TicketID       uint64    `json:"ticket_id"`
	Content        string    `json:"content"`
	AuthorID       uint64    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToCommentDTO converts a Comment model to CommentDTO
func ToCommentDTO(comment models.Comment) CommentDTO {
	return CommentDTO{
		ID:             comment.ID,
		TicketID:       comment.TicketID,
		Content:        comment.Content,
		AuthorID:       comment.AuthorID,
		AuthorUsername: comment.AuthorUsername,
		CreatedAt:      comment.CreatedAt,
	}
}

// ToCommentDTOs converts a slice of comments
func ToCommentDTOs(comments []models.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i, comment := range comments {
		dtos[i] = ToCommentDTO(comment)
	}
	return dtos
}
