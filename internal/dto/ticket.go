package dto

import (
	"time"

	"github.com/yukikurage/ticket-tracker-api/internal/models"
)

// TicketDTO represents a ticket in API responses
type TicketDTO struct {
	ID          uint64              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      models.TicketStatus `json:"status"`
	CreatorID   uint64              `json:"creator_id"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Creator     *UserDTO            `json:"creator,omitempty"`
}

// ToTicketDTO converts a Ticket model to TicketDTO
func ToTicketDTO(ticket models.Ticket) TicketDTO {
	dto := TicketDTO{
		ID:          ticket.ID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Status:      ticket.Status,
		CreatorID:   ticket.CreatorID,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
	}

	// Include creator if preloaded
	if ticket.Creator.ID != 0 {
		creator := ToUserDTO(ticket.Creator)
		dto.Creator = &creator
	}

	return dto
}

// ToTicketDTOs converts a slice of tickets
func ToTicketDTOs(tickets []models.Ticket) []TicketDTO {
	dtos := make([]TicketDTO, len(tickets))
	for i, ticket := range tickets {
		dtos[i] = ToTicketDTO(ticket)
	}
	return dtos
}
