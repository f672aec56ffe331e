package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/ticket-tracker-api/internal/models"
	"github.com/yukikurage/ticket-tracker-api/internal/repository"
	"github.com/yukikurage/ticket-tracker-api/internal/validation"
	"gorm.io/gorm"
)

var (
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrNotTicketCreator = errors.New("only the ticket creator can perform this action")
	ErrInvalidSortBy    = errors.New("sortBy must be created_at or title")
	ErrInvalidSortOrder = errors.New("sortOrder must be asc or desc")
)

// TicketService handles ticket business logic. Tickets are visible to every
// authenticated user; update and delete are restricted to the creator.
type TicketService struct {
	ticketRepo repository.TicketRepository
}

// NewTicketService creates a new TicketService
func NewTicketService(ticketRepo repository.TicketRepository) *TicketService {
	return &TicketService{
		ticketRepo: ticketRepo,
	}
}

// CreateTicketInput represents input for creating a ticket
type CreateTicketInput struct {
	Title       string
	Description string
	Status      models.TicketStatus
	CreatorID   uint64
}

// ListTicketsInput represents filters for listing tickets
type ListTicketsInput struct {
	Search    string
	Status    *models.TicketStatus
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// UpdateTicketInput represents a partial update; nil fields are left untouched
type UpdateTicketInput struct {
	Title       *string
	Description *string
	Status      *models.TicketStatus
}

// CreateTicket validates the fields and persists the ticket with the creator
// reference. Status defaults to OPEN.
func (s *TicketService) CreateTicket(input CreateTicketInput) (*models.Ticket, error) {
	title := strings.TrimSpace(input.Title)
	if err := validation.TicketTitle(title); err != nil {
		return nil, err
	}
	if err := validation.TicketDescription(input.Description); err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = models.TicketStatusOpen
	}
	if err := validation.TicketStatus(input.Status); err != nil {
		return nil, err
	}

	ticket := &models.Ticket{
		Title:       title,
		Description: input.Description,
		Status:      input.Status,
		CreatorID:   input.CreatorID,
	}

	if err := s.ticketRepo.Create(ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	return s.ticketRepo.FindByID(ticket.ID, "Creator")
}

// ListTickets returns tickets matching the search/status filters in the
// requested order.
func (s *TicketService) ListTickets(input ListTicketsInput) ([]models.Ticket, error) {
	if input.SortBy == "" {
		input.SortBy = "created_at"
	}
	if input.SortBy != "created_at" && input.SortBy != "title" {
		return nil, ErrInvalidSortBy
	}

	if input.SortOrder == "" {
		input.SortOrder = "desc"
	}
	if input.SortOrder != "asc" && input.SortOrder != "desc" {
		return nil, ErrInvalidSortOrder
	}

	if input.Status != nil {
		if err := validation.TicketStatus(*input.Status); err != nil {
			return nil, err
		}
	}

	tickets, err := s.ticketRepo.List(repository.TicketFilter{
		Search:    input.Search,
		Status:    input.Status,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
		Page:      input.Page,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return tickets, nil
}

// GetTicket returns a ticket with its creator loaded
func (s *TicketService) GetTicket(ticketID uint64) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(ticketID, "Creator")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return ticket, nil
}

// UpdateTicket applies a partial field replace if the actor is the creator.
// Provided fields are validated; absent fields keep their value.
func (s *TicketService) UpdateTicket(ticketID, actorID uint64, input UpdateTicketInput) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	if !ticket.OwnedBy(actorID) {
		return nil, ErrNotTicketCreator
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if err := validation.TicketTitle(title); err != nil {
			return nil, err
		}
		ticket.Title = title
	}
	if input.Description != nil {
		if err := validation.TicketDescription(*input.Description); err != nil {
			return nil, err
		}
		ticket.Description = *input.Description
	}
	if input.Status != nil {
		if err := validation.TicketStatus(*input.Status); err != nil {
			return nil, err
		}
		ticket.Status = *input.Status
	}

	if err := s.ticketRepo.Update(ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	return s.ticketRepo.FindByID(ticket.ID, "Creator")
}

// DeleteTicket removes a ticket and its comments if the actor is the creator
func (s *TicketService) DeleteTicket(ticketID, actorID uint64) error {
	ticket, err := s.ticketRepo.FindByID(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTicketNotFound
		}
		return fmt.Errorf("failed to find ticket: %w", err)
	}

	if !ticket.OwnedBy(actorID) {
		return ErrNotTicketCreator
	}

	if err := s.ticketRepo.Delete(ticketID); err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	return nil
}
