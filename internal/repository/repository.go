package repository

import (
	"github.com/yukikurage/ticket-tracker-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// TicketFilter holds filtering and ordering options for listing tickets
type TicketFilter struct {
	// Search matches the title case-insensitively as a substring; an
	// all-digit search term additionally matches the ticket id exactly.
	Search    string
	Status    *models.TicketStatus
	SortBy    string // "created_at" or "title"
	SortOrder string // "asc" or "desc"
	Page      int
	Limit     int // zero means no pagination
}

// TicketRepository defines the interface for ticket data access
type TicketRepository interface {
	// Create creates a new ticket
	Create(ticket *models.Ticket) error

	// FindByID finds a ticket by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Ticket, error)

	// List retrieves tickets matching the filter
	List(filter TicketFilter) ([]models.Ticket, error)

	// Update updates a ticket
	Update(ticket *models.Ticket) error

	// Delete soft deletes a ticket and removes its comments
	Delete(id uint64) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(comment *models.Comment) error

	// FindByID finds a comment by ID
	FindByID(id uint64) (*models.Comment, error)

	// ListByTicket lists a ticket's comments in ascending chronological order
	ListByTicket(ticketID uint64) ([]models.Comment, error)

	// Delete removes a comment
	Delete(id uint64) error
}
