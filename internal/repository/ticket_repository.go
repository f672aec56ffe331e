package repository

import (
	"strconv"
	"strings"

	"github.com/yukikurage/ticket-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormTicketRepository is a GORM implementation of TicketRepository
type GormTicketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new TicketRepository
func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &GormTicketRepository{db: db}
}

// Create creates a new ticket
func (r *GormTicketRepository) Create(ticket *models.Ticket) error {
	return r.db.Create(ticket).Error
}

// FindByID finds a ticket by ID with optional preloading
func (r *GormTicketRepository) FindByID(id uint64, preload ...string) (*models.Ticket, error) {
	var ticket models.Ticket
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&ticket, id).Error; err != nil {
		return nil, err
	}

	return &ticket, nil
}

// List retrieves tickets matching the filter
func (r *GormTicketRepository) List(filter TicketFilter) ([]models.Ticket, error) {
	query := r.db.Model(&models.Ticket{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		if id, err := strconv.ParseUint(search, 10, 64); err == nil {
			query = query.Where("LOWER(tickets.title) LIKE ? OR tickets.id = ?", pattern, id)
		} else {
			query = query.Where("LOWER(tickets.title) LIKE ?", pattern)
		}
	}

	if filter.Status != nil {
		query = query.Where("tickets.status = ?", *filter.Status)
	}

	query = query.Order(orderClause(filter.SortBy, filter.SortOrder))

	if filter.Page > 0 && filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query = query.Offset(offset).Limit(filter.Limit)
	}

	var tickets []models.Ticket
	if err := query.Preload("Creator").Find(&tickets).Error; err != nil {
		return nil, err
	}

	return tickets, nil
}

func orderClause(sortBy, sortOrder string) string {
	column := "tickets.created_at"
	if sortBy == "title" {
		column = "tickets.title"
	}
	direction := "DESC"
	if sortOrder == "asc" {
		direction = "ASC"
	}
	return column + " " + direction
}

// Update updates a ticket
func (r *GormTicketRepository) Update(ticket *models.Ticket) error {
	return r.db.Save(ticket).Error
}

// Delete soft deletes a ticket and removes its comments
func (r *GormTicketRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Ticket{}, id).Error
	})
}
