package database

import (
	"fmt"

	"github.com/yukikurage/ticket-tracker-api/internal/models"
	"gorm.io/gorm"
)

// AddIndexes creates the composite indexes the hot list queries rely on.
// Single-column indexes come from the model tags via AutoMigrate.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model any
		name  string
		sql   string
	}{
		// Ticket list: status filter combined with the default sort order.
		{&models.Ticket{}, "idx_tickets_status_created_at",
			"CREATE INDEX idx_tickets_status_created_at ON tickets (status, created_at)"},
		// Comment list: always scoped to a ticket, ascending by creation time.
		{&models.Comment{}, "idx_comments_ticket_id_created_at",
			"CREATE INDEX idx_comments_ticket_id_created_at ON comments (ticket_id, created_at)"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.model, idx.name) {
			continue
		}
		if err := db.Exec(idx.sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
