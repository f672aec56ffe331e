package models

import (
	"time"
)

// Comment is attached to a ticket and never updated after creation.
// AuthorUsername is denormalized; usernames are immutable post-registration,
// so it cannot go stale.
type Comment struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	Content        string    `gorm:"type:varchar(500);not null" json:"content"`
	TicketID       uint64    `gorm:"not null;index" json:"ticket_id"`
	AuthorID       uint64    `gorm:"not null;index" json:"author_id"`
	AuthorUsername string    `gorm:"type:varchar(20);not null" json:"author_username"`
	CreatedAt      time.Time `json:"created_at"`

	// Relations
	Ticket Ticket `gorm:"foreignKey:TicketID" json:"ticket,omitempty"`
	Author User   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// OwnedBy reports whether the comment was written by the given user.
func (c *Comment) OwnedBy(userID uint64) bool {
	return c.AuthorID == userID
}
