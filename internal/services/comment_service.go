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

// ErrCommentNotFound covers both a missing comment and a comment owned by
// someone else; delete deliberately does not distinguish the two, so a
// requester cannot probe for existence.
var ErrCommentNotFound = errors.New("comment not found")

// CommentService handles comment business logic
type CommentService struct {
	commentRepo repository.CommentRepository
	ticketRepo  repository.TicketRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repository.CommentRepository, ticketRepo repository.TicketRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		ticketRepo:  ticketRepo,
	}
}

// CreateCommentInput represents input for creating a comment
type CreateCommentInput struct {
	TicketID       uint64
	Content        string
	AuthorID       uint64
	AuthorUsername string
}

// ListComments returns a ticket's comments in ascending chronological order
func (s *CommentService) ListComments(ticketID uint64) ([]models.Comment, error) {
	if err := s.ensureTicketExists(ticketID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByTicket(ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

// CreateComment validates the content, checks the parent ticket exists, and
// stores the comment with the author's id and denormalized username.
func (s *CommentService) CreateComment(input CreateCommentInput) (*models.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if err := validation.CommentContent(content); err != nil {
		return nil, err
	}

	if err := s.ensureTicketExists(input.TicketID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:        content,
		TicketID:       input.TicketID,
		AuthorID:       input.AuthorID,
		AuthorUsername: input.AuthorUsername,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// DeleteComment removes a comment if the actor is its author. A missing
// comment and a foreign comment report the same not-found error.
func (s *CommentService) DeleteComment(commentID, actorID uint64) error {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("failed to find comment: %w", err)
	}

	if !comment.OwnedBy(actorID) {
		return ErrCommentNotFound
	}

	if err := s.commentRepo.Delete(commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}

func (s *CommentService) ensureTicketExists(ticketID uint64) error {
	if _, err := s.ticketRepo.FindByID(ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTicketNotFound
		}
		return fmt.Errorf("failed to verify ticket: %w", err)
	}
	return nil
}
