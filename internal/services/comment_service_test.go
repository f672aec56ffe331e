package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/ticket-tracker-api/internal/models"
	"github.com/yukikurage/ticket-tracker-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type commentServiceTestEnv struct {
	db             *gorm.DB
	commentService *CommentService
	ticketService  *TicketService
}

func setupCommentServiceTestEnv(t *testing.T) commentServiceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Ticket{},
		&models.Comment{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	ticketRepo := repository.NewTicketRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	return commentServiceTestEnv{
		db:             db,
		commentService: NewCommentService(commentRepo, ticketRepo),
		ticketService:  NewTicketService(ticketRepo),
	}
}

func (env commentServiceTestEnv) createTicket(t *testing.T, title string, creatorID uint64) *models.Ticket {
	t.Helper()
	ticket, err := env.ticketService.CreateTicket(CreateTicketInput{
		Title:     title,
		CreatorID: creatorID,
	})
	require.NoError(t, err)
	return ticket
}

func TestCommentService_Create_ChecksTicketReference(t *testing.T) {
	env := setupCommentServiceTestEnv(t)

	_, err := env.commentService.CreateComment(CreateCommentInput{
		TicketID:       9999,
		Content:        "orphaned",
		AuthorID:       1,
		AuthorUsername: "alice",
	})
	require.ErrorIs(t, err, ErrTicketNotFound)
}

func TestCommentService_Create_TrimsContent(t *testing.T) {
	env := setupCommentServiceTestEnv(t)
	ticket := env.createTicket(t, "Some ticket", 1)

	comment, err := env.commentService.CreateComment(CreateCommentInput{
		TicketID:       ticket.ID,
		Content:        "  remark  ",
		AuthorID:       1,
		AuthorUsername: "alice",
	})
	require.NoError(t, err)
	require.Equal(t, "remark", comment.Content)
	require.Equal(t, "alice", comment.AuthorUsername)
}

func TestCommentService_List_AscendingOrder(t *testing.T) {
	env := setupCommentServiceTestEnv(t)
	ticket := env.createTicket(t, "Some ticket", 1)

	for _, content := range []string{"first", "second", "third"} {
		_, err := env.commentService.CreateComment(CreateCommentInput{
			TicketID:       ticket.ID,
			Content:        content,
			AuthorID:       1,
			AuthorUsername: "alice",
		})
		require.NoError(t, err)
	}

	comments, err := env.commentService.ListComments(ticket.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	require.Equal(t, "first", comments[0].Content)
	require.Equal(t, "second", comments[1].Content)
	require.Equal(t, "third", comments[2].Content)
}

func TestCommentService_List_UnknownTicket(t *testing.T) {
	env := setupCommentServiceTestEnv(t)

	_, err := env.commentService.ListComments(9999)
	require.ErrorIs(t, err, ErrTicketNotFound)
}

func TestCommentService_Delete_CollapsesNotFoundAndNotOwner(t *testing.T) {
	env := setupCommentServiceTestEnv(t)
	ticket := env.createTicket(t, "Some ticket", 1)

	comment, err := env.commentService.CreateComment(CreateCommentInput{
		TicketID:       ticket.ID,
		Content:        "remark",
		AuthorID:       1,
		AuthorUsername: "alice",
	})
	require.NoError(t, err)

	// Missing comment and foreign comment are indistinguishable.
	require.ErrorIs(t, env.commentService.DeleteComment(9999, 1), ErrCommentNotFound)
	require.ErrorIs(t, env.commentService.DeleteComment(comment.ID, 2), ErrCommentNotFound)

	// The author can delete.
	require.NoError(t, env.commentService.DeleteComment(comment.ID, 1))

	comments, err := env.commentService.ListComments(ticket.ID)
	require.NoError(t, err)
	require.Empty(t, comments)
}

func TestTicketService_Delete_RemovesComments(t *testing.T) {
	env := setupCommentServiceTestEnv(t)
	ticket := env.createTicket(t, "Some ticket", 1)

	_, err := env.commentService.CreateComment(CreateCommentInput{
		TicketID:       ticket.ID,
		Content:        "remark",
		AuthorID:       1,
		AuthorUsername: "alice",
	})
	require.NoError(t, err)

	require.NoError(t, env.ticketService.DeleteTicket(ticket.ID, 1))

	var count int64
	require.NoError(t, env.db.Model(&models.Comment{}).Where("ticket_id = ?", ticket.ID).Count(&count).Error)
	require.Zero(t, count)
}
