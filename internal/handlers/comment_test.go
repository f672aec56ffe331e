package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/ticket-tracker-api/internal/dto"
	"github.com/yukikurage/ticket-tracker-api/internal/services"
)

func TestCommentHandler_ListComments_UnknownTicket(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerUser(t, "alice", "pass123")

	w := env.request(t, http.MethodGet, "/comments/ticket/9999", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentHandler_CreateAndList(t *testing.T) {
	env := newTestEnv(t)
	alice, aliceToken := env.registerUser(t, "alice", "pass123")
	_, bobToken := env.registerUser(t, "bob", "pass123")

	ticket, err := env.ticketService.CreateTicket(services.CreateTicketInput{
		Title:     "Discussed ticket",
		CreatorID: alice.ID,
	})
	require.NoError(t, err)

	w := env.request(t, http.MethodPost, "/comments", aliceToken, map[string]any{
		"ticket_id": ticket.ID,
		"content":   "first",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.CommentDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "first", created.Content)
	require.Equal(t, alice.ID, created.AuthorID)
	require.Equal(t, "alice", created.AuthorUsername)

	// Any authenticated user can comment, not just the ticket creator.
	w = env.request(t, http.MethodPost, "/comments", bobToken, map[string]any{
		"ticket_id": ticket.ID,
		"content":   "second",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodGet, "/comments/ticket/"+jsonNumber(ticket.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var comments []dto.CommentDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	require.Len(t, comments, 2)
	require.Equal(t, "first", comments[0].Content)
	require.Equal(t, "second", comments[1].Content)
	require.Equal(t, "bob", comments[1].AuthorUsername)
}

func TestCommentHandler_Create_Invalid(t *testing.T) {
	env := newTestEnv(t)
	alice, token := env.registerUser(t, "alice", "pass123")

	ticket, err := env.ticketService.CreateTicket(services.CreateTicketInput{
		Title:     "Discussed ticket",
		CreatorID: alice.ID,
	})
	require.NoError(t, err)

	// Blank content after trim.
	w := env.request(t, http.MethodPost, "/comments", token, map[string]any{
		"ticket_id": ticket.ID,
		"content":   "   ",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown parent ticket.
	w = env.request(t, http.MethodPost, "/comments", token, map[string]any{
		"ticket_id": 9999,
		"content":   "orphaned",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentHandler_Delete_AuthorOnly(t *testing.T) {
	env := newTestEnv(t)
	alice, aliceToken := env.registerUser(t, "alice", "pass123")
	_, bobToken := env.registerUser(t, "bob", "pass123")

	ticket, err := env.ticketService.CreateTicket(services.CreateTicketInput{
		Title:     "Discussed ticket",
		CreatorID: alice.ID,
	})
	require.NoError(t, err)

	comment, err := env.commentService.CreateComment(services.CreateCommentInput{
		TicketID:       ticket.ID,
		Content:        "alice's remark",
		AuthorID:       alice.ID,
		AuthorUsername: alice.Username,
	})
	require.NoError(t, err)

	// A non-author gets the same 404 as a missing comment.
	w := env.request(t, http.MethodDelete, "/comments/"+jsonNumber(comment.ID), bobToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// The author succeeds and the comment disappears from the list.
	w = env.request(t, http.MethodDelete, "/comments/"+jsonNumber(comment.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/comments/ticket/"+jsonNumber(ticket.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var comments []dto.CommentDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	require.Empty(t, comments)
}
