package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/ticket-tracker-api/internal/dto"
	"github.com/yukikurage/ticket-tracker-api/internal/models"
)

// TestRegisterLoginCreateSearchFlow walks the whole happy path through the
// HTTP surface: register, login, create a ticket, find it by search.
func TestRegisterLoginCreateSearchFlow(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/auth/register", "", map[string]string{
		"username": "alice",
		"password": "pass123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "alice",
		"password": "pass123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	w = env.request(t, http.MethodPost, "/tickets", login.Token, map[string]any{
		"title": "Fix login bug",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var ticket dto.TicketDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ticket))
	require.Equal(t, models.TicketStatusOpen, ticket.Status)

	w = env.request(t, http.MethodGet, "/tickets?search=bug", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tickets []dto.TicketDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tickets))
	require.Len(t, tickets, 1)
	require.Equal(t, ticket.ID, tickets[0].ID)
}
