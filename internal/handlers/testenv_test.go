package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/ticket-tracker-api/internal/auth"
	"github.com/yukikurage/ticket-tracker-api/internal/middleware"
	"github.com/yukikurage/ticket-tracker-api/internal/models"
	"github.com/yukikurage/ticket-tracker-api/internal/repository"
	"github.com/yukikurage/ticket-tracker-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db             *gorm.DB
	router         *gin.Engine
	tokens         *auth.TokenService
	authService    *services.AuthService
	ticketService  *services.TicketService
	commentService *services.CommentService
}

// newTestEnv wires the full route table against an in-memory database.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

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

	userRepo := repository.NewUserRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	tokens := auth.NewTokenService("test-secret", 24)
	authService := services.NewAuthService(userRepo, 4) // low cost to keep tests fast
	ticketService := services.NewTicketService(ticketRepo)
	commentService := services.NewCommentService(commentRepo, ticketRepo)

	authHandler := NewAuthHandler(authService, tokens)
	ticketHandler := NewTicketHandler(ticketService)
	commentHandler := NewCommentHandler(commentService)

	r := gin.New()

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", middleware.RequireAuth(tokens), authHandler.GetCurrentUser)
	}

	tickets := r.Group("/tickets")
	tickets.Use(middleware.RequireAuth(tokens))
	{
		tickets.GET("", ticketHandler.ListTickets)
		tickets.POST("", ticketHandler.CreateTicket)
		tickets.GET("/:id", ticketHandler.GetTicket)
		tickets.PUT("/:id", ticketHandler.UpdateTicket)
		tickets.DELETE("/:id", ticketHandler.DeleteTicket)
	}

	comments := r.Group("/comments")
	comments.Use(middleware.RequireAuth(tokens))
	{
		comments.GET("/ticket/:ticketId", commentHandler.ListComments)
		comments.POST("", commentHandler.CreateComment)
		comments.DELETE("/:id", commentHandler.DeleteComment)
	}

	return &testEnv{
		db:             db,
		router:         r,
		tokens:         tokens,
		authService:    authService,
		ticketService:  ticketService,
		commentService: commentService,
	}
}

// registerUser creates a user directly through the service and returns it
// with a valid session token.
func (env *testEnv) registerUser(t *testing.T, username, password string) (*models.User, string) {
	t.Helper()

	user, err := env.authService.Register(services.RegisterInput{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)

	token, err := env.tokens.Generate(user.ID, user.Username)
	require.NoError(t, err)

	return user, token
}

// request performs an HTTP request against the test router. A non-empty
// token is attached as a bearer credential.
func (env *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// jsonNumber renders an id for use in a URL path or query string.
func jsonNumber(id uint64) string {
	return strconv.FormatUint(id, 10)
}
