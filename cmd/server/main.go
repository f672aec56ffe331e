package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/yukikurage/ticket-tracker-api/docs"
	"github.com/yukikurage/ticket-tracker-api/internal/auth"
	"github.com/yukikurage/ticket-tracker-api/internal/config"
	"github.com/yukikurage/ticket-tracker-api/internal/database"
	"github.com/yukikurage/ticket-tracker-api/internal/handlers"
	"github.com/yukikurage/ticket-tracker-api/internal/logger"
	"github.com/yukikurage/ticket-tracker-api/internal/middleware"
	"github.com/yukikurage/ticket-tracker-api/internal/repository"
	"github.com/yukikurage/ticket-tracker-api/internal/services"
)

//	@title			Ticket Tracker API
//	@version		1.0
//	@description	Multi-user ticket tracking REST API.
//	@BasePath		/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	logger.Init(cfg.Logger)
	gin.SetMode(cfg.Server.Mode)

	if err := database.Connect(cfg); err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	if err := database.Migrate(); err != nil {
		logger.Fatal("failed to run migrations", "error", err)
	}

	db := database.GetDB()

	userRepo := repository.NewUserRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLHours)
	authService := services.NewAuthService(userRepo, cfg.Auth.BcryptCost)
	ticketService := services.NewTicketService(ticketRepo)
	commentService := services.NewCommentService(commentRepo, ticketRepo)

	authHandler := handlers.NewAuthHandler(authService, tokens)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	commentHandler := handlers.NewCommentHandler(commentService)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Ticket Tracker API is running",
		})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes (public, except /me)
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", middleware.RequireAuth(tokens), authHandler.GetCurrentUser)
	}

	// Ticket routes (protected)
	tickets := r.Group("/tickets")
	tickets.Use(middleware.RequireAuth(tokens))
	{
		tickets.GET("", ticketHandler.ListTickets)
		tickets.POST("", ticketHandler.CreateTicket)
		tickets.GET("/:id", ticketHandler.GetTicket)
		tickets.PUT("/:id", ticketHandler.UpdateTicket)
		tickets.DELETE("/:id", ticketHandler.DeleteTicket)
	}

	// Comment routes (protected)
	comments := r.Group("/comments")
	comments.Use(middleware.RequireAuth(tokens))
	{
		comments.GET("/ticket/:ticketId", commentHandler.ListComments)
		comments.POST("", commentHandler.CreateComment)
		comments.DELETE("/:id", commentHandler.DeleteComment)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatal("failed to start server", "error", err)
	}
}
