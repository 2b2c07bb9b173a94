package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pablotzeliks/todolist-api/internal/config"
	"github.com/pablotzeliks/todolist-api/internal/database"
	"github.com/pablotzeliks/todolist-api/internal/handlers"
	"github.com/pablotzeliks/todolist-api/internal/middleware"
	"github.com/pablotzeliks/todolist-api/internal/repository"
	"github.com/pablotzeliks/todolist-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Fix the process clock to a single zone; all date validation uses it
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("Invalid timezone %q: %v", cfg.Timezone, err)
	}
	time.Local = loc

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(database.GetDB()); err != nil {
			log.Fatalf("Failed to add indexes: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.GetDB())
	taskRepo := repository.NewTaskRepository(database.GetDB())

	// Initialize services
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	taskService := services.NewTaskService(taskRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Todolist API is running",
		})
	})

	// User routes (public)
	users := r.Group("/users")
	{
		users.POST("/create", userHandler.Create)
	}

	// Task routes (Basic Auth)
	tasks := r.Group("/tasks")
	tasks.Use(middleware.RequireBasicAuth(authService))
	{
		tasks.POST("/create", taskHandler.Create)
		tasks.GET("/list", taskHandler.List)
		tasks.PUT("/update/:id", taskHandler.Update)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
