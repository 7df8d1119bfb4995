package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Cladkoewka/ToDoListAPI/internal/config"
	"github.com/Cladkoewka/ToDoListAPI/internal/event"
	"github.com/Cladkoewka/ToDoListAPI/internal/handler"
	"github.com/Cladkoewka/ToDoListAPI/internal/middleware"
	"github.com/Cladkoewka/ToDoListAPI/internal/repository"
	"github.com/Cladkoewka/ToDoListAPI/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set up logger
	logger, err := createLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	db, err := repository.Connect(cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize Kafka producer (if enabled)
	var producer *event.Producer
	var publisher service.EventPublisher
	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) > 0 {
		producer = event.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.ClientID, logger)
		publisher = producer
		logger.Info("Initialized Kafka producer", zap.Strings("brokers", cfg.Kafka.Brokers))
	}

	// Create repositories
	tagRepo := repository.NewTagRepository(db, logger)
	taskRepo := repository.NewTaskRepository(db, logger)
	userRepo := repository.NewUserRepository(db, logger)

	// Create services
	tagService := service.NewTagService(tagRepo, logger)
	taskService := service.NewTaskService(taskRepo, tagRepo, publisher, cfg.Kafka.Topics["tasks"], logger)
	userService := service.NewUserService(userRepo, publisher, cfg.Kafka.Topics["users"], logger)

	// Create HTTP server
	router := setupRouter(tagService, taskService, userService, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create a deadline for server shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Close Kafka producer if initialized
	if producer != nil {
		producer.Close()
	}

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited properly")
}

func createLogger(level string) (*zap.Logger, error) {
	// Parse log level
	var zapLevel zap.AtomicLevel
	switch level {
	case "debug":
		zapLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	// Create logger config
	config := zap.Config{
		Level:            zapLevel,
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}

func setupRouter(
	tagService *service.TagService,
	taskService *service.TaskService,
	userService *service.UserService,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.New()

	// Use middlewares
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	api := router.Group("/api")
	{
		tags := api.Group("/tags")
		{
			tagHandler := handler.NewTagHandler(tagService, logger)

			tags.GET("", tagHandler.GetAllTags)
			tags.GET("/:id", tagHandler.GetTagByID)
			tags.POST("", tagHandler.CreateTag)
			tags.PUT("/:id", tagHandler.UpdateTag)
			tags.DELETE("/:id", tagHandler.DeleteTag)
		}

		tasks := api.Group("/tasks")
		{
			taskHandler := handler.NewTaskHandler(taskService, logger)

			tasks.GET("", taskHandler.GetAllTasks)
			tasks.GET("/by-tags", taskHandler.GetTasksByTags)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		users := api.Group("/users")
		{
			userHandler := handler.NewUserHandler(userService, logger)

			users.GET("", userHandler.GetAllUsers)
			users.GET("/email/:email", userHandler.GetUserByEmail)
			users.GET("/:id", userHandler.GetUserByID)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	return router
}
