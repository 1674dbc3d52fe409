package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/events"
	"github.com/zizouhuweidi/trivia/internal/handler"
	"github.com/zizouhuweidi/trivia/internal/repository/memory"
	"github.com/zizouhuweidi/trivia/internal/repository/postgres"
	"github.com/zizouhuweidi/trivia/internal/service"
	"github.com/zizouhuweidi/trivia/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize repositories
	var (
		categoryRepo domain.CategoryRepository
		questionRepo domain.QuestionRepository
	)
	switch cfg.Store {
	case config.StoreMemory:
		store := memory.NewSeededStore()
		categoryRepo = store.Categories()
		questionRepo = store.Questions()
		log.Println("Using in-memory store")

	default:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		if err := database.Migrate(ctx, pool); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		if err := database.SeedCategories(ctx, pool); err != nil {
			log.Fatalf("Failed to seed categories: %v", err)
		}

		categoryRepo = postgres.NewCategoryRepository(pool)
		questionRepo = postgres.NewQuestionRepository(pool)
	}

	// Initialize websocket hub
	hub := websocket.NewHub()
	go hub.Run(ctx)

	// Question events fan out through Redis when configured, otherwise
	// straight to this instance's clients
	var publisher domain.EventPublisher = hub
	if cfg.Redis.Enabled() {
		redisClient, err := database.ConnectRedis(cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()

		redisPublisher := events.NewRedisPublisher(redisClient)
		sub := redisPublisher.Subscribe(ctx)
		defer sub.Close()
		go events.Relay(ctx, sub, hub.Broadcast)

		publisher = redisPublisher
	}

	// Initialize services
	triviaService := service.NewTriviaService(categoryRepo, questionRepo, publisher)

	// Initialize handlers
	triviaHandler := handler.NewTriviaHandler(triviaService)
	wsHandler := handler.NewWebSocketHandler(hub)

	e := handler.NewServer(triviaHandler, wsHandler)

	// Start server
	go func() {
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down the server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
}
