package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storepulse/internal/cache"
	"storepulse/internal/config"
	"storepulse/internal/repository"
	"storepulse/internal/service"
	"storepulse/internal/transport/rest"
	"storepulse/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Generator config
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Model:   %s", aiConfig.Model)
	if aiConfig.IsEnabled() {
		log.Println("  API Key: configured ✓")
	} else {
		log.Println("  API Key: NOT SET (using offline generator)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database("storepulse")

	// Redis connection
	redisAddr := cfg.RedisAddr
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories and caches
	datasetRepo := repository.NewDatasetRepo(db)
	prefRepo := repository.NewPrefRepo(db)
	sessionCache := cache.NewSessionCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	generator := service.NewGeneratorService(aiConfig)
	datasetSvc := service.NewDatasetService(datasetRepo)
	if err := datasetSvc.LoadPublished(ctx); err != nil {
		log.Printf("Warning: could not load published dataset: %v", err)
	}
	chatSvc := service.NewChatService(sessionCache, generator, datasetSvc)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	datasetSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:    authSvc,
		ChatService:    chatSvc,
		DatasetService: datasetSvc,
		PrefRepo:       prefRepo,
		WSHub:          wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/sessions")
		log.Println("  POST/GET /v1/sessions/{id}/messages")
		log.Println("  GET  /v1/dataset")
		log.Println("  PUT  /v1/dataset")
		log.Println("  GET  /v1/charts/{key}")
		log.Println("  WS   /ws/dashboard")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
