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

	"framequiz/internal/cache"
	"framequiz/internal/config"
	"framequiz/internal/repository"
	"framequiz/internal/service"
	"framequiz/internal/transport/rest"
	"framequiz/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

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

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	redisAddr := cfg.RedisAddr
	// Remove redis:// prefix if present
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

	// Initialize repositories
	sessionRepo := repository.NewSessionRepo(db)
	questionRepo := repository.NewQuestionRepo(db)

	if err := sessionRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create session indexes:", err)
	}

	// Initialize caches
	lbCache := cache.NewLeaderboardCache(rdb, 30*time.Second)

	// Initialize services
	lbSvc := service.NewLeaderboardService(sessionRepo, lbCache, nil)
	quizSvc := service.NewQuizService(sessionRepo, questionRepo, lbSvc)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	quizSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		QuizService:        quizSvc,
		LeaderboardService: lbSvc,
		WSHub:              wsHub,
	}

	router := rest.NewRouter(container)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.HTTPPort
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", port)
		log.Println("Endpoints:")
		log.Println("  POST /api/quiz/generate")
		log.Println("  POST /api/quiz/start")
		log.Println("  POST /api/quiz/submit")
		log.Println("  GET  /api/leaderboard")
		log.Println("  GET  /api/users/{userId}/rank")
		log.Println("  GET  /api/users/{userId}/sessions")
		log.Println("  WS   /api/ws/leaderboard")

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
