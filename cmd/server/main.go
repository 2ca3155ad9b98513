package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/exam-ace/backend/internal/analytics"
	"github.com/exam-ace/backend/internal/auth"
	"github.com/exam-ace/backend/internal/config"
	"github.com/exam-ace/backend/internal/database"
	"github.com/exam-ace/backend/internal/llm"
	"github.com/exam-ace/backend/internal/middleware"
	"github.com/exam-ace/backend/internal/quiz"
	"github.com/exam-ace/backend/internal/ratelimit"
	"github.com/exam-ace/backend/internal/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	auth.JWTSecret = []byte(cfg.JWTSecret)

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis backs the rate limiter. An unreachable Redis is not fatal:
	// the limiter fails open and logs the degradation per admission.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()
	{
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("WARN: redis unreachable at %s (%v), rate limiting degraded to fail-open", cfg.RedisAddr, err)
		}
		cancel()
	}

	// LLM provider — unknown name fails here, not on first request.
	provider, err := llm.NewProvider(cfg)
	if err != nil {
		log.Fatalf("Failed to configure LLM provider: %v", err)
	}
	log.Printf("Quiz generation using LLM provider: %s", cfg.LLMProvider)

	limiter := ratelimit.New(redisClient, cfg.QuizRateLimit, time.Hour)

	// Initialize handlers
	authHandler := auth.NewHandler(db)
	quizHandler := quiz.NewHandler(quiz.NewService(quiz.NewStore(db), provider), limiter)
	settingsHandler := settings.NewHandler(db)
	analyticsHandler := analytics.NewHandler(db)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")
	protected.HandleFunc("/quiz/generate", quizHandler.Generate).Methods("POST")
	protected.HandleFunc("/quiz/submit", quizHandler.Submit).Methods("POST")
	protected.HandleFunc("/quiz/history", quizHandler.History).Methods("GET")
	protected.HandleFunc("/quiz/{id}", quizHandler.GetAttempt).Methods("GET")
	protected.HandleFunc("/settings", settingsHandler.Get).Methods("GET")
	protected.HandleFunc("/settings", settingsHandler.Update).Methods("PUT")
	protected.HandleFunc("/analytics/performance", analyticsHandler.Performance).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   splitOrigins(cfg.CORSOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	log.Printf("Server starting on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}
