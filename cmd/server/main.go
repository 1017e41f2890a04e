package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"amora-backend/internal/database"
	"amora-backend/internal/handlers"
	customMiddleware "amora-backend/internal/middleware"
	"amora-backend/internal/payments"
	"amora-backend/internal/posedetect"
	"amora-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env (ignore error in production — env vars set directly)
	_ = godotenv.Load()

	// Required env vars
	mongoURI := getEnv("MONGODB_URI", "")
	dbName := getEnv("DB_NAME", "amora")
	jwtSecret := getEnv("JWT_SECRET", "")
	port := getEnv("PORT", "8080")
	corsOrigins := strings.Split(getEnv("CORS_ORIGINS", "*"), ",")

	if mongoURI == "" {
		log.Fatal("❌ MONGODB_URI is required")
	}
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET is required")
	}

	// Connect to MongoDB
	if err := database.Connect(mongoURI, dbName); err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.Close(ctx); err != nil {
			log.Printf("⚠️  Warning: failed to close MongoDB connection: %v", err)
		}
	}()

	// Initialize repositories
	userRepo := repository.NewUserRepo()
	profileRepo := repository.NewProfileRepo()
	interactionRepo := repository.NewInteractionRepo()
	matchRepo := repository.NewMatchRepo()
	messageRepo := repository.NewMessageRepo()
	waitlistRepo := repository.NewWaitlistRepo()
	paymentRepo := repository.NewPaymentRepo()

	// Ensure indexes
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	type indexed interface {
		EnsureIndexes(ctx context.Context) error
	}
	for name, repo := range map[string]indexed{
		"user":        userRepo,
		"profile":     profileRepo,
		"interaction": interactionRepo,
		"match":       matchRepo,
		"message":     messageRepo,
		"waitlist":    waitlistRepo,
		"payment":     paymentRepo,
	} {
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Printf("⚠️  Warning: failed to create %s indexes: %v", name, err)
		}
	}

	// Initialize mocked collaborators
	poseVerifier := posedetect.NewMockVerifier()
	paymentProvider := payments.NewMockStripe()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, jwtSecret)
	profileHandler := handlers.NewProfileHandler(profileRepo, userRepo, interactionRepo, poseVerifier)
	matchHandler := handlers.NewMatchHandler(profileRepo, interactionRepo, matchRepo)
	messageHandler := handlers.NewMessageHandler(matchRepo, messageRepo)
	analyticsHandler := handlers.NewAnalyticsHandler(userRepo, profileRepo, interactionRepo, matchRepo, messageRepo)
	waitlistHandler := handlers.NewWaitlistHandler(waitlistRepo)
	poseHandler := handlers.NewPoseDetectionHandler(poseVerifier)
	paymentHandler := handlers.NewPaymentHandler(paymentProvider, paymentRepo)

	// Setup chi router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"message":"Amora Dating API","version":"1.0"}`))
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"healthy","database":"connected"}`))
		})

		// Public routes (no auth required)
		r.Post("/auth/signup", authHandler.Signup)
		r.Post("/auth/login", authHandler.Login)

		r.Post("/waitlist/join", waitlistHandler.Join)
		r.Get("/waitlist/stats", waitlistHandler.Stats)
		r.Get("/waitlist/stats/{email}", waitlistHandler.StatsByEmail)
		r.Post("/waitlist/verify-referral", waitlistHandler.VerifyReferral)

		// Mocked external services
		r.Post("/pose-detection/verify", poseHandler.Verify)
		r.Post("/subscription/create", paymentHandler.CreateSubscription)
		r.Post("/powerup/purchase", paymentHandler.PurchasePowerUp)
		r.Post("/stripe/webhook", paymentHandler.StripeWebhook)

		// Protected routes (JWT required)
		r.Group(func(r chi.Router) {
			r.Use(customMiddleware.JWTAuth(jwtSecret))

			r.Get("/auth/me", authHandler.Me)

			r.Post("/profile/create", profileHandler.Create)
			r.Get("/profile/me", profileHandler.Me)
			r.Put("/profile/update", profileHandler.Update)
			r.Post("/profile/upload-photo", profileHandler.UploadPhoto)
			r.Get("/profile/{user_id}", profileHandler.GetByUserID)

			r.Get("/matches/potential", matchHandler.Potential)
			r.Post("/matches/swipe", matchHandler.Swipe)
			r.Get("/matches/my-matches", matchHandler.MyMatches)

			r.Post("/messages/send", messageHandler.Send)
			r.Get("/messages/{match_id}", messageHandler.List)

			r.Get("/analytics/my-stats", analyticsHandler.MyStats)
			r.Get("/analytics/admin", analyticsHandler.Admin)
		})
	})

	// Start server
	log.Printf("🚀 Amora backend starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
