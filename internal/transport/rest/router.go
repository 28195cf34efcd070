package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"storepulse/internal/repository"
	"storepulse/internal/service"
	"storepulse/internal/transport/rest/handler"
	"storepulse/internal/transport/rest/middleware"
	"storepulse/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService    *service.AuthService
	ChatService    *service.ChatService
	DatasetService *service.DatasetService
	PrefRepo       repository.PrefRepo
	WSHub          *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	chatHandler := handler.NewChatHandler(c.ChatService)
	datasetHandler := handler.NewDatasetHandler(c.DatasetService, c.PrefRepo)
	chartHandler := handler.NewChartHandler(c.DatasetService)
	wsHandler := ws.NewHandler(c.WSHub)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	v1.HandleFunc("/sessions", chatHandler.CreateSession).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/messages", chatHandler.SendMessage).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/messages", chatHandler.GetMessages).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/messages/{index}/plain", chatHandler.GetPlainMessage).Methods("GET", "OPTIONS")

	v1.HandleFunc("/dataset", datasetHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/charts/{key}", chartHandler.Get).Methods("GET", "OPTIONS")

	v1.HandleFunc("/preferences/{owner}", datasetHandler.GetPreference).Methods("GET", "OPTIONS")
	v1.HandleFunc("/preferences/{owner}", datasetHandler.SetPreference).Methods("PUT", "OPTIONS")

	// WebSocket route (public, read-only events)
	r.HandleFunc("/ws/dashboard", wsHandler.DashboardWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Host routes (require host auth)
	hostRoutes := v1.NewRoute().Subrouter()
	hostRoutes.Use(authMW.RequireHost)

	hostRoutes.HandleFunc("/dataset", datasetHandler.Replace).Methods("PUT", "OPTIONS")
	hostRoutes.HandleFunc("/dataset/reset", datasetHandler.Reset).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
