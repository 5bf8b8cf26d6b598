package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"framequiz/internal/service"
	"framequiz/internal/transport/rest/handler"
	"framequiz/internal/transport/rest/middleware"
	"framequiz/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	QuizService        *service.QuizService
	LeaderboardService *service.LeaderboardService
	WSHub              *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	quizHandler := handler.NewQuizHandler(c.QuizService)
	lbHandler := handler.NewLeaderboardHandler(c.LeaderboardService)
	wsHandler := ws.NewHandler(c.WSHub)

	r.Use(middleware.CORS)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/quiz/generate", quizHandler.Generate).Methods("POST", "OPTIONS")
	api.HandleFunc("/quiz/start", quizHandler.Start).Methods("POST", "OPTIONS")
	api.HandleFunc("/quiz/submit", quizHandler.Submit).Methods("POST", "OPTIONS")

	api.HandleFunc("/leaderboard", lbHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/users/{userId}/rank", lbHandler.UserRank).Methods("GET", "OPTIONS")
	api.HandleFunc("/users/{userId}/sessions", lbHandler.UserSessions).Methods("GET", "OPTIONS")

	// WebSocket leaderboard feed
	api.HandleFunc("/ws/leaderboard", wsHandler.LeaderboardWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}
