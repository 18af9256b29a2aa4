package rest

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"

	"ailiteracy/internal/config"
	"ailiteracy/internal/service"
	"ailiteracy/internal/transport/rest/handler"
	"ailiteracy/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	Config         *config.Config
	AuthService    *service.AuthService
	SessionService *service.SessionService
	PersistService *service.PersistService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	sessionHandler := handler.NewSessionHandler(c.SessionService)
	reportHandler := handler.NewReportHandler(c.SessionService, c.PersistService)
	configHandler := handler.NewConfigHandler(c.Config)

	accessMW := middleware.NewAccessMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.Config.CORSOrigins))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/verify", authHandler.Verify).Methods("POST", "OPTIONS")
	v1.HandleFunc("/config", configHandler.Get).Methods("GET", "OPTIONS")

	// Session routes (shared-password token when configured)
	sessionRoutes := v1.NewRoute().Subrouter()
	sessionRoutes.Use(accessMW.RequireAccess)

	sessionRoutes.HandleFunc("/sessions", sessionHandler.Start).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{sessionId}/persona", sessionHandler.SetPersona).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{sessionId}/chat", sessionHandler.Chat).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/reports/{sessionId}", reportHandler.Get).Methods("GET", "OPTIONS")

	// Avatar frontend, when bundled alongside the binary
	if staticDir := c.Config.StaticDir; staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			fs := http.FileServer(http.Dir(staticDir))
			r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", fs))
			r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
				http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			}).Methods("GET")
		}
	}

	return r
}

func corsMiddleware(allowedOrigins []string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			allowed := false
			for _, o := range allowedOrigins {
				if o == "*" || o == origin {
					allowed = true
					break
				}
			}

			if allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				// Credentials only for explicit origins; a wildcard-echoed
				// origin with credentials enables CSRF.
				for _, o := range allowedOrigins {
					if o != "*" && o == origin {
						w.Header().Set("Access-Control-Allow-Credentials", "true")
						break
					}
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
