package handler

import (
	"net/http"

	"github.com/msomdec/account-service/internal/service"
)

// Deps are the services the routes dispatch to. LoginLimiter may be nil to
// disable login rate limiting.
type Deps struct {
	Auth         *service.AuthService
	Users        *service.UserService
	LoginLimiter Limiter
	Development  bool
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, deps Deps) {
	authHandler := NewAuthHandler(deps.Auth, deps.Development)
	userHandler := NewUserHandler(deps.Users, deps.Development)

	requireAuth := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(deps.Auth, deps.Development, h)
	}

	var login http.Handler = http.HandlerFunc(authHandler.HandleLogin)
	if deps.LoginLimiter != nil {
		login = RateLimit(deps.LoginLimiter, login)
	}

	mux.HandleFunc("GET /health", HandleHealth)
	mux.HandleFunc("GET /{$}", HandleHome)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.Handle("POST /api/auth/login", login)
	mux.Handle("GET /api/auth/me", requireAuth(authHandler.HandleMe))

	mux.Handle("GET /api/users", requireAuth(userHandler.HandleList))
	mux.HandleFunc("POST /api/users", userHandler.HandleCreate)
	mux.Handle("GET /api/users/{id}", requireAuth(userHandler.HandleGet))
	mux.Handle("PUT /api/users/{id}", requireAuth(userHandler.HandleUpdate))
	mux.Handle("DELETE /api/users/{id}", requireAuth(userHandler.HandleDelete))

	mux.HandleFunc("/", HandleNotFound)
}
