package handler

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/msomdec/account-service/internal/view"
)

// HandleHome renders the landing page.
func HandleHome(w http.ResponseWriter, r *http.Request) {
	templ.Handler(view.HomePage(apiEndpoints)).ServeHTTP(w, r)
}

var apiEndpoints = []view.Endpoint{
	{Method: "GET", Path: "/health", Description: "Liveness check"},
	{Method: "POST", Path: "/api/auth/register", Description: "Create an account and receive a token"},
	{Method: "POST", Path: "/api/auth/login", Description: "Exchange credentials for a token"},
	{Method: "GET", Path: "/api/auth/me", Description: "Current user", Auth: true},
	{Method: "GET", Path: "/api/users", Description: "List users", Auth: true},
	{Method: "POST", Path: "/api/users", Description: "Create a user"},
	{Method: "GET", Path: "/api/users/{id}", Description: "Get a user", Auth: true},
	{Method: "PUT", Path: "/api/users/{id}", Description: "Update a user", Auth: true},
	{Method: "DELETE", Path: "/api/users/{id}", Description: "Delete a user", Auth: true},
}
