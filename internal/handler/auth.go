package handler

import (
	"net/http"

	"github.com/msomdec/account-service/internal/service"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth *service.AuthService
	errs errorWriter
}

// NewAuthHandler creates a new AuthHandler. In development mode internal
// error details are included in 500 responses.
func NewAuthHandler(auth *service.AuthService, development bool) *AuthHandler {
	return &AuthHandler{auth: auth, errs: errorWriter{development: development}}
}

// HandleRegister creates an account and returns it with a token.
// POST /api/auth/register
// Request:  {"name":"...","email":"...","password":"..."}
// Response: 201 {"status":"success","data":{"user":{...},"token":"..."}}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeRequest(w, r, h.errs, &req) {
		return
	}

	res, err := h.auth.Register(r.Context(), req.input())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "User registered successfully", toAuthDTO(res))
}

// HandleLogin exchanges credentials for a token.
// POST /api/auth/login
// Request:  {"email":"...","password":"..."}
// Response: 200 {"status":"success","data":{"user":{...},"token":"..."}}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeRequest(w, r, h.errs, &req) {
		return
	}

	res, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Login successful", toAuthDTO(res))
}

// HandleMe returns the currently authenticated user.
// GET /api/auth/me
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication token is required")
		return
	}

	user, err := h.auth.CurrentUser(r.Context(), id)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "User retrieved successfully", map[string]any{
		"user": toUserDTO(user),
	})
}
