package handler

import (
	"net/http"

	"github.com/msomdec/account-service/internal/service"
)

// UserHandler serves CRUD on user records.
type UserHandler struct {
	users *service.UserService
	errs  errorWriter
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService, development bool) *UserHandler {
	return &UserHandler{users: users, errs: errorWriter{development: development}}
}

// HandleList GET /api/users
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Users retrieved successfully", map[string]any{
		"users": toUserDTOs(users),
		"count": len(users),
	})
}

// HandleGet GET /api/users/{id}
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "User retrieved successfully", map[string]any{
		"user": toUserDTO(user),
	})
}

// HandleCreate POST /api/users
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeRequest(w, r, h.errs, &req) {
		return
	}

	user, err := h.users.Create(r.Context(), req.input())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "User created successfully", map[string]any{
		"user": toUserDTO(user),
	})
}

// HandleUpdate PUT /api/users/{id}
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if !decodeRequest(w, r, h.errs, &req) {
		return
	}

	user, err := h.users.Update(r.Context(), r.PathValue("id"), req.input())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "User updated successfully", map[string]any{
		"user": toUserDTO(user),
	})
}

// HandleDelete DELETE /api/users/{id}
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "User deleted successfully", nil)
}
