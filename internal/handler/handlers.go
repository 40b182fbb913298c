package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/usersvc/internal/auth"
	"github.com/dmitrymomot/usersvc/internal/user"
	"github.com/dmitrymomot/usersvc/pkg/logger"
	"github.com/dmitrymomot/usersvc/pkg/token"
)

// AuthService is the signup/login surface; *auth.Service satisfies it.
type AuthService interface {
	Register(ctx context.Context, in auth.RegisterInput) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// UserStorage is the read/delete surface for protected routes;
// *user.Repository satisfies it.
type UserStorage interface {
	GetByID(ctx context.Context, id int64) (user.User, error)
	List(ctx context.Context) ([]user.User, error)
	Delete(ctx context.Context, id int64) error
}

type handlers struct {
	auth  AuthService
	users UserStorage
	log   *slog.Logger
}

type signupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// signup handles POST /signup: create the account and return a bearer token.
func (h *handlers) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	tok, err := h.auth.Register(r.Context(), auth.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			respondError(w, http.StatusConflict, "email already registered")
			return
		}
		h.serverError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, tokenResponse{Token: tok})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login handles POST /login: verify credentials and return a bearer token.
// Every credential failure gets the same response.
func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tok, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.serverError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, tokenResponse{Token: tok})
}

// listUsers handles GET /users.
func (h *handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	profiles := make([]user.Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Profile())
	}
	respondJSON(w, http.StatusOK, profiles)
}

// getUser handles GET /users/{id}. The literal "me" resolves to the caller's
// own identity from the request context.
func (h *handlers) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resolveUserID(w, r)
	if !ok {
		return
	}

	u, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		h.serverError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, u.Profile())
}

// deleteUser handles DELETE /users/{id}. Only self-deletion via the "me"
// alias is allowed.
func (h *handlers) deleteUser(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "id") != "me" {
		respondError(w, http.StatusForbidden, "cannot delete another user")
		return
	}

	identity, ok := token.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.users.Delete(r.Context(), identity.ID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		h.serverError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// resolveUserID parses the {id} route parameter, resolving "me" to the
// authenticated identity. On failure it writes the response itself.
func (h *handlers) resolveUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	param := chi.URLParam(r, "id")
	if param == "me" {
		identity, ok := token.IdentityFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return 0, false
		}
		return identity.ID, true
	}

	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	return id, true
}

// serverError logs the real cause for operators and returns a generic body
// to the caller.
func (h *handlers) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "request failed",
		logger.Error(err),
		slog.String("path", r.URL.Path),
		logger.Component("handler"),
	)
	respondError(w, http.StatusInternalServerError, "internal server error")
}
