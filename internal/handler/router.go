package handler

import (
	"io"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/usersvc/pkg/requestid"
	"github.com/dmitrymomot/usersvc/pkg/token"
)

// Router assembles the service routes: public signup/login and the protected
// user routes behind the bearer-token middleware.
func Router(authSvc AuthService, users UserStorage, verifier token.Verifier, log *slog.Logger) chi.Router {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	h := &handlers{auth: authSvc, users: users, log: log}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.Post("/signup", h.signup)
	r.Post("/login", h.login)

	r.Group(func(r chi.Router) {
		r.Use(token.Middleware(verifier))
		r.Get("/users", h.listUsers)
		r.Get("/users/{id}", h.getUser)
		r.Delete("/users/{id}", h.deleteUser)
	})

	return r
}
