package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/storefront/internal/model"
)

// AuthService defines registration, sign-in and sign-out operations.
type AuthService interface {
	SignUpForm(st *model.SessionState) model.Result
	SignUp(ctx context.Context, st *model.SessionState, form model.SignUpForm) (model.Result, error)
	SignInForm(st *model.SessionState) model.Result
	SignIn(ctx context.Context, st *model.SessionState, form model.SignInForm) (model.Result, error)
	SignOut(ctx context.Context, st *model.SessionState) (model.Result, error)
}

// Auth handles the account endpoints.
type Auth struct {
	authService AuthService
	*Responder
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, responder *Responder) *Auth {
	return &Auth{
		authService: authService,
		Responder:   responder,
	}
}

func (h *Auth) SignUpForm(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.authService.SignUpForm(h.state(r)), nil)
}

func (h *Auth) SignUp(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		h.respond(w, r, model.Result{}, err)
		return
	}

	h.logger.Debug("Auth handler: processing sign up request",
		"email", r.PostForm.Get("email"))

	res, err := h.authService.SignUp(r.Context(), h.state(r), model.SignUpForm{
		Name:     r.PostForm.Get("name"),
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	})
	h.respond(w, r, res, err)
}

func (h *Auth) SignInForm(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.authService.SignInForm(h.state(r)), nil)
}

func (h *Auth) SignIn(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		h.respond(w, r, model.Result{}, err)
		return
	}

	h.logger.Debug("Auth handler: processing sign in request",
		"email", r.PostForm.Get("email"))

	res, err := h.authService.SignIn(r.Context(), h.state(r), model.SignInForm{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	})
	h.respond(w, r, res, err)
}

func (h *Auth) SignOut(w http.ResponseWriter, r *http.Request) {
	res, err := h.authService.SignOut(r.Context(), h.state(r))
	h.respond(w, r, res, err)
}
