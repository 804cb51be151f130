package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
	"github.com/dtroode/storefront/internal/validate"
)

// Auth handles registration, sign-in and sign-out.
type Auth struct {
	userStore    model.UserStore
	productStore model.ProductStore
	hasher       model.PasswordHasher
	rules        validate.Rules
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	productStore model.ProductStore,
	hasher model.PasswordHasher,
	rules validate.Rules,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		productStore: productStore,
		hasher:       hasher,
		rules:        rules,
		logger:       logger,
	}
}

// SignUpForm renders the empty registration form.
func (a *Auth) SignUpForm(st *model.SessionState) model.Result {
	if st.IsAuthenticated() {
		return model.Redirect(model.RouteProducts)
	}
	return model.Render(model.ViewSignUp, model.FormPage{Form: model.SignUpForm{}})
}

// SignUp registers the user and signs the session in. Invalid input and
// taken fields re-render the form with the error.
func (a *Auth) SignUp(ctx context.Context, st *model.SessionState, form model.SignUpForm) (model.Result, error) {
	if st.IsAuthenticated() {
		return model.Redirect(model.RouteProducts), nil
	}

	page := model.Render(model.ViewSignUp, model.FormPage{Form: model.SignUpForm{Name: form.Name, Email: form.Email}})

	user, err := a.Register(ctx, form)
	if errors.Is(err, model.ErrValidation) || errors.Is(err, model.ErrConflict) {
		return page.WithError(err), nil
	}
	if err != nil {
		return model.Result{}, err
	}

	st.SignIn(user.Email)

	return model.Redirect(model.RouteProducts), nil
}

// Register validates the form, hashes the password and stores the user.
func (a *Auth) Register(ctx context.Context, form model.SignUpForm) (model.User, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", form.Email)

	if err := a.rules.SignUp(form); err != nil {
		a.logger.Info("Auth service: registration form rejected",
			"email", form.Email,
			"error", err.Error())
		return model.User{}, err
	}

	digest, err := a.hasher.Hash(form.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", form.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Name:           form.Name,
		Email:          form.Email,
		PasswordDigest: digest,
	})
	if errors.Is(err, model.ErrConflict) {
		a.logger.Info("Auth service: user already exists",
			"email", form.Email,
			"error", err.Error())
		return model.User{}, err
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", form.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"user_id", user.ID,
		"email", user.Email)

	return user, nil
}

// SignInForm renders the empty login form.
func (a *Auth) SignInForm(st *model.SessionState) model.Result {
	if st.IsAuthenticated() {
		return model.Redirect(model.RouteProducts)
	}
	return model.Render(model.ViewSignIn, model.FormPage{Form: model.SignInForm{}})
}

// SignIn checks the credentials and signs the session in. An unknown email
// and a wrong password produce the same error.
func (a *Auth) SignIn(ctx context.Context, st *model.SessionState, form model.SignInForm) (model.Result, error) {
	if st.IsAuthenticated() {
		return model.Redirect(model.RouteProducts), nil
	}

	a.logger.Debug("Auth service: starting user login",
		"email", form.Email)

	page := model.Render(model.ViewSignIn, model.FormPage{Form: model.SignInForm{Email: form.Email}})

	if err := a.rules.SignIn(form); err != nil {
		return page.WithError(err), nil
	}

	user, err := a.userStore.GetByEmail(ctx, form.Email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login for unknown email",
			"email", form.Email)
		return page.WithError(model.NewErrUnauthorized()), nil
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", form.Email,
			"error", err.Error())
		return model.Result{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(form.Password, user.PasswordDigest) {
		a.logger.Info("Auth service: wrong password",
			"user_id", user.ID)
		return page.WithError(model.NewErrUnauthorized()), nil
	}

	st.SignIn(user.Email)

	a.logger.Info("Auth service: login completed successfully",
		"user_id", user.ID)

	return model.Redirect(model.RouteProducts), nil
}

// SignOut drops the identity and keeps the cart. An anonymous session gets
// the products page instead of a redirect.
func (a *Auth) SignOut(ctx context.Context, st *model.SessionState) (model.Result, error) {
	if st.IsAuthenticated() {
		a.logger.Info("Auth service: user signed out",
			"email", st.AuthenticatedEmail)
		st.SignOut()
		return model.Redirect(model.RouteSignIn), nil
	}

	products, err := a.productStore.List(ctx)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to list products: %w", err)
	}

	return model.Render(model.ViewProducts, model.ProductsPage{Products: products}), nil
}
