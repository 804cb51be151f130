package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/storefront/internal/api/http/handler"
	"github.com/dtroode/storefront/internal/api/http/middleware"
	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

// Sessions loads the session of a request and saves it onto the response.
type Sessions interface {
	middleware.SessionLoader
	handler.SessionSaver
}

// Router represents the storefront HTTP router.
// It wires handlers to routes and sets up the middleware chain.
type Router struct {
	authService     handler.AuthService
	catalogService  handler.CatalogService
	cartService     handler.CartService
	purchaseService handler.PurchaseService
	sessions        Sessions
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// New creates new HTTP Router instance.
//
// Parameters:
//   - authService: The sign up, sign in and sign out operations
//   - catalogService: The product and transaction listings
//   - cartService: The session cart operations
//   - purchaseService: The purchase operation
//   - sessions: Loads and saves the per-browser session
//   - contextManager: Carries the session through the request context
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	authService handler.AuthService,
	catalogService handler.CatalogService,
	cartService handler.CartService,
	purchaseService handler.PurchaseService,
	sessions Sessions,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:     authService,
		catalogService:  catalogService,
		cartService:     cartService,
		purchaseService: purchaseService,
		sessions:        sessions,
		contextManager:  contextManager,
		logger:          logger,
	}
}

// Register builds the HTTP handler with all routes and middleware.
func (r *Router) Register() http.Handler {
	responder := handler.NewResponder(r.contextManager, r.sessions, r.logger)
	logging := middleware.NewLogging(r.logger)
	session := middleware.NewSession(r.sessions, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(
		chimiddleware.RequestID,
		chimiddleware.Recoverer,
		logging.Handle,
		session.Handle,
	)
	mux.NotFound(responder.NotFound)
	mux.MethodNotAllowed(responder.MethodNotAllowed)

	r.registerAuthRoutes(mux, responder)
	r.registerCatalogRoutes(mux, responder)
	r.registerCartRoutes(mux, responder)

	return mux
}

func (r *Router) registerAuthRoutes(mux chi.Router, responder *handler.Responder) {
	h := handler.NewAuth(r.authService, responder)

	mux.Get(model.RouteSignUp, h.SignUpForm)
	mux.Post(model.RouteSignUp, h.SignUp)
	mux.Get(model.RouteSignIn, h.SignInForm)
	mux.Post(model.RouteSignIn, h.SignIn)
	mux.Post("/sign_out", h.SignOut)
}

func (r *Router) registerCatalogRoutes(mux chi.Router, responder *handler.Responder) {
	h := handler.NewCatalog(r.catalogService, responder)

	mux.Route(model.RouteProducts, func(pr chi.Router) {
		pr.Get("/", h.Products)
		pr.Get("/{id}", h.Product)
		pr.Get("/{id}/image", h.ProductImage)
	})
	mux.Get("/transactions", h.Transactions)
}

func (r *Router) registerCartRoutes(mux chi.Router, responder *handler.Responder) {
	h := handler.NewCart(r.cartService, r.purchaseService, responder)

	mux.Get(model.RouteCart, h.View)
	mux.Post("/add_cart", h.Add)
	mux.Post("/remove_cart", h.Remove)
	mux.Post("/purchase/{id}", h.Purchase)
}
