package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/storefront/internal/model"
)

// CatalogService defines product and transaction listing operations.
type CatalogService interface {
	Products(ctx context.Context, st *model.SessionState) (model.Result, error)
	Product(ctx context.Context, st *model.SessionState, productID string) (model.Result, error)
	ProductImage(ctx context.Context, st *model.SessionState, productID string) (model.Result, error)
	Transactions(ctx context.Context, st *model.SessionState) (model.Result, error)
}

// Catalog handles the product and transaction pages.
type Catalog struct {
	catalogService CatalogService
	*Responder
}

// NewCatalog creates a new Catalog handler.
func NewCatalog(catalogService CatalogService, responder *Responder) *Catalog {
	return &Catalog{
		catalogService: catalogService,
		Responder:      responder,
	}
}

func (h *Catalog) Products(w http.ResponseWriter, r *http.Request) {
	res, err := h.catalogService.Products(r.Context(), h.state(r))
	h.respond(w, r, res, err)
}

func (h *Catalog) Product(w http.ResponseWriter, r *http.Request) {
	res, err := h.catalogService.Product(r.Context(), h.state(r), chi.URLParam(r, "id"))
	h.respond(w, r, res, err)
}

func (h *Catalog) ProductImage(w http.ResponseWriter, r *http.Request) {
	res, err := h.catalogService.ProductImage(r.Context(), h.state(r), chi.URLParam(r, "id"))
	h.respond(w, r, res, err)
}

func (h *Catalog) Transactions(w http.ResponseWriter, r *http.Request) {
	res, err := h.catalogService.Transactions(r.Context(), h.state(r))
	h.respond(w, r, res, err)
}
