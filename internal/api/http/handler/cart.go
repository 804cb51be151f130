package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/storefront/internal/model"
)

// CartService defines cart operations.
type CartService interface {
	Add(ctx context.Context, st *model.SessionState, productID string) (model.Result, error)
	Remove(ctx context.Context, st *model.SessionState, productID string) (model.Result, error)
	View(ctx context.Context, st *model.SessionState) (model.Result, error)
}

// PurchaseService defines the purchase operation.
type PurchaseService interface {
	Purchase(ctx context.Context, st *model.SessionState, productID string) (model.Result, error)
}

// Cart handles the cart and purchase endpoints.
type Cart struct {
	cartService     CartService
	purchaseService PurchaseService
	*Responder
}

// NewCart creates a new Cart handler.
func NewCart(cartService CartService, purchaseService PurchaseService, responder *Responder) *Cart {
	return &Cart{
		cartService:     cartService,
		purchaseService: purchaseService,
		Responder:       responder,
	}
}

func (h *Cart) Add(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		h.respond(w, r, model.Result{}, err)
		return
	}
	res, err := h.cartService.Add(r.Context(), h.state(r), r.PostForm.Get("product_id"))
	h.respond(w, r, res, err)
}

func (h *Cart) Remove(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		h.respond(w, r, model.Result{}, err)
		return
	}
	res, err := h.cartService.Remove(r.Context(), h.state(r), r.PostForm.Get("product_id"))
	h.respond(w, r, res, err)
}

func (h *Cart) View(w http.ResponseWriter, r *http.Request) {
	res, err := h.cartService.View(r.Context(), h.state(r))
	h.respond(w, r, res, err)
}

func (h *Cart) Purchase(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	h.logger.Debug("Cart handler: processing purchase request",
		"product_id", productID)

	res, err := h.purchaseService.Purchase(r.Context(), h.state(r), productID)
	h.respond(w, r, res, err)
}
