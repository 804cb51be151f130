package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

// Cart edits and shows the session-held cart.
type Cart struct {
	productStore model.ProductStore
	logger       *logger.Logger
}

func NewCart(productStore model.ProductStore, logger *logger.Logger) *Cart {
	return &Cart{
		productStore: productStore,
		logger:       logger,
	}
}

func (c *Cart) Add(_ context.Context, st *model.SessionState, productID string) (model.Result, error) {
	if res, ok := requireAuthenticated(st); !ok {
		return res, nil
	}
	if productID == "" {
		return model.Result{}, model.NewErrValidation(map[string]string{"product_id": "this field is required"})
	}

	if st.AddCartItem(productID) {
		c.logger.Debug("Cart service: item added",
			"product_id", productID)
	}

	return model.Redirect(model.RouteCart), nil
}

func (c *Cart) Remove(_ context.Context, st *model.SessionState, productID string) (model.Result, error) {
	if res, ok := requireAuthenticated(st); !ok {
		return res, nil
	}
	if productID == "" {
		return model.Result{}, model.NewErrValidation(map[string]string{"product_id": "this field is required"})
	}

	err := st.RemoveCartItem(productID)
	if errors.Is(err, model.ErrNotFound) {
		c.logger.Debug("Cart service: item not in cart",
			"product_id", productID)
	}

	return model.Redirect(model.RouteCart), nil
}

// View resolves the cart ids to products in store order.
func (c *Cart) View(ctx context.Context, st *model.SessionState) (model.Result, error) {
	if res, ok := requireAuthenticated(st); !ok {
		return res, nil
	}

	items := st.CartItems()
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		id, ok := parseID(item)
		if !ok {
			continue
		}
		ids = append(ids, id)
	}

	products := []model.Product{}
	if len(ids) > 0 {
		found, err := c.productStore.FindAllByIDs(ctx, ids)
		if err != nil {
			return model.Result{}, fmt.Errorf("failed to find cart products: %w", err)
		}
		products = found
	}

	return model.Render(model.ViewCart, model.CartPage{Products: products}), nil
}
