package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

// ProductImageKey is the storage key of a product picture.
func ProductImageKey(productID int64) string {
	return fmt.Sprintf("products/%d", productID)
}

// Catalog serves products, product images and the transaction log.
type Catalog struct {
	productStore     model.ProductStore
	transactionStore model.TransactionStore
	storage          model.Storage
	logger           *logger.Logger
}

// NewCatalog creates the catalog service. storage may be nil when product
// images are disabled.
func NewCatalog(
	productStore model.ProductStore,
	transactionStore model.TransactionStore,
	storage model.Storage,
	logger *logger.Logger,
) *Catalog {
	return &Catalog{
		productStore:     productStore,
		transactionStore: transactionStore,
		storage:          storage,
		logger:           logger,
	}
}

func (c *Catalog) Products(ctx context.Context, st *model.SessionState) (model.Result, error) {
	if res, ok := requireAuthenticated(st); !ok {
		return res, nil
	}

	products, err := c.productStore.List(ctx)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to list products: %w", err)
	}

	return model.Render(model.ViewProducts, model.ProductsPage{Products: products}), nil
}

func (c *Catalog) Product(ctx context.Context, st *model.SessionState, productID string) (model.Result, error) {
	if res, ok := requireAuthenticated(st); !ok {
		return res, nil
	}

	id, ok := parseID(productID)
	if !ok {
		return model.Result{}, model.NewErrNotFound("product", nil)
	}

	product, err := c.productStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Result{}, model.NewErrNotFound("product", err)
	}
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to get product by id: %w", err)
	}

	return model.Render(model.ViewProduct, model.ProductPage{
		Product: product,
		InCart:  st.InCart(productID),
	}), nil
}

// ProductImage opens the picture of a product. The result data is a
// *model.ProductImage whose body the caller must close.
func (c *Catalog) ProductImage(ctx context.Context, st *model.SessionState, productID string) (model.Result, error) {
	if res, ok := requireAuthenticated(st); !ok {
		return res, nil
	}

	id, ok := parseID(productID)
	if !ok || c.storage == nil {
		return model.Result{}, model.NewErrNotFound("image", nil)
	}

	body, contentType, err := c.storage.Download(ctx, ProductImageKey(id))
	if errors.Is(err, model.ErrNotFound) {
		return model.Result{}, model.NewErrNotFound("image", err)
	}
	if err != nil {
		c.logger.Error("Catalog service: failed to download image",
			"product_id", id,
			"error", err.Error())
		return model.Result{}, fmt.Errorf("failed to download image: %w", err)
	}

	return model.Render(model.ViewProductImage, &model.ProductImage{
		ProductID:   id,
		ContentType: contentType,
		Body:        body,
	}), nil
}

func (c *Catalog) Transactions(ctx context.Context, st *model.SessionState) (model.Result, error) {
	if res, ok := requireAuthenticated(st); !ok {
		return res, nil
	}

	transactions, err := c.transactionStore.List(ctx)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to list transactions: %w", err)
	}

	return model.Render(model.ViewTransactions, model.TransactionsPage{Transactions: transactions}), nil
}
