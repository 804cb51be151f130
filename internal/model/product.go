package model

import (
	"context"
	"io"
	"time"
)

// ProductStore defines persistence operations for catalog products.
type ProductStore interface {
	Create(ctx context.Context, product Product) (Product, error)
	GetByID(ctx context.Context, id int64) (Product, error)
	List(ctx context.Context) ([]Product, error)
	FindAllByIDs(ctx context.Context, ids []int64) ([]Product, error)
	// Delete removes the product together with its purchase transactions.
	Delete(ctx context.Context, id int64) error
}

// Product is a catalog entry.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductImage is a product picture streamed from object storage.
type ProductImage struct {
	ProductID   int64
	ContentType string
	Body        io.ReadCloser
}
