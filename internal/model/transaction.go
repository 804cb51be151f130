package model

import (
	"context"
	"time"
)

// TransactionStore defines persistence operations for purchase transactions.
type TransactionStore interface {
	Create(ctx context.Context, transaction PurchaseTransaction) (PurchaseTransaction, error)
	List(ctx context.Context) ([]PurchaseTransaction, error)
}

// PurchaseTransaction links a user to a purchased product.
type PurchaseTransaction struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Filled by listings only.
	ProductName  string `json:"product_name,omitempty"`
	ProductPrice int64  `json:"product_price,omitempty"`
	UserName     string `json:"user_name,omitempty"`
}

// Stores groups the repositories bound to one database handle.
type Stores interface {
	Users() UserStore
	Products() ProductStore
	Transactions() TransactionStore
}

// Transactor runs fn inside a single database transaction. The transaction
// is committed when fn returns nil and rolled back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, stores Stores) error) error
}
