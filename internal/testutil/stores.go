package testutil

import (
	"context"

	"github.com/dtroode/storefront/internal/model"
)

// Stores bundles arbitrary store implementations, typically mocks.
type Stores struct {
	UserStore        model.UserStore
	ProductStore     model.ProductStore
	TransactionStore model.TransactionStore
}

func (s Stores) Users() model.UserStore               { return s.UserStore }
func (s Stores) Products() model.ProductStore         { return s.ProductStore }
func (s Stores) Transactions() model.TransactionStore { return s.TransactionStore }

// Transactor runs fn directly against Stores. Err, when set, is returned
// instead of running fn, as if the transaction could not begin.
type Transactor struct {
	Stores model.Stores
	Err    error

	Calls int
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context, stores model.Stores) error) error {
	t.Calls++
	if t.Err != nil {
		return t.Err
	}
	return fn(ctx, t.Stores)
}
