package postgres

import "github.com/dtroode/storefront/internal/model"

var _ model.Stores = (*Stores)(nil)

// Stores groups the repositories bound to one DBTX.
type Stores struct {
	users        *UserRepository
	products     *ProductRepository
	transactions *TransactionRepository
}

func NewStores(db DBTX) *Stores {
	return &Stores{
		users:        NewUserRepository(db),
		products:     NewProductRepository(db),
		transactions: NewTransactionRepository(db),
	}
}

func (s *Stores) Users() model.UserStore               { return s.users }
func (s *Stores) Products() model.ProductStore         { return s.products }
func (s *Stores) Transactions() model.TransactionStore { return s.transactions }
