package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/storefront/internal/model"
)

var _ model.TransactionStore = (*TransactionRepository)(nil)

type TransactionRepository struct {
	db DBTX
}

func NewTransactionRepository(db DBTX) *TransactionRepository {
	return &TransactionRepository{
		db: db,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, transaction model.PurchaseTransaction) (model.PurchaseTransaction, error) {
	query := `INSERT INTO purchase_transactions (product_id, user_id)
			  VALUES ($1, $2)
			  RETURNING id, product_id, user_id, created_at, updated_at`

	var saved model.PurchaseTransaction
	err := r.db.QueryRowContext(ctx, query, transaction.ProductID, transaction.UserID).Scan(
		&saved.ID, &saved.ProductID, &saved.UserID, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.PurchaseTransaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	return saved, nil
}

// List returns every transaction with its product and user names, oldest first.
func (r *TransactionRepository) List(ctx context.Context) ([]model.PurchaseTransaction, error) {
	query := `SELECT t.id, t.product_id, t.user_id, t.created_at, t.updated_at, p.name, p.price, u.name
			  FROM purchase_transactions t
			  JOIN products p ON p.id = t.product_id
			  JOIN users u ON u.id = t.user_id
			  ORDER BY t.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []model.PurchaseTransaction{}
	for rows.Next() {
		var t model.PurchaseTransaction
		err := rows.Scan(&t.ID, &t.ProductID, &t.UserID, &t.CreatedAt, &t.UpdatedAt, &t.ProductName, &t.ProductPrice, &t.UserName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}
