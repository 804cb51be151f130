package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/storefront/internal/model"
)

func TestTransactionRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO purchase_transactions \(product_id, user_id\)`).
		WithArgs(int64(5), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "user_id", "created_at", "updated_at"}).
			AddRow(10, 5, 2, now, now))

	got, err := repo.Create(context.Background(), model.PurchaseTransaction{ProductID: 5, UserID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
	assert.Equal(t, int64(5), got.ProductID)
	assert.Equal(t, int64(2), got.UserID)
}

func TestTransactionRepository_Create_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	mock.ExpectQuery(`INSERT INTO purchase_transactions`).WillReturnError(errors.New("fk violation"))

	_, err := repo.Create(context.Background(), model.PurchaseTransaction{ProductID: 5, UserID: 2})
	assert.ErrorContains(t, err, "failed to create transaction")
}

func TestTransactionRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)
	now := time.Now()

	mock.ExpectQuery(`FROM purchase_transactions t\s+JOIN products p ON p.id = t.product_id\s+JOIN users u ON u.id = t.user_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "user_id", "created_at", "updated_at", "name", "price", "name"}).
			AddRow(1, 5, 2, now, now, "lamp", 25, "bob"))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "lamp", got[0].ProductName)
	assert.Equal(t, int64(25), got[0].ProductPrice)
	assert.Equal(t, "bob", got[0].UserName)
}

func TestTransactionRepository_List_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	mock.ExpectQuery(`FROM purchase_transactions`).WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background())
	assert.ErrorContains(t, err, "failed to query transactions")
}
