package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/storefront/internal/model"
)

var userRowColumns = []string{"id", "name", "email", "password_digest", "created_at", "updated_at"}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users \(name, email, password_digest\)`).
		WithArgs("alice", "alice@example.com", "digest").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "alice", "alice@example.com", "digest", now, now))

	got, err := repo.Create(context.Background(), model.User{Name: "alice", Email: "alice@example.com", PasswordDigest: "digest"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, now, got.CreatedAt)
}

func TestUserRepository_Create_UniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		field      string
	}{
		{constraint: "users_name_key", field: "name"},
		{constraint: "users_email_key", field: "email"},
		{constraint: "users_password_digest_key", field: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db)

			mock.ExpectQuery(`INSERT INTO users`).
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tt.constraint})

			_, err := repo.Create(context.Background(), model.User{Name: "alice", Email: "alice@example.com", PasswordDigest: "digest"})
			require.ErrorIs(t, err, model.ErrConflict)

			var domainErr *model.Error
			require.True(t, errors.As(err, &domainErr))
			assert.Contains(t, domainErr.Fields, tt.field)
		})
	}
}

func TestUserRepository_Create_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), model.User{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrConflict)
	assert.Contains(t, err.Error(), "failed to create user")
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, name, email, password_digest, created_at, updated_at FROM users WHERE email = \$1`).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "alice", "alice@example.com", "digest", now, now))

	got, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "digest", got.PasswordDigest)
}

func TestUserRepository_GetByID_ExactlyOne(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		wantErr error
	}{
		{
			name: "one row",
			rows: sqlmock.NewRows(userRowColumns).AddRow(2, "bob", "bob@example.com", "d", now, now),
		},
		{
			name:    "no rows",
			rows:    sqlmock.NewRows(userRowColumns),
			wantErr: model.ErrNotFound,
		},
		{
			name: "two rows",
			rows: sqlmock.NewRows(userRowColumns).
				AddRow(2, "bob", "bob@example.com", "d", now, now).
				AddRow(2, "bob", "bob@example.com", "d", now, now),
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db)

			mock.ExpectQuery(`FROM users WHERE id = \$1`).WithArgs(int64(2)).WillReturnRows(tt.rows)

			got, err := repo.GetByID(context.Background(), 2)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "bob", got.Name)
		})
	}
}

func TestUserRepository_GetByID_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).WillReturnError(errors.New("db down"))

	_, err := repo.GetByID(context.Background(), 2)
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`DELETE FROM purchase_transactions WHERE user_id = \$1`).WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 2))
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`DELETE FROM purchase_transactions`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM users`).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 2), model.ErrNotFound)
}

func TestUserRepository_Delete_TransactionsError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`DELETE FROM purchase_transactions`).WillReturnError(errors.New("locked"))

	err := repo.Delete(context.Background(), 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete user transactions")
}
