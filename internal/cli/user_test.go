package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/storefront/internal/mocks"
	"github.com/dtroode/storefront/internal/model"
	"github.com/dtroode/storefront/internal/testutil"
)

type registrarFunc func(ctx context.Context, form model.SignUpForm) (model.User, error)

func (f registrarFunc) Register(ctx context.Context, form model.SignUpForm) (model.User, error) {
	return f(ctx, form)
}

func TestReadPassword_FromPipe(t *testing.T) {
	pass, err := readPassword(strings.NewReader("password1\r\nignored\n"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "password1", pass)

	pass, err = readPassword(strings.NewReader("no-newline"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "no-newline", pass)
}

func TestCreateUser(t *testing.T) {
	form := model.SignUpForm{Name: "alice", Email: "alice@example.com", Password: "password1"}

	var got model.SignUpForm
	registrar := registrarFunc(func(_ context.Context, f model.SignUpForm) (model.User, error) {
		got = f
		return model.User{ID: 3, Name: f.Name, Email: f.Email}, nil
	})

	var out bytes.Buffer
	require.NoError(t, createUser(context.Background(), registrar, &out, form))
	assert.Equal(t, form, got)
	assert.Equal(t, "user 3 alice <alice@example.com>\n", out.String())
}

func TestCreateUser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr string
	}{
		{name: "conflict shows public message", err: model.NewErrConflict("email", errors.New("duplicate key")), wantErr: "email is already taken"},
		{name: "validation shows fields", err: model.NewErrValidation(map[string]string{"password": "too short"}), wantErr: "validation failed: password: too short"},
		{name: "other errors are kept", err: errors.New("connection reset"), wantErr: "connection reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registrar := registrarFunc(func(context.Context, model.SignUpForm) (model.User, error) {
				return model.User{}, tt.err
			})

			err := createUser(context.Background(), registrar, &bytes.Buffer{}, model.SignUpForm{})
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestDeleteUser(t *testing.T) {
	users := mocks.NewUserStore(t)
	users.On("GetByEmail", mock.Anything, "alice@example.com").Return(model.User{ID: 3, Email: "alice@example.com"}, nil)
	users.On("Delete", mock.Anything, int64(3)).Return(nil)

	tx := &testutil.Transactor{Stores: testutil.Stores{UserStore: users}}
	var out bytes.Buffer

	require.NoError(t, deleteUser(context.Background(), tx, &out, "alice@example.com"))
	assert.Equal(t, 1, tx.Calls)
	assert.Equal(t, "deleted user 3 <alice@example.com>\n", out.String())
}

func TestDeleteUser_NotFound(t *testing.T) {
	users := mocks.NewUserStore(t)
	users.On("GetByEmail", mock.Anything, "bob@example.com").Return(model.User{}, model.ErrNotFound)

	tx := &testutil.Transactor{Stores: testutil.Stores{UserStore: users}}

	err := deleteUser(context.Background(), tx, &bytes.Buffer{}, "bob@example.com")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
