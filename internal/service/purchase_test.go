package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/storefront/internal/mocks"
	"github.com/dtroode/storefront/internal/model"
	"github.com/dtroode/storefront/internal/testutil"
)

type purchaseFixture struct {
	users        *mocks.UserStore
	products     *mocks.ProductStore
	transactions *mocks.TransactionStore
	tx           *testutil.Transactor
}

func newPurchaseFixture(t *testing.T) purchaseFixture {
	t.Helper()

	f := purchaseFixture{
		users:        mocks.NewUserStore(t),
		products:     mocks.NewProductStore(t),
		transactions: mocks.NewTransactionStore(t),
	}
	f.tx = &testutil.Transactor{Stores: testutil.Stores{
		UserStore:        f.users,
		ProductStore:     f.products,
		TransactionStore: f.transactions,
	}}

	return f
}

func TestPurchase_CreatesOneRowPerCall(t *testing.T) {
	f := newPurchaseFixture(t)
	p := NewPurchase(f.tx, FixedUser{ID: 2}, testutil.MakeNoopLogger())

	f.users.On("GetByID", mock.Anything, int64(2)).Return(model.User{ID: 2, Name: "bob"}, nil)
	f.products.On("GetByID", mock.Anything, int64(5)).Return(model.Product{ID: 5, Name: "lamp", Price: 25}, nil)
	f.transactions.On("Create", mock.Anything, model.PurchaseTransaction{ProductID: 5, UserID: 2}).
		Return(model.PurchaseTransaction{ID: 10, ProductID: 5, UserID: 2}, nil).Once()
	f.transactions.On("Create", mock.Anything, model.PurchaseTransaction{ProductID: 5, UserID: 2}).
		Return(model.PurchaseTransaction{ID: 11, ProductID: 5, UserID: 2}, nil).Once()

	first, err := p.Purchase(context.Background(), signedIn(), "5")
	require.NoError(t, err)
	second, err := p.Purchase(context.Background(), signedIn(), "5")
	require.NoError(t, err)

	assert.Equal(t, model.ViewPurchased, first.View)
	assert.Equal(t, "lamp", first.Data.(model.PurchasePage).Product.Name)
	assert.Equal(t, int64(10), first.Data.(model.PurchasePage).Transaction.ID)
	assert.Equal(t, int64(11), second.Data.(model.PurchasePage).Transaction.ID)
	assert.Equal(t, 2, f.tx.Calls)
	f.transactions.AssertNumberOfCalls(t, "Create", 2)
}

func TestPurchase_MissingProduct(t *testing.T) {
	f := newPurchaseFixture(t)
	p := NewPurchase(f.tx, FixedUser{ID: 2}, testutil.MakeNoopLogger())

	f.users.On("GetByID", mock.Anything, int64(2)).Return(model.User{ID: 2}, nil)
	f.products.On("GetByID", mock.Anything, int64(99)).Return(model.Product{}, model.ErrNotFound)

	_, err := p.Purchase(context.Background(), signedIn(), "99")
	assert.ErrorIs(t, err, model.ErrNotFound)
	f.transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPurchase_MissingUser(t *testing.T) {
	f := newPurchaseFixture(t)
	p := NewPurchase(f.tx, FixedUser{ID: 2}, testutil.MakeNoopLogger())

	f.users.On("GetByID", mock.Anything, int64(2)).Return(model.User{}, model.ErrNotFound)

	_, err := p.Purchase(context.Background(), signedIn(), "5")
	require.ErrorIs(t, err, model.ErrNotFound)

	var domainErr *model.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "user not found", domainErr.Public())
}

func TestPurchase_NonNumericID(t *testing.T) {
	f := newPurchaseFixture(t)
	p := NewPurchase(f.tx, FixedUser{ID: 2}, testutil.MakeNoopLogger())

	_, err := p.Purchase(context.Background(), signedIn(), "lamp")
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Zero(t, f.tx.Calls)
}

func TestPurchase_SessionUser(t *testing.T) {
	f := newPurchaseFixture(t)
	p := NewPurchase(f.tx, SessionUser{}, testutil.MakeNoopLogger())

	f.users.On("GetByEmail", mock.Anything, "alice@example.com").Return(model.User{ID: 7}, nil)
	f.products.On("GetByID", mock.Anything, int64(5)).Return(model.Product{ID: 5}, nil)
	f.transactions.On("Create", mock.Anything, model.PurchaseTransaction{ProductID: 5, UserID: 7}).
		Return(model.PurchaseTransaction{ID: 1, ProductID: 5, UserID: 7}, nil)

	res, err := p.Purchase(context.Background(), signedIn(), "5")
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.Data.(model.PurchasePage).Transaction.UserID)
}

func TestPurchase_PersistenceFailure(t *testing.T) {
	f := newPurchaseFixture(t)
	p := NewPurchase(f.tx, FixedUser{ID: 2}, testutil.MakeNoopLogger())

	f.users.On("GetByID", mock.Anything, int64(2)).Return(model.User{ID: 2}, nil)
	f.products.On("GetByID", mock.Anything, int64(5)).Return(model.Product{ID: 5}, nil)
	f.transactions.On("Create", mock.Anything, mock.Anything).Return(model.PurchaseTransaction{}, errors.New("disk full"))

	_, err := p.Purchase(context.Background(), signedIn(), "5")
	assert.ErrorIs(t, err, model.ErrInternal)
}

func TestPurchase_BeginFailure(t *testing.T) {
	f := newPurchaseFixture(t)
	f.tx.Err = errors.New("connection refused")
	p := NewPurchase(f.tx, FixedUser{ID: 2}, testutil.MakeNoopLogger())

	_, err := p.Purchase(context.Background(), signedIn(), "5")
	assert.ErrorIs(t, err, model.ErrInternal)
}

func TestPurchase_RequiresAuthentication(t *testing.T) {
	f := newPurchaseFixture(t)
	p := NewPurchase(f.tx, FixedUser{ID: 2}, testutil.MakeNoopLogger())

	res, err := p.Purchase(context.Background(), &model.SessionState{}, "5")
	require.NoError(t, err)
	assert.True(t, res.IsRedirectTo(model.RouteSignIn))
	assert.Zero(t, f.tx.Calls)
}
