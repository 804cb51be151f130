package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

// ActingUser picks the user a purchase is recorded for.
type ActingUser interface {
	Resolve(ctx context.Context, users model.UserStore, st *model.SessionState) (model.User, error)
}

// FixedUser records every purchase for one user id.
type FixedUser struct {
	ID int64
}

func (f FixedUser) Resolve(ctx context.Context, users model.UserStore, _ *model.SessionState) (model.User, error) {
	return users.GetByID(ctx, f.ID)
}

// SessionUser records purchases for the signed-in user.
type SessionUser struct{}

func (SessionUser) Resolve(ctx context.Context, users model.UserStore, st *model.SessionState) (model.User, error) {
	return users.GetByEmail(ctx, st.AuthenticatedEmail)
}

// Purchase commits purchase transactions.
type Purchase struct {
	transactor model.Transactor
	actingUser ActingUser
	logger     *logger.Logger
}

func NewPurchase(transactor model.Transactor, actingUser ActingUser, logger *logger.Logger) *Purchase {
	if fixed, ok := actingUser.(FixedUser); ok {
		logger.Warn("Purchase service: purchases are recorded for a fixed user",
			"user_id", fixed.ID)
	}

	return &Purchase{
		transactor: transactor,
		actingUser: actingUser,
		logger:     logger,
	}
}

// Purchase resolves the acting user and the product and records one
// transaction, all inside one database transaction. Every call inserts a
// new row.
func (p *Purchase) Purchase(ctx context.Context, st *model.SessionState, productID string) (model.Result, error) {
	if res, ok := requireAuthenticated(st); !ok {
		return res, nil
	}

	p.logger.Debug("Purchase service: starting purchase",
		"product_id", productID)

	id, ok := parseID(productID)
	if !ok {
		return model.Result{}, model.NewErrNotFound("product", nil)
	}

	var page model.PurchasePage
	err := p.transactor.WithinTx(ctx, func(ctx context.Context, stores model.Stores) error {
		user, err := p.actingUser.Resolve(ctx, stores.Users(), st)
		if errors.Is(err, model.ErrNotFound) {
			return model.NewErrNotFound("user", err)
		}
		if err != nil {
			return fmt.Errorf("failed to get acting user: %w", err)
		}

		product, err := stores.Products().GetByID(ctx, id)
		if errors.Is(err, model.ErrNotFound) {
			return model.NewErrNotFound("product", err)
		}
		if err != nil {
			return fmt.Errorf("failed to get product by id: %w", err)
		}

		transaction, err := stores.Transactions().Create(ctx, model.PurchaseTransaction{
			ProductID: product.ID,
			UserID:    user.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		page = model.PurchasePage{Product: product, Transaction: transaction}
		return nil
	})
	if errors.Is(err, model.ErrNotFound) {
		p.logger.Info("Purchase service: purchase target not found",
			"product_id", productID,
			"error", err.Error())
		return model.Result{}, err
	}
	if err != nil {
		p.logger.Error("Purchase service: purchase failed",
			"product_id", productID,
			"error", err.Error())
		return model.Result{}, model.NewErrInternal(err)
	}

	p.logger.Info("Purchase service: purchase completed successfully",
		"product_id", page.Product.ID,
		"user_id", page.Transaction.UserID,
		"transaction_id", page.Transaction.ID)

	return model.Render(model.ViewPurchased, page), nil
}
