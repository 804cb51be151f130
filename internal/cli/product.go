package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
	"github.com/dtroode/storefront/internal/service"
)

// NewProductCommand creates the product command group.
func NewProductCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage catalog products",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product, its purchase transactions and its image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			return deleteProduct(cmd.Context(), a.conn, a.storage, cmd.OutOrStdout(), a.logger, id)
		},
	})

	return cmd
}

func deleteProduct(
	ctx context.Context,
	transactor model.Transactor,
	storage model.Storage,
	out io.Writer,
	logger *logger.Logger,
	id int64,
) error {
	err := transactor.WithinTx(ctx, func(ctx context.Context, stores model.Stores) error {
		return stores.Products().Delete(ctx, id)
	})
	if errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("product %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if storage != nil {
		if err := storage.Delete(ctx, service.ProductImageKey(id)); err != nil {
			logger.Warn("Product: failed to delete image",
				"product_id", id,
				"error", err.Error())
		}
	}

	fmt.Fprintf(out, "deleted product %d\n", id)
	return nil
}
