package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dtroode/storefront/database"
	"github.com/dtroode/storefront/internal/model"
)

var _ model.Transactor = (*Connection)(nil)

type Connection struct {
	*sql.DB
}

// NewConnection opens the database, checks it is reachable and applies the
// schema migrations.
func NewConnection(ctx context.Context, dsn string) (*Connection, error) {
	conn, err := Open(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(ctx, conn.DB); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return conn, nil
}

// Open opens and pings the database without migrating it.
func Open(ctx context.Context, dsn string) (*Connection, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Close() error {
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

func (c *Connection) Ping(ctx context.Context) error {
	if c.DB == nil {
		return fmt.Errorf("database handle is nil")
	}
	return c.DB.PingContext(ctx)
}

// Stores returns repositories running each statement on its own.
func (c *Connection) Stores() *Stores {
	return NewStores(c.DB)
}

// WithinTx runs fn with repositories bound to one transaction.
func (c *Connection) WithinTx(ctx context.Context, fn func(ctx context.Context, stores model.Stores) error) error {
	return WithTx(ctx, c.DB, nil, func(ctx context.Context, tx DBTX) error {
		return fn(ctx, NewStores(tx))
	})
}
