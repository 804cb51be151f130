package cli

import (
	"context"
	"fmt"

	"github.com/dtroode/storefront/internal/config"
	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
	"github.com/dtroode/storefront/internal/password"
	"github.com/dtroode/storefront/internal/repository/postgres"
	"github.com/dtroode/storefront/internal/service"
	storage "github.com/dtroode/storefront/internal/storage/minio"
	"github.com/dtroode/storefront/internal/validate"
)

// app holds the dependencies shared by the commands.
type app struct {
	cfg     *config.Config
	logger  *logger.Logger
	conn    *postgres.Connection
	storage model.Storage
}

// newApp loads the configuration, connects to the migrated database and,
// when enabled, to object storage.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	lg := logger.New(cfg.LogLevel)

	conn, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	a := &app{cfg: cfg, logger: lg, conn: conn}

	if cfg.Storage.Enabled {
		client, err := storage.Dial(ctx, storage.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to initialize storage client: %w", err)
		}
		a.storage = client
	}

	return a, nil
}

func (a *app) close() {
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close database", "error", err)
	}
}

func rulesFromConfig(cfg *config.Config) validate.Rules {
	return validate.Rules{
		Name:     validate.Bounds{Min: cfg.Name.MinLength, Max: cfg.Name.MaxLength},
		Password: validate.Bounds{Min: cfg.Password.MinLength, Max: cfg.Password.MaxLength},
	}
}

func (a *app) authService() *service.Auth {
	stores := a.conn.Stores()
	return service.NewAuth(
		stores.Users(),
		stores.Products(),
		password.NewBcrypt(a.cfg.Password.Cost),
		rulesFromConfig(a.cfg),
		a.logger,
	)
}
