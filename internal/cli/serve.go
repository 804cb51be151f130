package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/health"

	grpchandler "github.com/dtroode/storefront/internal/api/grpc/handler"
	grpcrouter "github.com/dtroode/storefront/internal/api/grpc/router"
	grpcserver "github.com/dtroode/storefront/internal/api/grpc/server"
	httpctx "github.com/dtroode/storefront/internal/api/http/context"
	httprouter "github.com/dtroode/storefront/internal/api/http/router"
	"github.com/dtroode/storefront/internal/config"
	"github.com/dtroode/storefront/internal/model"
	"github.com/dtroode/storefront/internal/server"
	"github.com/dtroode/storefront/internal/service"
	"github.com/dtroode/storefront/internal/session"
	"github.com/dtroode/storefront/internal/token"
)

const shutdownTimeout = 10 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand(build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the storefront HTTP server and the ops gRPC server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			logAppVersion(cmd.OutOrStdout(), build)

			return serve(cmd.Context(), a)
		},
	}
}

func serve(ctx context.Context, a *app) error {
	stores := a.conn.Stores()

	handler := httprouter.New(
		a.authService(),
		service.NewCatalog(stores.Products(), stores.Transactions(), a.storage, a.logger),
		service.NewCart(stores.Products(), a.logger),
		service.NewPurchase(a.conn, actingUser(a.cfg), a.logger),
		newSessionManager(a.cfg),
		httpctx.NewManager(),
		a.logger,
	).Register()

	servers := []model.Server{
		server.NewHTTPServer(handler, fmt.Sprintf(":%s", a.cfg.HTTP.Port)),
	}
	security := []model.SecurityLayer{
		server.NewSecurityLayer(a.cfg.HTTP.EnableHTTPS, a.cfg.HTTP.CertFileName, a.cfg.HTTP.PrivateKeyFileName),
	}

	if a.cfg.GRPC.Enabled {
		healthServer := health.NewServer()
		watcher := grpchandler.NewHealthWatcher(healthServer, a.conn, a.cfg.GRPC.HealthInterval, a.logger)
		go watcher.Run(ctx)

		s := grpcrouter.New(healthServer, a.logger).Register()
		servers = append(servers, grpcserver.NewGRPCServer(s, fmt.Sprintf(":%s", a.cfg.GRPC.Port)))
		security = append(security, server.NewPlainListener())
	}

	var wg sync.WaitGroup
	for i, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			a.logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				a.logger.Error("failed to start server", "error", err, "address", s.Address())
			}
		}(s, security[i])
	}

	<-ctx.Done()
	a.logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			a.logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	a.logger.Info("shutdown complete")

	return nil
}

func newSessionManager(cfg *config.Config) *session.Manager {
	var store model.SessionStore
	switch cfg.Session.Store {
	case config.SessionStoreMemory:
		store = session.NewMemoryStore(cfg.Session.TTL)
	default:
		store = session.NewCookieStore(token.NewJWT(cfg.Session.Secret, cfg.Session.TTL))
	}

	return session.NewManager(store, cfg.Session.CookieName, cfg.Session.TTL, cfg.Session.Secure)
}

func actingUser(cfg *config.Config) service.ActingUser {
	if cfg.Purchase.ActingUser == config.ActingUserSession {
		return service.SessionUser{}
	}
	return service.FixedUser{ID: cfg.Purchase.FixedUserID}
}

func logAppVersion(w io.Writer, build BuildInfo) {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Fprintf(w, tmpl, build.Version, build.Date, build.Commit)
}
