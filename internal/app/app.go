// Package app composes the storefront: local storage, the in-memory
// stores, the core service and the mock gateway. Everything the
// original kept as ambient module-level singletons is constructed
// here once and injected.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/hovixy/storefront/config"
	"github.com/hovixy/storefront/internal/adapter/gateway"
	"github.com/hovixy/storefront/internal/adapter/localstore"
	"github.com/hovixy/storefront/internal/adapter/memstate"
	"github.com/hovixy/storefront/internal/adapter/prefs"
	"github.com/hovixy/storefront/internal/adapter/seedfile"
	"github.com/hovixy/storefront/internal/adapter/session"
	"github.com/hovixy/storefront/internal/core/service"
)

type App struct {
	ctx     context.Context
	cfg     config.Config
	fs      afero.Fs
	service service.Storefront
	gateway gateway.Gateway
}

func New(ctx context.Context, cfg config.Config) App {
	app := App{ctx: ctx, cfg: cfg, fs: afero.NewOsFs()}

	app.initLogger()
	app.service = app.initCoreService()
	app.gateway = gateway.New(
		app.service,
		gateway.DelaysOpt(cfg.Gateway.QueryDelay, cfg.Gateway.MutationDelay),
	)

	slog.Info("application is ready")
	return app
}

func (app App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app App) initCoreService() service.Storefront {
	const op = "App.initCoreService"

	seed, err := seedfile.New(app.fs, app.cfg.CatalogSnapshot).Load()
	if err != nil {
		app.fallDown(op, err)
	}

	kv := localstore.New(app.fs, app.cfg.DataDir)
	catalog := memstate.NewCatalog(seed)
	cart := memstate.NewCart()
	sessions := session.New(kv)
	theme := prefs.NewThemeStore(kv)

	svc := service.New(catalog, cart, sessions, theme)
	svc.RestoreSession()
	return svc
}

func (app App) Service() service.Storefront {
	return app.service
}

func (app App) Gateway() gateway.Gateway {
	return app.gateway
}

func (app App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
