package cmd

import (
	"context"
	"fmt"

	"catalog-manager/core/catalog"
	"catalog-manager/core/config"
	"catalog-manager/core/database"
	"catalog-manager/core/logger"
	"catalog-manager/core/reconcile"
	"catalog-manager/core/storage"
	"catalog-manager/core/tabular"
	"catalog-manager/feature/integrity"
	"catalog-manager/feature/marks"

	"go.uber.org/zap"
)

// app bundles the collaborators shared by commands.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	client  storage.Client
	catalog *catalog.Catalog
	codec   *tabular.Codec
	store   reconcile.IdentifierStore
}

// newApp loads configuration and wires the catalog. The marks store is only
// opened when withStore is set.
func newApp(ctx context.Context, withStore bool) (*app, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &app{
		cfg:    cfg,
		logger: l,
		codec:  tabular.NewCodec(cfg.Tabular),
	}

	if cfg.Catalog.Backend == catalog.BackendStorage || (withStore && cfg.Marks.Backend == config.MarksBackendStorage) {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		a.client = client
	}

	loader, err := catalog.NewLoader(cfg.Catalog, a.client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	a.catalog = catalog.New(loader, cfg.Catalog.Schema(), l)

	if withStore {
		store, err := a.openStore(ctx)
		if err != nil {
			return nil, err
		}
		a.store = store
	}
	return a, nil
}

func (a *app) openStore(ctx context.Context) (reconcile.IdentifierStore, error) {
	switch a.cfg.Marks.Backend {
	case config.MarksBackendDatabase, "":
		db, err := database.Connect(a.cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		store := marks.NewDBStore(db)
		if err := store.Migrate(); err != nil {
			return nil, err
		}
		if err := store.Verify(); err != nil {
			return nil, err
		}
		return store, nil
	case config.MarksBackendStorage:
		if err := storage.EnsureBucket(ctx, a.client, a.cfg.Storage.Bucket, a.cfg.Storage.Region); err != nil {
			return nil, err
		}
		return marks.NewObjectStore(a.client, a.cfg.Storage.Bucket, a.cfg.Marks.Object, a.logger), nil
	default:
		return nil, fmt.Errorf("unknown marks backend %q", a.cfg.Marks.Backend)
	}
}

// source returns the requested source, falling back to the configured default.
func (a *app) source(requested string) (string, error) {
	if requested == "" {
		return a.cfg.Catalog.DefaultSource, nil
	}
	if len(a.cfg.Catalog.Sources) > 0 && !a.cfg.Catalog.IsKnownSource(requested) {
		return "", fmt.Errorf("unknown source %q (known: %v)", requested, a.cfg.Catalog.Sources)
	}
	return requested, nil
}

func (a *app) coordinator() *reconcile.Coordinator {
	return reconcile.NewCoordinator(a.catalog, a.codec, a.store, a.logger)
}

func (a *app) integrity() *integrity.Service {
	return integrity.NewService(a.client, a.cfg.Storage.Bucket, a.catalog, a.cfg.Catalog.Sources, a.store, a.logger)
}

func (a *app) close() {
	_ = a.logger.Sync()
}
