package container

import (
	"database/sql"

	"stockledger/internal/catalog"
	"stockledger/internal/config"
	"stockledger/internal/ledger"
	"stockledger/internal/repository"
	"stockledger/internal/users"
	"stockledger/pkg/security"

	"go.uber.org/zap"
)

type Container struct {
	Store           *ledger.Store
	MovementService *ledger.MovementService
	QueryService    *ledger.QueryService
	CatalogService  *catalog.Service
	LedgerHandler   *ledger.LedgerHandler
	CatalogHandler  *catalog.Handler
	LoginHandler    *security.LoginHandler
	Logger          *zap.Logger
}

// NewAppContainer wires the application. The database handle is optional:
// when present it hydrates the catalog and backs user lookups, otherwise the
// service runs purely in memory with a bootstrap admin.
func NewAppContainer(cfg config.Config, db *sql.DB, log *zap.Logger) (*Container, error) {
	store := ledger.NewStore()
	movementService := ledger.NewMovementService(store, log)
	queryService := ledger.NewQueryService(store)
	catalogService := catalog.NewService(store, log)

	var userSource security.UserSource = users.NewStaticSource(cfg.AdminUsername, cfg.AdminPasswordHash)
	if db != nil {
		repo := repository.NewRepository(db)
		userSource = users.NewRepository(repo)

		loader := catalog.NewLoader(repo, log)
		if err := loader.Hydrate(store); err != nil {
			return nil, err
		}
	}

	return &Container{
		Store:           store,
		MovementService: movementService,
		QueryService:    queryService,
		CatalogService:  catalogService,
		LedgerHandler:   ledger.NewLedgerHandler(movementService, queryService),
		CatalogHandler:  catalog.NewHandler(catalogService),
		LoginHandler:    security.NewLoginHandler(userSource),
		Logger:          log,
	}, nil
}
