package main

import (
	"github.com/rs/zerolog/log"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/config"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/db"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/repository"
)

// store is the repository backend selected by STORE_DRIVER.
type store struct {
	authors repository.AuthorRepository
	books   repository.BookRepository
	pinger  repository.Pinger
	close   func()
}

func openStore(cfg *config.Config) (*store, error) {
	if cfg.StoreDriver != config.DriverSQLite {
		log.Info().Str("driver", config.DriverMemory).Msg("using in-memory store")
		return &store{
			authors: repository.NewMemoryAuthorRepository(),
			books:   repository.NewMemoryBookRepository(),
			pinger:  repository.MemoryPinger{},
			close:   func() {},
		}, nil
	}

	database, err := db.ConnectWithRetry(cfg)
	if err != nil {
		return nil, err
	}

	log.Info().Str("driver", config.DriverSQLite).Str("dsn", cfg.SQLiteDSN).Msg("using sqlite store")
	return &store{
		authors: repository.NewGormAuthorRepository(database),
		books:   repository.NewGormBookRepository(database),
		pinger:  repository.NewGormPinger(database),
		close: func() {
			if sqlDB, err := database.DB(); err == nil {
				_ = sqlDB.Close()
			}
		},
	}, nil
}
