package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/campushub/events-api/internal/api"
	"github.com/campushub/events-api/internal/config"
	"github.com/campushub/events-api/internal/db"
	"github.com/campushub/events-api/internal/logger"
	"github.com/campushub/events-api/internal/store"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	var st store.Store
	if conf.Store.Driver == "memory" {
		st = store.NewMemoryStore()
	} else {
		sqliteDB, err := db.OpenSQLite(conf.Store)
		if err != nil {
			return fmt.Errorf("failed to initialize database -> %w", err)
		}

		st, err = store.NewGormStore(sqliteDB)
		if err != nil {
			return fmt.Errorf("failed to initialize store -> %w", err)
		}
	}

	s := api.NewServer(conf, st)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
