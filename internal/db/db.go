package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/campushub/events-api/internal/config"
)

// OpenSQLite opens (creating if needed) the local database file that
// backs the collection store.
func OpenSQLite(conf *config.StoreConfig) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(conf.Path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	return database, nil
}
