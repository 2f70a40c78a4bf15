package repositories

import (
	"github.com/rs/zerolog"

	"github.com/yigit/student360/internal/db"
	"github.com/yigit/student360/internal/seed"
)

// Repositories holds all the repository instances
type Repositories struct {
	DatasetRepository   *DatasetRepository
	WarehouseRepository *WarehouseRepository // nil without a database
}

// NewRepositories initializes all repositories
func NewRepositories(ds *seed.Dataset, database *db.PostgresDB, logger zerolog.Logger) *Repositories {
	repos := &Repositories{
		DatasetRepository: NewDatasetRepository(ds),
	}
	if database != nil {
		repos.WarehouseRepository = NewWarehouseRepository(database, logger)
	}
	return repos
}
