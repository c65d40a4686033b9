package storage

import (
	"fmt"

	"github.com/amaumene/gomoviez/internal/config"
	"github.com/amaumene/gomoviez/internal/models"
	"github.com/sirupsen/logrus"
)

// Logical document keys shared by the backends.
const (
	keyMovies = "movies"
	keyBanner = "banner"
	keyStats  = "stats"
)

// Backend is the uniform persistence contract. Load methods report an
// absent document as (nil, nil); callers own the defaulting. Any other
// failure comes back as a plain error and never as a panic.
type Backend interface {
	LoadMovies() ([]models.Movie, error)
	SaveMovies(movies []models.Movie) error

	LoadBanner() (*models.Banner, error)
	SaveBanner(banner models.Banner) error

	LoadStats() (*models.Stats, error)
	SaveStats(stats models.Stats) error

	Close() error
}

// Open selects and opens the backend named by DATABASE_TYPE. The choice is
// made once at process start; there is no runtime switching.
func Open(cfg *config.Config, logger *logrus.Logger) (Backend, error) {
	switch cfg.DatabaseType {
	case config.BackendKV:
		return NewKVBackend(cfg.DatabaseFile)
	case config.BackendSQLite:
		return NewSQLiteBackend(cfg.SQLiteFile)
	case config.BackendMemory:
		logger.Warn("Using in-memory storage, data will not survive a restart")
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unsupported backend %q", cfg.DatabaseType)
	}
}
