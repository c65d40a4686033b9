package repository

import (
	"errors"
	"fmt"
	"sync"

	"github.com/amaumene/gomoviez/internal/models"
	"github.com/amaumene/gomoviez/internal/storage"
	"github.com/sirupsen/logrus"
)

// ErrMovieNotFound is reported by the counter operations when no movie
// matches the given identifier.
var ErrMovieNotFound = errors.New("movie not found")

// Service is the single source of truth for the catalog documents. Reads
// absorb backend failures and fall back to defaults; writes surface them.
type Service struct {
	backend storage.Backend
	logger  *logrus.Logger

	bootstrapOnce sync.Once
}

// NewService creates a repository service on top of the given backend.
func NewService(backend storage.Backend, logger *logrus.Logger) *Service {
	return &Service{
		backend: backend,
		logger:  logger,
	}
}

// LoadMovies returns the full movie collection. On the first call of the
// process lifetime an empty collection is seeded with the sample set, so a
// cold start against a wiped backend re-seeds. Backend read failures
// degrade to an empty collection.
func (s *Service) LoadMovies() []models.Movie {
	s.bootstrapOnce.Do(s.bootstrap)

	movies, err := s.backend.LoadMovies()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load movies")
		return []models.Movie{}
	}
	if movies == nil {
		return []models.Movie{}
	}
	return movies
}

// bootstrap seeds the sample collection when the store is empty. The guard
// is the collection length, not a persisted flag.
func (s *Service) bootstrap() {
	movies, err := s.backend.LoadMovies()
	if err != nil {
		s.logger.WithError(err).Warn("Skipping sample data bootstrap, backend unavailable")
		return
	}
	if len(movies) > 0 {
		return
	}

	sample := SampleMovies()
	if err := s.backend.SaveMovies(sample); err != nil {
		s.logger.WithError(err).Error("Failed to persist sample movies")
		return
	}
	s.logger.WithField("count", len(sample)).Info("Sample movies initialized")
}

// SaveMovies overwrites the entire stored collection with the given
// sequence. There is no merge at this layer.
func (s *Service) SaveMovies(movies []models.Movie) error {
	if err := s.backend.SaveMovies(movies); err != nil {
		return fmt.Errorf("failed to save movies: %w", err)
	}
	return nil
}

// LoadBanner returns the stored banner, or the hardcoded default when none
// exists or the backend is unreachable.
func (s *Service) LoadBanner() models.Banner {
	banner, err := s.backend.LoadBanner()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load banner")
		return models.DefaultBanner()
	}
	if banner == nil {
		return models.DefaultBanner()
	}
	return *banner
}

// SaveBanner replaces the stored banner wholesale.
func (s *Service) SaveBanner(banner models.Banner) error {
	if err := s.backend.SaveBanner(banner); err != nil {
		return fmt.Errorf("failed to save banner: %w", err)
	}
	return nil
}

// LoadStats returns the stored stats, or zero counters when none exist or
// the backend is unreachable.
func (s *Service) LoadStats() models.Stats {
	stats, err := s.backend.LoadStats()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load stats")
		return models.DefaultStats()
	}
	if stats == nil {
		return models.DefaultStats()
	}
	return *stats
}

// SaveStats replaces the stored stats wholesale.
func (s *Service) SaveStats(stats models.Stats) error {
	if err := s.backend.SaveStats(stats); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

// IncrementViews bumps the view counter of one movie and the aggregate
// total by exactly one. Returns ErrMovieNotFound when the id is unknown.
func (s *Service) IncrementViews(id int64) error {
	return s.increment(id, func(m *models.Movie) { m.Views++ }, func(st *models.Stats) { st.TotalViews++ })
}

// IncrementDownloads bumps the download counter of one movie and the
// aggregate total by exactly one. Returns ErrMovieNotFound when the id is
// unknown.
func (s *Service) IncrementDownloads(id int64) error {
	return s.increment(id, func(m *models.Movie) { m.Downloads++ }, func(st *models.Stats) { st.TotalDownloads++ })
}

// increment is a load-modify-save cycle over the collection followed by a
// second one over the stats singleton. The two writes are not atomic: a
// crash in between leaves the totals behind the per-movie counters. There
// is no lock around the cycle, so concurrent increments can lose updates.
func (s *Service) increment(id int64, bumpMovie func(*models.Movie), bumpStats func(*models.Stats)) error {
	movies, err := s.backend.LoadMovies()
	if err != nil {
		return fmt.Errorf("failed to load movies: %w", err)
	}

	found := false
	for i := range movies {
		if movies[i].ID == id {
			bumpMovie(&movies[i])
			found = true
			break
		}
	}
	if !found {
		return ErrMovieNotFound
	}

	if err := s.backend.SaveMovies(movies); err != nil {
		return fmt.Errorf("failed to save movies: %w", err)
	}

	stats := s.LoadStats()
	bumpStats(&stats)
	if err := s.backend.SaveStats(stats); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}
