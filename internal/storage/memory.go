package storage

import (
	"sync"

	"github.com/amaumene/gomoviez/internal/models"
)

// MemoryBackend keeps all documents in process memory. It is the last-resort
// backend: nothing survives a restart. Unlike the other backends it is safe
// to construct several independent instances, which the tests rely on.
type MemoryBackend struct {
	mu     sync.RWMutex
	movies []models.Movie
	banner *models.Banner
	stats  *models.Stats
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Close is a no-op.
func (b *MemoryBackend) Close() error {
	return nil
}

// LoadMovies returns a copy of the stored collection, or nil if nothing has
// been saved.
func (b *MemoryBackend) LoadMovies() ([]models.Movie, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return models.CloneMovies(b.movies), nil
}

// SaveMovies replaces the stored collection.
func (b *MemoryBackend) SaveMovies(movies []models.Movie) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.movies = models.CloneMovies(movies)
	return nil
}

// LoadBanner returns a copy of the stored banner, or nil if absent.
func (b *MemoryBackend) LoadBanner() (*models.Banner, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.banner == nil {
		return nil, nil
	}
	banner := *b.banner
	return &banner, nil
}

// SaveBanner replaces the stored banner.
func (b *MemoryBackend) SaveBanner(banner models.Banner) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.banner = &banner
	return nil
}

// LoadStats returns a copy of the stored stats, or nil if absent.
func (b *MemoryBackend) LoadStats() (*models.Stats, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.stats == nil {
		return nil, nil
	}
	stats := *b.stats
	return &stats, nil
}

// SaveStats replaces the stored stats.
func (b *MemoryBackend) SaveStats(stats models.Stats) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stats = &stats
	return nil
}
