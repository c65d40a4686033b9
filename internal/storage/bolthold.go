package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/amaumene/gomoviez/internal/models"
	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"
)

// movieDocument wraps the collection so it is stored as one document under
// a fixed key, mirroring the other singletons.
type movieDocument struct {
	Items []models.Movie
}

// KVBackend stores each logical document whole in a bolthold store.
type KVBackend struct {
	store *bolthold.Store
}

// NewKVBackend opens (creating if needed) the bolthold database at path.
func NewKVBackend(path string) (*KVBackend, error) {
	store, err := bolthold.Open(path, 0600, &bolthold.Options{
		Options: &bbolt.Options{
			Timeout: 1 * time.Second,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &KVBackend{store: store}, nil
}

// Close closes the underlying store.
func (b *KVBackend) Close() error {
	return b.store.Close()
}

// LoadMovies returns the stored collection, or nil if none has been saved.
func (b *KVBackend) LoadMovies() ([]models.Movie, error) {
	var doc movieDocument
	err := b.store.Get(keyMovies, &doc)
	if errors.Is(err, bolthold.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}
	return doc.Items, nil
}

// SaveMovies replaces the stored collection wholesale.
func (b *KVBackend) SaveMovies(movies []models.Movie) error {
	if err := b.store.Upsert(keyMovies, &movieDocument{Items: movies}); err != nil {
		return fmt.Errorf("failed to save movies: %w", err)
	}
	return nil
}

// LoadBanner returns the stored banner, or nil if none has been saved.
func (b *KVBackend) LoadBanner() (*models.Banner, error) {
	var banner models.Banner
	err := b.store.Get(keyBanner, &banner)
	if errors.Is(err, bolthold.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load banner: %w", err)
	}
	return &banner, nil
}

// SaveBanner replaces the stored banner.
func (b *KVBackend) SaveBanner(banner models.Banner) error {
	if err := b.store.Upsert(keyBanner, &banner); err != nil {
		return fmt.Errorf("failed to save banner: %w", err)
	}
	return nil
}

// LoadStats returns the stored stats, or nil if none has been saved.
func (b *KVBackend) LoadStats() (*models.Stats, error) {
	var stats models.Stats
	err := b.store.Get(keyStats, &stats)
	if errors.Is(err, bolthold.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}
	return &stats, nil
}

// SaveStats replaces the stored stats.
func (b *KVBackend) SaveStats(stats models.Stats) error {
	if err := b.store.Upsert(keyStats, &stats); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}
