package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/amaumene/gomoviez/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteBackend maps movies row-per-item with the download links serialized
// as JSON, and keeps banner and stats as single-row tables.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens the database at path and creates the schema if needed.
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	b := &SQLiteBackend{db: db}
	if err := b.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return b, nil
}

func (b *SQLiteBackend) initSchema() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS movies (
			id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			category TEXT,
			genre TEXT,
			year INTEGER,
			rating REAL,
			description TEXT,
			poster TEXT,
			download_links TEXT,
			views INTEGER DEFAULT 0,
			downloads INTEGER DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS banner (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			title TEXT,
			subtitle TEXT,
			background_image TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS stats (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			total_downloads INTEGER DEFAULT 0,
			total_views INTEGER DEFAULT 0
		)`,
	}

	for _, stmt := range schema {
		if _, err := b.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}

// Close closes the database handle.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// LoadMovies returns the stored collection in its saved order, or nil when
// no rows exist.
func (b *SQLiteBackend) LoadMovies() ([]models.Movie, error) {
	rows, err := b.db.Query(`SELECT id, title, category, genre, year, rating, description, poster, download_links, views, downloads
		FROM movies ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}
	defer rows.Close()

	var movies []models.Movie
	for rows.Next() {
		var m models.Movie
		var links string
		if err := rows.Scan(&m.ID, &m.Title, &m.Category, &m.Genre, &m.Year, &m.Rating, &m.Description, &m.Poster, &links, &m.Views, &m.Downloads); err != nil {
			return nil, fmt.Errorf("failed to scan movie row: %w", err)
		}
		if links != "" {
			if err := json.Unmarshal([]byte(links), &m.DownloadLinks); err != nil {
				return nil, fmt.Errorf("failed to decode download links: %w", err)
			}
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}
	return movies, nil
}

// SaveMovies replaces all stored rows with the given collection inside one
// transaction. Save order is recorded so loads preserve it.
func (b *SQLiteBackend) SaveMovies(movies []models.Movie) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM movies`); err != nil {
		return fmt.Errorf("failed to clear movies: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO movies (id, position, title, category, genre, year, rating, description, poster, download_links, views, downloads)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range movies {
		links, err := json.Marshal(m.DownloadLinks)
		if err != nil {
			return fmt.Errorf("failed to encode download links: %w", err)
		}
		if _, err := stmt.Exec(m.ID, i, m.Title, m.Category, m.Genre, m.Year, m.Rating, m.Description, m.Poster, string(links), m.Views, m.Downloads); err != nil {
			return fmt.Errorf("failed to insert movie: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit movies: %w", err)
	}
	return nil
}

// LoadBanner returns the banner row, or nil when it has never been saved.
func (b *SQLiteBackend) LoadBanner() (*models.Banner, error) {
	var banner models.Banner
	err := b.db.QueryRow(`SELECT title, subtitle, background_image FROM banner WHERE id = 1`).
		Scan(&banner.Title, &banner.Subtitle, &banner.BackgroundImage)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load banner: %w", err)
	}
	return &banner, nil
}

// SaveBanner upserts the singleton banner row.
func (b *SQLiteBackend) SaveBanner(banner models.Banner) error {
	_, err := b.db.Exec(`INSERT INTO banner (id, title, subtitle, background_image) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title = excluded.title, subtitle = excluded.subtitle, background_image = excluded.background_image`,
		banner.Title, banner.Subtitle, banner.BackgroundImage)
	if err != nil {
		return fmt.Errorf("failed to save banner: %w", err)
	}
	return nil
}

// LoadStats returns the stats row, or nil when it has never been saved.
func (b *SQLiteBackend) LoadStats() (*models.Stats, error) {
	var stats models.Stats
	err := b.db.QueryRow(`SELECT total_downloads, total_views FROM stats WHERE id = 1`).
		Scan(&stats.TotalDownloads, &stats.TotalViews)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}
	return &stats, nil
}

// SaveStats upserts the singleton stats row.
func (b *SQLiteBackend) SaveStats(stats models.Stats) error {
	_, err := b.db.Exec(`INSERT INTO stats (id, total_downloads, total_views) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET total_downloads = excluded.total_downloads, total_views = excluded.total_views`,
		stats.TotalDownloads, stats.TotalViews)
	if err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}
