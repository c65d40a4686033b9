// Package client mirrors the repository service from the consumer side: it
// reads through the HTTP API when reachable and falls back to a local
// shadow copy when not. Writes always land in the shadow first, so a
// caller's mutation survives a network failure on the same client.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/amaumene/gomoviez/internal/models"
	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// ErrMovieNotFound is reported by identifier-based operations when no
// movie matches.
var ErrMovieNotFound = errors.New("movie not found")

// Shadow cache keys, one per logical document.
const (
	shadowMovies = "movies"
	shadowBanner = "banner"
	shadowStats  = "stats"
)

// Client is the sync cache. Connectivity transitions come in through
// SetOnline; they are signaled by the embedding environment, not polled.
type Client struct {
	baseURL    string
	httpClient *http.Client
	shadow     *cache.Cache
	online     atomic.Bool
	logger     *logrus.Logger
}

// New creates a client for the API at baseURL, starting in online mode.
func New(baseURL string, logger *logrus.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		shadow: cache.New(cache.NoExpiration, 0),
		logger: logger,
	}
	c.online.Store(true)
	return c
}

// SetOnline records a connectivity change. The offline-to-online
// transition triggers one best-effort push of the shadowed movie
// collection to the server. The push is last-writer-wins: a remote change
// made while this client was offline gets overwritten without any version
// check.
func (c *Client) SetOnline(online bool) {
	was := c.online.Swap(online)
	if was == online {
		return
	}
	if online {
		c.logger.Info("Back online, syncing local data")
		c.syncOfflineData()
	} else {
		c.logger.Info("Gone offline, using local cache")
	}
}

// Online reports the current connectivity mode.
func (c *Client) Online() bool {
	return c.online.Load()
}

func (c *Client) syncOfflineData() {
	movies, ok := c.shadowedMovies()
	if !ok || len(movies) == 0 {
		return
	}
	if err := c.postJSON("/api/movies", movies); err != nil {
		c.logger.WithError(err).Error("Failed to sync offline data")
	}
}

// LoadMovies returns the collection: from the server when online and
// reachable (refreshing the shadow), otherwise from the shadow. A missing
// shadow yields an empty collection.
func (c *Client) LoadMovies() []models.Movie {
	if !c.online.Load() {
		movies, _ := c.shadowedMovies()
		return movies
	}

	var movies []models.Movie
	if err := c.getJSON("/api/movies", &movies); err != nil {
		c.logger.WithError(err).Warn("Failed to load movies from server, using local copy")
		shadowed, _ := c.shadowedMovies()
		return shadowed
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	c.shadow.Set(shadowMovies, models.CloneMovies(movies), cache.NoExpiration)
	return movies
}

// SaveMovies writes the collection to the shadow unconditionally, then
// attempts the remote write when online. A remote failure leaves the save
// durable locally only and is returned to the caller.
func (c *Client) SaveMovies(movies []models.Movie) error {
	c.shadow.Set(shadowMovies, models.CloneMovies(movies), cache.NoExpiration)

	if !c.online.Load() {
		c.logger.Info("Offline, movies saved to local cache only")
		return nil
	}
	if err := c.postJSON("/api/movies", movies); err != nil {
		return fmt.Errorf("failed to save movies to server: %w", err)
	}
	return nil
}

// LoadBanner returns the banner, shadowing like LoadMovies. With neither
// server nor shadow available it returns the hardcoded default.
func (c *Client) LoadBanner() models.Banner {
	if !c.online.Load() {
		return c.shadowedBanner()
	}

	var banner models.Banner
	if err := c.getJSON("/api/banner", &banner); err != nil {
		c.logger.WithError(err).Warn("Failed to load banner from server, using local copy")
		return c.shadowedBanner()
	}
	c.shadow.Set(shadowBanner, banner, cache.NoExpiration)
	return banner
}

// SaveBanner writes the banner shadow-first, then remotely when online.
func (c *Client) SaveBanner(banner models.Banner) error {
	c.shadow.Set(shadowBanner, banner, cache.NoExpiration)

	if !c.online.Load() {
		c.logger.Info("Offline, banner saved to local cache only")
		return nil
	}
	if err := c.postJSON("/api/banner", banner); err != nil {
		return fmt.Errorf("failed to save banner to server: %w", err)
	}
	return nil
}

// LoadStats returns the aggregate counters, shadowing like LoadMovies.
func (c *Client) LoadStats() models.Stats {
	if !c.online.Load() {
		return c.shadowedStats()
	}

	var stats models.Stats
	if err := c.getJSON("/api/stats", &stats); err != nil {
		c.logger.WithError(err).Warn("Failed to load stats from server, using local copy")
		return c.shadowedStats()
	}
	c.shadow.Set(shadowStats, stats, cache.NoExpiration)
	return stats
}

// SaveStats writes the counters shadow-first, then remotely when online.
func (c *Client) SaveStats(stats models.Stats) error {
	c.shadow.Set(shadowStats, stats, cache.NoExpiration)

	if !c.online.Load() {
		c.logger.Info("Offline, stats saved to local cache only")
		return nil
	}
	if err := c.postJSON("/api/stats", stats); err != nil {
		return fmt.Errorf("failed to save stats to server: %w", err)
	}
	return nil
}

// AddMovie appends a new movie with a creation-timestamp identifier and
// zeroed counters, then saves the whole collection.
func (c *Client) AddMovie(movie models.Movie) (models.Movie, error) {
	if err := movie.Validate(); err != nil {
		return models.Movie{}, err
	}

	movies := c.LoadMovies()
	movie.ID = time.Now().UnixMilli()
	movie.Views = 0
	movie.Downloads = 0
	movies = append(movies, movie)

	if err := c.SaveMovies(movies); err != nil {
		return models.Movie{}, err
	}
	return movie, nil
}

// UpdateMovie replaces the editable fields of one movie, keeping its
// identifier and counters.
func (c *Client) UpdateMovie(id int64, updated models.Movie) (models.Movie, error) {
	if err := updated.Validate(); err != nil {
		return models.Movie{}, err
	}

	movies := c.LoadMovies()
	for i := range movies {
		if movies[i].ID != id {
			continue
		}
		updated.ID = id
		updated.Views = movies[i].Views
		updated.Downloads = movies[i].Downloads
		movies[i] = updated
		if err := c.SaveMovies(movies); err != nil {
			return models.Movie{}, err
		}
		return updated, nil
	}
	return models.Movie{}, ErrMovieNotFound
}

// DeleteMovie removes one movie by identifier and saves the collection.
func (c *Client) DeleteMovie(id int64) error {
	movies := c.LoadMovies()
	kept := movies[:0]
	for _, m := range movies {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(movies) {
		return ErrMovieNotFound
	}
	return c.SaveMovies(kept)
}

// IncrementViews bumps one movie's view counter and the aggregate total.
// The read-modify-write runs client side so it also works fully offline
// against the shadow.
func (c *Client) IncrementViews(id int64) error {
	return c.increment(id, func(m *models.Movie) { m.Views++ }, func(st *models.Stats) { st.TotalViews++ })
}

// IncrementDownloads bumps one movie's download counter and the aggregate
// total, like IncrementViews.
func (c *Client) IncrementDownloads(id int64) error {
	return c.increment(id, func(m *models.Movie) { m.Downloads++ }, func(st *models.Stats) { st.TotalDownloads++ })
}

func (c *Client) increment(id int64, bumpMovie func(*models.Movie), bumpStats func(*models.Stats)) error {
	movies := c.LoadMovies()
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
	if err := c.SaveMovies(movies); err != nil {
		return err
	}

	stats := c.LoadStats()
	bumpStats(&stats)
	return c.SaveStats(stats)
}

// Status describes the client's connectivity for display purposes.
type Status struct {
	Online  bool   `json:"isOnline"`
	BaseURL string `json:"baseURL"`
}

// GetStatus returns the current connectivity status.
func (c *Client) GetStatus() Status {
	return Status{
		Online:  c.online.Load(),
		BaseURL: c.baseURL,
	}
}

func (c *Client) shadowedMovies() ([]models.Movie, bool) {
	v, ok := c.shadow.Get(shadowMovies)
	if !ok {
		return []models.Movie{}, false
	}
	movies, ok := v.([]models.Movie)
	if !ok {
		return []models.Movie{}, false
	}
	out := models.CloneMovies(movies)
	if out == nil {
		out = []models.Movie{}
	}
	return out, true
}

func (c *Client) shadowedBanner() models.Banner {
	if v, ok := c.shadow.Get(shadowBanner); ok {
		if banner, ok := v.(models.Banner); ok {
			return banner
		}
	}
	return models.DefaultBanner()
}

func (c *Client) shadowedStats() models.Stats {
	if v, ok := c.shadow.Get(shadowStats); ok {
		if stats, ok := v.(models.Stats); ok {
			return stats
		}
	}
	return models.DefaultStats()
}

func (c *Client) getJSON(path string, out any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) postJSON(path string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return nil
}
