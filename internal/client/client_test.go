package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/amaumene/gomoviez/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fakeServer is a minimal in-memory rendition of the HTTP API with write
// counters, so the tests can observe what the sync cache pushes.
type fakeServer struct {
	mu         sync.Mutex
	movies     []models.Movie
	banner     *models.Banner
	stats      models.Stats
	moviePosts int
}

func (f *fakeServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/movies", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		movies := f.movies
		if movies == nil {
			movies = []models.Movie{}
		}
		json.NewEncoder(w).Encode(movies)
	})
	mux.HandleFunc("POST /api/movies", func(w http.ResponseWriter, r *http.Request) {
		var movies []models.Movie
		if err := json.NewDecoder(r.Body).Decode(&movies); err != nil {
			http.Error(w, "Invalid movies data", http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.movies = movies
		f.moviePosts++
		f.mu.Unlock()
		w.Write([]byte("Movies updated"))
	})
	mux.HandleFunc("GET /api/banner", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		banner := models.DefaultBanner()
		if f.banner != nil {
			banner = *f.banner
		}
		json.NewEncoder(w).Encode(banner)
	})
	mux.HandleFunc("POST /api/banner", func(w http.ResponseWriter, r *http.Request) {
		var banner models.Banner
		if err := json.NewDecoder(r.Body).Decode(&banner); err != nil {
			http.Error(w, "Invalid banner data", http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.banner = &banner
		f.mu.Unlock()
		w.Write([]byte("Banner updated"))
	})
	mux.HandleFunc("GET /api/stats", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		json.NewEncoder(w).Encode(f.stats)
	})
	mux.HandleFunc("POST /api/stats", func(w http.ResponseWriter, r *http.Request) {
		var stats models.Stats
		if err := json.NewDecoder(r.Body).Decode(&stats); err != nil {
			http.Error(w, "Invalid stats data", http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.stats = stats
		f.mu.Unlock()
		w.Write([]byte("Stats updated"))
	})
	return mux
}

func (f *fakeServer) movieCollection() []models.Movie {
	f.mu.Lock()
	defer f.mu.Unlock()
	return models.CloneMovies(f.movies)
}

func (f *fakeServer) postCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.moviePosts
}

func catalog() []models.Movie {
	return []models.Movie{
		{
			ID:    1,
			Title: "First",
			DownloadLinks: []models.DownloadLink{
				{Quality: "HD", Size: "1.0 GB", URL: "https://example.com/a"},
			},
		},
		{
			ID:    2,
			Title: "Second",
			DownloadLinks: []models.DownloadLink{
				{Quality: "HD", Size: "2.0 GB", URL: "https://example.com/b"},
			},
		},
	}
}

func TestLoadMoviesRefreshesShadow(t *testing.T) {
	fake := &fakeServer{movies: catalog()}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := New(srv.URL, testLogger())
	require.Equal(t, catalog(), c.LoadMovies())

	// Going offline serves the shadow populated by the online read.
	c.SetOnline(false)
	require.Equal(t, catalog(), c.LoadMovies())
}

func TestLoadMoviesFallsBackOnNetworkFailure(t *testing.T) {
	fake := &fakeServer{movies: catalog()}
	srv := httptest.NewServer(fake.handler())

	c := New(srv.URL, testLogger())
	require.Equal(t, catalog(), c.LoadMovies())

	// Still in online mode, but the server is gone: stale reads are fine.
	srv.Close()
	require.Equal(t, catalog(), c.LoadMovies())
}

func TestOfflineReadWithoutShadowIsEmpty(t *testing.T) {
	c := New("http://127.0.0.1:0", testLogger())
	c.SetOnline(false)

	require.Empty(t, c.LoadMovies())
	require.Equal(t, models.DefaultBanner(), c.LoadBanner())
	require.Equal(t, models.Stats{}, c.LoadStats())
}

func TestOfflineWriteIsDurableLocally(t *testing.T) {
	c := New("http://127.0.0.1:0", testLogger())
	c.SetOnline(false)

	require.NoError(t, c.SaveMovies(catalog()))
	require.Equal(t, catalog(), c.LoadMovies())
}

func TestReconnectPushesShadowedMovies(t *testing.T) {
	fake := &fakeServer{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := New(srv.URL, testLogger())
	c.SetOnline(false)
	require.NoError(t, c.SaveMovies(catalog()))
	require.Equal(t, 0, fake.postCount())

	c.SetOnline(true)
	require.Equal(t, 1, fake.postCount())
	require.Equal(t, catalog(), fake.movieCollection())
}

func TestReconnectWithEmptyShadowPushesNothing(t *testing.T) {
	fake := &fakeServer{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := New(srv.URL, testLogger())
	c.SetOnline(false)
	c.SetOnline(true)
	require.Equal(t, 0, fake.postCount())
}

func TestSaveMoviesKeepsShadowOnRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger())
	err := c.SaveMovies(catalog())
	require.Error(t, err)

	// The mutation is still durable locally.
	c.SetOnline(false)
	require.Equal(t, catalog(), c.LoadMovies())
}

func TestAddUpdateDeleteMovie(t *testing.T) {
	fake := &fakeServer{movies: catalog()}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := New(srv.URL, testLogger())

	added, err := c.AddMovie(models.Movie{
		Title: "Third",
		DownloadLinks: []models.DownloadLink{
			{Quality: "HD", Size: "3.0 GB", URL: "https://example.com/c"},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, added.ID)
	require.Len(t, c.LoadMovies(), 3)

	updated, err := c.UpdateMovie(added.ID, models.Movie{
		Title: "Third, Revised",
		DownloadLinks: []models.DownloadLink{
			{Quality: "1080p", Size: "3.5 GB", URL: "https://example.com/c2"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, added.ID, updated.ID)

	_, err = c.UpdateMovie(9999, updated)
	require.ErrorIs(t, err, ErrMovieNotFound)

	require.NoError(t, c.DeleteMovie(added.ID))
	require.Len(t, c.LoadMovies(), 2)
	require.ErrorIs(t, c.DeleteMovie(added.ID), ErrMovieNotFound)
}

func TestAddMovieValidation(t *testing.T) {
	c := New("http://127.0.0.1:0", testLogger())
	c.SetOnline(false)

	_, err := c.AddMovie(models.Movie{Title: "No links"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "download link")
}

func TestOfflineIncrementAgainstShadow(t *testing.T) {
	c := New("http://127.0.0.1:0", testLogger())
	c.SetOnline(false)
	require.NoError(t, c.SaveMovies(catalog()))

	require.NoError(t, c.IncrementViews(1))
	require.NoError(t, c.IncrementDownloads(2))
	require.NoError(t, c.IncrementDownloads(2))
	require.ErrorIs(t, c.IncrementViews(42), ErrMovieNotFound)

	movies := c.LoadMovies()
	require.Equal(t, int64(1), movies[0].Views)
	require.Equal(t, int64(2), movies[1].Downloads)

	stats := c.LoadStats()
	require.Equal(t, int64(1), stats.TotalViews)
	require.Equal(t, int64(2), stats.TotalDownloads)
}

func TestBannerAndStatsRoundTrip(t *testing.T) {
	fake := &fakeServer{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := New(srv.URL, testLogger())

	banner := models.Banner{Title: "Hello", Subtitle: "World", BackgroundImage: "https://example.com/bg.jpg"}
	require.NoError(t, c.SaveBanner(banner))
	require.Equal(t, banner, c.LoadBanner())

	stats := models.Stats{TotalDownloads: 5, TotalViews: 9}
	require.NoError(t, c.SaveStats(stats))
	require.Equal(t, stats, c.LoadStats())
}

func TestGetStatus(t *testing.T) {
	c := New("http://example.com/", testLogger())
	status := c.GetStatus()
	require.True(t, status.Online)
	require.Equal(t, "http://example.com", status.BaseURL)

	c.SetOnline(false)
	require.False(t, c.GetStatus().Online)
}
