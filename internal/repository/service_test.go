package repository

import (
	"errors"
	"io"
	"testing"

	"github.com/amaumene/gomoviez/internal/models"
	"github.com/amaumene/gomoviez/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestService() (*Service, *storage.MemoryBackend) {
	backend := storage.NewMemoryBackend()
	return NewService(backend, testLogger()), backend
}

func twoMovies() []models.Movie {
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

func TestBootstrapSeedsEmptyStore(t *testing.T) {
	svc, _ := newTestService()

	movies := svc.LoadMovies()
	require.NotEmpty(t, movies)
	require.Equal(t, SampleMovies(), movies)

	// A second cold load against another empty store yields the same set.
	other, _ := newTestService()
	require.Equal(t, movies, other.LoadMovies())
}

func TestBootstrapSkipsPopulatedStore(t *testing.T) {
	svc, backend := newTestService()
	require.NoError(t, backend.SaveMovies(twoMovies()))

	movies := svc.LoadMovies()
	require.Equal(t, twoMovies(), movies)
}

func TestBootstrapRunsOncePerProcess(t *testing.T) {
	svc, backend := newTestService()

	svc.LoadMovies()
	require.NoError(t, svc.SaveMovies([]models.Movie{}))

	// Deleting everything mid-session must not re-seed until the next
	// cold start.
	require.Empty(t, svc.LoadMovies())

	// A fresh service over the same (now empty) backend re-seeds.
	fresh := NewService(backend, testLogger())
	require.Equal(t, SampleMovies(), fresh.LoadMovies())
}

func TestSaveMoviesReplacesWholeCollection(t *testing.T) {
	svc, _ := newTestService()
	svc.LoadMovies() // seeds samples

	want := twoMovies()
	require.NoError(t, svc.SaveMovies(want))
	require.Equal(t, want, svc.LoadMovies())
}

func TestBannerDefaultsAndRoundTrip(t *testing.T) {
	svc, _ := newTestService()

	require.Equal(t, models.DefaultBanner(), svc.LoadBanner())

	want := models.Banner{Title: "Hello", Subtitle: "World", BackgroundImage: "https://example.com/bg.jpg"}
	require.NoError(t, svc.SaveBanner(want))
	require.Equal(t, want, svc.LoadBanner())
}

func TestStatsDefaultsAndRoundTrip(t *testing.T) {
	svc, _ := newTestService()

	require.Equal(t, models.Stats{}, svc.LoadStats())

	want := models.Stats{TotalDownloads: 7, TotalViews: 11}
	require.NoError(t, svc.SaveStats(want))
	require.Equal(t, want, svc.LoadStats())
}

func TestIncrementViews(t *testing.T) {
	svc, _ := newTestService()
	require.NoError(t, svc.SaveMovies(twoMovies()))

	require.NoError(t, svc.IncrementViews(1))

	movies := svc.LoadMovies()
	require.Equal(t, int64(1), movies[0].Views)
	require.Equal(t, int64(0), movies[1].Views)
	require.Equal(t, int64(1), svc.LoadStats().TotalViews)
	require.Equal(t, int64(0), svc.LoadStats().TotalDownloads)
}

func TestIncrementNotFoundLeavesStateUntouched(t *testing.T) {
	svc, _ := newTestService()
	require.NoError(t, svc.SaveMovies(twoMovies()))

	err := svc.IncrementViews(99)
	require.ErrorIs(t, err, ErrMovieNotFound)

	require.Equal(t, twoMovies(), svc.LoadMovies())
	require.Equal(t, models.Stats{}, svc.LoadStats())
}

func TestIncrementDownloadsScenario(t *testing.T) {
	svc, _ := newTestService()
	require.NoError(t, svc.SaveMovies(twoMovies()))

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.IncrementDownloads(2))
	}

	movies := svc.LoadMovies()
	require.Equal(t, int64(0), movies[0].Downloads)
	require.Equal(t, int64(3), movies[1].Downloads)
	require.Equal(t, int64(3), svc.LoadStats().TotalDownloads)
}

// failingBackend simulates an unreachable store.
type failingBackend struct{}

var errBackendDown = errors.New("backend down")

func (failingBackend) LoadMovies() ([]models.Movie, error) { return nil, errBackendDown }
func (failingBackend) SaveMovies([]models.Movie) error     { return errBackendDown }
func (failingBackend) LoadBanner() (*models.Banner, error) { return nil, errBackendDown }
func (failingBackend) SaveBanner(models.Banner) error      { return errBackendDown }
func (failingBackend) LoadStats() (*models.Stats, error)   { return nil, errBackendDown }
func (failingBackend) SaveStats(models.Stats) error        { return errBackendDown }
func (failingBackend) Close() error                        { return nil }

func TestReadsDegradeToDefaultsWhenBackendDown(t *testing.T) {
	svc := NewService(failingBackend{}, testLogger())

	require.Empty(t, svc.LoadMovies())
	require.Equal(t, models.DefaultBanner(), svc.LoadBanner())
	require.Equal(t, models.Stats{}, svc.LoadStats())
}

func TestWritesSurfaceBackendErrors(t *testing.T) {
	svc := NewService(failingBackend{}, testLogger())

	require.Error(t, svc.SaveMovies(twoMovies()))
	require.Error(t, svc.SaveBanner(models.DefaultBanner()))
	require.Error(t, svc.SaveStats(models.Stats{}))
	require.Error(t, svc.IncrementViews(1))
}
