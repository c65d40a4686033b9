package models

import "fmt"

// DownloadLink is one quality variant offered for a movie.
type DownloadLink struct {
	Quality string `json:"quality"`
	Size    string `json:"size"`
	URL     string `json:"url"`
}

// Movie represents a single catalog entry.
type Movie struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Genre    string   `json:"genre"`
	Year     int      `json:"year,omitempty"`
	Rating   float64  `json:"rating,omitempty"`

	Description string `json:"description,omitempty"`
	Poster      string `json:"poster"`

	// DownloadLinks is never empty for a persisted movie.
	DownloadLinks []DownloadLink `json:"downloadLinks"`

	// Counters
	Views     int64 `json:"views"`
	Downloads int64 `json:"downloads"`
}

// Validate checks the constraints enforced by the admin form.
func (m *Movie) Validate() error {
	if m.Title == "" {
		return fmt.Errorf("title is required")
	}
	if len(m.DownloadLinks) == 0 {
		return fmt.Errorf("at least one download link is required")
	}
	if m.Rating < 0 || m.Rating > 10 {
		return fmt.Errorf("rating must be between 0 and 10")
	}
	return nil
}

// CloneMovies returns a deep copy of a movie collection so callers can
// mutate the result without aliasing stored state.
func CloneMovies(movies []Movie) []Movie {
	if movies == nil {
		return nil
	}
	out := make([]Movie, len(movies))
	copy(out, movies)
	for i := range out {
		if movies[i].DownloadLinks != nil {
			out[i].DownloadLinks = make([]DownloadLink, len(movies[i].DownloadLinks))
			copy(out[i].DownloadLinks, movies[i].DownloadLinks)
		}
	}
	return out
}
