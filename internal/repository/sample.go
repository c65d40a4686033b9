package repository

import "github.com/amaumene/gomoviez/internal/models"

// SampleMovies returns the deterministic starter catalog used to seed an
// empty store.
func SampleMovies() []models.Movie {
	return []models.Movie{
		{
			ID:          1,
			Title:       "Vikram",
			Category:    models.CategoryTamil,
			Genre:       "Action, Thriller",
			Year:        2022,
			Rating:      8.5,
			Description: "A special agent investigates a murder case involving drug cartels.",
			Poster:      "https://images.unsplash.com/photo-1574269909862-7e1d70bb8078?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
			DownloadLinks: []models.DownloadLink{
				{Quality: "HD", Size: "1.2 GB", URL: "https://example.com/download1"},
				{Quality: "1080p", Size: "2.5 GB", URL: "https://example.com/download2"},
			},
			Views:     1500,
			Downloads: 320,
		},
		{
			ID:          2,
			Title:       "RRR",
			Category:    models.CategoryTelugu,
			Genre:       "Action, Drama",
			Year:        2022,
			Rating:      8.2,
			Description: "A fictional story about two legendary revolutionaries and their journey away from home.",
			Poster:      "https://images.unsplash.com/photo-1489599909698-6c8e8c0b8d8e?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
			DownloadLinks: []models.DownloadLink{
				{Quality: "HD", Size: "1.5 GB", URL: "https://example.com/download3"},
				{Quality: "4K", Size: "4.2 GB", URL: "https://example.com/download4"},
			},
			Views:     2200,
			Downloads: 450,
		},
		{
			ID:          3,
			Title:       "KGF Chapter 2",
			Category:    models.CategoryKannada,
			Genre:       "Action, Crime",
			Year:        2022,
			Rating:      8.8,
			Description: "Rocky takes control of the Kolar Gold Fields and his newfound power.",
			Poster:      "https://images.unsplash.com/photo-1574269909862-7e1d70bb8078?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
			DownloadLinks: []models.DownloadLink{
				{Quality: "HD", Size: "1.8 GB", URL: "https://example.com/download5"},
				{Quality: "1080p", Size: "3.1 GB", URL: "https://example.com/download6"},
			},
			Views:     3000,
			Downloads: 680,
		},
		{
			ID:          4,
			Title:       "Avatar: The Way of Water",
			Category:    models.CategoryEnglish,
			Genre:       "Sci-Fi, Adventure",
			Year:        2022,
			Rating:      7.9,
			Description: "Jake Sully and his family explore the regions of Pandora.",
			Poster:      "https://images.unsplash.com/photo-1574269909862-7e1d70bb8078?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
			DownloadLinks: []models.DownloadLink{
				{Quality: "HD", Size: "2.1 GB", URL: "https://example.com/download7"},
				{Quality: "4K", Size: "5.5 GB", URL: "https://example.com/download8"},
			},
			Views:     1800,
			Downloads: 290,
		},
	}
}
