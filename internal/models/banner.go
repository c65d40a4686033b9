package models

// Banner is the singleton homepage banner document.
type Banner struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	BackgroundImage string `json:"backgroundImage"`
}

// DefaultBanner returns the hardcoded banner used when none has been saved.
// The banner is never deleted; resetting it means saving this value again.
func DefaultBanner() Banner {
	return Banner{
		Title:           "Welcome to 5 TR Moviez",
		Subtitle:        "Download your favorite movies in HD quality",
		BackgroundImage: "https://images.unsplash.com/photo-1489599909698-6c8e8c0b8d8e?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=2070&q=80",
	}
}
