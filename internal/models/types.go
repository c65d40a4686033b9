package models

// Category represents the language section a movie is listed under.
// The set is open: admin edits may introduce new values.
type Category string

const (
	CategoryTamil   Category = "tamil"
	CategoryTelugu  Category = "telugu"
	CategoryKannada Category = "kannada"
	CategoryEnglish Category = "english"
)
