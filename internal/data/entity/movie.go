package entity

import "strings"

type Genre string

const (
	GenreAction    Genre = "Action"
	GenreAdventure Genre = "Adventure"
	GenreComedy    Genre = "Comedy"
	GenreDrama     Genre = "Drama"
	GenreFantasy   Genre = "Fantasy"
	GenreHorror    Genre = "Horror"
	GenreThriller  Genre = "Thriller"
	GenreSciFi     Genre = "Sci-Fi"
	GenreCrime     Genre = "Crime"
)

// DefaultRate is applied when a new movie is created without a rate.
const DefaultRate = 5.0

type Movie struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Year     int     `json:"year"`
	Director string  `json:"director"`
	Duration int     `json:"duration"`
	Poster   string  `json:"poster"`
	Genre    []Genre `json:"genre"`
	Rate     float64 `json:"rate"`
}

// HasGenre reports whether the movie lists genre, ignoring case.
func (m *Movie) HasGenre(genre string) bool {
	for _, g := range m.Genre {
		if strings.EqualFold(string(g), genre) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers never share the genre slice.
func (m *Movie) Clone() *Movie {
	c := *m
	c.Genre = append([]Genre(nil), m.Genre...)
	return &c
}
