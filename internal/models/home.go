package models

import "github.com/Boggioo/movielist/internal/tmdb"

// GenreShowcase es una vitrina de la homepage: un género con sus
// películas más populares.
type GenreShowcase struct {
	ID     int                 `json:"id"`
	Name   string              `json:"name"`
	Movies []tmdb.MovieSummary `json:"movies"`
}

// Homepage agrupa las secciones de la portada. Cada facet se recupera
// de forma independiente: si una falla queda como lista vacía, nunca
// tumba la página entera.
type Homepage struct {
	PopularMovies  []tmdb.MovieSummary `json:"popularMovies"`
	TopRatedMovies []tmdb.MovieSummary `json:"topRatedMovies"`
	MoviesByGenre  []GenreShowcase     `json:"moviesByGenre"`
	AllGenres      []tmdb.Genre        `json:"allGenres"`
}
