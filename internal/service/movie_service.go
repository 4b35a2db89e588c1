// internal/service/movie_service.go
package service

import (
	"context"
	"log"
	"sync"

	"github.com/Boggioo/movielist/internal/cache"
	"github.com/Boggioo/movielist/internal/models"
	"github.com/Boggioo/movielist/internal/tmdb"
)

const (
	homePopularLimit  = 20
	homeTopRatedLimit = 30
	homeGenreLimit    = 20

	genresCacheKey = "tmdb:genres"
	genresCacheTTL = 24 * 60 * 60 // el catálogo de géneros es casi estático
)

// Géneros fijos de la portada: Acción, Comedia, Drama, Terror,
// Romance, Ciencia ficción.
var showcaseGenreIDs = []int{28, 35, 18, 27, 10749, 878}

// MovieService es el boundary de agregación sobre el cliente TMDB:
// acá (y solo acá) se aplica la política de degradación. Listados que
// fallan quedan como lista vacía; lookups de una sola entidad que
// fallan devuelven nil. El proveedor caído nunca tumba el proceso.
type MovieService struct {
	tmdb *tmdb.Client
}

func NewMovieService(client *tmdb.Client) *MovieService {
	return &MovieService{tmdb: client}
}

// Genres devuelve el catálogo de géneros, cacheado en Redis.
// Proveedor caído => lista vacía.
func (s *MovieService) Genres(ctx context.Context) []tmdb.Genre {
	var cached []tmdb.Genre
	if ok, err := cache.GetJSON(ctx, genresCacheKey, &cached); err == nil && ok {
		return cached
	}

	genres, err := s.tmdb.GetMovieGenres(ctx)
	if err != nil {
		log.Printf("[movies] error recuperando géneros: %v", err)
		return []tmdb.Genre{}
	}

	if err := cache.SetJSON(ctx, genresCacheKey, genres, genresCacheTTL); err != nil {
		log.Printf("[movies] error cacheando géneros en Redis: %v", err)
	}
	return genres
}

// Homepage arma la portada: populares, mejor votadas, catálogo de
// géneros y una vitrina por cada género destacado. Cada facet se pide
// en paralelo y falla por separado: un facet roto degrada a lista
// vacía y el resto se muestra igual.
func (s *MovieService) Homepage(ctx context.Context) *models.Homepage {
	home := &models.Homepage{
		PopularMovies:  []tmdb.MovieSummary{},
		TopRatedMovies: []tmdb.MovieSummary{},
		AllGenres:      []tmdb.Genre{},
	}

	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		if movies, err := s.tmdb.GetPopularMovies(ctx, homePopularLimit); err != nil {
			log.Printf("[home] facet popular falló: %v", err)
		} else {
			home.PopularMovies = movies
		}
	}()
	go func() {
		defer wg.Done()
		if movies, err := s.tmdb.GetTopRatedMovies(ctx, homeTopRatedLimit); err != nil {
			log.Printf("[home] facet top-rated falló: %v", err)
		} else {
			home.TopRatedMovies = movies
		}
	}()
	go func() {
		defer wg.Done()
		home.AllGenres = s.Genres(ctx)
	}()
	wg.Wait()

	// vitrinas por género, también en paralelo, preservando el orden
	showcases := make([]models.GenreShowcase, len(showcaseGenreIDs))

	wg.Add(len(showcaseGenreIDs))
	for i, genreID := range showcaseGenreIDs {
		go func(i, genreID int) {
			defer wg.Done()

			movies, err := s.tmdb.GetMoviesByGenre(ctx, genreID, homeGenreLimit)
			if err != nil {
				log.Printf("[home] facet género %d falló: %v", genreID, err)
				movies = []tmdb.MovieSummary{}
			}

			showcases[i] = models.GenreShowcase{
				ID:     genreID,
				Name:   genreName(home.AllGenres, genreID),
				Movies: movies,
			}
		}(i, genreID)
	}
	wg.Wait()

	home.MoviesByGenre = showcases
	return home
}

// genreName resuelve el nombre en el catálogo. Los ids de género de
// una película y el catálogo vienen de llamadas independientes: si el
// lookup falla se degrada a una etiqueta genérica, nunca a un error.
func genreName(genres []tmdb.Genre, id int) string {
	for _, g := range genres {
		if g.ID == id {
			return g.Name
		}
	}
	return "Genere"
}

// Search ejecuta la búsqueda con filtros. Sin ningún filtro no llama
// al proveedor. Proveedor caído => lista vacía.
func (s *MovieService) Search(ctx context.Context, f tmdb.SearchFilters) []tmdb.MovieSummary {
	if f.Query == "" && f.Year == "" && f.Vote == "" && len(f.Genres) == 0 {
		return []tmdb.MovieSummary{}
	}

	movies, err := s.tmdb.SearchMovies(ctx, f)
	if err != nil {
		log.Printf("[movies] error en la búsqueda: %v", err)
		return []tmdb.MovieSummary{}
	}
	if movies == nil {
		movies = []tmdb.MovieSummary{}
	}
	return movies
}

// Details devuelve el bundle completo de una película o nil si el
// proveedor falló (el handler decide si eso es un 404).
func (s *MovieService) Details(ctx context.Context, movieID int) *tmdb.MovieDetail {
	detail, err := s.tmdb.GetMovieDetails(ctx, movieID)
	if err != nil {
		log.Printf("[movies] error recuperando detalle de %d: %v", movieID, err)
		return nil
	}
	return detail
}

// Person devuelve bio y filmografía de una persona, nil si el
// proveedor falló.
func (s *MovieService) Person(ctx context.Context, personID int) *tmdb.PersonDetail {
	person, err := s.tmdb.GetCastMemberDetails(ctx, personID)
	if err != nil {
		log.Printf("[movies] error recuperando persona %d: %v", personID, err)
		return nil
	}
	return person
}
