package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Boggioo/movielist/internal/tmdb"
)

// En los tests Redis no está inicializado: cache.GetJSON se comporta
// como cache miss y todo va directo al proveedor fake.

func newMovieService(t *testing.T, h http.Handler) *MovieService {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewMovieService(tmdb.NewClient(srv.URL, "test-key", "it-IT", "IT"))
}

func okJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}
}

// homeMux arma un proveedor fake con todos los endpoints que usa la
// portada.
func homeMux(overrides map[string]http.HandlerFunc) *http.ServeMux {
	handlers := map[string]http.HandlerFunc{
		"/movie/popular":    okJSON(`{"results":[{"id":1,"title":"pop"}]}`),
		"/movie/top_rated":  okJSON(`{"results":[{"id":2,"title":"top"}]}`),
		"/genre/movie/list": okJSON(`{"genres":[{"id":28,"name":"Azione"},{"id":35,"name":"Commedia"}]}`),
		"/discover/movie":   okJSON(`{"results":[{"id":3,"title":"discover"}]}`),
	}
	for path, h := range overrides {
		handlers[path] = h
	}
	mux := http.NewServeMux()
	for path, h := range handlers {
		mux.HandleFunc(path, h)
	}
	return mux
}

func TestHomepageAllFacetsOK(t *testing.T) {
	svc := newMovieService(t, homeMux(nil))

	home := svc.Homepage(context.Background())

	if len(home.PopularMovies) != 1 || home.PopularMovies[0].ID != 1 {
		t.Errorf("popular = %+v", home.PopularMovies)
	}
	if len(home.TopRatedMovies) != 1 || home.TopRatedMovies[0].ID != 2 {
		t.Errorf("topRated = %+v", home.TopRatedMovies)
	}
	if len(home.MoviesByGenre) != len(showcaseGenreIDs) {
		t.Fatalf("vitrinas = %d", len(home.MoviesByGenre))
	}

	// nombres resueltos contra el catálogo, con fallback para los ids
	// que el catálogo no trae
	if home.MoviesByGenre[0].Name != "Azione" {
		t.Errorf("vitrina 28 = %q", home.MoviesByGenre[0].Name)
	}
	if home.MoviesByGenre[2].Name != "Genere" {
		t.Errorf("vitrina sin catálogo = %q, se esperaba el fallback", home.MoviesByGenre[2].Name)
	}
}

func TestHomepageFacetDegradesAlone(t *testing.T) {
	// top-rated caído: su lista queda vacía y el resto se puebla igual
	svc := newMovieService(t, homeMux(map[string]http.HandlerFunc{
		"/movie/top_rated": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(500)
		},
	}))

	home := svc.Homepage(context.Background())

	if len(home.TopRatedMovies) != 0 {
		t.Errorf("topRated = %+v, se esperaba vacío", home.TopRatedMovies)
	}
	if len(home.PopularMovies) != 1 {
		t.Errorf("popular = %+v, no debería degradar", home.PopularMovies)
	}
	for _, g := range home.MoviesByGenre {
		if len(g.Movies) != 1 {
			t.Errorf("vitrina %d = %+v, no debería degradar", g.ID, g.Movies)
		}
	}
}

func TestHomepageProviderDown(t *testing.T) {
	// proveedor entero caído: portada con todo vacío, nunca un error
	svc := newMovieService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))

	home := svc.Homepage(context.Background())

	if len(home.PopularMovies) != 0 || len(home.TopRatedMovies) != 0 || len(home.AllGenres) != 0 {
		t.Errorf("home = %+v, se esperaba todo vacío", home)
	}
	if len(home.MoviesByGenre) != len(showcaseGenreIDs) {
		t.Errorf("vitrinas = %d, las vitrinas vacías se muestran igual", len(home.MoviesByGenre))
	}
}

func TestSearchWithoutFiltersSkipsProvider(t *testing.T) {
	called := false
	svc := newMovieService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		fmt.Fprint(w, `{"results":[]}`)
	}))

	out := svc.Search(context.Background(), tmdb.SearchFilters{})
	if called {
		t.Error("sin filtros no se llama al proveedor")
	}
	if len(out) != 0 {
		t.Errorf("out = %+v", out)
	}
}

func TestSearchDegradesToEmpty(t *testing.T) {
	svc := newMovieService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))

	out := svc.Search(context.Background(), tmdb.SearchFilters{Query: "matrix"})
	if out == nil || len(out) != 0 {
		t.Errorf("out = %+v, se esperaba lista vacía", out)
	}
}

func TestDetailsNilOnProviderFailure(t *testing.T) {
	svc := newMovieService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))

	if detail := svc.Details(context.Background(), 603); detail != nil {
		t.Errorf("detail = %+v, se esperaba nil", detail)
	}
}

func TestPersonNilOnProviderFailure(t *testing.T) {
	svc := newMovieService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))

	if person := svc.Person(context.Background(), 6384); person != nil {
		t.Errorf("person = %+v, se esperaba nil", person)
	}
}

func TestGenresDegradesToEmpty(t *testing.T) {
	svc := newMovieService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))

	genres := svc.Genres(context.Background())
	if genres == nil || len(genres) != 0 {
		t.Errorf("genres = %+v, se esperaba lista vacía", genres)
	}
}
