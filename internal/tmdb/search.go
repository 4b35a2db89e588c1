package tmdb

import (
	"net/url"
	"strconv"
	"strings"
)

// Endpoints de búsqueda: search/movie cuando hay query de texto,
// discover/movie para navegar solo con filtros.
const (
	EndpointSearch   = "search/movie"
	EndpointDiscover = "discover/movie"
)

// SearchFilters son los filtros tal cual llegan del usuario. Year y
// Vote se guardan como string: si no parsean como número se ignoran
// (filtro omitido), nunca es un error.
type SearchFilters struct {
	Query  string
	Year   string
	Vote   string
	Genres []string
}

// minVote devuelve el voto mínimo parseado y si el filtro aplica.
func (f SearchFilters) minVote() (float64, bool) {
	if f.Vote == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(f.Vote, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// genreIDs descarta entradas vacías o de solo espacios.
func (f SearchFilters) genreIDs() []string {
	var ids []string
	for _, g := range f.Genres {
		if strings.TrimSpace(g) != "" {
			ids = append(ids, g)
		}
	}
	return ids
}

// BuildSearchRequest transforma los filtros en el endpoint y los
// parámetros del proveedor. Es una función pura: acá no hay red.
func BuildSearchRequest(f SearchFilters) (endpoint string, params url.Values) {
	params = url.Values{}

	// parámetros base, siempre
	params.Set("include_adult", "false")
	params.Set("include_video", "false")
	params.Set("sort_by", "popularity.desc")
	params.Set("page", "1")

	endpoint = EndpointDiscover
	if f.Query != "" {
		endpoint = EndpointSearch
		params.Set("query", f.Query)
	}

	// filtro por año
	if f.Year != "" {
		if y, err := strconv.Atoi(f.Year); err == nil {
			params.Set("primary_release_year", strconv.Itoa(y))
		}
	}

	// filtro por voto mínimo: siempre acompañado de vote_count.gte=50
	// para descartar promedios altos con pocas votaciones
	if v, ok := f.minVote(); ok {
		params.Set("vote_average.gte", strconv.FormatFloat(v, 'f', -1, 64))
		params.Set("vote_count.gte", "50")
	}

	// filtro por géneros (ids unidos por coma)
	if ids := f.genreIDs(); len(ids) > 0 {
		params.Set("with_genres", strings.Join(ids, ","))
	}

	return endpoint, params
}
