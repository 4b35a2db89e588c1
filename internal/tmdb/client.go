package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Errores del boundary con el proveedor. Los servicios deciden la
// política de degradación (lista vacía / nil) con errors.Is.
var (
	// ErrProviderUnavailable: red caída, timeout o status no-2xx.
	ErrProviderUnavailable = errors.New("tmdb: proveedor no disponible")
	// ErrSchemaMismatch: la respuesta no tiene la forma esperada.
	ErrSchemaMismatch = errors.New("tmdb: respuesta con esquema inesperado")
)

const (
	// DefaultListLimit es el tope por defecto de los listados.
	DefaultListLimit = 20
	// topRatedMinVotes: top_rated solo considera películas con una
	// cantidad mínima de votos.
	topRatedMinVotes = 100
	// maxCastMembers: el detalle trunca el cast a los primeros N.
	maxCastMembers = 8
	// maxPersonCredits: filmografía truncada a las N más recientes.
	maxPersonCredits = 20
)

// Client es el handle explícito hacia el API de TMDB: base URL,
// credencial, idioma y región se pasan por constructor, sin estado
// global. Es seguro compartirlo entre requests.
type Client struct {
	baseURL  string
	apiKey   string
	language string
	region   string
	httpc    *http.Client
}

func NewClient(baseURL, apiKey, language, region string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		language: language,
		region:   region,
		httpc: &http.Client{
			// timeout acotado por llamada: un timeout se trata igual
			// que un proveedor caído
			Timeout: 10 * time.Second,
		},
	}
}

// primaryLanguage saca el idioma primario del tag de locale
// ("it-IT" -> "it").
func (c *Client) primaryLanguage() string {
	lang, _, _ := strings.Cut(c.language, "-")
	return lang
}

// get hace un GET al proveedor y decodifica el JSON en dest.
func (c *Client) get(ctx context.Context, path string, params url.Values, dest any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)

	reqURL := c.baseURL + "/" + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s status %d", ErrProviderUnavailable, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSchemaMismatch, path, err)
	}
	return nil
}

// ====== LISTADOS ======

// GetMovieGenres devuelve el catálogo completo de géneros.
func (c *Client) GetMovieGenres(ctx context.Context) ([]Genre, error) {
	var out genreListResponse
	if err := c.get(ctx, "genre/movie/list", nil, &out); err != nil {
		return nil, err
	}
	return out.Genres, nil
}

// GetPopularMovies devuelve las películas más populares del momento.
func (c *Client) GetPopularMovies(ctx context.Context, limit int) ([]MovieSummary, error) {
	params := url.Values{}
	params.Set("page", "1")

	var out movieListResponse
	if err := c.get(ctx, "movie/popular", params, &out); err != nil {
		return nil, err
	}
	return capResults(out.Results, limit), nil
}

// GetTopRatedMovies devuelve las películas mejor votadas, considerando
// solo las que tienen al menos topRatedMinVotes votos.
func (c *Client) GetTopRatedMovies(ctx context.Context, limit int) ([]MovieSummary, error) {
	params := url.Values{}
	params.Set("page", "1")
	params.Set("vote_count.gte", strconv.Itoa(topRatedMinVotes))

	var out movieListResponse
	if err := c.get(ctx, "movie/top_rated", params, &out); err != nil {
		return nil, err
	}
	return capResults(out.Results, limit), nil
}

// GetMoviesByGenre devuelve películas de un género, por popularidad
// descendente.
func (c *Client) GetMoviesByGenre(ctx context.Context, genreID, limit int) ([]MovieSummary, error) {
	params := url.Values{}
	params.Set("with_genres", strconv.Itoa(genreID))
	params.Set("sort_by", "popularity.desc")
	params.Set("page", "1")
	params.Set("include_adult", "false")

	var out movieListResponse
	if err := c.get(ctx, EndpointDiscover, params, &out); err != nil {
		return nil, err
	}
	return capResults(out.Results, limit), nil
}

// SearchMovies ejecuta la búsqueda construida por BuildSearchRequest y
// re-filtra el resultado client-side (FilterResults).
func (c *Client) SearchMovies(ctx context.Context, f SearchFilters) ([]MovieSummary, error) {
	endpoint, params := BuildSearchRequest(f)

	var out movieListResponse
	if err := c.get(ctx, endpoint, params, &out); err != nil {
		return nil, err
	}
	return FilterResults(out.Results, f), nil
}

func capResults(results []MovieSummary, limit int) []MovieSummary {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// ====== DETALLE DE PELÍCULA ======

// GetMovieDetails arma el bundle completo de una película. Los cinco
// facets (details, credits, videos, providers, similar) se piden en
// paralelo y el armado es todo-o-nada: si falla cualquiera, falla el
// detalle entero (los campos del bundle son interdependientes, p.e. el
// ranking de similares necesita los géneros de la referencia).
func (c *Client) GetMovieDetails(ctx context.Context, movieID int) (*MovieDetail, error) {
	id := strconv.Itoa(movieID)

	var (
		details   movieDetailsResponse
		credits   creditsResponse
		videos    videosResponse
		providers watchProvidersResponse
		similar   movieListResponse
	)

	fetches := []struct {
		path string
		dest any
	}{
		{"movie/" + id, &details},
		{"movie/" + id + "/credits", &credits},
		{"movie/" + id + "/videos", &videos},
		{"movie/" + id + "/watch/providers", &providers},
		{"movie/" + id + "/similar", &similar},
	}

	errCh := make(chan error, len(fetches))

	var wg sync.WaitGroup
	for _, f := range fetches {
		wg.Add(1)
		go func(path string, dest any) {
			defer wg.Done()
			if err := c.get(ctx, path, nil, dest); err != nil {
				errCh <- err
			}
		}(f.path, f.dest)
	}

	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}

	detail := &MovieDetail{
		ID:          details.ID,
		Title:       details.Title,
		Overview:    details.Overview,
		ReleaseDate: details.ReleaseDate,
		Runtime:     details.Runtime,
		VoteAverage: details.VoteAverage,
		VoteCount:   details.VoteCount,
		Genres:      details.Genres,
		PosterPath:  details.PosterPath,

		Cast:               truncateCast(credits.Cast),
		Director:           pickDirector(credits.Crew),
		Trailer:            pickTrailer(videos.Results, c.primaryLanguage()),
		StreamingProviders: mergeProviders(providers, c.region),
	}
	detail.SimilarMovies = RankSimilar(detail, similar.Results)

	return detail, nil
}

func truncateCast(cast []CastMember) []CastMember {
	if len(cast) > maxCastMembers {
		cast = cast[:maxCastMembers]
	}
	return cast
}

// pickDirector: primer miembro de la crew con job "Director", nil si
// no hay.
func pickDirector(crew []CrewMember) *CrewMember {
	for i := range crew {
		if crew[i].Job == "Director" {
			return &crew[i]
		}
	}
	return nil
}

// pickTrailer elige el trailer en orden de prioridad:
//  1. trailer oficial de YouTube en el idioma del locale
//  2. trailer oficial de YouTube en cualquier idioma
//  3. el primer video disponible
//  4. nil
func pickTrailer(videos []Video, language string) *Video {
	for i := range videos {
		v := &videos[i]
		if v.Type == "Trailer" && v.Official && v.Site == "YouTube" && v.Language == language {
			return v
		}
	}
	for i := range videos {
		v := &videos[i]
		if v.Type == "Trailer" && v.Official && v.Site == "YouTube" {
			return v
		}
	}
	if len(videos) > 0 {
		return &videos[0]
	}
	return nil
}

// mergeProviders combina las listas de suscripción, alquiler y compra
// de la región configurada en un único set por provider id. Un provider
// que aparece en varias listas acumula los tipos de disponibilidad en
// un solo entry. Región ausente => lista vacía, no es un error.
func mergeProviders(resp watchProvidersResponse, region string) []WatchProvider {
	merged := []WatchProvider{}

	rp, ok := resp.Results[region]
	if !ok {
		return merged
	}

	index := map[int]int{} // provider id -> posición en merged

	add := func(entries []providerEntry, kind string) {
		for _, e := range entries {
			if pos, ok := index[e.ProviderID]; ok {
				merged[pos].Availability = append(merged[pos].Availability, kind)
				continue
			}
			index[e.ProviderID] = len(merged)
			merged = append(merged, WatchProvider{
				ProviderID:   e.ProviderID,
				ProviderName: e.ProviderName,
				LogoPath:     e.LogoPath,
				Availability: []string{kind},
			})
		}
	}

	add(rp.Flatrate, AvailabilitySubscription)
	add(rp.Rent, AvailabilityRental)
	add(rp.Buy, AvailabilityPurchase)

	return merged
}

// ====== DETALLE DE PERSONA ======

// GetCastMemberDetails arma la bio y la filmografía de una persona
// (actor o director). Las dos sub-llamadas van en paralelo.
func (c *Client) GetCastMemberDetails(ctx context.Context, personID int) (*PersonDetail, error) {
	id := strconv.Itoa(personID)

	var (
		details personDetailsResponse
		credits personCreditsResponse
	)

	errCh := make(chan error, 2)
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := c.get(ctx, "person/"+id, nil, &details); err != nil {
			errCh <- err
		}
	}()
	go func() {
		defer wg.Done()
		if err := c.get(ctx, "person/"+id+"/movie_credits", nil, &credits); err != nil {
			errCh <- err
		}
	}()

	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}

	return &PersonDetail{
		ID:           details.ID,
		Name:         details.Name,
		Biography:    details.Biography,
		Birthday:     details.Birthday,
		Deathday:     details.Deathday,
		PlaceOfBirth: details.PlaceOfBirth,
		ProfilePath:  details.ProfilePath,
		Movies:       mergeFilmography(credits),
	}, nil
}

// mergeFilmography junta los créditos como cast y como crew, descarta
// los que no tienen fecha de estreno y ordena del más reciente al más
// antiguo, truncando a maxPersonCredits.
func mergeFilmography(credits personCreditsResponse) []PersonCredit {
	all := make([]PersonCredit, 0, len(credits.Cast)+len(credits.Crew))
	all = append(all, credits.Cast...)
	all = append(all, credits.Crew...)

	withDate := all[:0]
	for _, cr := range all {
		if cr.ReleaseDate != "" {
			withDate = append(withDate, cr)
		}
	}

	// las fechas son YYYY-MM-DD, el orden lexicográfico coincide con
	// el cronológico
	sort.SliceStable(withDate, func(i, j int) bool {
		return withDate[i].ReleaseDate > withDate[j].ReleaseDate
	})

	if len(withDate) > maxPersonCredits {
		withDate = withDate[:maxPersonCredits]
	}
	return withDate
}
