package tmdb

// Tipos del proveedor de metadata (TMDB). Los tags json siguen el
// esquema del API, que es versionado y puede traer campos ausentes.

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieSummary es lo que devuelven los listados (popular, top_rated,
// discover, search, similar). Inmutable una vez construido.
type MovieSummary struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Popularity  float64 `json:"popularity,omitempty"`
	GenreIDs    []int   `json:"genre_ids"`
	PosterPath  string  `json:"poster_path,omitempty"`
}

// ScoredMovie es un MovieSummary con su puntaje de similitud [0,100].
type ScoredMovie struct {
	MovieSummary
	SimilarityScore int `json:"similarity_score"`
}

type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
}

type CrewMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job"`
	ProfilePath string `json:"profile_path,omitempty"`
}

type Video struct {
	Key      string `json:"key"`
	Name     string `json:"name,omitempty"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
	Language string `json:"iso_639_1"`
}

// WatchProvider ya viene con los tipos de disponibilidad combinados
// (un solo entry por provider aunque esté en varias listas).
type WatchProvider struct {
	ProviderID   int      `json:"provider_id"`
	ProviderName string   `json:"provider_name"`
	LogoPath     string   `json:"logo_path,omitempty"`
	Availability []string `json:"availability_types"` // subscription|rental|purchase
}

// Tipos de disponibilidad de streaming.
const (
	AvailabilitySubscription = "subscription"
	AvailabilityRental       = "rental"
	AvailabilityPurchase     = "purchase"
)

// MovieDetail es el bundle completo que arma GetMovieDetails a partir
// de los cinco facets (details, credits, videos, providers, similar).
// Director, Trailer y StreamingProviders pueden faltar: no es un error.
type MovieDetail struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	Runtime     int     `json:"runtime,omitempty"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Genres      []Genre `json:"genres"`
	PosterPath  string  `json:"poster_path,omitempty"`

	Cast               []CastMember    `json:"cast"`
	Director           *CrewMember     `json:"director,omitempty"`
	Trailer            *Video          `json:"trailer,omitempty"`
	StreamingProviders []WatchProvider `json:"streamingProviders"`
	SimilarMovies      []ScoredMovie   `json:"similarMovies"`
}

// PersonCredit es un crédito de filmografía (cast o crew de la persona).
type PersonCredit struct {
	ID          int     `json:"id"`
	Title       string  `json:"title,omitempty"`
	Character   string  `json:"character,omitempty"`
	Job         string  `json:"job,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
	PosterPath  string  `json:"poster_path,omitempty"`
}

// PersonDetail combina la bio con la filmografía ordenada (más reciente
// primero, máximo 20 películas).
type PersonDetail struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Biography    string `json:"biography,omitempty"`
	Birthday     string `json:"birthday,omitempty"`
	Deathday     string `json:"deathday,omitempty"`
	PlaceOfBirth string `json:"place_of_birth,omitempty"`
	ProfilePath  string `json:"profile_path,omitempty"`

	Movies []PersonCredit `json:"movies"`
}

// ====== respuestas crudas del API ======

type genreListResponse struct {
	Genres []Genre `json:"genres"`
}

type movieListResponse struct {
	Results []MovieSummary `json:"results"`
}

type movieDetailsResponse struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	Runtime     int     `json:"runtime"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Genres      []Genre `json:"genres"`
	PosterPath  string  `json:"poster_path"`
}

type creditsResponse struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

type videosResponse struct {
	Results []Video `json:"results"`
}

// providers: por región vienen tres listas separadas según el tipo
// de disponibilidad.
type providerEntry struct {
	ProviderID   int    `json:"provider_id"`
	ProviderName string `json:"provider_name"`
	LogoPath     string `json:"logo_path"`
}

type regionProviders struct {
	Flatrate []providerEntry `json:"flatrate"`
	Rent     []providerEntry `json:"rent"`
	Buy      []providerEntry `json:"buy"`
}

type watchProvidersResponse struct {
	Results map[string]regionProviders `json:"results"`
}

type personDetailsResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Biography    string `json:"biography"`
	Birthday     string `json:"birthday"`
	Deathday     string `json:"deathday"`
	PlaceOfBirth string `json:"place_of_birth"`
	ProfilePath  string `json:"profile_path"`
}

type personCreditsResponse struct {
	Cast []PersonCredit `json:"cast"`
	Crew []PersonCredit `json:"crew"`
}
