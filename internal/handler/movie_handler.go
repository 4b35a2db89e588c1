// internal/handler/movie_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Boggioo/movielist/internal/service"
	"github.com/Boggioo/movielist/internal/tmdb"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(s *service.MovieService) *MovieHandler { return &MovieHandler{svc: s} }

// @Summary Portada (populares, mejor votadas, vitrinas por género)
// @Tags movies
// @Produce json
// @Success 200 {object} models.Homepage
// @Router /home [get]
func (h *MovieHandler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.svc.Homepage(r.Context()))
}

// @Summary Catálogo de géneros
// @Tags movies
// @Produce json
// @Success 200 {array} tmdb.Genre
// @Router /genres [get]
func (h *MovieHandler) Genres(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.svc.Genres(r.Context()))
}

// @Summary Buscar películas con filtros
// @Tags movies
// @Produce json
// @Param query query string false "búsqueda por título"
// @Param year query string false "año de estreno"
// @Param vote query string false "voto mínimo (0-10)"
// @Param genres query []string false "ids de género (AND lógico)"
// @Success 200 {array} tmdb.MovieSummary
// @Router /movies/search [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	q := r.URL.Query()
	filters := tmdb.SearchFilters{
		Query:  q.Get("query"),
		Year:   q.Get("year"),
		Vote:   q.Get("vote"),
		Genres: q["genres"],
	}

	_ = json.NewEncoder(w).Encode(h.svc.Search(r.Context(), filters))
}

// @Summary Detalle completo de una película
// @Description Incluye cast, director, trailer, plataformas de streaming y similares rankeadas.
// @Tags movies
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {object} tmdb.MovieDetail
// @Failure 404 {string} string "película no encontrada"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	detail := h.svc.Details(r.Context(), id)
	if detail == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(detail)
}

// @Summary Detalle de un miembro del cast
// @Tags movies
// @Produce json
// @Param id path int true "personId"
// @Success 200 {object} tmdb.PersonDetail
// @Failure 404 {string} string "persona no encontrada"
// @Router /person/{id} [get]
func (h *MovieHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	person := h.svc.Person(r.Context(), id)
	if person == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(person)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// facets que arma el detalle, en el orden en que se reportan por WS
var detailFacets = []string{"details", "credits", "videos", "providers", "similar"}

// @Summary Detalle de película en tiempo real (WebSocket)
// @Tags movies
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {object} map[string]interface{}
// @Router /ws/movies/{id} [get]
func (h *MovieHandler) GetMovieWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, armando detalle…",
	})

	// Mensajes de progreso (uno por facet)
	for _, facet := range detailFacets {
		time.Sleep(150 * time.Millisecond)
		conn.WriteJSON(map[string]any{
			"type":  "progress",
			"facet": facet,
		})
	}

	detail := h.svc.Details(r.Context(), id)
	if detail == nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": "película no encontrada",
		})
		return
	}

	// Mensaje final con el bundle completo
	conn.WriteJSON(map[string]any{
		"type":        "movie",
		"movieId":     id,
		"movie":       detail,
		"generatedAt": time.Now(),
	})
}
