package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Boggioo/movielist/internal/models"
	"github.com/Boggioo/movielist/internal/service"

	"github.com/go-chi/chi/v5"
)

type FavoriteHandler struct {
	svc *service.FavoriteService
}

func NewFavoriteHandler(s *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: s}
}

// @Summary Listar favoritos del usuario autenticado
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.FavoriteDoc
// @Router /me/favorites [get]
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	favs, err := h.svc.List(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if favs == nil {
		favs = []models.FavoriteDoc{}
	}
	_ = json.NewEncoder(w).Encode(favs)
}

// @Summary Agregar película a favoritos
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Param movieId path int true "movieId"
// @Success 201 {object} models.FavoriteDoc
// @Failure 404 {string} string "película no encontrada"
// @Router /me/favorites/{movieId} [post]
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())
	movieID, _ := strconv.Atoi(chi.URLParam(r, "movieId"))

	f, err := h.svc.Add(r.Context(), userID, movieID)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), 500)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(f)
}

// @Summary Quitar película de favoritos
// @Tags favorites
// @Security BearerAuth
// @Param movieId path int true "movieId"
// @Success 204
// @Router /me/favorites/{movieId} [delete]
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	movieID, _ := strconv.Atoi(chi.URLParam(r, "movieId"))

	if err := h.svc.Remove(r.Context(), userID, movieID); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
