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

type ReviewHandler struct {
	svc *service.ReviewService
}

func NewReviewHandler(s *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: s}
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// @Summary Crear/actualizar reseña de una película
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Param id path int true "movieId"
// @Param body body reviewRequest true "reseña"
// @Success 204
// @Failure 400 {string} string "rating inválido"
// @Router /me/movies/{id}/review [post]
func (h *ReviewHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())
	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	if err := h.svc.Upsert(r.Context(), userID, movieID, req.Rating, req.Comment); err != nil {
		if errors.Is(err, service.ErrInvalidRating) {
			http.Error(w, err.Error(), 400)
			return
		}
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Eliminar la reseña propia de una película
// @Tags reviews
// @Security BearerAuth
// @Param id path int true "movieId"
// @Success 204
// @Router /me/movies/{id}/review [delete]
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	if err := h.svc.Delete(r.Context(), userID, movieID); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Listar reseñas de una película
// @Tags reviews
// @Produce json
// @Param id path int true "movieId"
// @Param limit query int false "límite (default: 50)"
// @Param offset query int false "offset"
// @Success 200 {array} models.ReviewDoc
// @Router /movies/{id}/reviews [get]
func (h *ReviewHandler) ListForMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	reviews, err := h.svc.ListForMovie(r.Context(), movieID, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if reviews == nil {
		reviews = []models.ReviewDoc{}
	}
	_ = json.NewEncoder(w).Encode(reviews)
}
