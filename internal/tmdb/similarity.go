package tmdb

import (
	"math"
	"sort"
	"strconv"
)

// MaxSimilarMovies es el tope de películas similares que devolvemos.
const MaxSimilarMovies = 6

// RankSimilar puntúa cada candidata contra la película de referencia y
// devuelve las MaxSimilarMovies mejores, ordenadas por puntaje
// descendente. El orden original se preserva entre empates (sort
// estable). Función pura: mismo input, mismo output.
func RankSimilar(ref *MovieDetail, candidates []MovieSummary) []ScoredMovie {
	scored := make([]ScoredMovie, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, ScoredMovie{
			MovieSummary:    c,
			SimilarityScore: SimilarityScore(ref, c),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].SimilarityScore > scored[j].SimilarityScore
	})

	if len(scored) > MaxSimilarMovies {
		scored = scored[:MaxSimilarMovies]
	}
	return scored
}

// SimilarityScore calcula el puntaje [0,100] como promedio de tres
// factores en [0,1]: géneros en común, cercanía de voto y cercanía
// temporal.
func SimilarityScore(ref *MovieDetail, candidate MovieSummary) int {
	factors := []float64{
		genreOverlap(ref.Genres, candidate.GenreIDs),
		1 - math.Abs(candidate.VoteAverage-ref.VoteAverage)/10,
		temporalCloseness(ref.ReleaseDate, candidate.ReleaseDate),
	}

	var sum float64
	for _, f := range factors {
		sum += f
	}
	score := int(math.Round(sum / float64(len(factors)) * 100))

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// genreOverlap: proporción de géneros de la candidata presentes en la
// referencia. Candidata sin géneros puntúa 0.
func genreOverlap(refGenres []Genre, candidateIDs []int) float64 {
	if len(candidateIDs) == 0 {
		return 0
	}

	refSet := make(map[int]struct{}, len(refGenres))
	for _, g := range refGenres {
		refSet[g.ID] = struct{}{}
	}

	shared := 0
	for _, id := range candidateIDs {
		if _, ok := refSet[id]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(candidateIDs))
}

// temporalCloseness: 1 - |Δaño|/100 si ambas fechas existen, 0.5 si
// falta alguna (valor neutro).
func temporalCloseness(refDate, candidateDate string) float64 {
	refYear, okRef := releaseYear(refDate)
	candYear, okCand := releaseYear(candidateDate)
	if !okRef || !okCand {
		return 0.5
	}

	f := 1 - math.Abs(float64(candYear-refYear))/100
	if f < 0 {
		f = 0
	}
	return f
}

// releaseYear saca el año de una fecha "YYYY-MM-DD" del proveedor.
func releaseYear(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return y, true
}
