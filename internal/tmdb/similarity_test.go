package tmdb

import (
	"reflect"
	"testing"
)

func refMovie() *MovieDetail {
	return &MovieDetail{
		ID:          603,
		Genres:      []Genre{{ID: 28, Name: "Azione"}, {ID: 18, Name: "Dramma"}},
		VoteAverage: 7.0,
		ReleaseDate: "2020-03-15",
	}
}

func TestSimilarityScoreScenarios(t *testing.T) {
	ref := refMovie()

	tests := []struct {
		name      string
		candidate MovieSummary
		want      int
	}{
		{
			// mismos géneros, mismo voto, mismo año => 100
			name:      "gemela puntúa 100",
			candidate: MovieSummary{GenreIDs: []int{28, 18}, VoteAverage: 7.0, ReleaseDate: "2020-11-01"},
			want:      100,
		},
		{
			// f1=0, f2=1-5/10=0.5, f3=1-30/100=0.7 => media 0.4 => 40
			name:      "lejana puntúa 40",
			candidate: MovieSummary{GenreIDs: []int{35}, VoteAverage: 2.0, ReleaseDate: "1990-07-20"},
			want:      40,
		},
		{
			// sin fecha: factor temporal neutro 0.5
			// f1=1, f2=1, f3=0.5 => media 0.8333 => 83
			name:      "sin fecha usa factor neutro",
			candidate: MovieSummary{GenreIDs: []int{28, 18}, VoteAverage: 7.0},
			want:      83,
		},
		{
			// sin géneros: factor de géneros 0
			// f1=0, f2=1, f3=1 => media 0.6667 => 67
			name:      "sin géneros puntúa 0 en overlap",
			candidate: MovieSummary{VoteAverage: 7.0, ReleaseDate: "2020-01-01"},
			want:      67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SimilarityScore(ref, tt.candidate); got != tt.want {
				t.Errorf("score = %d, se esperaba %d", got, tt.want)
			}
		})
	}
}

func TestRankSimilarTruncatesToSix(t *testing.T) {
	ref := refMovie()

	var candidates []MovieSummary
	for i := 0; i < 10; i++ {
		candidates = append(candidates, MovieSummary{
			ID:          i,
			GenreIDs:    []int{28},
			VoteAverage: float64(i),
			ReleaseDate: "2015-01-01",
		})
	}

	out := RankSimilar(ref, candidates)
	if len(out) != MaxSimilarMovies {
		t.Fatalf("len = %d, se esperaba %d", len(out), MaxSimilarMovies)
	}

	// orden descendente por score
	for i := 1; i < len(out); i++ {
		if out[i-1].SimilarityScore < out[i].SimilarityScore {
			t.Errorf("no está ordenado: score[%d]=%d < score[%d]=%d",
				i-1, out[i-1].SimilarityScore, i, out[i].SimilarityScore)
		}
	}
}

func TestRankSimilarShorterInput(t *testing.T) {
	ref := refMovie()
	out := RankSimilar(ref, []MovieSummary{{ID: 1, GenreIDs: []int{28}}})
	if len(out) != 1 {
		t.Fatalf("len = %d, se esperaba 1", len(out))
	}

	out = RankSimilar(ref, nil)
	if len(out) != 0 {
		t.Fatalf("len = %d, se esperaba 0", len(out))
	}
}

func TestRankSimilarStableOnTies(t *testing.T) {
	ref := refMovie()

	// tres candidatas idénticas salvo el id: mismo score, el orden
	// original se tiene que preservar
	candidates := []MovieSummary{
		{ID: 7, GenreIDs: []int{28, 18}, VoteAverage: 7.0, ReleaseDate: "2020-01-01"},
		{ID: 3, GenreIDs: []int{28, 18}, VoteAverage: 7.0, ReleaseDate: "2020-01-01"},
		{ID: 9, GenreIDs: []int{28, 18}, VoteAverage: 7.0, ReleaseDate: "2020-01-01"},
	}

	out := RankSimilar(ref, candidates)
	for i, wantID := range []int{7, 3, 9} {
		if out[i].ID != wantID {
			t.Errorf("posición %d: id = %d, se esperaba %d", i, out[i].ID, wantID)
		}
	}
}

func TestRankSimilarScoreBounds(t *testing.T) {
	ref := refMovie()

	candidates := []MovieSummary{
		{GenreIDs: []int{99}, VoteAverage: 0, ReleaseDate: "1890-01-01"}, // Δaño > 100
		{GenreIDs: []int{28, 18}, VoteAverage: 10, ReleaseDate: "2020-01-01"},
		{},
	}

	for _, sm := range RankSimilar(ref, candidates) {
		if sm.SimilarityScore < 0 || sm.SimilarityScore > 100 {
			t.Errorf("score %d fuera de [0,100]", sm.SimilarityScore)
		}
	}
}

func TestRankSimilarDeterministic(t *testing.T) {
	ref := refMovie()
	candidates := []MovieSummary{
		{ID: 1, GenreIDs: []int{28}, VoteAverage: 6.5, ReleaseDate: "2018-05-01"},
		{ID: 2, GenreIDs: []int{18, 35}, VoteAverage: 7.2, ReleaseDate: "2021-02-11"},
		{ID: 3, VoteAverage: 4.0},
	}

	first := RankSimilar(ref, candidates)
	second := RankSimilar(ref, candidates)

	if !reflect.DeepEqual(first, second) {
		t.Error("mismo input tiene que dar el mismo output")
	}
}
