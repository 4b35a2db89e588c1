package tmdb

import "strconv"

// FilterResults re-aplica los filtros de voto y género del lado del
// cliente. El filtrado server-side del proveedor es inexacto cuando se
// combina con una query de texto, así que esto actúa de red de
// seguridad. Función pura, determinista, preserva el orden.
func FilterResults(movies []MovieSummary, f SearchFilters) []MovieSummary {
	out := movies

	if min, ok := f.minVote(); ok {
		filtered := make([]MovieSummary, 0, len(out))
		for _, m := range out {
			if m.VoteAverage >= min {
				filtered = append(filtered, m)
			}
		}
		out = filtered
	}

	// géneros: la película tiene que contener TODOS los ids pedidos
	// (AND lógico, no OR)
	if ids := f.genreIDs(); len(ids) > 0 {
		wanted := make([]int, 0, len(ids))
		for _, s := range ids {
			id, err := strconv.Atoi(s)
			if err != nil {
				continue
			}
			wanted = append(wanted, id)
		}

		filtered := make([]MovieSummary, 0, len(out))
		for _, m := range out {
			if hasAllGenres(m.GenreIDs, wanted) {
				filtered = append(filtered, m)
			}
		}
		out = filtered
	}

	return out
}

func hasAllGenres(have, wanted []int) bool {
	for _, w := range wanted {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
