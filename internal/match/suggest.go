package match

import "slices"

// MinSuggestScore is the lowest similarity a name needs to be suggested.
const MinSuggestScore = 0.5

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates closest to name, best first.
// Ties keep candidate order. Exact matches are not suggested.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 || name == "" {
		return nil
	}

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(name, c)
		if score < MinSuggestScore {
			continue
		}

		ranked = append(ranked, scored{name: c, score: score})
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for _, r := range ranked {
		if len(out) == limit {
			break
		}

		out = append(out, r.name)
	}

	return out
}
