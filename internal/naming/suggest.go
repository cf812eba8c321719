package naming

import (
	"sort"
)

// MinSuggestionScore is the similarity below which a candidate is never
// suggested.
const MinSuggestionScore = 0.5

// candidate is a scored suggestion.
type candidate struct {
	id    string
	score float64
	order int
}

// Suggest returns up to limit candidates most similar to target, best first.
// Ties keep the order in which candidates were given, so results are stable
// for a fixed catalog. An exact match of target is never suggested.
func Suggest(target string, candidates []string, limit int) []string {
	if limit <= 0 || target == "" {
		return nil
	}

	var scored []candidate

	for i, id := range candidates {
		if id == target {
			continue
		}

		score := Similarity(target, id)
		if score < MinSuggestionScore {
			continue
		}

		scored = append(scored, candidate{id: id, score: score, order: i})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}

		return scored[i].order < scored[j].order
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	out := make([]string, 0, len(scored))
	for _, c := range scored {
		out = append(out, c.id)
	}

	return out
}
