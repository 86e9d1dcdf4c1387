package model

import "sort"

// Trending ranks models by likes first, downloads second — pure
// comparison glue with no I/O, used to order a target model's variant
// siblings by popularity. Ties are broken by id so ordering stays
// deterministic across runs.
func Trending(models []Model) []Model {
	out := make([]Model, len(models))
	copy(out, models)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Likes != out[j].Likes {
			return out[i].Likes > out[j].Likes
		}
		if out[i].Downloads != out[j].Downloads {
			return out[i].Downloads > out[j].Downloads
		}
		return out[i].ID < out[j].ID
	})
	return out
}
