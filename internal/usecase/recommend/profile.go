package recommend

import "github.com/shelfwise/shelfwise/internal/domain"

// Product-tuned interaction weights. Hand-picked, not learned.
const (
	ratingBaseline     = 2   // ratings at or below this count as unrated
	consumptionPenalty = 0.8 // rated item already returned or expired
	borrowWeight       = 1.5
	reserveWeight      = 1.0
	favoriteWeight     = 2.0
)

// activityWeight converts one interaction record into its profile weight.
// A rating above the baseline dominates the consumption signals; borrow
// and reserve are independently additive when the item is unrated; a
// favorite always adds on top of either branch. The result may be zero,
// in which case the record contributes nothing.
func activityWeight(in domain.Interaction) float64 {
	var weight float64

	if in.Rating > ratingBaseline {
		ratingWeight := float64(in.Rating - ratingBaseline)
		if in.BorrowCount > 0 && !in.Borrowed {
			ratingWeight *= consumptionPenalty
		}
		weight += ratingWeight
	} else {
		if in.Borrowed && in.BorrowCount > 0 {
			weight += borrowWeight
		}
		if in.Reserved && in.ReserveCount > 0 {
			weight += reserveWeight
		}
	}

	if in.Favorite {
		weight += favoriteWeight
	}

	return weight
}

// buildProfile aggregates the interacted items' vectors into one profile
// vector: each term accumulates itemWeight x activityWeight, and the sum
// is normalized by the total activity weight (a weighted average).
// Interactions whose item has no vector are skipped silently. An empty map
// is returned when no interaction qualifies.
func buildProfile(vectors map[string]ItemVector, interactions []domain.Interaction) map[string]float64 {
	profile := make(map[string]float64)
	var totalWeight float64

	for _, in := range interactions {
		vec, ok := vectors[in.ItemID]
		if !ok {
			continue
		}
		weight := activityWeight(in)
		if weight == 0 {
			continue
		}
		for term, w := range vec.Weights {
			profile[term] += w * weight
		}
		totalWeight += weight
	}

	if totalWeight == 0 {
		return map[string]float64{}
	}
	for term := range profile {
		profile[term] /= totalWeight
	}
	return profile
}
