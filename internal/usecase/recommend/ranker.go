package recommend

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// outOfRangePenalty halves the similarity of items whose classification
// code falls outside the range spanned by the reader's history. A soft
// topical adjustment, not a hard filter.
const outOfRangePenalty = 0.5

// scoredItem pairs an item identifier with its adjusted similarity.
type scoredItem struct {
	itemID string
	score  float64
}

// classificationRange is the numeric min-max span of the classification
// codes the reader has interacted with.
type classificationRange struct {
	min, max float64
	valid    bool
}

// newClassificationRange parses the reader's interacted classification
// codes. Codes that do not parse as decimals are ignored; the range is
// invalid (and no adjustment applies) when none parse.
func newClassificationRange(codes []string) classificationRange {
	var r classificationRange
	for _, code := range codes {
		v, ok := parseClassification(code)
		if !ok {
			continue
		}
		if !r.valid {
			r.min, r.max, r.valid = v, v, true
			continue
		}
		if v < r.min {
			r.min = v
		}
		if v > r.max {
			r.max = v
		}
	}
	return r
}

// contains reports whether the code lies inside the range. Unparseable
// codes and an invalid range both count as inside, leaving the score
// untouched.
func (r classificationRange) contains(code string) bool {
	if !r.valid {
		return true
	}
	v, ok := parseClassification(code)
	if !ok {
		return true
	}
	return v >= r.min && v <= r.max
}

func parseClassification(code string) (float64, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(code, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// rank scores every candidate vector against the user profile, applies the
// classification-range adjustment, drops zero-similarity items and items
// the reader already interacted with, and orders the rest by adjusted
// similarity descending. Ties break on item identifier ascending so the
// ordering is deterministic regardless of catalog fetch order.
func rank(
	vectors []ItemVector,
	profile map[string]float64,
	interacted map[string]struct{},
	codesByItem map[string]string,
	historyRange classificationRange,
) []scoredItem {
	profileNorm := vectorNorm(profile)
	if profileNorm == 0 {
		return nil
	}

	ranked := make([]scoredItem, 0, len(vectors))
	for _, vec := range vectors {
		if _, seen := interacted[vec.ItemID]; seen {
			continue
		}
		score := cosineSimilarity(vec.Weights, profile, profileNorm)
		if score == 0 {
			continue
		}
		if !historyRange.contains(codesByItem[vec.ItemID]) {
			score *= outOfRangePenalty
		}
		ranked = append(ranked, scoredItem{itemID: vec.ItemID, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].itemID < ranked[j].itemID
	})
	return ranked
}

// cosineSimilarity computes dot(a,b) / (|a| * |b|) over sparse maps. Only
// a's keys need iterating: b contributes zero for missing keys. Returns 0
// when either norm is zero.
func cosineSimilarity(a, b map[string]float64, bNorm float64) float64 {
	aNorm := vectorNorm(a)
	if aNorm == 0 || bNorm == 0 {
		return 0
	}

	var dot float64
	for term, w := range a {
		dot += w * b[term]
	}
	return dot / (aNorm * bNorm)
}

func vectorNorm(v map[string]float64) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}
