package recommend

import (
	"fmt"
	"hash/fnv"
	"sort"
)

// Ranked is one category with its propensity score.
type Ranked struct {
	Category string
	Score    float64
}

// RankCategories returns categories sorted by descending score. Ties keep
// category order, so the ranking is deterministic. scores and categories
// must be parallel.
func RankCategories(scores []float64, categories []string) []Ranked {
	ranked := make([]Ranked, len(categories))
	for i, name := range categories {
		ranked[i] = Ranked{Category: name, Score: scores[i]}
	}
	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].Score > ranked[b].Score })
	return ranked
}

// Options controls member recommendation.
type Options struct {
	// TopK is the number of categories to return. Defaults to 3.
	TopK int

	// MinThreshold drops categories scoring below it. If the filter removes
	// everything, the unfiltered top TopK is returned instead.
	MinThreshold float64

	// MemberIndex overrides row selection directly when set.
	MemberIndex *int

	// IDToIndex maps member ids to row indices. Consulted when MemberIndex
	// is unset; an id missing from a non-nil map is an error.
	IDToIndex map[string]int
}

// Recommendation is the ranked answer for one member, echoing how the row
// was resolved.
type Recommendation struct {
	MemberID    string
	MemberIndex int
	Categories  []Ranked
}

// ForMember ranks the categories of one member's row and returns the top
// entries at or above the threshold.
//
// Row resolution priority: explicit Options.MemberIndex, then
// Options.IDToIndex, then a stable FNV-1a hash of memberID modulo the row
// count. Prefer an explicit mapping for reproducibility across datasets.
func ForMember(matrix [][]float64, categories []string, memberID string, opts Options) (*Recommendation, error) {
	if len(matrix) == 0 {
		return nil, fmt.Errorf("recommend: empty matrix")
	}

	topK := opts.TopK
	if topK <= 0 {
		topK = 3
	}

	var idx int
	switch {
	case opts.MemberIndex != nil:
		idx = *opts.MemberIndex
	case opts.IDToIndex != nil:
		mapped, ok := opts.IDToIndex[memberID]
		if !ok {
			return nil, fmt.Errorf("recommend: member id %q not found in mapping", memberID)
		}
		idx = mapped
	default:
		idx = StableIndex(memberID, len(matrix))
	}

	if idx < 0 || idx >= len(matrix) {
		return nil, fmt.Errorf("recommend: member index %d out of range [0, %d)", idx, len(matrix))
	}

	ranked := RankCategories(matrix[idx], categories)

	filtered := ranked[:0:0]
	for _, r := range ranked {
		if r.Score >= opts.MinThreshold {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		filtered = ranked // threshold removed everything, fall back
	}
	if len(filtered) > topK {
		filtered = filtered[:topK]
	}

	return &Recommendation{
		MemberID:    memberID,
		MemberIndex: idx,
		Categories:  filtered,
	}, nil
}

// StableIndex maps an arbitrary member id to a stable row index in
// [0, size) via FNV-1a.
func StableIndex(memberID string, size int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(memberID))
	return int(h.Sum32() % uint32(size))
}
