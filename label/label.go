package label

import "sort"

// Categories is the canonical ordering of the ten spend categories. Column
// j of a propensity matrix holds the score for Categories[j].
var Categories = []string{
	"Transportation",
	"Health",
	"LuxuryGoods",
	"Service",
	"Telecommunications",
	"Groceries",
	"Clothing",
	"Food&Beverage",
	"PublicUtilities",
	"Others",
}

// segmentNames maps a dominant category to a human-friendly segment name.
// Categories without an entry use the two-category fallback.
var segmentNames = map[string]string{
	"Transportation": "Commuters",
	"Health":         "Wellness Focused",
	"LuxuryGoods":    "Premium Shoppers",
	"Groceries":      "Everyday Essentials",
	"Clothing":       "Fashion Forward",
	"Food&Beverage":  "Dining Enthusiasts",
}

// ForCentroid returns a human-readable name for one centroid. It is a pure
// function of the centroid vector and the category list.
//
// Features are ranked by descending centroid value (ties keep category
// order). If the dominant category has a dictionary entry that name is
// returned, otherwise "<dominant> & <second>".
//
// categories must be parallel to the centroid; pass Categories for the
// canonical ten-column layout.
func ForCentroid(centroid []float64, categories []string) string {
	if len(centroid) == 0 || len(categories) == 0 {
		return ""
	}

	order := make([]int, len(centroid))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return centroid[order[a]] > centroid[order[b]]
	})

	dominant := categories[order[0]]
	if name, ok := segmentNames[dominant]; ok {
		return name
	}

	if len(order) < 2 {
		return dominant
	}
	return dominant + " & " + categories[order[1]]
}

// ForCentroids labels every centroid of a completed run.
func ForCentroids(centroids [][]float64, categories []string) []string {
	names := make([]string, len(centroids))
	for i, c := range centroids {
		names[i] = ForCentroid(c, categories)
	}
	return names
}
