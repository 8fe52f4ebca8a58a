package selection

import "fmt"

// Method is the closed set of k-selection strategies.
type Method int

const (
	// MethodCompromise favors the smaller of the elbow and silhouette
	// suggestions unless the silhouette evidence for the larger k clears a
	// configured gap.
	MethodCompromise Method = iota

	// MethodSilhouette selects the k with the best approximate silhouette.
	MethodSilhouette

	// MethodElbow selects the elbow of the inertia curve.
	MethodElbow
)

func (m Method) String() string {
	switch m {
	case MethodCompromise:
		return "compromise"
	case MethodSilhouette:
		return "silhouette"
	case MethodElbow:
		return "elbow"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// ParseMethod returns the Method with the given stable name.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "compromise":
		return MethodCompromise, nil
	case "silhouette":
		return MethodSilhouette, nil
	case "elbow":
		return MethodElbow, nil
	default:
		return 0, fmt.Errorf("unknown selection method %q", name)
	}
}

// Config carries the selection parameters. It is a plain value passed
// explicitly into each computation, never shared mutable state.
type Config struct {
	// Method picks the selection strategy.
	Method Method

	// MinGap is the silhouette advantage (>= 0) a larger k must show over
	// the elbow suggestion for the compromise method to prefer it.
	MinGap float64
}

// BestBySilhouette returns the k with the maximum silhouette score; ties
// resolve to the lowest k. ks and silhouette must be parallel.
func BestBySilhouette(ks []int, silhouette []float64) int {
	if len(ks) == 0 {
		return 0
	}

	best := ks[0]
	bestScore := silhouette[0]
	for i := 1; i < len(ks); i++ {
		if silhouette[i] > bestScore {
			bestScore = silhouette[i]
			best = ks[i]
		}
	}
	return best
}

// Choose combines the elbow and silhouette suggestions into the final k.
//
// For the compromise method: if the two suggestions are within one of each
// other the smaller wins; otherwise the silhouette suggestion wins only
// when its score exceeds the elbow suggestion's score by at least MinGap.
// ks and silhouette must be parallel and contain both suggestions.
func Choose(cfg Config, ks []int, silhouette []float64, suggestedK, bestBySilhouette int) int {
	switch cfg.Method {
	case MethodSilhouette:
		return bestBySilhouette
	case MethodElbow:
		return suggestedK
	}

	diff := suggestedK - bestBySilhouette
	if diff < 0 {
		diff = -diff
	}
	if diff <= 1 {
		if bestBySilhouette < suggestedK {
			return bestBySilhouette
		}
		return suggestedK
	}

	if scoreAt(ks, silhouette, bestBySilhouette)-scoreAt(ks, silhouette, suggestedK) >= cfg.MinGap {
		return bestBySilhouette
	}
	return suggestedK
}

func scoreAt(ks []int, silhouette []float64, k int) float64 {
	for i, kk := range ks {
		if kk == k {
			return silhouette[i]
		}
	}
	return 0
}
