package domain

// PreferenceWeights maps categories to normalized preference weights. It is
// a per-request view derived from engagement events, never persisted.
// Weights lie in [-1, 1]: the user's strongest signal is ±1 and negative
// values mark avoidance. An empty map means no signal at all.
type PreferenceWeights map[Category]float64

// Strongest returns the category holding the maximum weight. ok is false
// for an empty map.
func (w PreferenceWeights) Strongest() (Category, float64, bool) {
	var (
		best  Category
		score float64
		found bool
	)
	for cat, weight := range w {
		if !found || weight > score {
			best = cat
			score = weight
			found = true
		}
	}
	return best, score, found
}
