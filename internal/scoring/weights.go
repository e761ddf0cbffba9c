package scoring

// Weights maps sample identifiers to non-negative combination weights.
// A nil Weights value means uniform weight 1.0 per sample.
type Weights map[string]float64

// UniformWeights assigns weight 1.0 to every sample.
func UniformWeights(samples []string) Weights {
	w := make(Weights, len(samples))
	for _, s := range samples {
		w[s] = 1.0
	}
	return w
}

// Subset restricts the weights to the given samples. Key alignment is
// the caller's responsibility and is re-checked only when the subset is
// consumed. A nil receiver stays nil, keeping the uniform default.
func (w Weights) Subset(samples []string) Weights {
	if w == nil {
		return nil
	}
	sub := make(Weights, len(samples))
	for _, s := range samples {
		if v, ok := w[s]; ok {
			sub[s] = v
		}
	}
	return sub
}
