package train

// Model is the result of a training run: weight coefficients plus an
// optional intercept. It is read-only after Train returns.
type Model struct {
	Weights   []float64
	Intercept float64
	Loss      Loss
}

// Predict returns the linear score dot(weights, features) + intercept.
// The feature vector must have the same length the model was trained with.
func (m *Model) Predict(features []float64) float64 {
	return dot(m.Weights, features) + m.Intercept
}

// Classify maps the linear score to a binary decision: +1 for a
// non-negative score, -1 otherwise.
func (m *Model) Classify(features []float64) float64 {
	if m.Predict(features) >= 0 {
		return 1
	}
	return -1
}
