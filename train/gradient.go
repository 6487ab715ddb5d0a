package train

// partialGradient sums the per-record gradient contributions of one
// partition against a read-only weight snapshot. It must not touch any
// state outside its own slice: partitions run in parallel.
func partialGradient(pts []LabeledPoint, w []float64, intercept float64, loss Loss) ([]float64, float64) {
	grad := make([]float64, len(w))
	var gradIntercept float64

	for _, p := range pts {
		score := dot(w, p.Features) + intercept

		switch loss {
		case Hinge:
			// subgradient: zero outside the margin
			if p.Label*score < 1 {
				for j, x := range p.Features {
					grad[j] -= p.Label * x
				}
				gradIntercept -= p.Label
			}
		default:
			diff := score - p.Label
			for j, x := range p.Features {
				grad[j] += diff * x
			}
			gradIntercept += diff
		}
	}

	return grad, gradIntercept
}

// softThreshold shrinks each coefficient toward zero by amount, clamping at
// zero. This is the proximal step of the L1 penalty; the intercept is not
// touched.
func softThreshold(w []float64, amount float64) {
	if amount <= 0 {
		return
	}

	for i, v := range w {
		switch {
		case v > amount:
			w[i] = v - amount
		case v < -amount:
			w[i] = v + amount
		default:
			w[i] = 0
		}
	}
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
