package train

import "math"

// MSE is the mean squared error of regression predictions over points.
func MSE(m *Model, points []LabeledPoint) float64 {
	if len(points) == 0 {
		return 0
	}

	var sum float64
	for _, p := range points {
		d := p.Label - m.Predict(p.Features)
		sum += d * d
	}
	return sum / float64(len(points))
}

func RMSE(m *Model, points []LabeledPoint) float64 {
	return math.Sqrt(MSE(m, points))
}

// Accuracy is the share of points whose Classify decision matches the label.
// Labels are expected to be -1 or +1.
func Accuracy(m *Model, points []LabeledPoint) float64 {
	if len(points) == 0 {
		return 0
	}

	var correct int
	for _, p := range points {
		if m.Classify(p.Features) == p.Label {
			correct++
		}
	}
	return float64(correct) / float64(len(points))
}
