package train

import (
	"fmt"
	"math"
)

// Scaler standardizes features with per-feature population statistics.
// It is fitted exactly once over the full, unpartitioned dataset — fitting
// per partition would bias the statistics with partition skew — and is
// read-only afterwards.
type Scaler struct {
	Mean []float64
	Std  []float64
}

// FitScaler computes per-feature mean and population standard deviation.
// Constant features get a standard deviation of 1 so Transform stays finite.
func FitScaler(points []LabeledPoint) (*Scaler, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("scale: empty dataset")
	}

	dim := len(points[0].Features)
	for i, p := range points {
		if len(p.Features) != dim {
			return nil, fmt.Errorf("scale: record %d has %d features, want %d", i, len(p.Features), dim)
		}
	}

	mean := make([]float64, dim)
	for _, p := range points {
		for j, x := range p.Features {
			mean[j] += x
		}
	}
	for j := range mean {
		mean[j] /= float64(len(points))
	}

	std := make([]float64, dim)
	for _, p := range points {
		for j, x := range p.Features {
			d := x - mean[j]
			std[j] += d * d
		}
	}
	for j := range std {
		std[j] = math.Sqrt(std[j] / float64(len(points)))
		if std[j] == 0 {
			std[j] = 1
		}
	}

	return &Scaler{Mean: mean, Std: std}, nil
}

// Transform returns (x - mean) / std per feature, as a new slice.
func (s *Scaler) Transform(features []float64) []float64 {
	out := make([]float64, len(features))
	for j, x := range features {
		out[j] = (x - s.Mean[j]) / s.Std[j]
	}
	return out
}

// Inverse returns x*std + mean per feature, undoing Transform.
func (s *Scaler) Inverse(features []float64) []float64 {
	out := make([]float64, len(features))
	for j, x := range features {
		out[j] = x*s.Std[j] + s.Mean[j]
	}
	return out
}

// TransformPoints standardizes all feature vectors, leaving labels and the
// input untouched.
func (s *Scaler) TransformPoints(points []LabeledPoint) []LabeledPoint {
	out := make([]LabeledPoint, len(points))
	for i, p := range points {
		out[i] = LabeledPoint{
			Label:    p.Label,
			Features: s.Transform(p.Features),
		}
	}
	return out
}
