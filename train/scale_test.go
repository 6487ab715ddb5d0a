package train

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
)

func TestFitScaler(t *testing.T) {
	points := []LabeledPoint{
		{Features: []float64{1, 10}},
		{Features: []float64{2, 10}},
		{Features: []float64{3, 10}},
	}

	scaler, err := FitScaler(points)
	require.NoError(t, err)

	require.InDelta(t, 2.0, scaler.Mean[0], 1e-12)
	require.InDelta(t, 0.8164965809, scaler.Std[0], 1e-9) // sqrt(2/3), population std

	// constant feature keeps std 1 so Transform stays finite
	require.InDelta(t, 10.0, scaler.Mean[1], 1e-12)
	require.Equal(t, 1.0, scaler.Std[1])
	require.Equal(t, 0.0, scaler.Transform([]float64{2, 10})[1])
}

func TestScalerRoundTrip(t *testing.T) {
	points := make([]LabeledPoint, 0, 100)
	for range 100 {
		points = append(points, LabeledPoint{
			Features: []float64{
				gofakeit.Float64Range(-1000, 1000),
				gofakeit.Float64Range(0, 1),
				gofakeit.Float64Range(-5, 5),
			},
		})
	}

	scaler, err := FitScaler(points)
	require.NoError(t, err)

	for _, p := range points {
		back := scaler.Inverse(scaler.Transform(p.Features))
		for j := range p.Features {
			require.InDelta(t, p.Features[j], back[j], 1e-9)
		}
	}
}

func TestFitScalerErrors(t *testing.T) {
	_, err := FitScaler(nil)
	require.Error(t, err)

	_, err = FitScaler([]LabeledPoint{
		{Features: []float64{1, 2}},
		{Features: []float64{1}},
	})
	require.Error(t, err)
}
