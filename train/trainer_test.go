package train

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func linePoints(n int) []LabeledPoint {
	// label = 2*x over a symmetric range
	points := make([]LabeledPoint, 0, n)
	for i := 0; i < n; i++ {
		x := -1.0 + 2.0*float64(i)/float64(n-1)
		points = append(points, LabeledPoint{Label: 2 * x, Features: []float64{x}})
	}
	return points
}

func clusterPoints() []LabeledPoint {
	// two separable clusters around (2,2) and (-2,-2)
	var points []LabeledPoint
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			dx := float64(i) * 0.2
			dy := float64(j) * 0.2
			points = append(points,
				LabeledPoint{Label: 1, Features: []float64{2 + dx, 2 + dy}},
				LabeledPoint{Label: -1, Features: []float64{-2 - dx, -2 - dy}},
			)
		}
	}
	return points
}

func TestTrainPartitionInvariance(t *testing.T) {
	ctx := context.Background()
	points := linePoints(100)

	cfg := Config{
		Partitions:   1,
		Iterations:   25,
		StepSize:     0.5,
		Loss:         SquaredL1,
		FitIntercept: true,
	}

	base, err := Train(ctx, points, cfg)
	require.NoError(t, err)

	for _, partitions := range []int{2, 4, 7} {
		cfg.Partitions = partitions
		model, err := Train(ctx, points, cfg)
		require.NoError(t, err)

		require.Len(t, model.Weights, len(base.Weights))
		for i := range base.Weights {
			require.InDelta(t, base.Weights[i], model.Weights[i], 1e-9, "partitions=%d weight=%d", partitions, i)
		}
		require.InDelta(t, base.Intercept, model.Intercept, 1e-9, "partitions=%d", partitions)
	}
}

func TestTrainConvergesOnLine(t *testing.T) {
	ctx := context.Background()

	model, err := Train(ctx, linePoints(101), Config{
		Partitions: 4,
		Iterations: 300,
		StepSize:   0.5,
		Loss:       SquaredL1,
	})
	require.NoError(t, err)

	require.InDelta(t, 2.0, model.Weights[0], 1e-3)
	require.Less(t, RMSE(model, linePoints(101)), 1e-3)
}

func TestTrainHingeSeparable(t *testing.T) {
	ctx := context.Background()
	points := clusterPoints()

	model, err := Train(ctx, points, Config{
		Partitions:   3,
		Iterations:   200,
		StepSize:     0.1,
		Loss:         Hinge,
		FitIntercept: true,
	})
	require.NoError(t, err)

	require.Equal(t, 1.0, Accuracy(model, points))
}

func TestTrainStepDecay(t *testing.T) {
	ctx := context.Background()

	constant, err := Train(ctx, linePoints(50), Config{
		Iterations: 10,
		StepSize:   0.1,
		Loss:       SquaredL1,
	})
	require.NoError(t, err)

	decayed, err := Train(ctx, linePoints(50), Config{
		Iterations: 10,
		StepSize:   0.1,
		Loss:       SquaredL1,
		DecaySteps: true,
	})
	require.NoError(t, err)

	// decay shrinks every step after the first, so it moves less from zero
	require.Less(t, decayed.Weights[0], constant.Weights[0])
	require.Greater(t, decayed.Weights[0], 0.0)
}

func TestTrainL1ShrinksWeights(t *testing.T) {
	ctx := context.Background()
	points := linePoints(50)

	plain, err := Train(ctx, points, Config{
		Iterations: 100,
		StepSize:   0.5,
		Loss:       SquaredL1,
	})
	require.NoError(t, err)

	shrunk, err := Train(ctx, points, Config{
		Iterations: 100,
		StepSize:   0.5,
		Loss:       SquaredL1,
		Lambda:     0.5,
	})
	require.NoError(t, err)

	require.Less(t, shrunk.Weights[0], plain.Weights[0])
	require.GreaterOrEqual(t, shrunk.Weights[0], 0.0)
}

func TestSoftThreshold(t *testing.T) {
	w := []float64{2, -0.5, 0.1, -3}
	softThreshold(w, 1)
	require.Equal(t, []float64{1, 0, 0, -2}, w)

	w = []float64{1, -1}
	softThreshold(w, 0)
	require.Equal(t, []float64{1, -1}, w)
}

func TestTrainDimensionMismatch(t *testing.T) {
	ctx := context.Background()

	points := []LabeledPoint{
		{Label: 1, Features: []float64{1, 2}},
		{Label: 2, Features: []float64{1}},
	}

	_, err := Train(ctx, points, Config{Iterations: 10, StepSize: 0.1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "features")
}

func TestTrainValidation(t *testing.T) {
	ctx := context.Background()
	points := linePoints(10)

	_, err := Train(ctx, nil, Config{Iterations: 10, StepSize: 0.1})
	require.Error(t, err)

	_, err = Train(ctx, points, Config{Iterations: 0, StepSize: 0.1})
	require.Error(t, err)

	_, err = Train(ctx, points, Config{Iterations: 10, StepSize: 0})
	require.Error(t, err)
}

func TestTrainCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Train(ctx, linePoints(10), Config{Iterations: 10, StepSize: 0.1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSplit(t *testing.T) {
	points := linePoints(10)

	parts := split(points, 3)
	require.Len(t, parts, 3)
	require.Len(t, parts[0], 4)
	require.Len(t, parts[1], 3)
	require.Len(t, parts[2], 3)

	// more partitions than records collapses to one record each
	parts = split(points, 20)
	require.Len(t, parts, 10)
}
