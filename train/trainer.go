package train

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sync"
)

// Train runs synchronous mini-batch gradient descent over positionally
// partitioned points and returns the fitted model.
//
// Each iteration broadcasts a read-only snapshot of the current weights to
// every partition, sums the per-partition partial gradients, divides by the
// total record count and applies one descent step. No partition starts the
// next iteration before the global gradient of the current one is merged.
func Train(ctx context.Context, points []LabeledPoint, cfg Config) (*Model, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("train: empty dataset")
	}
	if cfg.Iterations < 1 {
		return nil, fmt.Errorf("train: iterations must be positive, got %d", cfg.Iterations)
	}
	if cfg.StepSize <= 0 {
		return nil, fmt.Errorf("train: step size must be positive, got %v", cfg.StepSize)
	}

	dim := len(points[0].Features)
	for i, p := range points {
		if len(p.Features) != dim {
			return nil, fmt.Errorf("train: record %d has %d features, want %d", i, len(p.Features), dim)
		}
	}

	partitions := cfg.Partitions
	if partitions < 1 {
		partitions = 1
	}
	parts := split(points, partitions)

	weights := make([]float64, dim)
	var intercept float64

	slog.Info("trainer: starting run",
		"records", len(points),
		"dim", dim,
		"partitions", len(parts),
		"iterations", cfg.Iterations,
		"loss", cfg.Loss.String(),
	)

	for t := 1; t <= cfg.Iterations; t++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("train: %w", err)
		}

		step := cfg.StepSize
		if cfg.DecaySteps {
			step = cfg.StepSize / math.Sqrt(float64(t))
		}

		weights, intercept = iterate(parts, weights, intercept, len(points), step, cfg)
	}

	return &Model{
		Weights:   weights,
		Intercept: intercept,
		Loss:      cfg.Loss,
	}, nil
}

// iterate performs one synchronous descent step: prior weights in, next
// weights out. The inputs are never mutated.
func iterate(parts [][]LabeledPoint, weights []float64, intercept float64, total int, step float64, cfg Config) ([]float64, float64) {
	snapshot := slices.Clone(weights)

	type partial struct {
		grad      []float64
		intercept float64
	}

	partials := make(chan partial, len(parts))

	var wg sync.WaitGroup
	for _, pts := range parts {
		wg.Add(1)
		go func(pts []LabeledPoint) {
			defer wg.Done()
			g, gi := partialGradient(pts, snapshot, intercept, cfg.Loss)
			partials <- partial{grad: g, intercept: gi}
		}(pts)
	}

	// full barrier: the global gradient needs every partial
	wg.Wait()
	close(partials)

	grad := make([]float64, len(weights))
	var gradIntercept float64
	for p := range partials {
		for i, v := range p.grad {
			grad[i] += v
		}
		gradIntercept += p.intercept
	}

	next := make([]float64, len(weights))
	for i := range next {
		next[i] = weights[i] - step*grad[i]/float64(total)
	}

	if cfg.Loss == SquaredL1 {
		softThreshold(next, step*cfg.Lambda)
	}

	if cfg.FitIntercept {
		intercept -= step * gradIntercept / float64(total)
	}

	return next, intercept
}

// split chunks points positionally into n near-equal partitions.
func split(points []LabeledPoint, n int) [][]LabeledPoint {
	if n > len(points) {
		n = len(points)
	}

	parts := make([][]LabeledPoint, 0, n)
	size := len(points) / n
	rest := len(points) % n

	start := 0
	for i := 0; i < n; i++ {
		end := start + size
		if i < rest {
			end++
		}
		parts = append(parts, points[start:end])
		start = end
	}

	return parts
}
