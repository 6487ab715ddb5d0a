package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/kolenov/partred/train"
)

// Fits a linear model on a synthetic dataset with known coefficients and
// reports how far the fit landed from them.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	points := make([]train.LabeledPoint, 0, 2000)
	for range 2000 {
		x1 := gofakeit.Float64Range(-10, 10)
		x2 := gofakeit.Float64Range(-10, 10)
		noise := gofakeit.Float64Range(-0.5, 0.5)
		points = append(points, train.LabeledPoint{
			Label:    3*x1 - 2*x2 + 5 + noise,
			Features: []float64{x1, x2},
		})
	}

	scaler, err := train.FitScaler(points)
	if err != nil {
		panic(err)
	}
	scaled := scaler.TransformPoints(points)

	model, err := train.Train(ctx, scaled, train.Config{
		Partitions:   4,
		Iterations:   200,
		StepSize:     0.1,
		Loss:         train.SquaredL1,
		FitIntercept: true,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("weights (scaled space): %v\n", model.Weights)
	fmt.Printf("intercept: %v\n", model.Intercept)
	fmt.Printf("rmse: %v\n", train.RMSE(model, scaled))
}
