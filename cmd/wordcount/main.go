package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/kolenov/partred/reduce"
	"github.com/kolenov/partred/reduce/store/bolt"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	dbPath := "partred.db"
	os.Remove(dbPath)
	store, err := bolt.New[int](dbPath)
	if err != nil {
		panic(err)
	}
	defer store.Destroy()

	engine := reduce.New(add, 5, reduce.WithStore[int](store))

	inCh := make(chan reduce.KeyVal[int])
	go func() {
		defer close(inCh)
		for range 10 {
			text := gofakeit.Sentence(gofakeit.IntRange(10, 20))
			for _, word := range tokenize(text) {
				inCh <- reduce.KeyVal[int]{Key: word, Val: 1}
			}
		}
	}()

	counts, err := engine.Run(ctx, inCh)
	if err != nil {
		panic(err)
	}

	for _, e := range reduce.SortedByValue(counts) {
		fmt.Printf("%s\t%d\n", e.Key, e.Val)
	}

	slog.Info("done", "stats", reduce.GlobalStats.String())
}

func add(a, b int) int { return a + b }

func tokenize(text string) []string {
	var words []string
	for _, word := range strings.Fields(text) {
		word = strings.ToLower(strings.Trim(word, ".,!?\"'"))
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words
}
