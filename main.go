package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/marcodamonte/traits/generics"
	"github.com/marcodamonte/traits/interfaces"
)

// Generics and capability polymorphism, one step at a time.
//
// Run:
//
//	go run .
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := run(os.Stdout, logger); err != nil {
		logger.Error("traits demo failed", "error", err)
		os.Exit(1)
	}
}

func run(w io.Writer, logger *slog.Logger) error {
	// ── Largest[T Ordered] ────────────────────────────────────────────────────
	numbers := []int{34, 50, 25, 100, 65}
	n, err := generics.Largest(numbers)
	if err != nil {
		return fmt.Errorf("numbers: %w", err)
	}
	logger.Debug("largest", "type", "int", "len", len(numbers))
	fmt.Fprintf(w, "The largest number is %d\n", *n)

	chars := []string{"a", "b", "c"}
	c, err := generics.Largest(chars)
	if err != nil {
		return fmt.Errorf("chars: %w", err)
	}
	logger.Debug("largest", "type", "string", "len", len(chars))
	fmt.Fprintf(w, "The largest char is %s\n", *c)

	// ── Point[X, Y] ───────────────────────────────────────────────────────────
	point := generics.NewPoint(5, 10.0)
	fmt.Fprintf(w, "The largest point is at %v, %v\n", point.X(), point.Y())

	// ── Summary / Notify ──────────────────────────────────────────────────────
	tweet := interfaces.Tweet{
		Username: "horse_ebooks",
		Content:  "of course, as you probably already know, people",
	}
	fmt.Fprintf(w, "1 new tweet: %s\n", tweet.Summarize())

	if err := interfaces.Notify(w, tweet); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	return nil
}
