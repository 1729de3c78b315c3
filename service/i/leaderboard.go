package i

import (
	"context"
	"fmt"
)

// BoardForSize names the leaderboard for mazes of the given side length.
func BoardForSize(size int) string {
	return fmt.Sprintf("leaderboard:size_%d", size)
}

// RankedEntry is one leaderboard row.
type RankedEntry struct {
	Member string
	Score  float64
}

// Leaderboard ranks finished runs by how little work they needed.
type Leaderboard interface {
	// Record adds a member with the given score to the board.
	Record(ctx context.Context, board string, score float64, member string) error

	// Tops returns up to amount members with the lowest scores.
	Tops(ctx context.Context, board string, amount int64) ([]RankedEntry, error)
}
