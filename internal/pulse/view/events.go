package view

import "github.com/zappabad/pulse/internal/token"

// BatchEvent is published after a feed batch has been reconciled.
type BatchEvent struct {
	Seq     int64
	Pairs   []token.Pair
	Columns token.Columns
}
