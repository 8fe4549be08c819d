// Package tour recomputes the canonical knight's tour used as ground
// truth for the logic-tier testbenches. The transcript of those tests
// has no fixed success string: the correct output depends on the
// starting square, so the verifier solves the tour itself and diffs
// the result against what the simulated hardware logged.
package tour

import (
	"errors"
	"fmt"
)

// Default board dimensions.
const (
	DefaultRows = 5
	DefaultCols = 5
)

// ErrNoTour is returned when backtracking exhausts every branch
// without covering the board.
var ErrNoTour = errors.New("no knight's tour exists from this start")

// Coordinate is a 0-indexed board square.
type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// knightOffsets is the frozen neighbor-try order, version 1. The
// verifier depends on the solver returning the first solution found
// under exactly this order; reordering these entries changes the
// canonical tour and breaks byte-for-byte comparison against the
// hardware, so treat the order as part of the contract.
var knightOffsets = [8]Coordinate{
	{Row: +1, Col: +2},
	{Row: -1, Col: +2},
	{Row: -2, Col: +1},
	{Row: -2, Col: -1},
	{Row: -1, Col: -2},
	{Row: +1, Col: -2},
	{Row: +2, Col: -1},
	{Row: +2, Col: +1},
}

// board is the mutable visited bitmap of one in-progress search. It is
// private to a single Solve call and discarded when it returns.
type board struct {
	rows, cols int
	visited    []bool
	path       []Coordinate
}

func (b *board) contains(c Coordinate) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

func (b *board) index(c Coordinate) int {
	return c.Row*b.cols + c.Col
}

// solve marks the square visited on entry, appends it to the path and
// recurses over the eight offsets in their fixed order. The first
// full-length path wins; on a dead end the square is unmarked and
// popped before the next sibling offset is tried.
func (b *board) solve(square Coordinate) bool {
	b.visited[b.index(square)] = true
	b.path = append(b.path, square)

	if len(b.path) == b.rows*b.cols {
		return true
	}

	for _, off := range knightOffsets {
		next := Coordinate{Row: square.Row + off.Row, Col: square.Col + off.Col}
		if !b.contains(next) || b.visited[b.index(next)] {
			continue
		}
		if b.solve(next) {
			return true
		}
	}

	b.visited[b.index(square)] = false
	b.path = b.path[:len(b.path)-1]
	return false
}

// Solve computes the canonical knight's tour covering a rows×cols
// board from the given start. The returned path includes the starting
// square and has length rows*cols. Two calls with the same arguments
// always return identical paths.
func Solve(start Coordinate, rows, cols int) ([]Coordinate, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid board dimensions %dx%d", rows, cols)
	}
	b := &board{
		rows:    rows,
		cols:    cols,
		visited: make([]bool, rows*cols),
		path:    make([]Coordinate, 0, rows*cols),
	}
	if !b.contains(start) {
		return nil, fmt.Errorf("start %s outside %dx%d board", start, rows, cols)
	}
	if !b.solve(start) {
		return nil, fmt.Errorf("start %s: %w", start, ErrNoTour)
	}
	return b.path, nil
}
