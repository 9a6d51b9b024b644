package model

import "errors"

// BoardSize is the number of cells on a 5x5 board.
const BoardSize = 25

// CenterIndex is the position of the middle cell in row-major order.
const CenterIndex = BoardSize / 2

// Board is the emitted list of tasks, in file order.
type Board []Task

// Center returns the center task and whether the board has one.
func (b Board) Center() (Task, bool) {
	for _, t := range b {
		if t.IsCenter() {
			return t, true
		}
	}
	return Task{}, false
}

// Grid lays the board out row by row with the center task in the middle cell
// and the remaining tasks in board order.
func (b Board) Grid() ([]Task, error) {
	if len(b) != BoardSize {
		return nil, errors.New("board must have 25 cells")
	}
	center, ok := b.Center()
	if !ok {
		return nil, errors.New("board has no center task")
	}
	grid := make([]Task, 0, BoardSize)
	placed := false
	for _, t := range b {
		if t.IsCenter() && !placed {
			placed = true
			continue
		}
		if len(grid) == CenterIndex {
			grid = append(grid, center)
		}
		grid = append(grid, t)
	}
	return grid, nil
}
