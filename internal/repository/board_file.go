package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"nightreign-bingo/internal/model"
)

// ErrNoBoard is returned when the board file does not exist.
var ErrNoBoard = errors.New("board file not found")

// BoardFile persists a board as a pretty-printed JSON array.
type BoardFile struct {
	path string
}

func NewBoardFile(path string) *BoardFile {
	return &BoardFile{path: path}
}

// Path returns the file location, made absolute when possible.
func (f *BoardFile) Path() string {
	if abs, err := filepath.Abs(f.path); err == nil {
		return abs
	}
	return f.path
}

// Write overwrites the file with the board.
func (f *BoardFile) Write(board model.Board) error {
	data, err := json.MarshalIndent(board, "", "    ")
	if err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create board dir %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write board: %w", err)
	}
	return nil
}

// Read decodes the file into a board.
func (f *BoardFile) Read() (model.Board, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoBoard, f.path)
	}
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	var board model.Board
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	return board, nil
}
