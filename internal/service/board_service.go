package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"nightreign-bingo/internal/model"
	"nightreign-bingo/internal/random"
)

// BoardWriter persists a generated board.
type BoardWriter interface {
	Write(board model.Board) error
	Path() string
}

// GenerateResult describes a written board.
type GenerateResult struct {
	Board model.Board
	Seed  int64
	Path  string
}

// BoardService samples a board and writes it.
type BoardService struct {
	writer BoardWriter
	log    *zap.Logger
}

func NewBoardService(writer BoardWriter, log *zap.Logger) *BoardService {
	if log == nil {
		log = zap.NewNop()
	}
	return &BoardService{writer: writer, log: log}
}

// Generate samples a board from pool with quota and overwrites the output
// file. A zero seed picks a fresh one; the seed used is returned.
func (s *BoardService) Generate(ctx context.Context, pool Pool, quota model.Quota, seed int64) (GenerateResult, error) {
	if err := ctx.Err(); err != nil {
		return GenerateResult{}, err
	}

	rng, seed, err := random.New(seed)
	if err != nil {
		return GenerateResult{}, err
	}
	log := s.log.With(zap.Int64("seed", seed))
	log.Info("sampling board",
		zap.String("boss", pool.Boss.Name),
		zap.Int("candidates", len(pool.Tasks)),
		zap.Strings("categories", pool.Categories))

	board, err := NewSampler(rng, log).Sample(pool, quota)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("sample board: %w", err)
	}

	if err := s.writer.Write(board); err != nil {
		return GenerateResult{}, err
	}
	log.Info("board written", zap.String("path", s.writer.Path()))

	return GenerateResult{Board: board, Seed: seed, Path: s.writer.Path()}, nil
}
