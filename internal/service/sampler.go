package service

import (
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"nightreign-bingo/internal/model"
)

var (
	// ErrInvalidQuota is returned for minimums that cannot fit on a board.
	ErrInvalidQuota = errors.New("invalid quota")
	// ErrShortBoard is returned when the pool has too few distinct tasks.
	ErrShortBoard = errors.New("not enough tasks to fill the board")
)

// Sampler draws board cells from a pool.
type Sampler struct {
	rng *rand.Rand
	log *zap.Logger
}

func NewSampler(rng *rand.Rand, log *zap.Logger) *Sampler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sampler{rng: rng, log: log}
}

// Sample builds a board: the boss, then quota draws per category in category
// order, then random fills up to BoardSize, shuffled. Task names never repeat
// and the boss is never dropped.
func (s *Sampler) Sample(pool Pool, quota model.Quota) (model.Board, error) {
	if err := quota.Validate(pool.Categories); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuota, err)
	}

	used := map[string]bool{pool.Boss.Name: true}
	selected := make([]model.Task, 0, model.BoardSize+1)
	selected = append(selected, pool.Boss.Clone())

	for _, category := range pool.Categories {
		want := quota.Min(category)
		if want <= 0 {
			continue
		}
		candidates := withoutCenter(FilterByCategory(pool.Tasks, category))
		drawn := s.draw(candidates, want, used)
		if len(drawn) < want {
			s.log.Warn("category quota not met",
				zap.String("category", category),
				zap.Int("want", want),
				zap.Int("got", len(drawn)))
		}
		s.log.Debug("quota draw", zap.String("category", category), zap.Int("count", len(drawn)))
		selected = append(selected, drawn...)
	}

	if missing := model.BoardSize - len(selected); missing > 0 {
		fill := s.draw(withoutCenter(pool.Tasks), missing, used)
		s.log.Debug("random fill", zap.Int("want", missing), zap.Int("count", len(fill)))
		selected = append(selected, fill...)
	}

	if len(selected) < model.BoardSize {
		return nil, fmt.Errorf("%w: %d of %d cells", ErrShortBoard, len(selected), model.BoardSize)
	}

	return s.arrange(selected), nil
}

// draw takes up to n tasks uniformly at random without replacement by
// swap-removing from a private copy. Names already in used are skipped and
// every drawn name is added to used.
func (s *Sampler) draw(candidates []model.Task, n int, used map[string]bool) []model.Task {
	work := append([]model.Task(nil), candidates...)
	out := make([]model.Task, 0, min(n, len(work)))
	for len(out) < n && len(work) > 0 {
		i := s.rng.Intn(len(work))
		t := work[i]
		last := len(work) - 1
		work[i] = work[last]
		work = work[:last]

		if used[t.Name] {
			continue
		}
		used[t.Name] = true
		out = append(out, t.Clone())
	}
	return out
}

// arrange shuffles the non-boss cells, trims them to fit and drops the boss
// into a uniformly random position. selected[0] must be the boss.
func (s *Sampler) arrange(selected []model.Task) model.Board {
	boss := selected[0]
	rest := append([]model.Task(nil), selected[1:]...)
	s.rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	if len(rest) > model.BoardSize-1 {
		rest = rest[:model.BoardSize-1]
	}

	pos := s.rng.Intn(len(rest) + 1)
	board := make(model.Board, 0, model.BoardSize)
	board = append(board, rest[:pos]...)
	board = append(board, boss)
	board = append(board, rest[pos:]...)
	return board
}

func withoutCenter(tasks []model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.IsCenter() {
			out = append(out, t)
		}
	}
	return out
}
