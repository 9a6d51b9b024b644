package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"nightreign-bingo/internal/model"
	"nightreign-bingo/internal/repository"
)

// ErrCheckFailed wraps every structural problem found in a board file.
var ErrCheckFailed = errors.New("check failed")

// BoardReader loads an emitted board.
type BoardReader interface {
	Read() (model.Board, error)
}

// NightfarerSource provides the nightfarer reference data.
type NightfarerSource interface {
	Nightfarers() ([]model.Owner, error)
}

// CheckResult summarizes a passing check.
type CheckResult struct {
	Cells      int
	Center     string
	Nightfarer string
	Warnings   []string
}

// CheckService validates an emitted board independently of the generator.
type CheckService struct {
	board       BoardReader
	nightfarers NightfarerSource
	log         *zap.Logger
}

func NewCheckService(board BoardReader, nightfarers NightfarerSource, log *zap.Logger) *CheckService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CheckService{board: board, nightfarers: nightfarers, log: log}
}

// Check stops at the first failing rule: 25 cells, exactly one center task,
// no repeated names, and the nightfarer tasks all belong to one nightfarer.
// Missing nightfarer data skips the last rule with a warning.
func (s *CheckService) Check(ctx context.Context) (CheckResult, error) {
	var res CheckResult
	if err := ctx.Err(); err != nil {
		return res, err
	}

	board, err := s.board.Read()
	if errors.Is(err, repository.ErrNoBoard) {
		return res, err
	}
	if err != nil {
		return res, fmt.Errorf("%w: board is not a list of tasks: %v", ErrCheckFailed, err)
	}
	res.Cells = len(board)

	if len(board) != model.BoardSize {
		return res, fmt.Errorf("%w: board has %d entries, want %d", ErrCheckFailed, len(board), model.BoardSize)
	}

	centers := 0
	for _, t := range board {
		if t.IsCenter() {
			centers++
			res.Center = t.Name
		}
	}
	switch {
	case centers == 0:
		return res, fmt.Errorf("%w: no boss task with \"center\": 1", ErrCheckFailed)
	case centers > 1:
		return res, fmt.Errorf("%w: %d tasks with \"center\": 1, want 1", ErrCheckFailed, centers)
	}

	seen := make(map[string]bool, len(board))
	for _, t := range board {
		if seen[t.Name] {
			return res, fmt.Errorf("%w: task %q appears more than once", ErrCheckFailed, t.Name)
		}
		seen[t.Name] = true
	}

	if s.nightfarers == nil {
		res.Warnings = append(res.Warnings, "no nightfarer data configured, skipping nightfarer check")
		return res, nil
	}
	owners, err := s.nightfarers.Nightfarers()
	if errors.Is(err, repository.ErrNoData) {
		s.log.Warn("nightfarer data missing", zap.Error(err))
		res.Warnings = append(res.Warnings, "Nightfarers.json not found, skipping nightfarer check")
		return res, nil
	}
	if err != nil {
		return res, err
	}

	selected, ok := firstOwnerOnBoard(owners, seen)
	if !ok {
		return res, fmt.Errorf("%w: no nightfarer tasks found on the board", ErrCheckFailed)
	}
	res.Nightfarer = selected.Name

	for _, o := range owners {
		if o.Name == selected.Name {
			continue
		}
		for _, name := range o.Tasks {
			if seen[name] {
				return res, fmt.Errorf("%w: task %q from nightfarer %q found on the board", ErrCheckFailed, name, o.Name)
			}
		}
	}

	s.log.Debug("board check passed", zap.String("nightfarer", res.Nightfarer))
	return res, nil
}

func firstOwnerOnBoard(owners []model.Owner, onBoard map[string]bool) (model.Owner, bool) {
	for _, o := range owners {
		for _, name := range o.Tasks {
			if onBoard[name] {
				return o, true
			}
		}
	}
	return model.Owner{}, false
}
