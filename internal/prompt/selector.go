// Package prompt drives the line-based menus that pick a boss, a nightfarer,
// a map and the category minimums.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"nightreign-bingo/internal/model"
)

var (
	// ErrInputClosed is returned when input ends before a valid answer.
	ErrInputClosed = errors.New("prompt: input closed")
	// ErrNoChoices is returned for an empty menu, which could never be answered.
	ErrNoChoices = errors.New("prompt: nothing to choose from")
)

type stage int

const (
	stageBoss stage = iota
	stageNightfarer
	stageMap
	stageQuotaMode
	stageQuotaAll
	stageQuotaEach
)

func (s stage) String() string {
	switch s {
	case stageBoss:
		return "boss"
	case stageNightfarer:
		return "nightfarer"
	case stageMap:
		return "map"
	case stageQuotaMode:
		return "quota-mode"
	case stageQuotaAll:
		return "quota-all"
	case stageQuotaEach:
		return "quota-each"
	default:
		return "unknown"
	}
}

const (
	enterNumber  = "Enter number: "
	modeUniform  = "1"
	modeEach     = "2"
	invalidPick  = "Invalid choice, try again."
	invalidMin   = "Invalid input. Try a lower number."
	totalTooHigh = "Total exceeds %d. Try again."
	totalWouldBe = "Total would be %d, which exceeds %d. Try again."
	notNumber    = "%q is not a number, counting it as 0."
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Selector asks questions on out and reads one answer per line from in.
type Selector struct {
	in  *bufio.Reader
	out io.Writer
	log *zap.Logger
}

func NewSelector(in io.Reader, out io.Writer, log *zap.Logger) *Selector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Selector{in: bufio.NewReader(in), out: out, log: log}
}

// Select runs the boss, nightfarer and map menus, then asks for minimums over
// the categories that categoriesFor derives from those choices.
func (s *Selector) Select(ctx context.Context, catalog model.Catalog, categoriesFor func(model.Selection) []string) (model.Selection, error) {
	var sel model.Selection
	var err error

	if sel.Boss, err = s.ChooseBoss(ctx, catalog.Bosses); err != nil {
		return sel, err
	}
	if sel.Nightfarer, err = s.ChooseNightfarer(ctx, catalog.Nightfarers); err != nil {
		return sel, err
	}
	if sel.Map, err = s.ChooseMap(ctx, catalog.Maps); err != nil {
		return sel, err
	}
	if sel.Quota, err = s.ChooseQuota(ctx, categoriesFor(sel)); err != nil {
		return sel, err
	}
	return sel, nil
}

// ChooseBoss shows the boss menu until a listed number is entered.
func (s *Selector) ChooseBoss(ctx context.Context, bosses []model.Task) (model.Task, error) {
	names := make([]string, len(bosses))
	for i, b := range bosses {
		names[i] = b.Name
	}
	idx, err := s.chooseIndex(ctx, stageBoss, "Choose a Boss:", names)
	if err != nil {
		return model.Task{}, err
	}
	return bosses[idx], nil
}

// ChooseNightfarer shows the nightfarer menu.
func (s *Selector) ChooseNightfarer(ctx context.Context, owners []model.Owner) (model.Owner, error) {
	return s.chooseOwner(ctx, stageNightfarer, "Choose a Nightfarer:", owners)
}

// ChooseMap shows the map menu.
func (s *Selector) ChooseMap(ctx context.Context, owners []model.Owner) (model.Owner, error) {
	return s.chooseOwner(ctx, stageMap, "Choose a Map:", owners)
}

func (s *Selector) chooseOwner(ctx context.Context, st stage, title string, owners []model.Owner) (model.Owner, error) {
	names := make([]string, len(owners))
	for i, o := range owners {
		names[i] = o.Name
	}
	idx, err := s.chooseIndex(ctx, st, title, names)
	if err != nil {
		return model.Owner{}, err
	}
	return owners[idx], nil
}

func (s *Selector) chooseIndex(ctx context.Context, st stage, title string, names []string) (int, error) {
	if len(names) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoChoices, st)
	}
	for {
		s.println("")
		s.println(titleStyle.Render(title))
		for i, name := range names {
			s.printf("%d: %s\n", i+1, name)
		}
		answer, err := s.ask(ctx, st, enterNumber)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(names) {
			return n - 1, nil
		}
		s.warn(invalidPick)
	}
}

// ChooseQuota asks for the quota mode and the minimums. Accepted minimums
// never add up to more than a board.
func (s *Selector) ChooseQuota(ctx context.Context, categories []string) (model.Quota, error) {
	mode, err := s.chooseMode(ctx)
	if err != nil {
		return model.Quota{}, err
	}
	if mode == modeUniform {
		n, err := s.askUniform(ctx, len(categories))
		if err != nil {
			return model.Quota{}, err
		}
		return model.UniformQuota(n), nil
	}
	mins, err := s.askEach(ctx, categories)
	if err != nil {
		return model.Quota{}, err
	}
	return model.PerCategoryQuota(mins), nil
}

func (s *Selector) chooseMode(ctx context.Context) (string, error) {
	for {
		s.println("")
		s.println(titleStyle.Render("Category selection mode:"))
		s.println("1: Minimum from each category (choose a number for all)")
		s.println("2: Specify minimum for every category one-by-one")
		answer, err := s.ask(ctx, stageQuotaMode, enterNumber)
		if err != nil {
			return "", err
		}
		if answer == modeUniform || answer == modeEach {
			return answer, nil
		}
	}
}

func (s *Selector) askUniform(ctx context.Context, categories int) (int, error) {
	q := fmt.Sprintf("Enter minimum tasks per category (applies to all, total must not exceed %d): ", model.BoardSize)
	for {
		answer, err := s.ask(ctx, stageQuotaAll, q)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		switch {
		case err != nil || n < 0 || n > model.BoardSize:
			s.warn(invalidMin)
		case n*categories > model.BoardSize:
			s.warn(fmt.Sprintf(totalWouldBe, n*categories, model.BoardSize))
		default:
			return n, nil
		}
	}
}

// askEach prompts once per category. Anything that is not a non-negative
// number counts as zero, with a warning for non-numbers. An oversized total
// restarts the whole round.
func (s *Selector) askEach(ctx context.Context, categories []string) (map[string]int, error) {
	for {
		mins := make(map[string]int, len(categories))
		total := 0
		for _, c := range categories {
			answer, err := s.ask(ctx, stageQuotaEach, fmt.Sprintf("Minimum tasks for %q: ", c))
			if err != nil {
				return nil, err
			}
			n, err := strconv.Atoi(answer)
			if err != nil && answer != "" {
				s.warn(fmt.Sprintf(notNumber, answer))
			}
			if err != nil || n < 0 {
				n = 0
			}
			mins[c] = n
			total += min(n, model.BoardSize+1)
		}
		if total <= model.BoardSize {
			return mins, nil
		}
		s.log.Debug("per-category total rejected", zap.Int("total", total))
		s.warn(fmt.Sprintf(totalTooHigh, model.BoardSize))
	}
}

// ask writes the question and waits for one line of any length.
func (s *Selector) ask(ctx context.Context, st stage, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.printf("%s", question)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read %s answer: %w", st, err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	answer := strings.TrimSpace(line)
	s.log.Debug("prompt answer", zap.Stringer("stage", st), zap.String("answer", answer))
	return answer, nil
}

func (s *Selector) warn(msg string) {
	s.println(warnStyle.Render(msg))
}

func (s *Selector) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Selector) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
