package model

import "fmt"

// QuotaMode tells how per-category minimums were entered.
type QuotaMode string

const (
	QuotaUniform     QuotaMode = "uniform"
	QuotaPerCategory QuotaMode = "per-category"
)

// Quota is the minimum number of tasks requested per category.
type Quota struct {
	Mode     QuotaMode
	Minimum  int
	Minimums map[string]int
}

// UniformQuota applies the same minimum to every category.
func UniformQuota(n int) Quota {
	return Quota{Mode: QuotaUniform, Minimum: n}
}

// PerCategoryQuota applies a distinct minimum to each category.
func PerCategoryQuota(mins map[string]int) Quota {
	return Quota{Mode: QuotaPerCategory, Minimums: mins}
}

// Min returns the minimum requested for category.
func (q Quota) Min(category string) int {
	if q.Mode == QuotaUniform {
		return q.Minimum
	}
	return q.Minimums[category]
}

// Total returns the number of quota draws over categories. Each minimum is
// clamped to one more than a board, so the sum cannot wrap.
func (q Quota) Total(categories []string) int {
	total := 0
	for _, c := range categories {
		total += min(q.Min(c), BoardSize+1)
	}
	return total
}

// Validate checks that the quota fits on a board with the given categories.
func (q Quota) Validate(categories []string) error {
	switch q.Mode {
	case QuotaUniform:
		if q.Minimum < 0 {
			return fmt.Errorf("minimum %d is negative", q.Minimum)
		}
		if q.Minimum > BoardSize {
			return fmt.Errorf("minimum %d exceeds %d", q.Minimum, BoardSize)
		}
	case QuotaPerCategory:
		for c, n := range q.Minimums {
			if n < 0 {
				return fmt.Errorf("minimum for %q is negative", c)
			}
			if n > BoardSize {
				return fmt.Errorf("minimum %d for %q exceeds %d", n, c, BoardSize)
			}
		}
	default:
		return fmt.Errorf("unknown quota mode %q", q.Mode)
	}
	if total := q.Total(categories); total > BoardSize {
		return fmt.Errorf("total %d exceeds %d", total, BoardSize)
	}
	return nil
}

// Selection is everything the user chose for one board.
type Selection struct {
	Boss       Task
	Nightfarer Owner
	Map        Owner
	Quota      Quota
}
