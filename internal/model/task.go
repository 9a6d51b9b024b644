package model

// Category names that the pool builder assigns or treats specially.
const (
	CategoryBoss       = "Boss"
	CategoryNightfarer = "Nightfarer"
	CategoryMap        = "Map"
)

// Task represents a single bingo cell.
type Task struct {
	Name       string   `json:"name" yaml:"name"`
	Category   string   `json:"category,omitempty" yaml:"category,omitempty"`
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
	Center     int      `json:"center,omitempty" yaml:"center,omitempty"`
}

// IsCenter reports whether the task is the mandatory middle cell.
func (t Task) IsCenter() bool {
	return t.Center == 1
}

// HasCategory reports whether the task belongs to category, either through
// its single category or its category list.
func (t Task) HasCategory(category string) bool {
	if t.Category != "" && t.Category == category {
		return true
	}
	for _, c := range t.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// AllCategories returns the task's single category followed by its list.
func (t Task) AllCategories() []string {
	out := make([]string, 0, len(t.Categories)+1)
	if t.Category != "" {
		out = append(out, t.Category)
	}
	return append(out, t.Categories...)
}

// Clone returns a copy that shares no slices with t.
func (t Task) Clone() Task {
	if t.Categories != nil {
		t.Categories = append([]string(nil), t.Categories...)
	}
	return t
}
