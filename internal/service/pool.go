package service

import "nightreign-bingo/internal/model"

// Pool is the merged candidate list for one board.
type Pool struct {
	Boss       model.Task
	Tasks      []model.Task
	Categories []string
}

// BuildPool merges the chosen boss, the nightfarer's and map's tasks and the
// generic pool, in that order. Categories excludes Boss.
func BuildPool(sel model.Selection, generic []model.Task) Pool {
	tasks := make([]model.Task, 0, 1+len(sel.Nightfarer.Tasks)+len(sel.Map.Tasks)+len(generic))
	tasks = append(tasks, sel.Boss.Clone())
	tasks = append(tasks, sel.Nightfarer.Wrap(model.CategoryNightfarer)...)
	tasks = append(tasks, sel.Map.Wrap(model.CategoryMap)...)
	for _, t := range generic {
		tasks = append(tasks, t.Clone())
	}

	return Pool{
		Boss:       sel.Boss.Clone(),
		Tasks:      tasks,
		Categories: Categories(tasks),
	}
}

// Categories returns the distinct categories of tasks in first-seen order,
// without Boss.
func Categories(tasks []model.Task) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range tasks {
		for _, c := range t.AllCategories() {
			if c == model.CategoryBoss {
				continue
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// FilterByCategory returns the tasks that belong to category.
func FilterByCategory(tasks []model.Task, category string) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.HasCategory(category) {
			out = append(out, t)
		}
	}
	return out
}
