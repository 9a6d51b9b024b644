package model

// Owner is a nightfarer or a map: a named, ordered list of task names.
type Owner struct {
	Name  string   `json:"name"`
	Tasks []string `json:"tasks"`
}

// Wrap turns the owner's task names into tasks of the given category.
func (o Owner) Wrap(category string) []Task {
	tasks := make([]Task, 0, len(o.Tasks))
	for _, name := range o.Tasks {
		tasks = append(tasks, Task{Name: name, Category: category})
	}
	return tasks
}
