package domain

// Filter is a pure view selector over a task collection. It never mutates
// the collection it is applied to.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

func ParseFilter(value string) (Filter, error) {
	switch Filter(value) {
	case FilterAll, FilterActive, FilterCompleted:
		return Filter(value), nil
	}
	return "", ErrInvalidFilter
}

// Apply returns the subset of tasks selected by the filter, preserving
// order. FilterActive and FilterCompleted partition the collection.
func (f Filter) Apply(tasks []Task) []Task {
	if f == FilterAll {
		out := make([]Task, len(tasks))
		copy(out, tasks)
		return out
	}

	out := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		switch f {
		case FilterActive:
			if !task.Completed {
				out = append(out, task)
			}
		case FilterCompleted:
			if task.Completed {
				out = append(out, task)
			}
		}
	}
	return out
}
