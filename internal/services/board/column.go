package board

import "github.com/tavlaboard/tavla/internal/models"

// TasksByStatus projects the subsequence of tasks in the given column,
// preserving the input's relative order.
func TasksByStatus(tasks []models.Task, status models.Status) []models.Task {
	out := []models.Task{}
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// Partition splits tasks into the four column views. Because status is
// total and single-valued, the views partition the input with no
// overlaps and no omissions.
func Partition(tasks []models.Task) map[models.Status][]models.Task {
	out := make(map[models.Status][]models.Task, 4)
	for _, status := range models.AllStatuses() {
		out[status] = TasksByStatus(tasks, status)
	}
	return out
}
