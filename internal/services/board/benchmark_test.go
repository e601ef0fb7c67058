package board

import (
	"fmt"
	"testing"

	"github.com/tavlaboard/tavla/internal/models"
)

// ============================================================================
// BENCHMARK SETUP HELPERS
// ============================================================================

// benchmarkTasks builds a collection spread evenly across the four columns
func benchmarkTasks(n int) []models.Task {
	statuses := models.AllStatuses()
	priorities := models.AllPriorities()

	tasks := make([]models.Task, n)
	for i := range tasks {
		tasks[i] = models.Task{
			ID:        fmt.Sprintf("task-%d", i),
			ProjectID: fmt.Sprintf("%d", i%3+1),
			Title:     fmt.Sprintf("Benchmark task %d", i),
			Priority:  priorities[i%len(priorities)],
			Status:    statuses[i%len(statuses)],
		}
	}
	return tasks
}

// ============================================================================
// BENCHMARKS
// ============================================================================

func BenchmarkApplyFilter(b *testing.B) {
	tasks := benchmarkTasks(1000)
	filter := models.Filter{Search: "task 5", Priority: models.PriorityHigh}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ApplyFilter(tasks, filter, DateFilterDueDate)
	}
}

func BenchmarkPartition(b *testing.B) {
	tasks := benchmarkTasks(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Partition(tasks)
	}
}

func BenchmarkApplyDrop_CrossColumn(b *testing.B) {
	tasks := benchmarkTasks(1000)
	result := drop("task-0", models.StatusTodo, 0, models.StatusDone, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ApplyDrop(tasks, tasks, result, dropClock)
	}
}
