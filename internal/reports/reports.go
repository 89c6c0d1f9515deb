// Package reports derives chart-ready aggregates from the task store.
package reports

import (
	"encoding/json"
	"net/http"
	"time"

	"fluidtasks-backend/internal/tasks"
)

// WeeklyReport is the 7-day completed/pending timeline, oldest day first,
// index-aligned across the three arrays. Totals count every stored task
// regardless of the window.
type WeeklyReport struct {
	Labels         []string `json:"labels"`
	Completed      []int    `json:"completed"`
	Pending        []int    `json:"pending"`
	Total          int      `json:"total"`
	TotalCompleted int      `json:"total_completed"`
}

// BuildWeekly buckets tasks into the window [today-6 .. today] by the date
// portion of created_at. A zero created_at counts as today; tasks older than
// the window only contribute to the totals. Seven consecutive days never
// repeat a weekday abbreviation, so labels are unique.
func BuildWeekly(all []tasks.Task, today time.Time) WeeklyReport {
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	// Bucketing compares calendar dates, not durations: a DST-shortened day
	// inside the window would make an hour count land a task one day off.
	window := make([]time.Time, 7)
	for i := range window {
		window[i] = todayDate.AddDate(0, 0, i-6)
	}

	report := WeeklyReport{
		Labels:    make([]string, 7),
		Completed: make([]int, 7),
		Pending:   make([]int, 7),
	}
	for i, day := range window {
		report.Labels[i] = day.Format("Mon")
	}

	for _, t := range all {
		report.Total++
		if t.Completed {
			report.TotalCompleted++
		}

		created := t.CreatedAt
		if created.IsZero() {
			created = todayDate
		}
		for i, day := range window {
			if day.Year() == created.Year() && day.YearDay() == created.YearDay() {
				if t.Completed {
					report.Completed[i]++
				} else {
					report.Pending[i]++
				}
				break
			}
		}
	}
	return report
}

// WeeklyHandler serves the weekly report endpoint.
func WeeklyHandler(store *tasks.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(BuildWeekly(store.All(), time.Now()))
	}
}
