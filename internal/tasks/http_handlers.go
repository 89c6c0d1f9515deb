package tasks

import (
	"encoding/json"
	"net/http"

	"fluidtasks-backend/internal/gamification"
	"fluidtasks-backend/internal/heuristics"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// -------------------------------
// HANDLERS
// -------------------------------

func ListTasksHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, store.All())
	}
}

func CreateTaskHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body TaskCreate
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := ValidateStruct(body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// Priority is always recomputed on create, even when the client
		// sent one.
		priority, reasoning := heuristics.AnalyzePriority(body.Title, body.DueDate)

		task := store.Add(NewTask(body, Priority(priority), reasoning))
		writeJSON(w, task)
	}
}

func GetTaskHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		task, err := store.Get(r.PathValue("id"))
		if err != nil {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		writeJSON(w, task)
	}
}

func UpdateTaskHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body TaskUpdate
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := ValidateStruct(body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		task, err := store.Update(r.PathValue("id"), body)
		if err != nil {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		writeJSON(w, task)
	}
}

func ToggleTaskHandler(store *Store, tracker *gamification.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		task, err := store.Toggle(r.PathValue("id"))
		if err != nil {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}

		resp := ToggleResponse{Task: task}
		// Completing earns XP; un-completing refunds nothing.
		if task.Completed {
			resp.XPGained, resp.AchievementUpdate = tracker.RecordCompletion()
		}
		writeJSON(w, resp)
	}
}

func DeleteTaskHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Delete(r.PathValue("id")); err != nil {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		writeJSON(w, map[string]string{"message": "Task deleted"})
	}
}

func BreakdownHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		task, err := store.Get(r.PathValue("id"))
		if err != nil {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}

		titles := heuristics.GenerateSubtasks(task.Title)
		subs := make([]SubTask, 0, len(titles))
		for _, title := range titles {
			subs = append(subs, NewSubTask(title))
		}

		task, err = store.AppendSubTasks(task.ID, subs)
		if err != nil {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		writeJSON(w, task.SubTasks)
	}
}

func ReminderHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		task, err := store.Get(r.PathValue("id"))
		if err != nil {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		if task.DueDate == nil {
			writeJSON(w, map[string]string{"message": "No due date set for this task."})
			return
		}
		writeJSON(w, map[string]string{"message": heuristics.GenerateReminder(task.Title, task.DueDate)})
	}
}
