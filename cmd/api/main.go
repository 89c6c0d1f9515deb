package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/rs/cors"

	"fluidtasks-backend/internal/config"
	"fluidtasks-backend/internal/gamification"
	"fluidtasks-backend/internal/reports"
	"fluidtasks-backend/internal/tasks"
)

// ----------------------
//        MAIN
// ----------------------

func main() {
	cfg := config.Load()

	store := tasks.NewStore()
	tracker := gamification.NewTracker()
	tasks.SeedDemoTask(store)

	mux := http.NewServeMux()

	// Health endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "FluidTasks API is running 🚀"})
	})

	// ----- TASKS API -----
	mux.HandleFunc("GET /tasks", tasks.ListTasksHandler(store))
	mux.HandleFunc("POST /tasks", tasks.CreateTaskHandler(store))
	mux.HandleFunc("GET /tasks/{id}", tasks.GetTaskHandler(store))
	mux.HandleFunc("PUT /tasks/{id}", tasks.UpdateTaskHandler(store))
	mux.HandleFunc("PUT /tasks/{id}/toggle", tasks.ToggleTaskHandler(store, tracker))
	mux.HandleFunc("DELETE /tasks/{id}", tasks.DeleteTaskHandler(store))
	mux.HandleFunc("POST /tasks/{id}/breakdown", tasks.BreakdownHandler(store))
	mux.HandleFunc("GET /tasks/{id}/reminder", tasks.ReminderHandler(store))

	// ----- GAMIFICATION & REPORTS -----
	mux.HandleFunc("GET /gamification/stats", gamification.StatsHandler(tracker))
	mux.HandleFunc("GET /reports/weekly", reports.WeeklyHandler(store))

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)

	log.Println("🚀 API server is running on", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), handler))
}
