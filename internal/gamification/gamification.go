// Package gamification keeps the process-wide XP/level/badge counters that
// reward task completions.
package gamification

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// XPPerCompletion is the fixed award for completing a task.
const XPPerCompletion = 10

// Stats is the singleton counter set. Counters only ever go up: un-completing
// a task refunds nothing.
type Stats struct {
	Level               int      `json:"level"`
	XP                  int      `json:"xp"`
	StreakDays          int      `json:"streak_days"`
	TasksCompletedToday int      `json:"tasks_completed_today"`
	Badges              []string `json:"badges"`
}

// Tracker owns the stats singleton. Mutations happen only through
// RecordCompletion, under the lock.
type Tracker struct {
	mu    sync.Mutex
	stats Stats
}

func NewTracker() *Tracker {
	return &Tracker{
		stats: Stats{
			Level:               1,
			XP:                  0,
			StreakDays:          0,
			TasksCompletedToday: 0,
			Badges:              []string{},
		},
	}
}

// RecordCompletion awards XP for one completed task and applies the level-up
// rule: crossing level*100 XP bumps the level, appends a "Level N" badge, and
// produces an achievement message. The returned message is nil otherwise.
func (g *Tracker) RecordCompletion() (xpGained int, achievement *string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	xpGained = XPPerCompletion
	g.stats.XP += xpGained
	g.stats.TasksCompletedToday++

	if g.stats.XP >= g.stats.Level*100 {
		g.stats.Level++
		g.stats.Badges = append(g.stats.Badges, fmt.Sprintf("Level %d", g.stats.Level))
		msg := fmt.Sprintf("Level Up! You reached Level %d 🏆", g.stats.Level)
		achievement = &msg
	}
	return xpGained, achievement
}

// Snapshot returns a copy of the current stats.
func (g *Tracker) Snapshot() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := g.stats
	out.Badges = append([]string{}, g.stats.Badges...)
	return out
}

// StatsHandler serves the read-only stats endpoint.
func StatsHandler(tracker *Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tracker.Snapshot())
	}
}
