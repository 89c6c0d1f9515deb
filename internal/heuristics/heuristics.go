// Package heuristics holds the deterministic keyword and due-date rules
// that stand in for an AI analysis service. Every function is pure: same
// inputs (and clock) in, same strings out.
package heuristics

import (
	"fmt"
	"strings"
	"time"
)

var (
	urgentKeywords   = []string{"urgent", "asap", "deadline", "important", "exam", "client"}
	learningKeywords = []string{"study", "learn", "course"}
)

// stripZone rebuilds a due date on the same wall-clock fields in local time,
// dropping any UTC offset the client sent. Deliberate simplification: the
// comparison is naive, not a timezone conversion.
func stripZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local)
}

func containsAny(titleLower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(titleLower, k) {
			return true
		}
	}
	return false
}

// AnalyzePriority classifies a task title and optional due date, returning
// the priority name ("Low", "Medium", "High") and its reasoning. Keyword
// urgency wins over everything; a due date within 8 hours (including one
// already in the past) is High; within 3 whole days is Medium.
func AnalyzePriority(title string, due *time.Time) (priority, reasoning string) {
	return analyzePriorityAt(title, due, time.Now())
}

func analyzePriorityAt(title string, due *time.Time, now time.Time) (string, string) {
	titleLower := strings.ToLower(title)

	if containsAny(titleLower, urgentKeywords) {
		return "High", "Marked High Priority because keywords indicate urgency or importance."
	}

	if due != nil {
		diff := stripZone(*due).Sub(now)
		if diff < 8*time.Hour {
			return "High", "Marked High Priority because the due date is very soon (within 8 hours)."
		}
		if int(diff.Hours()/24) < 3 {
			return "Medium", "Marked Medium Priority because the due date is approaching."
		}
	}

	if containsAny(titleLower, learningKeywords) {
		return "Medium", "Marked Medium Priority to encourage consistent learning progress."
	}

	return "Low", "Marked Low Priority as it appears to be a routine or non-urgent task."
}

// GenerateSubtasks returns 3-5 checklist titles for a task. First matching
// keyword category wins; the fallback parameterizes the first item with the
// original title.
func GenerateSubtasks(title string) []string {
	titleLower := strings.ToLower(title)

	switch {
	case containsAny(titleLower, []string{"study", "exam", "learn"}):
		return []string{
			"Review core concepts",
			"Practice practice problems",
			"Summarize notes",
			"Take a mock test",
		}
	case containsAny(titleLower, []string{"buy", "shop", "grocery"}):
		return []string{
			"Check current inventory",
			"Make a shopping list",
			"Compare prices online",
			"Go to the store",
		}
	case containsAny(titleLower, []string{"project", "code", "app"}):
		return []string{
			"Define requirements",
			"Set up development environment",
			"Create initial prototype",
			"Test and debug",
			"Deploy or share",
		}
	case containsAny(titleLower, []string{"write", "essay", "blog"}):
		return []string{
			"Research topic",
			"Create an outline",
			"Draft the content",
			"Proofread and edit",
		}
	default:
		return []string{
			fmt.Sprintf("Prepare for %s", title),
			"Execute main step",
			"Review and finalize",
		}
	}
}

// GenerateReminder builds a friendly nudge from the time remaining. A
// difference of exactly zero minutes lands in the "Upcoming" branch: both
// timed branches require a positive count and the passed branch a negative
// one.
func GenerateReminder(title string, due *time.Time) string {
	return generateReminderAt(title, due, time.Now())
}

func generateReminderAt(title string, due *time.Time, now time.Time) string {
	if due == nil {
		return fmt.Sprintf("Don't forget to work on '%s' when you have a moment!", title)
	}

	minutesLeft := int(stripZone(*due).Sub(now).Minutes())

	switch {
	case minutesLeft > 0 && minutesLeft <= 15:
		return fmt.Sprintf("⏰ Reminder: You have %d minutes left to finish '%s'. A small push now can save stress later!", minutesLeft, title)
	case minutesLeft > 0 && minutesLeft <= 60:
		return fmt.Sprintf("⏳ Heads up: '%s' is due in less than an hour. Good luck!", title)
	case minutesLeft < 0:
		return fmt.Sprintf("⚠️ The deadline for '%s' has passed. Better late than never!", title)
	default:
		return fmt.Sprintf("📅 Upcoming: '%s' is due on %s.", title, due.Format("Jan 02, 03:04 PM"))
	}
}
