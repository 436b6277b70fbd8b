package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/questdo/questdo/internal/model"
)

// seedTasks builds the demo collection shown on first run: three quests per
// quadrant with deadlines spread around now.
func seedTasks(now time.Time) []model.Task {
	day := 24 * time.Hour
	seeds := []struct {
		title     string
		due       time.Duration
		urgent    bool
		important bool
	}{
		{title: "Fix Crash Bug", due: time.Hour, urgent: true, important: true},
		{title: "Submit App Review", due: day, urgent: true, important: true},
		{title: "Pay Server Bill", due: 12 * time.Hour, urgent: true, important: true},

		{title: "Learn Terminal Animation", due: 7 * day, urgent: false, important: true},
		{title: "Design New Icon", due: 3 * day, urgent: false, important: true},
		{title: "Plan Marketing Strategy", due: 10 * day, urgent: false, important: true},

		{title: "Return Mom's Call", due: 30 * time.Minute, urgent: true, important: false},
		{title: "Reply to Comments", due: 2 * time.Hour, urgent: true, important: false},
		{title: "Buy Coffee Beans", due: 5 * time.Hour, urgent: true, important: false},

		{title: "Watch Cat Videos", due: 2 * day, urgent: false, important: false},
		{title: "Organize Desktop Icons", due: 5 * day, urgent: false, important: false},
		{title: "Browse Forums", due: day, urgent: false, important: false},
	}

	out := make([]model.Task, 0, len(seeds))
	for _, seed := range seeds {
		out = append(out, model.Task{
			ID:          uuid.NewString(),
			Title:       seed.title,
			CreatedAt:   now,
			Deadline:    now.Add(seed.due),
			IsUrgent:    seed.urgent,
			IsImportant: seed.important,
		})
	}
	return out
}
