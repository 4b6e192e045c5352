package stats

import (
	"time"

	"github.com/emiliopalmerini/fitdash/internal/dataset"
)

// SleepActivity is one day present in both the sleep and activity tables.
type SleepActivity struct {
	Day        time.Time
	SleepHours float64
	TotalSteps int
}

// JoinSleepActivity inner-joins sleep and activity rows on calendar day.
// Rows whose day appears on only one side are dropped. Output order follows
// the sleep table.
func JoinSleepActivity(sleep []dataset.SleepRecord, activity []dataset.ActivityRecord) []SleepActivity {
	byDay := make(map[time.Time]dataset.ActivityRecord, len(activity))
	for _, a := range activity {
		byDay[a.ActivityDate.Day()] = a
	}

	var out []SleepActivity
	for _, s := range sleep {
		a, ok := byDay[s.SleepDay.Day()]
		if !ok {
			continue
		}
		out = append(out, SleepActivity{
			Day:        s.SleepDay.Day(),
			SleepHours: s.SleepHours(),
			TotalSteps: a.TotalSteps,
		})
	}
	return out
}
