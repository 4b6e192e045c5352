package web

import (
	"fmt"
	"net/http"

	"github.com/emiliopalmerini/fitdash/internal/observability"
	"github.com/emiliopalmerini/fitdash/internal/stats"
	"github.com/emiliopalmerini/fitdash/internal/util"
)

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// trendPoints converts a stats.TrendLine result into the two-point line
// dataset the chart scripts overlay on a scatter.
func trendPoints(xs, ys []float64) []point {
	tx, ty := stats.TrendLine(xs, ys)
	if tx[0] == 0 && tx[1] == 0 && ty[0] == 0 && ty[1] == 0 {
		return nil
	}
	return []point{{tx[0], ty[0]}, {tx[1], ty[1]}}
}

func (s *Server) handleChartSteps(w http.ResponseWriter, r *http.Request) {
	t, ok := s.tables(w, r)
	if !ok {
		return
	}
	observability.ObserveChartRequest("steps")

	labels := make([]string, len(t.Activity))
	steps := make([]int, len(t.Activity))
	for i, rec := range t.Activity {
		labels[i] = util.FormatDay(rec.ActivityDate.Time)
		steps[i] = rec.TotalSteps
	}
	writeJSON(w, map[string]any{"labels": labels, "steps": steps})
}

func (s *Server) handleChartStepsCalories(w http.ResponseWriter, r *http.Request) {
	t, ok := s.tables(w, r)
	if !ok {
		return
	}
	observability.ObserveChartRequest("steps_calories")

	points := make([]point, len(t.Activity))
	xs := make([]float64, len(t.Activity))
	ys := make([]float64, len(t.Activity))
	for i, rec := range t.Activity {
		xs[i] = float64(rec.TotalSteps)
		ys[i] = float64(rec.Calories)
		points[i] = point{xs[i], ys[i]}
	}
	writeJSON(w, map[string]any{"points": points, "trend": trendPoints(xs, ys)})
}

func (s *Server) handleChartSleepDistribution(w http.ResponseWriter, r *http.Request) {
	t, ok := s.tables(w, r)
	if !ok {
		return
	}
	observability.ObserveChartRequest("sleep_distribution")

	hours := make([]float64, len(t.Sleep))
	for i, rec := range t.Sleep {
		hours[i] = rec.SleepHours()
	}

	bins := stats.Histogram(hours, 20)
	labels := make([]string, len(bins))
	counts := make([]int, len(bins))
	for i, b := range bins {
		labels[i] = fmt.Sprintf("%.1f-%.1f", b.Lo, b.Hi)
		counts[i] = b.Count
	}

	box := stats.BoxStats(hours)
	writeJSON(w, map[string]any{
		"labels": labels,
		"counts": counts,
		"box": map[string]float64{
			"min":          box.Min,
			"lowerWhisker": box.LowerWhisker,
			"q1":           box.Q1,
			"median":       box.Median,
			"q3":           box.Q3,
			"upperWhisker": box.UpperWhisker,
			"max":          box.Max,
		},
	})
}

func (s *Server) handleChartSleepSteps(w http.ResponseWriter, r *http.Request) {
	t, ok := s.tables(w, r)
	if !ok {
		return
	}
	observability.ObserveChartRequest("sleep_steps")

	joined := stats.JoinSleepActivity(t.Sleep, t.Activity)
	points := make([]point, len(joined))
	xs := make([]float64, len(joined))
	ys := make([]float64, len(joined))
	for i, row := range joined {
		xs[i] = row.SleepHours
		ys[i] = float64(row.TotalSteps)
		points[i] = point{xs[i], ys[i]}
	}
	writeJSON(w, map[string]any{"points": points, "trend": trendPoints(xs, ys)})
}

func (s *Server) handleChartHourlySteps(w http.ResponseWriter, r *http.Request) {
	t, ok := s.tables(w, r)
	if !ok {
		return
	}
	observability.ObserveChartRequest("hourly_steps")

	hours := make([]int, len(t.HourlySteps))
	totals := make([]float64, len(t.HourlySteps))
	for i, rec := range t.HourlySteps {
		hours[i] = rec.Hour()
		totals[i] = float64(rec.StepTotal)
	}
	outHours, means := stats.MeanByHour(hours, totals)
	writeJSON(w, map[string]any{"hours": outHours, "means": means})
}

func (s *Server) handleChartHeartRate(w http.ResponseWriter, r *http.Request) {
	t, ok := s.tables(w, r)
	if !ok {
		return
	}
	observability.ObserveChartRequest("heart_rate")

	date := r.URL.Query().Get("date")
	if date == "" {
		if dates := heartRateDates(t.HeartRate); len(dates) > 0 {
			date = dates[0]
		}
	}

	// A date with no samples yields empty series and an empty chart, not an
	// error.
	var labels []string
	var values []int
	for _, hr := range t.HeartRate {
		if util.FormatDay(hr.Time.Day()) != date {
			continue
		}
		labels = append(labels, util.FormatClock(hr.Time.Time))
		values = append(values, hr.Value)
	}
	writeJSON(w, map[string]any{"date": date, "labels": labels, "values": values})
}

func (s *Server) handleChartWeight(w http.ResponseWriter, r *http.Request) {
	t, ok := s.tables(w, r)
	if !ok {
		return
	}
	observability.ObserveChartRequest("weight")

	labels := make([]string, len(t.Weight))
	values := make([]float64, len(t.Weight))
	for i, rec := range t.Weight {
		labels[i] = util.FormatDay(rec.Date.Time)
		values[i] = rec.WeightKg
	}
	writeJSON(w, map[string]any{"labels": labels, "values": values})
}

func (s *Server) handleChartBMI(w http.ResponseWriter, r *http.Request) {
	t, ok := s.tables(w, r)
	if !ok {
		return
	}
	observability.ObserveChartRequest("bmi")

	labels := make([]string, len(t.Weight))
	values := make([]float64, len(t.Weight))
	for i, rec := range t.Weight {
		labels[i] = util.FormatDay(rec.Date.Time)
		values[i] = rec.BMI
	}
	writeJSON(w, map[string]any{"labels": labels, "values": values})
}
