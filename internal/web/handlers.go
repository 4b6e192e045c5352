package web

import (
	"net/http"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/emiliopalmerini/fitdash/internal/dataset"
	"github.com/emiliopalmerini/fitdash/internal/observability"
	"github.com/emiliopalmerini/fitdash/internal/stats"
	"github.com/emiliopalmerini/fitdash/internal/util"
)

// page carries the navigation state shared by every view template.
type page struct {
	Current View
}

func (page) Views() []View { return Views[:] }

// tables fetches the memoized dataset, answering 500 on a failed load.
func (s *Server) tables(w http.ResponseWriter, r *http.Request) (*dataset.Tables, bool) {
	t, err := s.source.Tables(r.Context())
	if err != nil {
		s.logger.Error("dataset load failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return t, true
}

// The seven activity metrics shown in the correlation matrix, in display
// order. Chart handlers index into this list by position.
var activityMetrics = []struct {
	Name  string
	Value func(dataset.ActivityRecord) float64
}{
	{"TotalSteps", func(r dataset.ActivityRecord) float64 { return float64(r.TotalSteps) }},
	{"TotalDistance", func(r dataset.ActivityRecord) float64 { return r.TotalDistance }},
	{"Calories", func(r dataset.ActivityRecord) float64 { return float64(r.Calories) }},
	{"VeryActiveMinutes", func(r dataset.ActivityRecord) float64 { return float64(r.VeryActiveMinutes) }},
	{"FairlyActiveMinutes", func(r dataset.ActivityRecord) float64 { return float64(r.FairlyActiveMinutes) }},
	{"LightlyActiveMinutes", func(r dataset.ActivityRecord) float64 { return float64(r.LightlyActiveMinutes) }},
	{"SedentaryMinutes", func(r dataset.ActivityRecord) float64 { return float64(r.SedentaryMinutes) }},
}

// activityColumns extracts each metric as a float column, rows in table order.
func activityColumns(rows []dataset.ActivityRecord) (names []string, cols [][]float64) {
	names = make([]string, len(activityMetrics))
	cols = make([][]float64, len(activityMetrics))
	for i, m := range activityMetrics {
		names[i] = m.Name
		col := make([]float64, len(rows))
		for j, rec := range rows {
			col[j] = m.Value(rec)
		}
		cols[i] = col
	}
	return names, cols
}

type dailyActivityPage struct {
	page
	Days        int
	AvgSteps    float64
	AvgCalories float64
	Metrics     []string
	Corr        [][]float64
}

func (s *Server) handleDailyActivity(w http.ResponseWriter, r *http.Request) {
	t, ok := s.tables(w, r)
	if !ok {
		return
	}
	observability.ObservePageRender(ViewDailyActivity.String())

	names, cols := activityColumns(t.Activity)
	data := dailyActivityPage{
		page:    page{Current: ViewDailyActivity},
		Days:    len(t.Activity),
		Metrics: names,
		Corr:    stats.CorrelationMatrix(cols),
	}
	if len(t.Activity) > 0 {
		data.AvgSteps = stat.Mean(cols[0], nil)    // TotalSteps
		data.AvgCalories = stat.Mean(cols[2], nil) // Calories
	}
	s.render(w, dailyActivityTmpl, data)
}

func (s *Server) handleSleep(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.tables(w, r); !ok {
		return
	}
	observability.ObservePageRender(ViewSleep.String())
	s.render(w, sleepTmpl, page{Current: ViewSleep})
}

func (s *Server) handleHourly(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.tables(w, r); !ok {
		return
	}
	observability.ObservePageRender(ViewHourly.String())
	s.render(w, hourlyTmpl, page{Current: ViewHourly})
}

type heartRatePage struct {
	page
	Dates    []string
	Selected string
}

// heartRateDates returns the distinct calendar dates present in the
// heart-rate table, ascending.
func heartRateDates(samples []dataset.HeartRateSample) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, hr := range samples {
		d := util.FormatDay(hr.Time.Day())
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func (s *Server) handleHeartRate(w http.ResponseWriter, r *http.Request) {
	t, ok := s.tables(w, r)
	if !ok {
		return
	}
	observability.ObservePageRender(ViewHeartRate.String())

	dates := heartRateDates(t.HeartRate)
	selected := r.URL.Query().Get("date")
	if selected == "" && len(dates) > 0 {
		selected = dates[0]
	}
	s.render(w, heartRateTmpl, heartRatePage{
		page:     page{Current: ViewHeartRate},
		Dates:    dates,
		Selected: selected,
	})
}

type weightPage struct {
	page
	Empty        bool
	LatestWeight string
	LatestBMI    string
}

func (s *Server) handleWeight(w http.ResponseWriter, r *http.Request) {
	t, ok := s.tables(w, r)
	if !ok {
		return
	}
	observability.ObservePageRender(ViewWeight.String())

	data := weightPage{page: page{Current: ViewWeight}}
	if len(t.Weight) == 0 {
		data.Empty = true
		s.render(w, weightTmpl, data)
		return
	}

	// Latest entry: sorted by date descending, first row. Sort a copy, the
	// loaded tables are shared and read-only.
	rows := append([]dataset.WeightRecord(nil), t.Weight...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date.Time) })
	data.LatestWeight = util.FormatMetric(rows[0].WeightKg)
	data.LatestBMI = util.FormatMetric(rows[0].BMI)
	s.render(w, weightTmpl, data)
}
