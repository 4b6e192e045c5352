package web

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/fitdash/internal/util"
)

var funcMap = template.FuncMap{
	"fmtDay":    util.FormatDay,
	"fmtClock":  util.FormatClock,
	"fmtMetric": util.FormatMetric,
	"fmtCount":  util.FormatCount,
	"corrColor": corrColor,
	"corrText":  corrText,
}

// The five page templates, parsed once. Each combines the base layout
// with its own "content" block.
var (
	dailyActivityTmpl = mustPage(tmplDailyActivity)
	sleepTmpl         = mustPage(tmplSleep)
	hourlyTmpl        = mustPage(tmplHourly)
	heartRateTmpl     = mustPage(tmplHeartRate)
	weightTmpl        = mustPage(tmplWeight)
)

func mustPage(content string) *template.Template {
	return template.Must(template.New("page").Funcs(funcMap).Parse(tmplBase + content))
}

func (s *Server) render(w http.ResponseWriter, t *template.Template, data any) {
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		s.logger.Error("template", zap.Error(err))
	}
}

// ── Base layout ──────────────────────────────────────────────────────────

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Fitbit Dashboard</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.3/dist/chart.umd.min.js"></script>
<script src="/static/app.js"></script>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,'Segoe UI',sans-serif;background:#0d1117;color:#c9d1d9;font-size:14px;line-height:1.5;display:flex;min-height:100vh}
a{color:#58a6ff;text-decoration:none}
aside{width:220px;flex-shrink:0;background:#161b22;border-right:1px solid #30363d;padding:16px 12px}
aside .brand{color:#f0f6fc;font-weight:700;font-size:16px;margin-bottom:16px}
aside .nav-label{font-size:11px;color:#8b949e;text-transform:uppercase;letter-spacing:.06em;margin-bottom:6px}
aside nav{display:flex;flex-direction:column;gap:2px}
aside nav a{color:#8b949e;padding:6px 10px;border-radius:6px}
aside nav a:hover{color:#c9d1d9;background:#21262d}
aside nav a.active{background:#1f6feb;color:#fff}
main{flex:1;padding:20px 24px;min-width:0}
h1{font-size:20px;font-weight:700;color:#f0f6fc;margin-bottom:16px}
h2{font-size:13px;font-weight:600;color:#8b949e;text-transform:uppercase;letter-spacing:.05em;margin-bottom:8px}
.cards{display:flex;gap:12px;flex-wrap:wrap;margin-bottom:16px}
.card{background:#161b22;border:1px solid #30363d;border-radius:6px;padding:12px 16px;min-width:140px}
.card .val{font-size:24px;font-weight:700;color:#f0f6fc}
.card .lbl{font-size:11px;color:#8b949e;margin-top:2px}
.panel{background:#161b22;border:1px solid #30363d;border-radius:6px;padding:14px 16px;margin-bottom:16px}
.panel canvas{max-height:340px}
table.corr{border-collapse:collapse;font-size:12px}
table.corr th{padding:5px 8px;color:#8b949e;font-weight:600;text-align:right}
table.corr thead th{text-align:center}
table.corr td{padding:5px 8px;text-align:center;border:1px solid #0d1117;min-width:64px}
.filters{display:flex;gap:8px;align-items:center;margin-bottom:16px}
.filters label{font-size:12px;color:#8b949e}
.filters select{background:#161b22;border:1px solid #30363d;color:#c9d1d9;border-radius:6px;padding:5px 8px;font-size:13px}
.notice{border-radius:6px;padding:12px 16px;margin-bottom:16px}
.notice.warn{background:#f59e0b1a;border:1px solid #f59e0b66;color:#f59e0b}
</style>
</head>
<body>
<aside>
  <div class="brand">&#128202; Fitbit Dashboard</div>
  <div class="nav-label">Select Analysis</div>
  <nav>
    {{range .Views}}<a href="{{.Path}}"{{if eq . $.Current}} class="active"{{end}}>{{.Label}}</a>
    {{end}}
  </nav>
</aside>
<main>
{{template "content" .}}
</main>
</body>
</html>
{{end}}
`

// ── Daily Activity ───────────────────────────────────────────────────────

const tmplDailyActivity = `
{{define "content"}}
<h1>Daily Activity Overview</h1>
<div class="cards">
  <div class="card"><div class="val">{{.Days}}</div><div class="lbl">Days tracked</div></div>
  <div class="card"><div class="val">{{fmtCount .AvgSteps}}</div><div class="lbl">Avg daily steps</div></div>
  <div class="card"><div class="val">{{fmtCount .AvgCalories}}</div><div class="lbl">Avg daily calories</div></div>
</div>
<div class="panel"><h2>Daily Steps Over Time</h2><canvas id="steps"></canvas></div>
<div class="panel"><h2>Steps vs Calories Burned</h2><canvas id="steps-calories"></canvas></div>
<div class="panel">
<h2>Correlation between Activity Metrics</h2>
<table class="corr">
<thead><tr><th></th>{{range .Metrics}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range $i, $row := .Corr}}<tr><th>{{index $.Metrics $i}}</th>{{range $row}}<td style="background-color:{{corrColor .}};color:{{corrText .}}">{{printf "%.2f" .}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</div>
<script>
chartData('/api/charts/steps').then(d => new Chart('steps', {
  type: 'line',
  data: {labels: d.labels, datasets: [{label: 'TotalSteps', data: d.steps, borderColor: '#58a6ff', backgroundColor: '#58a6ff', pointRadius: 3, tension: 0.1}]},
  options: {plugins: {legend: {display: false}}}
}));
chartData('/api/charts/steps-calories').then(d => new Chart('steps-calories', {
  type: 'scatter',
  data: {datasets: [
    {data: d.points, backgroundColor: '#58a6ff'},
    {type: 'line', data: d.trend, borderColor: '#f59e0b', pointRadius: 0}
  ]},
  options: {plugins: {legend: {display: false}}, scales: {x: {title: {display: true, text: 'TotalSteps'}}, y: {title: {display: true, text: 'Calories'}}}}
}));
</script>
{{end}}
`

// ── Sleep Analysis ───────────────────────────────────────────────────────

const tmplSleep = `
{{define "content"}}
<h1>Sleep Patterns</h1>
<div class="panel">
  <h2>Distribution of Sleep Hours</h2>
  <canvas id="sleep-box" height="46"></canvas>
  <canvas id="sleep-hist"></canvas>
</div>
<div class="panel"><h2>Sleep Duration vs Daily Steps</h2><canvas id="sleep-steps"></canvas></div>
<script>
chartData('/api/charts/sleep-distribution').then(d => {
  new Chart('sleep-hist', {
    type: 'bar',
    data: {labels: d.labels, datasets: [{data: d.counts, backgroundColor: '#58a6ff', categoryPercentage: 1, barPercentage: 1}]},
    options: {plugins: {legend: {display: false}}, scales: {x: {title: {display: true, text: 'SleepHours'}}, y: {title: {display: true, text: 'count'}}}}
  });
  // Box-plot marginal drawn as overlaid floating bars above the histogram.
  const b = d.box;
  new Chart('sleep-box', {
    type: 'bar',
    data: {labels: [''], datasets: [
      {data: [[b.lowerWhisker, b.upperWhisker]], backgroundColor: '#30363d', barPercentage: 0.2, grouped: false},
      {data: [[b.q1, b.q3]], backgroundColor: '#1f6feb', barPercentage: 0.7, grouped: false},
      {data: [[b.median - 0.03, b.median + 0.03]], backgroundColor: '#f0f6fc', barPercentage: 0.9, grouped: false}
    ]},
    options: {indexAxis: 'y', plugins: {legend: {display: false}, tooltip: {enabled: false}}, scales: {x: {min: b.min, max: b.max, display: false}, y: {display: false}}}
  });
});
chartData('/api/charts/sleep-steps').then(d => new Chart('sleep-steps', {
  type: 'scatter',
  data: {datasets: [
    {data: d.points, backgroundColor: '#58a6ff'},
    {type: 'line', data: d.trend, borderColor: '#f59e0b', pointRadius: 0}
  ]},
  options: {plugins: {legend: {display: false}}, scales: {x: {title: {display: true, text: 'SleepHours'}}, y: {title: {display: true, text: 'TotalSteps'}}}}
}));
</script>
{{end}}
`

// ── Hourly Patterns ──────────────────────────────────────────────────────

const tmplHourly = `
{{define "content"}}
<h1>Hourly Activity Trends</h1>
<div class="panel"><h2>Average Steps by Hour of Day</h2><canvas id="hourly"></canvas></div>
<script>
chartData('/api/charts/hourly-steps').then(d => new Chart('hourly', {
  type: 'bar',
  data: {labels: d.hours, datasets: [{data: d.means, backgroundColor: '#58a6ff'}]},
  options: {plugins: {legend: {display: false}}, scales: {x: {title: {display: true, text: 'Hour'}}, y: {title: {display: true, text: 'Mean StepTotal'}}}}
}));
</script>
{{end}}
`

// ── Heart Rate ───────────────────────────────────────────────────────────

const tmplHeartRate = `
{{define "content"}}
<h1>Heart Rate Analysis</h1>
<div class="filters">
  <label for="date">Choose a date</label>
  <select id="date" onchange="location.href='/heart-rate?date='+this.value">
    {{range .Dates}}<option value="{{.}}"{{if eq . $.Selected}} selected{{end}}>{{.}}</option>{{end}}
  </select>
</div>
<div class="panel"><h2>Heart Rate Throughout {{.Selected}}</h2><canvas id="hr"></canvas></div>
<script>
chartData('/api/charts/heart-rate?date={{.Selected}}').then(d => new Chart('hr', {
  type: 'line',
  data: {labels: d.labels, datasets: [{data: d.values, borderColor: '#f87171', pointRadius: 0, borderWidth: 1}]},
  options: {animation: false, plugins: {legend: {display: false}}, scales: {x: {ticks: {maxTicksLimit: 12}}, y: {title: {display: true, text: 'Value'}}}}
}));
</script>
{{end}}
`

// ── Weight Log ───────────────────────────────────────────────────────────

const tmplWeight = `
{{define "content"}}
<h1>Weight &amp; BMI Trends</h1>
{{if .Empty}}
<div class="notice warn">No weight log data available.</div>
{{else}}
<div class="cards">
  <div class="card"><div class="val">{{.LatestWeight}}</div><div class="lbl">Latest Weight (kg)</div></div>
  <div class="card"><div class="val">{{.LatestBMI}}</div><div class="lbl">Latest BMI</div></div>
</div>
<div class="panel"><h2>Weight Trend Over Time</h2><canvas id="weight"></canvas></div>
<div class="panel"><h2>BMI Trend Over Time</h2><canvas id="bmi"></canvas></div>
<script>
chartData('/api/charts/weight').then(d => new Chart('weight', {
  type: 'line',
  data: {labels: d.labels, datasets: [{data: d.values, borderColor: '#58a6ff', backgroundColor: '#58a6ff', pointRadius: 3, tension: 0.1}]},
  options: {plugins: {legend: {display: false}}}
}));
chartData('/api/charts/bmi').then(d => new Chart('bmi', {
  type: 'line',
  data: {labels: d.labels, datasets: [{data: d.values, borderColor: '#2ea043', backgroundColor: '#2ea043', pointRadius: 3, tension: 0.1}]},
  options: {plugins: {legend: {display: false}}}
}));
</script>
{{end}}
{{end}}
`
