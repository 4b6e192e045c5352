package web

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/fitdash/internal/dataset"
)

var exportFixtures = map[string]string{
	"dailyActivity_merged.csv": `Id,ActivityDate,TotalSteps,TotalDistance,VeryActiveMinutes,FairlyActiveMinutes,LightlyActiveMinutes,SedentaryMinutes,Calories
1503960366,4/12/2016,13162,8.5,25,13,328,728,1985
1503960366,4/13/2016,10735,6.97,21,19,217,776,1797
1503960366,4/15/2016,9762,6.28,29,34,209,726,1745
`,
	"dailyCalories_merged.csv": `Id,ActivityDay,Calories
1503960366,4/12/2016,1985
`,
	"dailyIntensities_merged.csv": `Id,ActivityDay,SedentaryMinutes,LightlyActiveMinutes,FairlyActiveMinutes,VeryActiveMinutes,SedentaryActiveDistance,LightActiveDistance,ModeratelyActiveDistance,VeryActiveDistance
1503960366,4/12/2016,728,328,13,25,0,6.06,0.55,1.88
`,
	"dailySteps_merged.csv": `Id,ActivityDay,StepTotal
1503960366,4/12/2016,13162
`,
	"sleepDay_merged.csv": `Id,SleepDay,TotalSleepRecords,TotalMinutesAsleep,TotalTimeInBed
1503960366,4/12/2016 12:00:00 AM,1,327,346
1503960366,4/13/2016 12:00:00 AM,2,384,407
1503960366,4/14/2016 12:00:00 AM,1,412,442
`,
	"heartrate_seconds_merged.csv": `Id,Time,Value
2022484408,4/12/2016 7:21:00 AM,97
2022484408,4/12/2016 7:21:05 AM,102
2022484408,4/13/2016 7:30:00 AM,88
`,
	"hourlySteps_merged.csv": `Id,ActivityHour,StepTotal
1503960366,4/12/2016 8:00:00 AM,120
1503960366,4/12/2016 9:00:00 AM,300
1503960366,4/13/2016 8:00:00 AM,60
`,
	"weightLogInfo_merged.csv": `Id,Date,WeightKg,WeightPounds,Fat,BMI,IsManualReport,LogId
1503960366,1/1/2024 11:59:59 PM,70,154.3,22,22,True,1462233599000
1503960366,1/3/2024 11:59:59 PM,69.5,153.2,22,21.8,True,1462405799000
`,
}

func writeExportDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range exportFixtures {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}
	return dir
}

func testServer(t *testing.T) *Server {
	t.Helper()
	return serverFor(dataset.NewLoader(writeExportDir(t)))
}

func serverFor(source TableSource) *Server {
	return NewServer(source, 0, time.Second, zap.NewNop())
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, testServer(t), "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("expected body \"ok\", got %q", rec.Body.String())
	}
}

func TestDailyActivityPage(t *testing.T) {
	rec := get(t, testServer(t), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()

	for _, want := range []string{
		"Fitbit Dashboard",
		"Select Analysis",
		"Daily Activity", "Sleep Analysis", "Hourly Patterns", "Heart Rate", "Weight Log",
		"Correlation between Activity Metrics",
		"TotalSteps", "SedentaryMinutes",
		"1.00", // correlation diagonal
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
}

func TestNavigationMarksCurrentView(t *testing.T) {
	rec := get(t, testServer(t), "/sleep")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<a href="/sleep" class="active">Sleep Analysis</a>`) {
		t.Error("expected the sleep nav entry to be active")
	}
	if strings.Contains(body, `<a href="/" class="active">`) {
		t.Error("expected the daily activity nav entry to be inactive")
	}
}

func TestHeartRatePage_DateSelector(t *testing.T) {
	s := testServer(t)

	rec := get(t, s, "/heart-rate")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	// First date is selected by default.
	if !strings.Contains(body, `<option value="2016-04-12" selected>`) {
		t.Error("expected 2016-04-12 selected by default")
	}
	if !strings.Contains(body, `<option value="2016-04-13">`) {
		t.Error("expected 2016-04-13 offered unselected")
	}
	if !strings.Contains(body, "Heart Rate Throughout 2016-04-12") {
		t.Error("expected the selected date in the chart title")
	}

	rec = get(t, s, "/heart-rate?date=2016-04-13")
	if !strings.Contains(rec.Body.String(), `<option value="2016-04-13" selected>`) {
		t.Error("expected 2016-04-13 selected via query param")
	}
}

func TestWeightPage_LatestMetrics(t *testing.T) {
	rec := get(t, testServer(t), "/weight")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	// Sorted by date descending, the 1/3 row wins over the 1/1 row.
	if !strings.Contains(body, "69.5") {
		t.Error("expected latest weight 69.5")
	}
	if !strings.Contains(body, "21.8") {
		t.Error("expected latest BMI 21.8")
	}
	if strings.Contains(body, "No weight log data available.") {
		t.Error("did not expect the empty-table notice")
	}
}

func TestWeightPage_Empty(t *testing.T) {
	dir := writeExportDir(t)
	header := "Id,Date,WeightKg,WeightPounds,Fat,BMI,IsManualReport,LogId\n"
	if err := os.WriteFile(filepath.Join(dir, "weightLogInfo_merged.csv"), []byte(header), 0644); err != nil {
		t.Fatal(err)
	}
	s := serverFor(dataset.NewLoader(dir))

	rec := get(t, s, "/weight")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "No weight log data available.") {
		t.Error("expected the empty-table notice")
	}
	if strings.Contains(body, "<canvas") {
		t.Error("expected no chart canvases on the empty weight page")
	}
}

func TestLoadFailureSurfacesAsServerError(t *testing.T) {
	s := serverFor(dataset.NewLoader(t.TempDir()))

	for _, path := range []string{"/", "/sleep", "/hourly", "/heart-rate", "/weight", "/api/charts/steps"} {
		rec := get(t, s, path)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("GET %s: expected 500, got %d", path, rec.Code)
		}
	}
}

func TestStaticAssetsServed(t *testing.T) {
	rec := get(t, testServer(t), "/static/app.js")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "chartData") {
		t.Error("expected the embedded script to define chartData")
	}
}

func TestRequestIDEchoedOnResponse(t *testing.T) {
	s := testServer(t)

	first := get(t, s, "/health")
	if first.Header().Get("X-Request-Id") == "" {
		t.Error("expected an X-Request-Id response header")
	}
	second := get(t, s, "/health")
	if first.Header().Get("X-Request-Id") == second.Header().Get("X-Request-Id") {
		t.Error("expected a fresh request id per request")
	}
}

func TestUnknownPathIs404(t *testing.T) {
	rec := get(t, testServer(t), "/no-such-page")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
