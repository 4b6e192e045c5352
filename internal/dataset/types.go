package dataset

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp wraps time.Time with CSV unmarshalling for the layouts that
// appear in Fitbit exports: some columns carry a bare date, others a
// 12-hour clock with AM/PM.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	"1/2/2006 3:04:05 PM",
	"1/2/2006 15:04:05",
	"1/2/2006",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalCSV implements the gocsv field unmarshaller.
func (t *Timestamp) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unparseable timestamp %q", s)
}

// MarshalCSV implements the gocsv field marshaller.
func (t Timestamp) MarshalCSV() (string, error) {
	return t.Format("1/2/2006 3:04:05 PM"), nil
}

// Day returns the calendar day of the timestamp, truncated to midnight UTC.
// Used for day-equality joins and filters.
func (t Timestamp) Day() time.Time {
	return time.Date(t.Year(), t.Month(), t.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// ActivityRecord is one day of summarised activity for one tracker.
type ActivityRecord struct {
	ID                   int64     `csv:"Id"`
	ActivityDate         Timestamp `csv:"ActivityDate"`
	TotalSteps           int       `csv:"TotalSteps"`
	TotalDistance        float64   `csv:"TotalDistance"`
	VeryActiveMinutes    int       `csv:"VeryActiveMinutes"`
	FairlyActiveMinutes  int       `csv:"FairlyActiveMinutes"`
	LightlyActiveMinutes int       `csv:"LightlyActiveMinutes"`
	SedentaryMinutes     int       `csv:"SedentaryMinutes"`
	Calories             int       `csv:"Calories"`
}

// CalorieRecord is one day of calorie burn.
type CalorieRecord struct {
	ID          int64     `csv:"Id"`
	ActivityDay Timestamp `csv:"ActivityDay"`
	Calories    int       `csv:"Calories"`
}

// IntensityRecord is one day of minutes and distance per intensity bucket.
type IntensityRecord struct {
	ID                       int64     `csv:"Id"`
	ActivityDay              Timestamp `csv:"ActivityDay"`
	SedentaryMinutes         int       `csv:"SedentaryMinutes"`
	LightlyActiveMinutes     int       `csv:"LightlyActiveMinutes"`
	FairlyActiveMinutes      int       `csv:"FairlyActiveMinutes"`
	VeryActiveMinutes        int       `csv:"VeryActiveMinutes"`
	SedentaryActiveDistance  float64   `csv:"SedentaryActiveDistance"`
	LightActiveDistance      float64   `csv:"LightActiveDistance"`
	ModeratelyActiveDistance float64   `csv:"ModeratelyActiveDistance"`
	VeryActiveDistance       float64   `csv:"VeryActiveDistance"`
}

// StepRecord is one day of total steps.
type StepRecord struct {
	ID          int64     `csv:"Id"`
	ActivityDay Timestamp `csv:"ActivityDay"`
	StepTotal   int       `csv:"StepTotal"`
}

// SleepRecord is one night of sleep for one tracker.
type SleepRecord struct {
	ID                 int64     `csv:"Id"`
	SleepDay           Timestamp `csv:"SleepDay"`
	TotalSleepRecords  int       `csv:"TotalSleepRecords"`
	TotalMinutesAsleep int       `csv:"TotalMinutesAsleep"`
	TotalTimeInBed     int       `csv:"TotalTimeInBed"`
}

// SleepHours converts minutes asleep into hours.
func (r SleepRecord) SleepHours() float64 {
	return float64(r.TotalMinutesAsleep) / 60
}

// HeartRateSample is one instantaneous heart-rate reading.
type HeartRateSample struct {
	ID    int64     `csv:"Id"`
	Time  Timestamp `csv:"Time"`
	Value int       `csv:"Value"`
}

// HourlyStepRecord is one hour of steps.
type HourlyStepRecord struct {
	ID           int64     `csv:"Id"`
	ActivityHour Timestamp `csv:"ActivityHour"`
	StepTotal    int       `csv:"StepTotal"`
}

// Hour returns the hour-of-day component (0-23).
func (r HourlyStepRecord) Hour() int {
	return r.ActivityHour.Hour()
}

// WeightRecord is one weight log entry.
type WeightRecord struct {
	ID             int64     `csv:"Id"`
	Date           Timestamp `csv:"Date"`
	WeightKg       float64   `csv:"WeightKg"`
	WeightPounds   float64   `csv:"WeightPounds"`
	Fat            float64   `csv:"Fat"`
	BMI            float64   `csv:"BMI"`
	IsManualReport bool      `csv:"IsManualReport"`
	LogID          int64     `csv:"LogId"`
}

// Tables holds all eight loaded tables. Read-only after load.
type Tables struct {
	Activity    []ActivityRecord
	Calories    []CalorieRecord
	Intensities []IntensityRecord
	Steps       []StepRecord
	Sleep       []SleepRecord
	HeartRate   []HeartRateSample
	HourlySteps []HourlyStepRecord
	Weight      []WeightRecord
}
