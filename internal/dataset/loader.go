package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gocarina/gocsv"
	"golang.org/x/sync/errgroup"

	"github.com/emiliopalmerini/fitdash/internal/observability"
)

// Fixed input file names of a Fitbit export directory.
const (
	activityFile    = "dailyActivity_merged.csv"
	caloriesFile    = "dailyCalories_merged.csv"
	intensitiesFile = "dailyIntensities_merged.csv"
	stepsFile       = "dailySteps_merged.csv"
	sleepFile       = "sleepDay_merged.csv"
	heartRateFile   = "heartrate_seconds_merged.csv"
	hourlyStepsFile = "hourlySteps_merged.csv"
	weightFile      = "weightLogInfo_merged.csv"
)

// Loader reads the eight export files exactly once per process. The first
// call to Tables performs the load; every later call returns the identical
// *Tables pointer (or the latched load error). There is no invalidation
// short of a restart.
type Loader struct {
	dir string

	once   sync.Once
	tables *Tables
	err    error
}

// NewLoader creates a Loader reading from the given export directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Tables returns the memoized dataset.
func (l *Loader) Tables(ctx context.Context) (*Tables, error) {
	l.once.Do(func() {
		start := time.Now()
		l.tables, l.err = load(ctx, l.dir)
		observability.ObserveDatasetLoad(time.Since(start), l.err)
	})
	return l.tables, l.err
}

func load(ctx context.Context, dir string) (*Tables, error) {
	var t Tables

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { return readCSV(filepath.Join(dir, activityFile), &t.Activity) })
	g.Go(func() error { return readCSV(filepath.Join(dir, caloriesFile), &t.Calories) })
	g.Go(func() error { return readCSV(filepath.Join(dir, intensitiesFile), &t.Intensities) })
	g.Go(func() error { return readCSV(filepath.Join(dir, stepsFile), &t.Steps) })
	g.Go(func() error { return readCSV(filepath.Join(dir, sleepFile), &t.Sleep) })
	g.Go(func() error { return readCSV(filepath.Join(dir, heartRateFile), &t.HeartRate) })
	g.Go(func() error { return readCSV(filepath.Join(dir, hourlyStepsFile), &t.HourlySteps) })
	g.Go(func() error { return readCSV(filepath.Join(dir, weightFile), &t.Weight) })

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &t, nil
}

// readCSV decodes one export file into a slice of row structs. A file with
// only a header row yields an empty slice, not an error; a missing file or
// a row with an unparseable designated timestamp fails the whole load.
func readCSV[T any](path string, out *[]T) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if err := gocsv.UnmarshalFile(f, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
