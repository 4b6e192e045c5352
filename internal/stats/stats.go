// Package stats holds the small amount of numeric work behind the chart
// endpoints: Pearson correlation, OLS trend lines, histogram binning, box
// summaries, and hourly means. Everything is pure and operates on plain
// float slices.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CorrelationMatrix returns the pairwise Pearson correlation of the given
// columns. Columns must all have the same length. The diagonal is exactly 1.
func CorrelationMatrix(cols [][]float64) [][]float64 {
	m := make([][]float64, len(cols))
	for i := range cols {
		m[i] = make([]float64, len(cols))
		for j := range cols {
			if i == j {
				m[i][j] = 1
				continue
			}
			m[i][j] = stat.Correlation(cols[i], cols[j], nil)
		}
	}
	return m
}

// Linear fits y = alpha + beta*x by ordinary least squares.
func Linear(xs, ys []float64) (alpha, beta float64) {
	return stat.LinearRegression(xs, ys, nil, false)
}

// TrendLine evaluates the OLS fit at the extremes of xs, giving the two
// endpoints of a trend-line overlay. Returns zero endpoints where no fit
// exists: fewer than two samples, or a constant xs (zero variance makes
// the regression undefined).
func TrendLine(xs, ys []float64) (x, y [2]float64) {
	if len(xs) < 2 {
		return x, y
	}
	alpha, beta := Linear(xs, ys)
	if math.IsNaN(alpha) || math.IsNaN(beta) {
		return [2]float64{}, [2]float64{}
	}
	x[0], x[1] = floats.Min(xs), floats.Max(xs)
	y[0] = alpha + beta*x[0]
	y[1] = alpha + beta*x[1]
	return x, y
}

// Bin is one fixed-width histogram bucket.
type Bin struct {
	Lo    float64
	Hi    float64
	Count int
}

// Histogram splits xs into the given number of fixed-width bins spanning
// [min, max]. Values on an interior edge fall into the higher bin; the
// maximum falls into the last.
func Histogram(xs []float64, bins int) []Bin {
	if len(xs) == 0 || bins <= 0 {
		return nil
	}
	lo, hi := floats.Min(xs), floats.Max(xs)
	if lo == hi {
		// Degenerate single-valued sample still gets a drawable bin.
		hi = lo + 1
	}
	width := (hi - lo) / float64(bins)

	out := make([]Bin, bins)
	for i := range out {
		out[i].Lo = lo + float64(i)*width
		out[i].Hi = out[i].Lo + width
	}
	for _, v := range xs {
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		out[i].Count++
	}
	return out
}

// Box summarises a sample the way a box-plot marginal draws it. Whiskers
// extend at most 1.5 IQR beyond the quartiles, clamped to the data range.
type Box struct {
	Min          float64
	LowerWhisker float64
	Q1           float64
	Median       float64
	Q3           float64
	UpperWhisker float64
	Max          float64
}

// BoxStats computes the box summary of xs. Returns the zero Box for an
// empty sample.
func BoxStats(xs []float64) Box {
	if len(xs) == 0 {
		return Box{}
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)

	b := Box{
		Min:    s[0],
		Max:    s[len(s)-1],
		Q1:     stat.Quantile(0.25, stat.Empirical, s, nil),
		Median: stat.Quantile(0.5, stat.Empirical, s, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, s, nil),
	}
	iqr := b.Q3 - b.Q1
	b.LowerWhisker = math.Max(b.Min, b.Q1-1.5*iqr)
	b.UpperWhisker = math.Min(b.Max, b.Q3+1.5*iqr)
	return b
}

// MeanByHour averages values bucketed by their hour of day (0-23) and
// returns the buckets in increasing hour order. Hours with no samples are
// omitted.
func MeanByHour(hours []int, values []float64) (outHours []int, means []float64) {
	sums := make(map[int]float64, 24)
	counts := make(map[int]int, 24)
	for i, h := range hours {
		sums[h] += values[i]
		counts[h]++
	}
	for h := 0; h < 24; h++ {
		if counts[h] == 0 {
			continue
		}
		outHours = append(outHours, h)
		means = append(means, sums[h]/float64(counts[h]))
	}
	return outHours, means
}
