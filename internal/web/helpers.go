package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"math"
	"net/http"
)

// corrColor maps a correlation coefficient onto a sequential blue scale,
// white at 0 through dark blue at |r| = 1.
func corrColor(v float64) template.CSS {
	m := math.Abs(v)
	if math.IsNaN(m) {
		m = 0
	}
	if m > 1 {
		m = 1
	}
	r := int(247 + m*(8-247))
	g := int(251 + m*(48-251))
	b := int(255 + m*(107-255))
	return template.CSS(fmt.Sprintf("rgb(%d,%d,%d)", r, g, b))
}

// corrText flips the cell text color once the gradient background gets too
// dark to read black on.
func corrText(v float64) template.CSS {
	if m := math.Abs(v); !math.IsNaN(m) && m > 0.55 {
		return "#f0f6fc"
	}
	return "#0d1117"
}

// writeJSON encodes before touching the ResponseWriter so an encode
// failure still produces a 500 instead of a truncated 200.
func writeJSON(w http.ResponseWriter, v any) {
	buf, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf)
}
