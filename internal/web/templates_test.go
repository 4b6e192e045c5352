package web

import (
	"html/template"
	"testing"
)

func TestPageTemplatesParsedAtInit(t *testing.T) {
	pages := map[string]*template.Template{
		"daily activity": dailyActivityTmpl,
		"sleep":          sleepTmpl,
		"hourly":         hourlyTmpl,
		"heart rate":     heartRateTmpl,
		"weight":         weightTmpl,
	}
	for name, tmpl := range pages {
		if tmpl.Lookup("base") == nil {
			t.Errorf("%s template missing the base layout", name)
		}
		if tmpl.Lookup("content") == nil {
			t.Errorf("%s template missing its content block", name)
		}
	}
}
