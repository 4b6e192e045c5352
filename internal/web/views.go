package web

// View identifies one of the five analysis pages. The current view is
// whichever route served the request; there is no other navigation state.
type View int

const (
	ViewDailyActivity View = iota
	ViewSleep
	ViewHourly
	ViewHeartRate
	ViewWeight
)

// Views lists all pages in sidebar order.
var Views = [...]View{ViewDailyActivity, ViewSleep, ViewHourly, ViewHeartRate, ViewWeight}

// Label is the sidebar text for the view.
func (v View) Label() string {
	switch v {
	case ViewDailyActivity:
		return "Daily Activity"
	case ViewSleep:
		return "Sleep Analysis"
	case ViewHourly:
		return "Hourly Patterns"
	case ViewHeartRate:
		return "Heart Rate"
	case ViewWeight:
		return "Weight Log"
	}
	return ""
}

// Path is the route serving the view. Daily Activity is the default page.
func (v View) Path() string {
	switch v {
	case ViewDailyActivity:
		return "/"
	case ViewSleep:
		return "/sleep"
	case ViewHourly:
		return "/hourly"
	case ViewHeartRate:
		return "/heart-rate"
	case ViewWeight:
		return "/weight"
	}
	return "/"
}

// String is the metric label for the view.
func (v View) String() string {
	switch v {
	case ViewDailyActivity:
		return "daily_activity"
	case ViewSleep:
		return "sleep_analysis"
	case ViewHourly:
		return "hourly_patterns"
	case ViewHeartRate:
		return "heart_rate"
	case ViewWeight:
		return "weight_log"
	}
	return "unknown"
}
