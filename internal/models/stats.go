package models

// Stats is an operator-facing snapshot of system activity.
type Stats struct {
	ActiveEvents        int `json:"active_events"`
	AvailableVolunteers int `json:"available_volunteers"`
	ResponsesInWindow   int `json:"responses_in_window"`
}
