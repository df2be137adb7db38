package models

// Doctor represents the subset of a doctor's profile the scheduling
// engine reads. Profiles themselves are managed elsewhere.
type Doctor struct {
	ID             string  `bson:"id" json:"id"`
	Name           string  `bson:"name" json:"name"`
	Specialization string  `bson:"specialization" json:"specialization"`
	Fee            float64 `bson:"fee" json:"fee"`
	Approved       bool    `bson:"approved" json:"approved"`
	// ConsultingHours is deliberately untyped: legacy profiles store it as
	// a ["HH:mm","HH:mm"] array, a JSON string of that array (sometimes
	// double-encoded), or a pair of ISO datetime strings.
	ConsultingHours interface{} `bson:"consulting_hours" json:"consulting_hours"`
}

// ConsultingWindow is the canonical form of a doctor's consulting hours.
type ConsultingWindow struct {
	Start string `json:"start"` // "HH:mm", 24-hour
	End   string `json:"end"`   // "HH:mm", exclusive for slot starts
}

// Display renders the window the way the booking UI shows it.
func (w ConsultingWindow) Display() string {
	return w.Start + " - " + w.End
}
