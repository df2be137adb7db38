package models

// CandidateSlot is a potential appointment unit. Candidates are generated
// on demand during slot computation and never persisted.
type CandidateSlot struct {
	DoctorID        string `json:"doctorId"`
	Date            string `json:"date"` // "DD-MM-YYYY"
	Time            string `json:"time"` // "HH:mm" start time
	DurationMinutes int    `json:"durationMinutes"`
}

// Suggestion is an alternative (date, time) pair confirmed available at
// search time. It carries no reservation; availability is re-checked at
// commit.
type Suggestion struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Availability is the result of reconciling candidate slots against
// committed bookings for one doctor and date.
type Availability struct {
	Available   []CandidateSlot `json:"available"`
	Unavailable []CandidateSlot `json:"unavailable"`
}
