package doctorRepo

import (
	"medibook/models"
)

// DoctorRepository defines the read-only access the scheduling engine has
// to doctor profiles. Profile writes happen in the admin surface, outside
// this service.
type DoctorRepository interface {
	// GetByID retrieves a doctor profile by its unique ID.
	GetByID(doctorID string) (*models.Doctor, error)
	// GetConsultingHours returns the doctor's stored consulting-hours value
	// in whatever legacy encoding the profile carries. Callers must pass it
	// through schedule.Normalize before use.
	GetConsultingHours(doctorID string) (interface{}, error)
}
