package schedule

import (
	"errors"
	"fmt"
)

// Error codes returned by the scheduling engine.
const (
	CodeMalformedTiming    = "malformedTiming"
	CodeSlotTaken          = "slotTaken"
	CodeInvalidSlot        = "invalidSlot"
	CodeStorageUnavailable = "storageUnavailable"
)

type ScheduleError struct {
	Code    string
	Message string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewMalformedTimingError(msg string) error {
	return &ScheduleError{Code: CodeMalformedTiming, Message: msg}
}

func NewSlotTakenError(msg string) error {
	return &ScheduleError{Code: CodeSlotTaken, Message: msg}
}

func NewInvalidSlotError(msg string) error {
	return &ScheduleError{Code: CodeInvalidSlot, Message: msg}
}

func NewStorageUnavailableError(msg string) error {
	return &ScheduleError{Code: CodeStorageUnavailable, Message: msg}
}

// ErrCode extracts the schedule error code from err, or "" if err is not a
// ScheduleError.
func ErrCode(err error) string {
	var se *ScheduleError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
