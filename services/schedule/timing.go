package schedule

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Wire formats used across the engine. All slot comparisons are
// string-exact on these forms; the engine operates on doctor-local
// wall-clock time with no timezone conversion.
const (
	WireDate = "02-01-2006" // DD-MM-YYYY
	WireTime = "15:04"      // 24-hour HH:mm
)

var hhmmRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Datetime layouts accepted for legacy consulting-hours elements. Only the
// time-of-day component is kept.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Normalize parses a doctor's stored consulting-hours value into a
// canonical window. Legacy profiles stored the value in several shapes: a
// two-element array of times, a JSON string of that array (sometimes
// encoded twice), or ISO datetime elements. Any element that cannot be
// parsed poisons the whole window; callers treat that as "no slots", never
// a partial window.
func Normalize(raw interface{}) (models.ConsultingWindow, error) {
	elems, err := decodePair(raw)
	if err != nil {
		return models.ConsultingWindow{}, err
	}

	start, err := parseTimeOfDay(elems[0])
	if err != nil {
		return models.ConsultingWindow{}, err
	}
	end, err := parseTimeOfDay(elems[1])
	if err != nil {
		return models.ConsultingWindow{}, err
	}

	// Zero-padded HH:mm compares correctly as a string.
	if start >= end {
		return models.ConsultingWindow{}, NewMalformedTimingError(
			fmt.Sprintf("window start %q is not before end %q", start, end))
	}
	return models.ConsultingWindow{Start: start, End: end}, nil
}

// decodePair reduces the raw value to a two-element string pair, JSON
// decoding string forms at most twice to cover double-encoded data.
func decodePair(raw interface{}) ([2]string, error) {
	var zero [2]string
	value := raw

	for attempt := 0; attempt < 3; attempt++ {
		switch v := value.(type) {
		case []interface{}:
			return pairFromSlice(v)
		case bson.A:
			return pairFromSlice([]interface{}(v))
		case []string:
			if len(v) != 2 {
				return zero, NewMalformedTimingError(fmt.Sprintf("expected 2 elements, got %d", len(v)))
			}
			return [2]string{v[0], v[1]}, nil
		case string:
			var decoded interface{}
			if err := json.Unmarshal([]byte(strings.TrimSpace(v)), &decoded); err != nil {
				return zero, NewMalformedTimingError(fmt.Sprintf("cannot decode consulting hours %q", v))
			}
			value = decoded
		default:
			return zero, NewMalformedTimingError(fmt.Sprintf("unsupported consulting hours type %T", raw))
		}
	}
	return zero, NewMalformedTimingError("consulting hours nested too deeply")
}

func pairFromSlice(v []interface{}) ([2]string, error) {
	var zero [2]string
	if len(v) != 2 {
		return zero, NewMalformedTimingError(fmt.Sprintf("expected 2 elements, got %d", len(v)))
	}
	var pair [2]string
	for i, e := range v {
		s, ok := e.(string)
		if !ok {
			return zero, NewMalformedTimingError(fmt.Sprintf("element %d is %T, not a string", i, e))
		}
		pair[i] = s
	}
	return pair, nil
}

// parseTimeOfDay extracts a strict HH:mm value from a single element,
// stripping incidental quoting first.
func parseTimeOfDay(s string) (string, error) {
	s = strings.Trim(strings.TrimSpace(s), `"'`)

	if hhmmRe.MatchString(s) {
		return s, nil
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(WireTime), nil
		}
	}
	return "", NewMalformedTimingError(fmt.Sprintf("cannot parse time element %q", s))
}
