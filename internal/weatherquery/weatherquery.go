package weatherquery

import (
	"encoding/json"
	"errors"
	"time"
)

// DateFormat is the fixed calendar format every date field has to follow
const DateFormat = "2006-01-02"

var (
	ErrInvalidDateFormat = errors.New("dates must be in YYYY-MM-DD format")
	ErrInvalidRange      = errors.New("start_date cannot be after end_date")
)

// WeatherQuery represents a stored weather query record.
// The result field holds the provider payload captured at the moment the location was last set.
// It is stored and returned verbatim and never interpreted.
type WeatherQuery struct {
	ID        int64           `json:"id"`
	Location  string          `json:"location"`
	StartDate Date            `json:"start_date"`
	EndDate   Date            `json:"end_date"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

// Date represents a calendar date without a time component
type Date struct {
	time.Time
}

// ParseDate tries to decode a date string into a Date object.
// Only the fixed 'YYYY-MM-DD' format is accepted; everything else raises ErrInvalidDateFormat.
func ParseDate(raw string) (Date, error) {
	parsed, err := time.Parse(DateFormat, raw)
	if err != nil {
		return Date{}, ErrInvalidDateFormat
	}
	return Date{parsed}, nil
}

// ValidateRange verifies that the given start date does not lie after the end date
func ValidateRange(start, end Date) error {
	if start.After(end.Time) {
		return ErrInvalidRange
	}
	return nil
}

// String returns the 'YYYY-MM-DD' representation of the date
func (date Date) String() string {
	return date.Format(DateFormat)
}

// MarshalJSON marshals the date into its 'YYYY-MM-DD' representation
func (date Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(date.String())
}

// UnmarshalJSON unmarshals a 'YYYY-MM-DD' string into the date
func (date *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrInvalidDateFormat
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*date = parsed
	return nil
}
