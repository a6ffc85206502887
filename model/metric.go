package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Unavailable is how providers spell a missing value.
const Unavailable = "N/A"

var unavailableMarkers = map[string]struct{}{
	"":     {},
	"-":    {},
	"N/A":  {},
	"NONE": {},
	"NULL": {},
	"NAN":  {},
}

func isUnavailable(s string) bool {
	_, ok := unavailableMarkers[strings.ToUpper(strings.TrimSpace(s))]
	return ok
}

// Metric is an optional financial figure. Providers send numbers, numeric
// strings or placeholders like "None"; anything that is not a number decodes
// to an absent Metric and encodes back as null.
type Metric struct {
	Value float64
	Valid bool
}

func Some(v float64) Metric {
	return Metric{Value: v, Valid: true}
}

// Present reports whether the figure can be shown to a reader.
func (m Metric) Present() bool {
	return m.Valid
}

func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

func (m *Metric) UnmarshalJSON(b []byte) error {
	*m = Metric{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	raw := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		if isUnavailable(raw) {
			return nil
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		// Unparseable placeholders are treated as "not supplied".
		return nil
	}
	*m = Some(v)
	return nil
}

// Text is an optional string value with the same placeholder rules as Metric.
type Text string

func (t Text) Present() bool {
	return !isUnavailable(string(t))
}

func (t Text) String() string {
	if !t.Present() {
		return ""
	}
	return strings.TrimSpace(string(t))
}

func (t Text) MarshalJSON() ([]byte, error) {
	if !t.Present() {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

func (t *Text) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil || isUnavailable(*s) {
		*t = ""
		return nil
	}
	*t = Text(strings.TrimSpace(*s))
	return nil
}
