package rest

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Layouts accepted for timestamps. Layouts without an offset are read in
// the tracker's calendar location.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseInstant parses a timestamp field. nil or blank means "not supplied"
// and yields nil; an unparseable value yields a pointer to the zero time,
// which the engine reports as invalid.
func parseInstant(raw *string, loc *time.Location) *time.Time {
	if raw == nil {
		return nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil
	}
	t, ok := parseTime(s, loc)
	if !ok {
		return &time.Time{}
	}
	return &t
}

func parseTime(s string, loc *time.Location) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// optionalID decodes a JSON field that may be absent, null or a number.
type optionalID struct {
	set   bool
	valid bool
	id    int64
}

func (o *optionalID) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, &o.id); err != nil {
		return err
	}
	o.valid = true
	return nil
}

func (o optionalID) ptr() *int64 {
	if !o.valid {
		return nil
	}
	id := o.id
	return &id
}
