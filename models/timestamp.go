package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the wire format of every relay timestamp: ISO-8601 in
// UTC with exactly three fractional digits. Fixed width keeps lexical order
// identical to chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp is a relay-issued point in time truncated to milliseconds.
// The zero value means "never updated" and is encoded as JSON null.
type Timestamp struct {
	time.Time
}

// NewTimestamp converts t to UTC and truncates it to millisecond precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

// ParseTimestamp parses a cursor sent by a device. Any RFC 3339 value is
// accepted, with or without fractional seconds or a numeric zone offset.
func ParseTimestamp(s string) (Timestamp, error) {
	if s == "" {
		return Timestamp{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return NewTimestamp(t), nil
}

// String renders the timestamp in [TimestampLayout], or "" for the zero value.
func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimestampLayout)
}

// Equal reports whether both timestamps denote the same millisecond.
func (t Timestamp) Equal(other Timestamp) bool {
	return t.Time.Equal(other.Time)
}

// NotBefore reports whether t >= other.
func (t Timestamp) NotBefore(other Timestamp) bool {
	return !t.Before(other.Time)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler. Both null and "" decode to the
// zero Timestamp.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
