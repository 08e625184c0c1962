package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Money is a monetary amount in reais as delivered by the backend.
// Decoding never fails: numbers, numeric strings ("1234.56", "1.234,56",
// "R$ 10,00"), null and garbage all decode, the latter two to zero.
type Money float64

// UnmarshalJSON implements json.Unmarshaler.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*m = 0
			return nil
		}
		*m = ParseMoney(s)
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*m = 0
		return nil
	}
	*m = Money(f)
	return nil
}

// Float returns the amount as float64.
func (m Money) Float() float64 { return float64(m) }

// ParseMoney parses a loosely formatted amount. Comma-decimal (pt-BR) input is
// recognised when a comma is present. Unparseable input yields zero.
func ParseMoney(s string) Money {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Money(f)
}

// Value reports the amount behind an optional aggregate and whether it was sent.
func (m *Money) Value() (Money, bool) {
	if m == nil {
		return 0, false
	}
	return *m, true
}

// ID is a backend identifier. The backend sends numeric IDs, sometimes quoted.
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	*id = ID(string(data))
	return nil
}

// String implements fmt.Stringer.
func (id ID) String() string { return string(id) }

// Date is a calendar date. Decoding accepts YYYY-MM-DD and RFC3339; anything
// else decodes to the zero date.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date string in "2006-01-02" or RFC3339 format.
func ParseDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return Date{}, false
		}
	}
	return Date{t.UTC()}, true
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = Date{}
		return nil
	}
	parsed, _ := ParseDate(s)
	*d = parsed
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler (used by the YAML directory).
func (d *Date) UnmarshalText(text []byte) error {
	parsed, _ := ParseDate(string(text))
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}
