package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Common validation errors
var (
	ErrInvalidID     = fmt.Errorf("invalid id")
	ErrInvalidPeriod = fmt.Errorf("invalid period")
)

// ValidateID checks that id is a positive integer, the identifier format the
// backend uses for every resource.
func ValidateID(id string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil || n <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	return nil
}

// ValidatePeriod parses a year/month pair from path segments.
// Years outside 2000..2100 are rejected.
func ValidatePeriod(year, month string) (int, int, error) {
	y, err := strconv.Atoi(year)
	if err != nil || y < 2000 || y > 2100 {
		return 0, 0, fmt.Errorf("%w: year %s", ErrInvalidPeriod, year)
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("%w: month %s", ErrInvalidPeriod, month)
	}
	return y, m, nil
}

// ParseTime parses a date string in "2006-01-02" or RFC3339 format.
func ParseTime(str string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", str)
	if err != nil {
		t, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}
	return t.UTC(), nil
}
