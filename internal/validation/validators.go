package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the normalized calendar date format.
const DateLayout = "2006-01-02"

// ValidateDate validates a date string in YYYY-MM-DD format
func ValidateDate(value string) error {
	if len(value) != len(DateLayout) {
		return fmt.Errorf("invalid date format, expected YYYY-MM-DD (e.g., '2024-01-13')")
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return fmt.Errorf("invalid date format, expected YYYY-MM-DD (e.g., '2024-01-13')")
	}
	return nil
}

// NormalizeDate trims a raw date field and cuts it to its calendar date,
// dropping any time-of-day suffix. The result is always zero-padded YYYY-MM-DD.
func NormalizeDate(raw string) (string, int, error) {
	value := strings.TrimSpace(raw)
	if len(value) > len(DateLayout) {
		value = value[:len(DateLayout)]
	}
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return "", 0, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return parsed.Format(DateLayout), parsed.Year(), nil
}

// ParseYear parses a four-digit-ish calendar year
func ParseYear(value string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("year must be an integer")
	}
	if year < 1 || year > 9999 {
		return 0, fmt.Errorf("year must be between 1 and 9999")
	}
	return year, nil
}

// ParseLimit parses a non-negative result limit
func ParseLimit(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("limit must be an integer")
	}
	if n < 0 {
		return 0, fmt.Errorf("limit cannot be negative")
	}
	return n, nil
}
