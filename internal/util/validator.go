package util

import (
	"fmt"
	"regexp"
	"time"
)

var (
	emailRe = regexp.MustCompile(`^.+@.+\..+$`)
	monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// dateLayouts are the accepted expense date formats, most specific first.
var dateLayouts = []string{
	time.RFC3339,          // 2024-03-05T00:00:00+02:00
	"2006-01-02T15:04:05", // 2024-03-05T00:00:00
	"2006-01-02",          // 2024-03-05
}

// ValidateAmount checks an expense amount (must be strictly positive).
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive, got %f", amount)
	}
	return nil
}

// ValidateEmail checks basic email shape (something@something.tld).
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is empty")
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("invalid email format: %s", email)
	}
	return nil
}

// ValidateMonth checks a budget month key (YYYY-MM).
func ValidateMonth(month string) error {
	if !monthRe.MatchString(month) {
		return fmt.Errorf("invalid month format, want YYYY-MM: %s", month)
	}
	return nil
}

// ParseDate parses an expense date in any of the accepted layouts.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format: %s", s)
}
