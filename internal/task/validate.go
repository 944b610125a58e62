package task

import (
	"strings"
	"unicode/utf8"

	"productivity-tracker/internal/model"
	"productivity-tracker/pkg/datemath"
)

const (
	MaxNameLength = 200
	MaxTimeSpent  = 24
)

// ValidateName trims name and checks its length.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrInvalidName
	}
	return name, nil
}

// ValidateTimeSpent checks hours are within a single day.
func ValidateTimeSpent(hours float64) error {
	if hours < 0 || hours > MaxTimeSpent {
		return ErrInvalidTimeSpent
	}
	return nil
}

// ValidateFocusLevel rejects levels outside low/medium/high.
func ValidateFocusLevel(level model.FocusLevel) error {
	if !level.Valid() {
		return ErrInvalidFocusLevel
	}
	return nil
}

// ValidateDate checks s is a calendar date and returns it normalised.
func ValidateDate(s string) (string, error) {
	d, err := datemath.NormalizeDate(s)
	if err != nil {
		return "", ErrInvalidDate
	}
	return d, nil
}
