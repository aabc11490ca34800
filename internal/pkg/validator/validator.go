package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

// ToMap keeps the first message per field.
func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		if _, exists := result[err.Field]; !exists {
			result[err.Field] = err.Message
		}
	}
	return result
}

// ByField groups every message under its field, in the order reported.
func (v ValidationErrors) ByField() map[string][]string {
	result := make(map[string][]string)
	for _, err := range v {
		result[err.Field] = append(result[err.Field], err.Message)
	}
	return result
}

// Add appends a violation.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, ValidationError{Field: field, Message: message})
}

// Err returns nil for an empty list so callers can `return errs.Err()`.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

var phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)

// IsValidPhoneNumber accepts exactly ten digits, nothing else.
func IsValidPhoneNumber(phone string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(phone))
}

// PAN: five letters, four digits, one letter.
var panRegex = regexp.MustCompile(`^[A-Za-z]{5}[0-9]{4}[A-Za-z]$`)

func IsValidPAN(pan string) bool {
	return panRegex.MatchString(strings.TrimSpace(pan))
}

var aadharRegex = regexp.MustCompile(`^[0-9]{12}$`)

// IsValidAadhar accepts a twelve digit Aadhar number.
func IsValidAadhar(aadhar string) bool {
	return aadharRegex.MatchString(strings.TrimSpace(aadhar))
}

const DateLayout = "2006-01-02"

// dateLayouts are tried in order. Day-first layouts win over month-first ones.
var dateLayouts = []string{
	DateLayout,
	"02-01-2006",
	"02/01/2006",
	"2/1/2006",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"02-Jan-2006",
	"2 Jan 2006",
	"January 2, 2006",
	time.RFC3339,
}

// ParseDate parses a calendar date written in any of the accepted layouts.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var clockRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClock parses an "HH:MM" time of day into minutes after midnight.
func ParseClock(value string) (int, bool) {
	m := clockRegex.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	return h*60 + min, true
}
