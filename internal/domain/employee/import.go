package employee

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
)

// ImportRow is one data row of a bulk upload. Row counts from 1 at the first
// row under the header.
type ImportRow struct {
	Row           int    `json:"row"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	DateOfBirth   string `json:"date_of_birth"`
	Gender        string `json:"gender"`
	Department    string `json:"department"`
	Branch        string `json:"branch"`
	Position      string `json:"position"`
	PAN           string `json:"pan,omitempty"`
	Aadhar        string `json:"aadhar,omitempty"`
	DateOfJoining string `json:"date_of_joining,omitempty"`
	Shift         string `json:"shift,omitempty"`
}

type Violation struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("Row %d: %s", v.Row, v.Message)
}

// ImportViolationsError carries the full violation list of a blocked import.
type ImportViolationsError struct {
	Violations []Violation
}

func (e *ImportViolationsError) Error() string {
	return fmt.Sprintf("%s (%d violations)", ErrImportHasViolations, len(e.Violations))
}

func (e *ImportViolationsError) Is(target error) bool {
	return target == ErrImportHasViolations
}

// ValidateRows checks every row and every field; nothing stops early.
func ValidateRows(rows []ImportRow) []Violation {
	violations := make([]Violation, 0)
	for _, row := range rows {
		violations = append(violations, ValidateRow(row)...)
	}
	return violations
}

func ValidateRow(r ImportRow) []Violation {
	var out []Violation
	add := func(field, message string) {
		out = append(out, Violation{Row: r.Row, Field: field, Message: message})
	}

	required := []struct {
		field, label, value string
	}{
		{"name", "Name", r.Name},
		{"email", "Email", r.Email},
		{"phone", "Phone", r.Phone},
		{"date_of_birth", "Date of birth", r.DateOfBirth},
		{"gender", "Gender", r.Gender},
		{"department", "Department", r.Department},
		{"branch", "Branch", r.Branch},
		{"position", "Position", r.Position},
	}
	missing := make(map[string]bool, len(required))
	for _, f := range required {
		if validator.IsEmpty(f.value) {
			missing[f.field] = true
			add(f.field, f.label+" is required")
		}
	}

	if !missing["email"] && !validator.IsValidEmail(strings.TrimSpace(r.Email)) {
		add("email", "Email is invalid")
	}
	if !missing["phone"] && !validator.IsValidPhoneNumber(r.Phone) {
		add("phone", "Phone must be exactly 10 digits")
	}
	if !missing["date_of_birth"] && !isDate(r.DateOfBirth) {
		add("date_of_birth", "Date of birth is not a valid date")
	}
	if !validator.IsEmpty(r.PAN) && !validator.IsValidPAN(strings.TrimSpace(r.PAN)) {
		add("pan", "PAN must be 5 letters, 4 digits and 1 letter")
	}
	if !validator.IsEmpty(r.Aadhar) && !validator.IsValidAadhar(strings.TrimSpace(r.Aadhar)) {
		add("aadhar", "Aadhar must be exactly 12 digits")
	}
	if !validator.IsEmpty(r.DateOfJoining) && !isDate(r.DateOfJoining) {
		add("date_of_joining", "Date of joining is not a valid date")
	}

	return out
}

// Draft converts a valid row into the payload sent upstream.
func (r ImportRow) Draft() Draft {
	first, middle, last := SplitName(r.Name)
	return Draft{
		FirstName:     first,
		MiddleName:    middle,
		LastName:      last,
		Email:         r.Email,
		Phone:         r.Phone,
		Gender:        r.Gender,
		Department:    r.Department,
		Branch:        r.Branch,
		Designation:   r.Position,
		Status:        StatusActive,
		DateOfBirth:   r.DateOfBirth,
		DateOfJoining: r.DateOfJoining,
		Shift:         r.Shift,
		PAN:           r.PAN,
		Aadhar:        r.Aadhar,
	}.Normalized()
}
