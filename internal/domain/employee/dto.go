package employee

import (
	"strings"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
)

// Draft is the employee form payload and the body sent upstream on create/update.
type Draft struct {
	FirstName     string `json:"first_name" validate:"notblank"`
	MiddleName    string `json:"middle_name,omitempty"`
	LastName      string `json:"last_name"`
	Email         string `json:"email" validate:"notblank"`
	Phone         string `json:"phone" validate:"notblank"`
	Gender        string `json:"gender" validate:"notblank"`
	Department    string `json:"department" validate:"notblank"`
	Branch        string `json:"branch" validate:"notblank"`
	Designation   string `json:"designation" validate:"notblank"`
	Status        Status `json:"status,omitempty"`
	DateOfBirth   string `json:"date_of_birth" validate:"notblank"`
	DateOfJoining string `json:"date_of_joining,omitempty"`
	Shift         string `json:"shift,omitempty"`
	PAN           string `json:"pan,omitempty"`
	Aadhar        string `json:"aadhar,omitempty"`
}

// Validate reports every failing field. Format rules only run on fields that
// are present, so a missing field carries just its "required" message.
func (d Draft) Validate() error {
	errs := validator.Struct(d)
	reported := errs.ToMap()
	check := func(field, value string, ok func(string) bool, message string) {
		if _, done := reported[field]; done || validator.IsEmpty(value) {
			return
		}
		if !ok(strings.TrimSpace(value)) {
			errs.Add(field, message)
		}
	}

	check("email", d.Email, validator.IsValidEmail, "invalid email format")
	check("phone", d.Phone, validator.IsValidPhoneNumber, "phone must be exactly 10 digits")
	check("date_of_birth", d.DateOfBirth, isDate, "date_of_birth must be a valid date")
	check("date_of_joining", d.DateOfJoining, isDate, "date_of_joining must be a valid date")
	check("pan", d.PAN, validator.IsValidPAN, "PAN must be 5 letters, 4 digits and 1 letter")
	check("aadhar", d.Aadhar, validator.IsValidAadhar, "Aadhar must be exactly 12 digits")

	return errs.Err()
}

// Normalized trims fields and rewrites dates as YYYY-MM-DD.
func (d Draft) Normalized() Draft {
	trim := strings.TrimSpace
	out := Draft{
		FirstName:     trim(d.FirstName),
		MiddleName:    trim(d.MiddleName),
		LastName:      trim(d.LastName),
		Email:         trim(d.Email),
		Phone:         trim(d.Phone),
		Gender:        trim(d.Gender),
		Department:    trim(d.Department),
		Branch:        trim(d.Branch),
		Designation:   trim(d.Designation),
		Status:        d.Status,
		DateOfBirth:   normalizeDate(d.DateOfBirth),
		DateOfJoining: normalizeDate(d.DateOfJoining),
		Shift:         trim(d.Shift),
		PAN:           strings.ToUpper(trim(d.PAN)),
		Aadhar:        trim(d.Aadhar),
	}
	if out.Status == "" {
		out.Status = StatusActive
	}
	return out
}

// DraftFrom seeds an edit form from a listed employee.
func DraftFrom(e Employee) Draft {
	return Draft{
		FirstName:     e.FirstName,
		MiddleName:    e.MiddleName,
		LastName:      e.LastName,
		Email:         e.Email,
		Phone:         e.Phone,
		Gender:        e.Gender,
		Department:    e.Department,
		Branch:        e.Branch,
		Designation:   e.Designation,
		Status:        e.Status,
		DateOfBirth:   e.DateOfBirth,
		DateOfJoining: e.DateOfJoining,
		Shift:         e.Shift,
		PAN:           e.PAN,
		Aadhar:        e.Aadhar,
	}
}

func isDate(value string) bool {
	_, ok := validator.ParseDate(value)
	return ok
}

func normalizeDate(value string) string {
	value = strings.TrimSpace(value)
	if parsed, ok := validator.ParseDate(value); ok {
		return parsed.Format(validator.DateLayout)
	}
	return value
}
