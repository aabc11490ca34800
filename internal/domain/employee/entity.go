package employee

import "strings"

type Employee struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	MiddleName    string `json:"middle_name,omitempty"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Gender        string `json:"gender"`
	Department    string `json:"department"`
	Branch        string `json:"branch"`
	Designation   string `json:"designation"`
	Status        Status `json:"status"`
	DateOfBirth   string `json:"date_of_birth,omitempty"`
	DateOfJoining string `json:"date_of_joining,omitempty"`
	Shift         string `json:"shift,omitempty"`
	PAN           string `json:"pan,omitempty"`
	Aadhar        string `json:"aadhar,omitempty"`
}

// FullName joins the non-empty name parts.
func (e Employee) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.FirstName, e.MiddleName, e.LastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Normalize maps the spellings the backend has used onto a Status.
func (s Status) Normalize() Status {
	switch strings.ToLower(strings.TrimSpace(string(s))) {
	case "inactive", "disabled", "false":
		return StatusInactive
	default:
		return StatusActive
	}
}

// SplitName breaks a single "name" cell into first, middle and last parts.
func SplitName(name string) (first, middle, last string) {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "", "", ""
	case 1:
		return fields[0], "", ""
	case 2:
		return fields[0], "", fields[1]
	default:
		return fields[0], strings.Join(fields[1:len(fields)-1], " "), fields[len(fields)-1]
	}
}
