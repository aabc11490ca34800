package leave

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Type string

const (
	TypeSick      Type = "Sick"
	TypeCasual    Type = "Casual"
	TypeMaternity Type = "Maternity"
)

var Types = []Type{TypeSick, TypeCasual, TypeMaternity}

// ParseType accepts any casing of a leave type name.
func ParseType(s string) (Type, bool) {
	for _, t := range Types {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, true
		}
	}
	return "", false
}

// Request is one leave application.
type Request struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	LeaveType    Type   `json:"leave_type"`
	From         string `json:"from"`
	To           string `json:"to"`
	Days         int    `json:"days"`
	Reason       string `json:"reason,omitempty"`
	Status       Status `json:"status"`
	Remark       string `json:"remark,omitempty"`
	AppliedOn    string `json:"applied_on"`
}

// CountDays returns the inclusive number of calendar days from..to.
func CountDays(from, to string) (int, error) {
	start, ok := validator.ParseDate(from)
	if !ok {
		return 0, ErrInvalidDateRange
	}
	end, ok := validator.ParseDate(to)
	if !ok {
		return 0, ErrInvalidDateRange
	}
	if end.Before(start) {
		return 0, ErrInvalidDateRange
	}
	return int(end.Sub(start)/(24*time.Hour)) + 1, nil
}

// Bucket is the allowance of one leave type. Remaining is derived, never stored.
type Bucket struct {
	Total int `json:"total"`
	Used  int `json:"used"`
}

func (b Bucket) Remaining() int {
	return b.Total - b.Used
}

func (b Bucket) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Total     int `json:"total"`
		Used      int `json:"used"`
		Remaining int `json:"remaining"`
	}{b.Total, b.Used, b.Remaining()})
}

// Credit is an employee's leave balance across the three buckets.
type Credit struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	Sick         Bucket `json:"sick"`
	Casual       Bucket `json:"casual"`
	Maternity    Bucket `json:"maternity"`
}

// TotalRemaining sums the remaining days across buckets.
func (c Credit) TotalRemaining() int {
	return c.Sick.Remaining() + c.Casual.Remaining() + c.Maternity.Remaining()
}
