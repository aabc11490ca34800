package leave

import (
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
)

// ApplicationDraft is the new-leave form payload.
type ApplicationDraft struct {
	EmployeeID   string `json:"employee_id" validate:"notblank"`
	EmployeeName string `json:"employee_name" validate:"notblank"`
	Department   string `json:"department" validate:"notblank"`
	LeaveType    string `json:"leave_type" validate:"notblank"`
	From         string `json:"from" validate:"notblank"`
	To           string `json:"to" validate:"notblank"`
	Reason       string `json:"reason,omitempty" validate:"max=500"`

	// Days is filled in from From/To whenever the draft changes.
	Days int `json:"days"`
}

func (d ApplicationDraft) Validate() error {
	errs := validator.Struct(d)
	reported := errs.ToMap()

	if _, done := reported["leave_type"]; !done {
		if _, ok := ParseType(d.LeaveType); !ok {
			errs.Add("leave_type", "leave_type must be one of: Sick, Casual, Maternity")
		}
	}
	_, fromDone := reported["from"]
	_, toDone := reported["to"]
	if !fromDone && !toDone {
		if _, err := CountDays(d.From, d.To); err != nil {
			errs.Add("to", err.Error())
		}
	}

	return errs.Err()
}

// WithDays returns the draft with Days recomputed; invalid ranges give zero.
func (d ApplicationDraft) WithDays() ApplicationDraft {
	days, err := CountDays(d.From, d.To)
	if err != nil {
		days = 0
	}
	d.Days = days
	return d
}

// DecisionRequest approves or rejects a pending application.
type DecisionRequest struct {
	Remark string `json:"remark" validate:"max=500"`
}

func (r DecisionRequest) Validate() error {
	return validator.Struct(r).Err()
}

// CreditUpdate replaces any bucket that is present.
type CreditUpdate struct {
	Sick      *Bucket `json:"sick,omitempty"`
	Casual    *Bucket `json:"casual,omitempty"`
	Maternity *Bucket `json:"maternity,omitempty"`
}

func (u CreditUpdate) Validate() error {
	var errs validator.ValidationErrors
	check := func(field string, b *Bucket) {
		if b == nil {
			return
		}
		switch {
		case b.Total < 0 || b.Used < 0:
			errs.Add(field, field+" total and used must not be negative")
		case b.Used > b.Total:
			errs.Add(field, field+" used must not exceed total")
		}
	}
	check("sick", u.Sick)
	check("casual", u.Casual)
	check("maternity", u.Maternity)

	if u.Sick == nil && u.Casual == nil && u.Maternity == nil {
		errs.Add("_", "at least one bucket is required")
	}
	return errs.Err()
}

func (u CreditUpdate) Apply(c Credit) Credit {
	if u.Sick != nil {
		c.Sick = *u.Sick
	}
	if u.Casual != nil {
		c.Casual = *u.Casual
	}
	if u.Maternity != nil {
		c.Maternity = *u.Maternity
	}
	return c
}
