package payroll

import (
	"strconv"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Draft is the payroll form payload. Its totals are recomputed on every change
// and sent upstream only on submit.
type Draft struct {
	EmployeeID   string `json:"employee_id" validate:"notblank"`
	EmployeeName string `json:"employee_name" validate:"notblank"`
	Department   string `json:"department" validate:"notblank"`
	Month        int    `json:"month" validate:"gte=1,lte=12"`
	Year         int    `json:"year" validate:"gte=2000,lte=2100"`
	WorkingDays  int    `json:"working_days" validate:"gte=0,lte=31"`
	PaidDays     int    `json:"paid_days" validate:"gte=0,lte=31"`

	Earnings
	Deductions

	GrossSalary     Amount `json:"gross_salary"`
	TotalDeductions Amount `json:"total_deductions"`
	NetSalary       Amount `json:"net_salary"`
}

func (d Draft) Validate() error {
	errs := validator.Struct(d)

	if d.PaidDays > d.WorkingDays {
		errs.Add("paid_days", "paid_days must not exceed working_days")
	}
	for _, f := range d.amounts() {
		if f.value.IsNegative() {
			errs.Add(f.field, f.field+" must not be negative")
		}
	}

	return errs.Err()
}

// Recalculated returns the draft with gross, deductions and net recomputed.
func (d Draft) Recalculated() Draft {
	gross, net := Calculate(d.Earnings, d.Deductions)
	d.GrossSalary = AmountOf(gross)
	d.TotalDeductions = AmountOf(d.Deductions.Total())
	d.NetSalary = AmountOf(net)
	return d
}

type namedAmount struct {
	field string
	value decimal.Decimal
}

func (d Draft) amounts() []namedAmount {
	e, x := d.Earnings, d.Deductions
	return []namedAmount{
		{"basic", e.Basic.Decimal},
		{"hra", e.HRA.Decimal},
		{"dearness_allowance", e.Dearness.Decimal},
		{"conveyance_allowance", e.Conveyance.Decimal},
		{"medical_allowance", e.Medical.Decimal},
		{"other_allowance", e.Other.Decimal},
		{"entertainment_allowance", e.Entertainment.Decimal},
		{"special_allowance", e.Special.Decimal},
		{"performance_bonus", e.PerformanceBonus.Decimal},
		{"bonus", e.Bonus.Decimal},
		{"incentives", e.Incentives.Decimal},
		{"pf", x.PF.Decimal},
		{"tds_amount", x.TDS.Decimal},
		{"professional_tax", x.ProfessionalTax.Decimal},
		{"salary_advance", x.SalaryAdvance.Decimal},
		{"loan", x.Loan.Decimal},
		{"fooding", x.Fooding.Decimal},
		{"accommodation", x.Accommodation.Decimal},
	}
}

// DraftFrom seeds an edit form from a listed record.
func DraftFrom(r Record) Draft {
	return Draft{
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Department:   r.Department,
		Month:        r.Month,
		Year:         r.Year,
		WorkingDays:  r.WorkingDays,
		PaidDays:     r.PaidDays,
		Earnings:     r.Earnings,
		Deductions:   r.Deductions,
	}.Recalculated()
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
