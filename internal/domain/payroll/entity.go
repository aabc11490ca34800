package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Earnings are the eleven components summed into gross salary.
type Earnings struct {
	Basic            Amount `json:"basic"`
	HRA              Amount `json:"hra"`
	Dearness         Amount `json:"dearness_allowance"`
	Conveyance       Amount `json:"conveyance_allowance"`
	Medical          Amount `json:"medical_allowance"`
	Other            Amount `json:"other_allowance"`
	Entertainment    Amount `json:"entertainment_allowance"`
	Special          Amount `json:"special_allowance"`
	PerformanceBonus Amount `json:"performance_bonus"`
	Bonus            Amount `json:"bonus"`
	Incentives       Amount `json:"incentives"`
}

func (e Earnings) Total() decimal.Decimal {
	return sum(
		e.Basic, e.HRA, e.Dearness, e.Conveyance, e.Medical, e.Other,
		e.Entertainment, e.Special, e.PerformanceBonus, e.Bonus, e.Incentives,
	)
}

// Deductions are the seven components subtracted from gross salary.
type Deductions struct {
	PF              Amount `json:"pf"`
	TDS             Amount `json:"tds_amount"`
	ProfessionalTax Amount `json:"professional_tax"`
	SalaryAdvance   Amount `json:"salary_advance"`
	Loan            Amount `json:"loan"`
	Fooding         Amount `json:"fooding"`
	Accommodation   Amount `json:"accommodation"`
}

func (d Deductions) Total() decimal.Decimal {
	return sum(d.PF, d.TDS, d.ProfessionalTax, d.SalaryAdvance, d.Loan, d.Fooding, d.Accommodation)
}

// Calculate returns gross (sum of earnings) and net (gross minus deductions).
func Calculate(e Earnings, d Deductions) (gross, net decimal.Decimal) {
	gross = e.Total()
	net = gross.Sub(d.Total())
	return gross, net
}

type Record struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
	WorkingDays  int    `json:"working_days"`
	PaidDays     int    `json:"paid_days"`

	Earnings
	Deductions

	GrossSalary     Amount `json:"gross_salary"`
	TotalDeductions Amount `json:"total_deductions"`
	NetSalary       Amount `json:"net_salary"`
}

// Recalculate overwrites the derived totals from the current inputs. Totals
// received from elsewhere are never trusted.
func (r Record) Recalculate() Record {
	gross, net := Calculate(r.Earnings, r.Deductions)
	r.GrossSalary = AmountOf(gross)
	r.TotalDeductions = AmountOf(r.Deductions.Total())
	r.NetSalary = AmountOf(net)
	return r
}

// Period renders "March 2026".
func (r Record) Period() string {
	if r.Month < 1 || r.Month > 12 {
		return ""
	}
	return time.Month(r.Month).String() + " " + itoa(r.Year)
}

// Summary totals a list of payroll records.
type Summary struct {
	Count           int    `json:"count"`
	TotalGross      Amount `json:"total_gross"`
	TotalDeductions Amount `json:"total_deductions"`
	TotalNet        Amount `json:"total_net"`
}

func Summarize(records []Record) Summary {
	gross, deductions, net := decimal.Zero, decimal.Zero, decimal.Zero
	for _, r := range records {
		r = r.Recalculate()
		gross = gross.Add(r.GrossSalary.Decimal)
		deductions = deductions.Add(r.TotalDeductions.Decimal)
		net = net.Add(r.NetSalary.Decimal)
	}
	return Summary{
		Count:           len(records),
		TotalGross:      AmountOf(gross),
		TotalDeductions: AmountOf(deductions),
		TotalNet:        AmountOf(net),
	}
}
