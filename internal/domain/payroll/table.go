package payroll

import (
	"strconv"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
)

var TableSchema = table.Schema[Record]{
	Search: map[string]func(Record) string{
		"employee_name": func(r Record) string { return r.EmployeeName },
		"employee_id":   func(r Record) string { return r.EmployeeID },
	},
	Attributes: map[string]func(Record) string{
		"department": func(r Record) string { return r.Department },
		"month":      func(r Record) string { return strconv.Itoa(r.Month) },
		"year":       func(r Record) string { return strconv.Itoa(r.Year) },
	},
	Sorts: map[string]table.Comparator[Record]{
		"employee_name": table.ByString(func(r Record) string { return r.EmployeeName }),
		"period":        table.ByInt(func(r Record) int { return r.Year*100 + r.Month }),
		"gross_salary":  byAmount(func(r Record) Amount { return r.GrossSalary }),
		"net_salary":    byAmount(func(r Record) Amount { return r.NetSalary }),
	},
}

func byAmount(field func(Record) Amount) table.Comparator[Record] {
	return func(a, b Record) int {
		return field(a).Cmp(field(b).Decimal)
	}
}
