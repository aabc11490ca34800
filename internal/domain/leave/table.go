package leave

import "github.com/cmlabs-hris/hris-console-go/internal/pkg/table"

var RequestTableSchema = table.Schema[Request]{
	Search: map[string]func(Request) string{
		"employee_name": func(r Request) string { return r.EmployeeName },
		"employee_id":   func(r Request) string { return r.EmployeeID },
		"reason":        func(r Request) string { return r.Reason },
	},
	Attributes: map[string]func(Request) string{
		"status":     func(r Request) string { return string(r.Status) },
		"leave_type": func(r Request) string { return string(r.LeaveType) },
		"department": func(r Request) string { return r.Department },
	},
	Sorts: map[string]table.Comparator[Request]{
		"employee_name": table.ByString(func(r Request) string { return r.EmployeeName }),
		"from":          table.ByString(func(r Request) string { return r.From }),
		"days":          table.ByInt(func(r Request) int { return r.Days }),
		"applied_on":    table.ByString(func(r Request) string { return r.AppliedOn }),
	},
}

var CreditTableSchema = table.Schema[Credit]{
	Search: map[string]func(Credit) string{
		"employee_name": func(c Credit) string { return c.EmployeeName },
		"employee_id":   func(c Credit) string { return c.EmployeeID },
	},
	Attributes: map[string]func(Credit) string{
		"department": func(c Credit) string { return c.Department },
	},
	Sorts: map[string]table.Comparator[Credit]{
		"employee_name": table.ByString(func(c Credit) string { return c.EmployeeName }),
		"remaining":     table.ByInt(Credit.TotalRemaining),
	},
}
