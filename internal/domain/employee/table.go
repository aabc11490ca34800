package employee

import "github.com/cmlabs-hris/hris-console-go/internal/pkg/table"

// TableSchema is shared by the active and disabled rosters.
var TableSchema = table.Schema[Employee]{
	Search: map[string]func(Employee) string{
		"name":        Employee.FullName,
		"email":       func(e Employee) string { return e.Email },
		"phone":       func(e Employee) string { return e.Phone },
		"department":  func(e Employee) string { return e.Department },
		"designation": func(e Employee) string { return e.Designation },
	},
	Attributes: map[string]func(Employee) string{
		"department": func(e Employee) string { return e.Department },
		"branch":     func(e Employee) string { return e.Branch },
		"status":     func(e Employee) string { return string(e.Status) },
	},
	Sorts: map[string]table.Comparator[Employee]{
		"name":            table.ByString(Employee.FullName),
		"email":           table.ByString(func(e Employee) string { return e.Email }),
		"department":      table.ByString(func(e Employee) string { return e.Department }),
		"branch":          table.ByString(func(e Employee) string { return e.Branch }),
		"designation":     table.ByString(func(e Employee) string { return e.Designation }),
		"date_of_joining": table.ByString(func(e Employee) string { return e.DateOfJoining }),
	},
}
