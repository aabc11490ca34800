package attendance

import "github.com/cmlabs-hris/hris-console-go/internal/pkg/table"

// FlagLabel is the flag as shown and filtered on; an unflagged record reads "None".
func (r Record) FlagLabel() string {
	if r.Flag == FlagNone {
		return "None"
	}
	return string(r.Flag)
}

var TableSchema = table.Schema[Record]{
	Search: map[string]func(Record) string{
		"employee_name": func(r Record) string { return r.EmployeeName },
		"employee_id":   func(r Record) string { return r.EmployeeID },
	},
	Attributes: map[string]func(Record) string{
		"department": func(r Record) string { return r.Department },
		"status":     func(r Record) string { return string(r.Status) },
		"flag":       Record.FlagLabel,
		"date":       func(r Record) string { return r.Date },
	},
	Sorts: map[string]table.Comparator[Record]{
		"date":          table.ByString(func(r Record) string { return r.Date }),
		"employee_name": table.ByString(func(r Record) string { return r.EmployeeName }),
		"in_time":       table.ByString(func(r Record) string { return r.InTime }),
		"duration":      table.ByInt(func(r Record) int { return r.DurationMinutes }),
	},
}
