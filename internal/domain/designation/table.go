package designation

import "github.com/cmlabs-hris/hris-console-go/internal/pkg/table"

// TableSchema drives search, filters and sorting on the designation screen.
var TableSchema = table.Schema[Designation]{
	Search: map[string]func(Designation) string{
		"name":       func(d Designation) string { return d.Name },
		"department": func(d Designation) string { return d.Department },
	},
	Attributes: map[string]func(Designation) string{
		"department": func(d Designation) string { return d.Department },
	},
	Sorts: map[string]table.Comparator[Designation]{
		"name":       table.ByString(func(d Designation) string { return d.Name }),
		"department": table.ByString(func(d Designation) string { return d.Department }),
	},
}
