package employee

import (
	"github.com/cmlabs-hris/hris-console-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/spreadsheet"
)

// ExportColumns is the fixed layout of the employee export.
var ExportColumns = []spreadsheet.Column[employee.Employee]{
	{Header: "Employee ID", Value: func(e employee.Employee) string { return e.ID }},
	{Header: "Name", Value: employee.Employee.FullName},
	{Header: "Email", Value: func(e employee.Employee) string { return e.Email }},
	{Header: "Phone", Value: func(e employee.Employee) string { return e.Phone }},
	{Header: "Gender", Value: func(e employee.Employee) string { return e.Gender }},
	{Header: "Department", Value: func(e employee.Employee) string { return e.Department }},
	{Header: "Branch", Value: func(e employee.Employee) string { return e.Branch }},
	{Header: "Designation", Value: func(e employee.Employee) string { return e.Designation }},
	{Header: "Status", Value: func(e employee.Employee) string { return string(e.Status) }},
	{Header: "Date of Birth", Value: func(e employee.Employee) string { return e.DateOfBirth }},
	{Header: "Date of Joining", Value: func(e employee.Employee) string { return e.DateOfJoining }},
	{Header: "Shift", Value: func(e employee.Employee) string { return e.Shift }},
}
