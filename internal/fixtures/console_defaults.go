package fixtures

import (
	"fmt"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/leave"
)

// ==========================================
// ROSTER
// ==========================================

type person struct {
	id, first, last, email, phone, gender, department, branch, designation string
}

var roster = []person{
	{"E001", "Asha", "Rao", "asha.rao@cmlabs.co", "9876543210", "Female", "Engineering", "Pune", "Software Engineer"},
	{"E002", "Ravi", "Kumar", "ravi.kumar@cmlabs.co", "9123456780", "Male", "Finance", "Mumbai", "Accountant"},
	{"E003", "Meera", "Iyer", "meera.iyer@cmlabs.co", "9988776655", "Female", "Human Resources", "Bengaluru", "HR Executive"},
	{"E004", "Arjun", "Singh", "arjun.singh@cmlabs.co", "9012345678", "Male", "Engineering", "Delhi", "Team Lead"},
	{"E005", "Priya", "Nair", "priya.nair@cmlabs.co", "9090909090", "Female", "Marketing", "Pune", "Marketing Manager"},
	{"E006", "Karan", "Mehta", "karan.mehta@cmlabs.co", "9876501234", "Male", "Sales", "Mumbai", "Sales Executive"},
}

func (p person) name() string {
	return p.first + " " + p.last
}

// ==========================================
// DISABLED EMPLOYEES
// ==========================================

// DisabledEmployees returns the seed list for the disabled-employee screen.
func DisabledEmployees() []employee.Employee {
	disabled := []person{
		{"D101", "Vikram", "Joshi", "vikram.joshi@cmlabs.co", "9811122233", "Male", "Engineering", "Pune", "QA Engineer"},
		{"D102", "Neha", "Gupta", "neha.gupta@cmlabs.co", "9822233344", "Female", "Finance", "Mumbai", "Analyst"},
		{"D103", "Sanjay", "Patel", "sanjay.patel@cmlabs.co", "9833344455", "Male", "Sales", "Delhi", "Sales Executive"},
		{"D104", "Ananya", "Das", "ananya.das@cmlabs.co", "9844455566", "Female", "Marketing", "Bengaluru", "Content Writer"},
	}

	out := make([]employee.Employee, 0, len(disabled))
	for _, p := range disabled {
		out = append(out, employee.Employee{
			ID:            p.id,
			FirstName:     p.first,
			LastName:      p.last,
			Email:         p.email,
			Phone:         p.phone,
			Gender:        p.gender,
			Department:    p.department,
			Branch:        p.branch,
			Designation:   p.designation,
			Status:        employee.StatusInactive,
			DateOfBirth:   "1993-03-12",
			DateOfJoining: "2021-06-01",
		})
	}
	return out
}

// ==========================================
// ATTENDANCE
// ==========================================

// AttendanceRecords returns three days of attendance for the roster. Flags and
// durations are derived with lateAfter as the late threshold.
func AttendanceRecords(lateAfter string) []attendance.Record {
	days := []string{"2026-10-12", "2026-10-13", "2026-10-14"}
	punches := [][2]string{
		{"09:05", "18:10"},
		{"09:45", "18:30"},
		{"09:20", "13:00"},
		{"", ""},
		{"08:55", "17:50"},
		{"10:15", "19:00"},
	}

	out := make([]attendance.Record, 0, len(days)*len(roster))
	n := 0
	for d, day := range days {
		for i, p := range roster {
			n++
			punch := punches[(i+d)%len(punches)]
			rec := attendance.Record{
				ID:           fmt.Sprintf("ATT-%03d", n),
				EmployeeID:   p.id,
				EmployeeName: p.name(),
				Department:   p.department,
				Date:         day,
				InTime:       punch[0],
				OutTime:      punch[1],
				Flag:         attendance.DeriveFlag(punch[0], lateAfter),
			}
			out = append(out, rec.Recompute())
		}
	}
	return out
}

// ==========================================
// LEAVE
// ==========================================

// LeaveRequests returns the seed list of leave applications.
func LeaveRequests() []leave.Request {
	seed := []struct {
		who       int
		leaveType leave.Type
		from, to  string
		reason    string
		status    leave.Status
		remark    string
	}{
		{0, leave.TypeCasual, "2026-10-20", "2026-10-21", "Family function", leave.StatusPending, ""},
		{1, leave.TypeSick, "2026-10-05", "2026-10-06", "Fever", leave.StatusApproved, "Get well soon"},
		{2, leave.TypeMaternity, "2026-11-01", "2027-01-29", "Maternity leave", leave.StatusApproved, ""},
		{3, leave.TypeCasual, "2026-10-27", "2026-10-27", "Personal work", leave.StatusPending, ""},
		{4, leave.TypeSick, "2026-09-14", "2026-09-16", "Medical procedure", leave.StatusRejected, "Overlaps with launch"},
		{5, leave.TypeCasual, "2026-10-30", "2026-11-02", "Travel", leave.StatusPending, ""},
	}

	out := make([]leave.Request, 0, len(seed))
	for i, s := range seed {
		p := roster[s.who]
		days, _ := leave.CountDays(s.from, s.to)
		out = append(out, leave.Request{
			ID:           fmt.Sprintf("LV-%03d", i+1),
			EmployeeID:   p.id,
			EmployeeName: p.name(),
			Department:   p.department,
			LeaveType:    s.leaveType,
			From:         s.from,
			To:           s.to,
			Days:         days,
			Reason:       s.reason,
			Status:       s.status,
			Remark:       s.remark,
			AppliedOn:    "2026-10-01",
		})
	}
	return out
}

// LeaveCredits returns one balance per roster employee.
func LeaveCredits() []leave.Credit {
	out := make([]leave.Credit, 0, len(roster))
	for i, p := range roster {
		maternity := leave.Bucket{}
		if p.gender == "Female" {
			maternity = leave.Bucket{Total: 180}
		}
		out = append(out, leave.Credit{
			EmployeeID:   p.id,
			EmployeeName: p.name(),
			Department:   p.department,
			Sick:         leave.Bucket{Total: 12, Used: i % 4},
			Casual:       leave.Bucket{Total: 12, Used: (i * 2) % 7},
			Maternity:    maternity,
		})
	}
	return out
}
