package models

import "time"

// AssignmentRecord is one employee's assignment to one project for a date range.
// It is built from a single input line and never modified afterwards.
type AssignmentRecord struct {
	// EmployeeID identifies the employee.
	EmployeeID int

	// ProjectID identifies the project the employee worked on.
	ProjectID int

	// DateFrom is the first day of the assignment, at UTC midnight.
	DateFrom time.Time

	// DateTo is the last day of the assignment, at UTC midnight.
	// A DateTo before DateFrom is accepted as-is and simply never overlaps.
	DateTo time.Time

	// Line is the 1-based input line the record was parsed from.
	// It is used for diagnostics only.
	Line int
}

// Date returns the calendar date of t as a time.Time at UTC midnight.
// Records always hold dates in this form so that day arithmetic is exact.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
