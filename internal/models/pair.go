package models

import (
	"fmt"
	"time"
)

// PairKey identifies an unordered pair of two employees.
// Low is always the smaller ID, so PairKey(3, 7) and PairKey(7, 3) are the same key.
type PairKey struct {
	Low  int
	High int
}

// NewPairKey returns the canonical key for employees a and b.
func NewPairKey(a, b int) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey{Low: a, High: b}
}

// Less orders keys by Low, then High.
func (k PairKey) Less(other PairKey) bool {
	if k.Low != other.Low {
		return k.Low < other.Low
	}
	return k.High < other.High
}

// String renders the key as "low-high".
func (k PairKey) String() string {
	return fmt.Sprintf("%d-%d", k.Low, k.High)
}

// ProjectOverlap is the time two employees spent together on one project.
type ProjectOverlap struct {
	// Pair is the employee pair the overlap belongs to.
	Pair PairKey

	// ProjectID is the shared project.
	ProjectID int

	// OverlapDays is the whole number of days between the window bounds.
	// A window that starts and ends on the same day counts as 0.
	OverlapDays int

	// From and To bound the overlap window (inclusive).
	From time.Time
	To   time.Time
}

// BestPairResult is the pair of employees with the most cumulative time together.
type BestPairResult struct {
	EmployeeID1      int
	EmployeeID2      int
	TotalOverlapDays int

	// Breakdown lists every shared project that contributed to the total,
	// in the order the projects were discovered.
	Breakdown []ProjectOverlap
}

// PairSummary is one pair's aggregated overlap, used when ranking all pairs.
type PairSummary struct {
	Pair             PairKey
	TotalOverlapDays int
	Breakdown        []ProjectOverlap
}

// Best converts the summary into a BestPairResult.
func (s PairSummary) Best() BestPairResult {
	return BestPairResult{
		EmployeeID1:      s.Pair.Low,
		EmployeeID2:      s.Pair.High,
		TotalOverlapDays: s.TotalOverlapDays,
		Breakdown:        s.Breakdown,
	}
}
