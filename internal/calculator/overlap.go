package calculator

import (
	"slices"
	"time"

	"github.com/mmynk/pairtime/internal/models"
)

// secondsPerDay converts between Unix seconds and calendar days. Record dates
// are UTC midnights, so every difference is a whole multiple of it.
const secondsPerDay = 24 * 60 * 60

// projectBucket holds the records of one project in input order.
type projectBucket struct {
	projectID int
	records   []models.AssignmentRecord
}

// groupByProject buckets records by project. Buckets are ordered by the
// project's first appearance so results are reproducible.
func groupByProject(records []models.AssignmentRecord) []projectBucket {
	index := make(map[int]int)
	var buckets []projectBucket

	for _, r := range records {
		i, exists := index[r.ProjectID]
		if !exists {
			i = len(buckets)
			index[r.ProjectID] = i
			buckets = append(buckets, projectBucket{projectID: r.ProjectID})
		}
		buckets[i].records = append(buckets[i].records, r)
	}

	return buckets
}

// overlapDays returns the shared window of a and b and its length in whole days.
// ok is false when the ranges do not intersect. A window of a single day is 0 days long.
func overlapDays(a, b models.AssignmentRecord) (from, to time.Time, days int, ok bool) {
	from = a.DateFrom
	if b.DateFrom.After(from) {
		from = b.DateFrom
	}
	to = a.DateTo
	if b.DateTo.Before(to) {
		to = b.DateTo
	}

	if from.After(to) {
		return time.Time{}, time.Time{}, 0, false
	}
	// time.Duration saturates at about 292 years; Unix seconds do not.
	return from, to, int((to.Unix() - from.Unix()) / secondsPerDay), true
}

// ProjectOverlaps lists every (pair, shared project) overlap in discovery order:
// projects in order of first appearance, then record pairs (i, j) with i < j.
//
// Two records of the same employee on one project are not a pair and are skipped.
func ProjectOverlaps(records []models.AssignmentRecord) []models.ProjectOverlap {
	var overlaps []models.ProjectOverlap

	for _, bucket := range groupByProject(records) {
		members := bucket.records
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				a, b := members[i], members[j]
				if a.EmployeeID == b.EmployeeID {
					continue
				}

				from, to, days, ok := overlapDays(a, b)
				if !ok {
					continue
				}

				overlaps = append(overlaps, models.ProjectOverlap{
					Pair:        models.NewPairKey(a.EmployeeID, b.EmployeeID),
					ProjectID:   bucket.projectID,
					OverlapDays: days,
					From:        from,
					To:          to,
				})
			}
		}
	}

	return overlaps
}

// summarize folds overlaps into one summary per pair, ordered by the pair's
// first overlap. Each summary owns its breakdown slice.
func summarize(overlaps []models.ProjectOverlap) []models.PairSummary {
	index := make(map[models.PairKey]int)
	var summaries []models.PairSummary

	for _, o := range overlaps {
		i, exists := index[o.Pair]
		if !exists {
			i = len(summaries)
			index[o.Pair] = i
			summaries = append(summaries, models.PairSummary{Pair: o.Pair})
		}
		summaries[i].TotalOverlapDays += o.OverlapDays
		summaries[i].Breakdown = append(summaries[i].Breakdown, o)
	}

	return summaries
}

// ranksBefore reports whether a should be listed before b:
// higher totals first, ties broken by the smaller pair key.
func ranksBefore(a, b models.PairSummary) bool {
	if a.TotalOverlapDays != b.TotalOverlapDays {
		return a.TotalOverlapDays > b.TotalOverlapDays
	}
	return a.Pair.Less(b.Pair)
}

// FindLongestPair returns the pair of employees with the most cumulative days
// together across all shared projects.
//
// Algorithm:
// - Group records by project, keeping first-appearance order
// - For every pair of records in a project, intersect their date ranges
// - Sum the overlap days per employee pair across projects
// - Pick the highest total; on a tie, the smallest pair key wins
//
// ok is false when no two employees overlap on any project. That is a normal
// outcome, not an error. A pair whose only overlaps are single days has a
// total of 0 and can still be returned.
func FindLongestPair(records []models.AssignmentRecord) (result models.BestPairResult, ok bool) {
	summaries := summarize(ProjectOverlaps(records))
	if len(summaries) == 0 {
		return models.BestPairResult{}, false
	}

	best := summaries[0]
	for _, s := range summaries[1:] {
		if ranksBefore(s, best) {
			best = s
		}
	}

	return best.Best(), true
}

// RankPairs returns every pair with at least one overlap, highest total first.
// Pairs with equal totals are ordered by pair key. The first entry, if any,
// is the pair FindLongestPair returns.
func RankPairs(records []models.AssignmentRecord) []models.PairSummary {
	summaries := summarize(ProjectOverlaps(records))
	slices.SortStableFunc(summaries, func(a, b models.PairSummary) int {
		switch {
		case ranksBefore(a, b):
			return -1
		case ranksBefore(b, a):
			return 1
		default:
			return 0
		}
	})
	return summaries
}
