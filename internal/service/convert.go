package service

import (
	"github.com/mmynk/pairtime/internal/models"
	"github.com/mmynk/pairtime/pkg/api"
)

// DateLayout is the wire format of overlap window dates.
const DateLayout = "2006-01-02"

// LongestPairResponse converts a calculator result to its wire form.
// found=false yields the no-overlap message.
func LongestPairResponse(recordCount int, result models.BestPairResult, found bool) *api.FindLongestPairResponse {
	if !found {
		return &api.FindLongestPairResponse{
			Found:       false,
			Message:     api.NoOverlapMessage,
			RecordCount: recordCount,
		}
	}

	return &api.FindLongestPairResponse{
		Found:       true,
		RecordCount: recordCount,
		EmployeeID1: result.EmployeeID1,
		EmployeeID2: result.EmployeeID2,
		TotalDays:   result.TotalOverlapDays,
		Projects:    toProjectOverlaps(result.Breakdown),
	}
}

// RankPairsResponse converts ranked summaries to their wire form, keeping at
// most limit pairs. A limit of zero or less keeps all of them.
func RankPairsResponse(recordCount int, summaries []models.PairSummary, limit int) *api.RankPairsResponse {
	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}

	pairs := make([]api.PairSummary, len(summaries))
	for i, s := range summaries {
		pairs[i] = api.PairSummary{
			EmployeeID1: s.Pair.Low,
			EmployeeID2: s.Pair.High,
			TotalDays:   s.TotalOverlapDays,
			Projects:    toProjectOverlaps(s.Breakdown),
		}
	}

	return &api.RankPairsResponse{
		RecordCount: recordCount,
		Pairs:       pairs,
	}
}

func toProjectOverlaps(overlaps []models.ProjectOverlap) []api.ProjectOverlap {
	out := make([]api.ProjectOverlap, len(overlaps))
	for i, o := range overlaps {
		out[i] = api.ProjectOverlap{
			EmployeeID1: o.Pair.Low,
			EmployeeID2: o.Pair.High,
			ProjectID:   o.ProjectID,
			Days:        o.OverlapDays,
			From:        o.From.Format(DateLayout),
			To:          o.To.Format(DateLayout),
		}
	}
	return out
}
