// Package api defines the wire messages of the pairtime AnalysisService.
//
// Messages are plain Go structs encoded as JSON by Codec; there is no
// protobuf schema.
package api

// NoOverlapMessage is returned when no two employees share any project time.
const NoOverlapMessage = "No overlapping projects found."

// FindLongestPairRequest carries the raw assignment file.
type FindLongestPairRequest struct {
	// Content is the file body: one "employeeId,projectId,dateFrom,dateTo" record per line.
	Content string `json:"content"`
}

// FindLongestPairResponse describes the pair with the most days together.
// When Found is false only Message and RecordCount are set; the other
// numeric fields are zero.
type FindLongestPairResponse struct {
	Found       bool             `json:"found"`
	Message     string           `json:"message,omitempty"`
	RecordCount int              `json:"recordCount"`
	EmployeeID1 int              `json:"employeeId1"`
	EmployeeID2 int              `json:"employeeId2"`
	TotalDays   int              `json:"totalDays"`
	Projects    []ProjectOverlap `json:"projects,omitempty"`
}

// ProjectOverlap is the time a pair spent together on one project.
// Dates are formatted as yyyy-MM-dd.
type ProjectOverlap struct {
	EmployeeID1 int    `json:"employeeId1"`
	EmployeeID2 int    `json:"employeeId2"`
	ProjectID   int    `json:"projectId"`
	Days        int    `json:"days"`
	From        string `json:"from"`
	To          string `json:"to"`
}

// RankPairsRequest asks for every overlapping pair, best first.
type RankPairsRequest struct {
	Content string `json:"content"`

	// Limit caps the number of pairs returned. Zero or less returns all.
	Limit int `json:"limit,omitempty"`
}

// RankPairsResponse lists pairs by total days, highest first.
type RankPairsResponse struct {
	RecordCount int           `json:"recordCount"`
	Pairs       []PairSummary `json:"pairs"`
}

// PairSummary is one ranked pair.
type PairSummary struct {
	EmployeeID1 int              `json:"employeeId1"`
	EmployeeID2 int              `json:"employeeId2"`
	TotalDays   int              `json:"totalDays"`
	Projects    []ProjectOverlap `json:"projects"`
}

// Metadata keys attached to errors for invalid input.
const (
	ErrorKindKey  = "Error-Kind"
	ErrorLineKey  = "Error-Line"
	ErrorFieldKey = "Error-Field"
)

// ErrorKindLineTooLong is the Error-Kind of an input line over the parser's
// line limit. Other kinds are the parser's validation kinds.
const ErrorKindLineTooLong = "line_too_long"
