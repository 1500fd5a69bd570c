package service

import (
	"bufio"
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/mmynk/pairtime/internal/calculator"
	"github.com/mmynk/pairtime/internal/metrics"
	"github.com/mmynk/pairtime/internal/parser"
	"github.com/mmynk/pairtime/pkg/api"
	"github.com/mmynk/pairtime/pkg/api/apiconnect"
)

// Analysis kinds reported to the metrics recorder.
const (
	kindLongest = "longest"
	kindRank    = "rank"
)

// AnalysisService implements the Connect AnalysisService
type AnalysisService struct {
	apiconnect.UnimplementedAnalysisServiceHandler
	parser  *parser.Parser
	metrics metrics.Recorder
}

var _ apiconnect.AnalysisServiceHandler = (*AnalysisService)(nil)

// NewAnalysisService creates a new AnalysisService. A nil recorder discards observations.
func NewAnalysisService(p *parser.Parser, rec metrics.Recorder) *AnalysisService {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &AnalysisService{parser: p, metrics: rec}
}

// FindLongestPair parses the uploaded assignments and returns the pair of
// employees who worked together the longest.
func (s *AnalysisService) FindLongestPair(ctx context.Context, req *connect.Request[api.FindLongestPairRequest]) (*connect.Response[api.FindLongestPairResponse], error) {
	start := time.Now()

	records, err := s.parser.Parse(strings.NewReader(req.Msg.Content))
	if err != nil {
		s.metrics.ObserveAnalysis(kindLongest, outcomeOf(err), 0, time.Since(start))
		slog.Warn("FindLongestPair: rejected input", "error", err)
		return nil, toConnectError(err)
	}

	result, found := calculator.FindLongestPair(records)

	outcome := metrics.OutcomeNoOverlap
	if found {
		outcome = metrics.OutcomeFound
		slog.Debug("Longest pair",
			"employee_id_1", result.EmployeeID1,
			"employee_id_2", result.EmployeeID2,
			"total_days", result.TotalOverlapDays,
			"projects", len(result.Breakdown),
		)
	}
	s.metrics.ObserveAnalysis(kindLongest, outcome, len(records), time.Since(start))

	return connect.NewResponse(LongestPairResponse(len(records), result, found)), nil
}

// RankPairs parses the uploaded assignments and returns every overlapping
// pair, highest total first.
func (s *AnalysisService) RankPairs(ctx context.Context, req *connect.Request[api.RankPairsRequest]) (*connect.Response[api.RankPairsResponse], error) {
	start := time.Now()

	records, err := s.parser.Parse(strings.NewReader(req.Msg.Content))
	if err != nil {
		s.metrics.ObserveAnalysis(kindRank, outcomeOf(err), 0, time.Since(start))
		slog.Warn("RankPairs: rejected input", "error", err)
		return nil, toConnectError(err)
	}

	summaries := calculator.RankPairs(records)

	outcome := metrics.OutcomeFound
	if len(summaries) == 0 {
		outcome = metrics.OutcomeNoOverlap
	}
	s.metrics.ObserveAnalysis(kindRank, outcome, len(records), time.Since(start))
	slog.Debug("Ranked pairs", "records", len(records), "pairs", len(summaries), "limit", req.Msg.Limit)

	return connect.NewResponse(RankPairsResponse(len(records), summaries, req.Msg.Limit)), nil
}

func outcomeOf(err error) metrics.Outcome {
	if errors.Is(err, parser.ErrRead) && !errors.Is(err, bufio.ErrTooLong) {
		return metrics.OutcomeReadError
	}
	return metrics.OutcomeInvalid
}

// toConnectError maps parser errors to Connect codes. Validation failures
// carry the offending line, field and kind as error metadata. An oversized
// line is the client's input too, so it is InvalidArgument as well.
func toConnectError(err error) error {
	var rErr *parser.ReadError
	if errors.As(err, &rErr) && errors.Is(err, bufio.ErrTooLong) {
		cErr := connect.NewError(connect.CodeInvalidArgument, err)
		cErr.Meta().Set(api.ErrorKindKey, api.ErrorKindLineTooLong)
		cErr.Meta().Set(api.ErrorLineKey, strconv.Itoa(rErr.Line+1))
		return cErr
	}

	var vErr *parser.ValidationError
	if !errors.As(err, &vErr) {
		return connect.NewError(connect.CodeInternal, err)
	}

	cErr := connect.NewError(connect.CodeInvalidArgument, err)
	cErr.Meta().Set(api.ErrorKindKey, string(vErr.Kind))
	cErr.Meta().Set(api.ErrorLineKey, strconv.Itoa(vErr.Line))
	if vErr.Field != "" {
		cErr.Meta().Set(api.ErrorFieldKey, vErr.Field)
	}
	return cErr
}
