// Package parser turns raw assignment lines into validated records.
//
// Each line holds four comma-separated fields:
//
//	employeeId,projectId,dateFrom,dateTo
//
// Dates may use any of the formats returned by AcceptedDateFormats. A dateTo of
// NULL (any case) means the assignment is still running and resolves to today.
// Parsing stops at the first malformed line; there is no partial result.
package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mmynk/pairtime/internal/clock"
	"github.com/mmynk/pairtime/internal/models"
)

const (
	fieldCount = 4
	fieldSep   = ","

	// ongoing marks an assignment without an end date.
	ongoing = "NULL"

	// Spreadsheet exports often start with a byte order mark.
	utf8BOM = "\uFEFF"

	maxLineBytes = 1024 * 1024
)

// Parser validates assignment input.
// A Parser holds no per-run state and may be shared between goroutines.
type Parser struct {
	clock clock.Clock
}

// New creates a Parser that resolves NULL end dates with c.
// A nil clock means the system clock.
func New(c clock.Clock) *Parser {
	if c == nil {
		c = clock.System{}
	}
	return &Parser{clock: c}
}

// Parse reads r line by line and returns one record per line, in input order.
// It fails with a *ValidationError on the first malformed line and with a
// *ReadError if r cannot be read to the end.
func (p *Parser) Parse(r io.Reader) ([]models.AssignmentRecord, error) {
	today := clock.Today(p.clock)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var records []models.AssignmentRecord
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		record, err := parseLine(lineNo, scanner.Text(), today)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ReadError{Line: lineNo, Err: err}
	}

	return records, nil
}

// ParseLines is Parse for input that is already split into lines.
func (p *Parser) ParseLines(lines []string) ([]models.AssignmentRecord, error) {
	today := clock.Today(p.clock)

	records := make([]models.AssignmentRecord, 0, len(lines))
	for i, line := range lines {
		record, err := parseLine(i+1, line, today)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// parseLine validates a single line. today replaces a NULL end date.
func parseLine(lineNo int, line string, today time.Time) (models.AssignmentRecord, error) {
	if lineNo == 1 {
		line = strings.TrimPrefix(line, utf8BOM)
	}

	fields := strings.Split(line, fieldSep)
	if len(fields) != fieldCount {
		return models.AssignmentRecord{}, &ValidationError{
			Line:     lineNo,
			Kind:     KindSchema,
			Expected: fieldCount,
			Actual:   len(fields),
		}
	}

	employeeID, err := parseID(lineNo, FieldEmployeeID, fields[0])
	if err != nil {
		return models.AssignmentRecord{}, err
	}
	projectID, err := parseID(lineNo, FieldProjectID, fields[1])
	if err != nil {
		return models.AssignmentRecord{}, err
	}

	dateFrom, err := parseDate(lineNo, FieldDateFrom, fields[2])
	if err != nil {
		return models.AssignmentRecord{}, err
	}

	var dateTo time.Time
	if strings.EqualFold(strings.TrimSpace(fields[3]), ongoing) {
		dateTo = today
	} else {
		dateTo, err = parseDate(lineNo, FieldDateTo, fields[3])
		if err != nil {
			return models.AssignmentRecord{}, err
		}
	}

	return models.AssignmentRecord{
		EmployeeID: employeeID,
		ProjectID:  projectID,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		Line:       lineNo,
	}, nil
}

func parseID(lineNo int, field, raw string) (int, error) {
	value := strings.TrimSpace(raw)
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ValidationError{
			Line:  lineNo,
			Kind:  KindNumericFormat,
			Field: field,
			Value: value,
			Err:   err,
		}
	}
	return id, nil
}

func parseDate(lineNo int, field, raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	date, err := resolveDate(value)
	if err != nil {
		return time.Time{}, &ValidationError{
			Line:    lineNo,
			Kind:    KindDateFormat,
			Field:   field,
			Value:   value,
			Formats: AcceptedDateFormats(),
			Err:     err,
		}
	}
	return date, nil
}
