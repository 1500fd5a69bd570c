package parser

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/mmynk/pairtime/internal/clock"
	"github.com/mmynk/pairtime/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestParser() *Parser {
	return New(clock.NewFixed(time.Date(2025, 5, 17, 15, 4, 5, 0, time.UTC)))
}

func TestParse_ValidInput(t *testing.T) {
	input := "1,100,01-01-2020,10-01-2020\n" +
		"2, 100 , 05/01/2020 ,2020-05-15\r\n" +
		"3,200,2019-12-31,NULL\n"

	records, err := newTestParser().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []models.AssignmentRecord{
		{EmployeeID: 1, ProjectID: 100, DateFrom: date(2020, 1, 1), DateTo: date(2020, 1, 10), Line: 1},
		{EmployeeID: 2, ProjectID: 100, DateFrom: date(2020, 5, 1), DateTo: date(2020, 5, 15), Line: 2},
		{EmployeeID: 3, ProjectID: 200, DateFrom: date(2019, 12, 31), DateTo: date(2025, 5, 17), Line: 3},
	}
	if len(records) != len(want) {
		t.Fatalf("Parse() returned %d records, want %d", len(records), len(want))
	}
	for i := range want {
		got := records[i]
		if got.EmployeeID != want[i].EmployeeID || got.ProjectID != want[i].ProjectID ||
			!got.DateFrom.Equal(want[i].DateFrom) || !got.DateTo.Equal(want[i].DateTo) ||
			got.Line != want[i].Line {
			t.Errorf("record %d = %+v, want %+v", i, got, want[i])
		}
	}
}

func TestParse_EmptyInput(t *testing.T) {
	records, err := newTestParser().Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Parse() returned %d records, want 0", len(records))
	}
}

func TestParse_StripsByteOrderMark(t *testing.T) {
	records, err := newTestParser().Parse(strings.NewReader("\uFEFF7,1,2020-01-01,2020-01-02\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(records) != 1 || records[0].EmployeeID != 7 {
		t.Errorf("Parse() = %+v, want one record for employee 7", records)
	}
}

func TestParse_NullEndDate(t *testing.T) {
	for _, token := range []string{"NULL", "null", "Null", " nUlL "} {
		t.Run(token, func(t *testing.T) {
			records, err := newTestParser().ParseLines([]string{"1,1,2025-01-01," + token})
			if err != nil {
				t.Fatalf("ParseLines() error = %v", err)
			}
			if !records[0].DateTo.Equal(date(2025, 5, 17)) {
				t.Errorf("DateTo = %v, want today 2025-05-17", records[0].DateTo)
			}
		})
	}
}

func TestParse_NullStartDateIsInvalid(t *testing.T) {
	_, err := newTestParser().ParseLines([]string{"1,1,NULL,2025-01-01"})
	if !errors.Is(err, ErrDateFormat) {
		t.Fatalf("ParseLines() error = %v, want ErrDateFormat", err)
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) && vErr.Field != FieldDateFrom {
		t.Errorf("Field = %q, want %q", vErr.Field, FieldDateFrom)
	}
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		sentinel  error
		wantLine  int
		wantField string
		wantMsg   string
	}{
		{
			name:     "three columns",
			input:    "1,100,01-01-2020,10-01-2020\n2,100,05-01-2020\n",
			sentinel: ErrSchema,
			wantLine: 2,
			wantMsg:  "incorrect number of columns on line 2: expected 4, found 3",
		},
		{
			name:     "five columns",
			input:    "1,100,01-01-2020,10-01-2020,extra\n",
			sentinel: ErrSchema,
			wantLine: 1,
			wantMsg:  "expected 4, found 5",
		},
		{
			name:     "empty line",
			input:    "1,100,01-01-2020,10-01-2020\n\n",
			sentinel: ErrSchema,
			wantLine: 2,
			wantMsg:  "found 1",
		},
		{
			name:      "employee ID not a number",
			input:     "abc,100,01-01-2020,10-01-2020\n",
			sentinel:  ErrNumericFormat,
			wantLine:  1,
			wantField: FieldEmployeeID,
			wantMsg:   "invalid number format on line 1 for employee ID",
		},
		{
			name:      "project ID not a number",
			input:     "1,1.5,01-01-2020,10-01-2020\n",
			sentinel:  ErrNumericFormat,
			wantLine:  1,
			wantField: FieldProjectID,
			wantMsg:   "for project ID",
		},
		{
			name:      "date from in unknown format",
			input:     "1,100,2020.01.01,10-01-2020\n",
			sentinel:  ErrDateFormat,
			wantLine:  1,
			wantField: FieldDateFrom,
			wantMsg:   `"2020.01.01" matches none of dd-MM-yyyy, MM/dd/yyyy, yyyy-MM-dd`,
		},
		{
			name:      "date to out of range",
			input:     "1,100,01-01-2020,31-02-2020\n",
			sentinel:  ErrDateFormat,
			wantLine:  1,
			wantField: FieldDateTo,
			wantMsg:   "invalid date format on line 1 for date to",
		},
		{
			name:      "trailing comma leaves date to empty",
			input:     "1,100,01-01-2020,\n",
			sentinel:  ErrDateFormat,
			wantLine:  1,
			wantField: FieldDateTo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := newTestParser().Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("Parse() = %+v, want error", records)
			}
			if records != nil {
				t.Errorf("Parse() returned %d records alongside an error", len(records))
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.sentinel)
			}
			if errors.Is(err, ErrRead) {
				t.Errorf("validation error %v must not match ErrRead", err)
			}

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error %T is not a *ValidationError", err)
			}
			if vErr.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", vErr.Line, tt.wantLine)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", vErr.Field, tt.wantField)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParse_SchemaErrorCounts(t *testing.T) {
	_, err := newTestParser().ParseLines([]string{"1,2,3"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("ParseLines() error = %v, want *ValidationError", err)
	}
	if vErr.Expected != 4 || vErr.Actual != 3 {
		t.Errorf("Expected/Actual = %d/%d, want 4/3", vErr.Expected, vErr.Actual)
	}
}

func TestParse_NumericErrorWrapsCause(t *testing.T) {
	_, err := newTestParser().ParseLines([]string{"x,1,2020-01-01,2020-01-02"})
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("error %v does not wrap a *strconv.NumError", err)
	}
	if !strings.Contains(err.Error(), "invalid syntax") {
		t.Errorf("Error() = %q, want the strconv cause", err.Error())
	}
}

func TestParse_DateErrorWrapsCause(t *testing.T) {
	_, err := newTestParser().ParseLines([]string{"1,1,2020-01-01,17.05.2025"})
	if !errors.Is(err, ErrDateFormat) {
		t.Fatalf("ParseLines() error = %v, want ErrDateFormat", err)
	}
	var parseErr *time.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error %v does not wrap a *time.ParseError", err)
	}
	if parseErr.Layout != "2006-01-02" {
		t.Errorf("cause layout = %q, want the last accepted layout 2006-01-02", parseErr.Layout)
	}
}

func TestParse_StopsAtFirstError(t *testing.T) {
	input := "1,1,2020-01-01,2020-01-02\nbad\n2,x,2020-01-01,2020-01-02\n"
	_, err := newTestParser().Parse(strings.NewReader(input))
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Parse() error = %v, want *ValidationError", err)
	}
	if vErr.Line != 2 || vErr.Kind != KindSchema {
		t.Errorf("got %s error on line %d, want schema error on line 2", vErr.Kind, vErr.Line)
	}
}

func TestParse_ReadError(t *testing.T) {
	cause := errors.New("connection reset")
	r := io.MultiReader(strings.NewReader("1,1,2020-01-01,2020-01-02\n"), iotest.ErrReader(cause))

	_, err := newTestParser().Parse(r)
	if !errors.Is(err, ErrRead) {
		t.Fatalf("Parse() error = %v, want ErrRead", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("Parse() error = %v, want it to wrap %v", err, cause)
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		t.Errorf("read failure reported as validation error: %v", vErr)
	}
	var rErr *ReadError
	if errors.As(err, &rErr) && rErr.Line != 1 {
		t.Errorf("ReadError.Line = %d, want 1", rErr.Line)
	}
}

func TestParse_LineTooLong(t *testing.T) {
	long := strings.Repeat("9", maxLineBytes+1)
	_, err := newTestParser().Parse(strings.NewReader(long))
	if !errors.Is(err, ErrRead) || !errors.Is(err, bufio.ErrTooLong) {
		t.Errorf("Parse() error = %v, want ErrRead wrapping bufio.ErrTooLong", err)
	}
}

func TestNew_DefaultsToSystemClock(t *testing.T) {
	p := New(nil)
	if _, ok := p.clock.(clock.System); !ok {
		t.Errorf("New(nil).clock = %T, want clock.System", p.clock)
	}
}
