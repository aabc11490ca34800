// Package spreadsheet reads uploaded workbooks into header-keyed records and
// writes fixed-layout exports as .xlsx or .csv.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
	"github.com/xuri/excelize/v2"
)

var (
	ErrMalformed       = errors.New("malformed spreadsheet")
	ErrUnsupportedType = errors.New("unsupported file type, upload an .xlsx file")
	ErrUnknownFormat   = errors.New("unknown export format")
)

const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"

	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV  = "text/csv"

	maxRows = 100000
)

// Record is one data row keyed by normalized header name. Line counts data
// rows from 1 under the header, blank rows included, so it matches the sheet.
type Record struct {
	Line  int
	Cells map[string]string
}

// Get returns the first non-empty value among keys.
func (r Record) Get(keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(r.Cells[NormalizeHeader(key)]); v != "" {
			return v
		}
	}
	return ""
}

// NormalizeHeader lowercases a header and strips spaces, dashes and underscores,
// so "Date of Birth", "date_of_birth" and "DateOfBirth" are the same column.
func NormalizeHeader(header string) string {
	replacer := strings.NewReplacer(" ", "", "_", "", "-", "", ".", "")
	return replacer.Replace(strings.ToLower(strings.TrimSpace(header)))
}

// ReadRecords reads the first worksheet of an .xlsx upload. The first row is
// the header; fully blank rows are skipped.
func ReadRecords(r io.Reader, filename string) ([]Record, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".xlsx" {
		return nil, ErrUnsupportedType
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%w: no worksheet found", ErrMalformed)
	}

	// Raw values keep dates as serial numbers and long digit strings unformatted.
	rows, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: worksheet is empty", ErrMalformed)
	}
	if len(rows) > maxRows {
		return nil, fmt.Errorf("%w: more than %d rows", ErrMalformed, maxRows)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = NormalizeHeader(h)
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rec := Record{Line: i + 1, Cells: make(map[string]string, len(header))}
		for col, key := range header {
			if key == "" {
				continue
			}
			rec.Cells[key] = cellValue(row, col)
		}
		records = append(records, rec)
	}
	return records, nil
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// NormalizeDate turns a date cell into YYYY-MM-DD. Numeric cells inside a
// plausible range are treated as Excel serial dates.
func NormalizeDate(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial >= 1 && serial <= 80000 {
			if parsed, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return parsed.Format(validator.DateLayout), true
			}
		}
		return "", false
	}

	parsed, ok := validator.ParseDate(value)
	if !ok {
		return "", false
	}
	return parsed.Format(validator.DateLayout), true
}

// Column is one export column: a header and the cell value for a record.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Write renders rows with the given column layout in format (xlsx or csv).
func Write[T any](w io.Writer, format, sheet string, columns []Column[T], rows []T) error {
	switch format {
	case FormatXLSX:
		return writeXLSX(w, sheet, columns, rows)
	case FormatCSV:
		return writeCSV(w, columns, rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// ContentType returns the MIME type for an export format.
func ContentType(format string) string {
	if format == FormatCSV {
		return ContentTypeCSV
	}
	return ContentTypeXLSX
}

func headers[T any](columns []Column[T]) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Header
	}
	return out
}

func writeCSV[T any](w io.Writer, columns []Column[T], rows []T) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers(columns)); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	record := make([]string, len(columns))
	for _, row := range rows {
		for i, c := range columns {
			record[i] = c.Value(row)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX[T any](w io.Writer, sheet string, columns []Column[T], rows []T) error {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(columns))
	for i, h := range headers(columns) {
		header[i] = h
	}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	bold, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := file.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for r, row := range rows {
		values := make([]any, len(columns))
		for i, c := range columns {
			values[i] = c.Value(row)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r+1, err)
		}
	}

	if len(columns) > 0 {
		last, err := excelize.ColumnNumberToName(len(columns))
		if err != nil {
			return err
		}
		if err := file.SetColWidth(sheet, "A", last, 18); err != nil {
			return fmt.Errorf("failed to size columns: %w", err)
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
