// Package importer reads cut lists and stock snapshots from CSV and Excel
// files. It supports automatic delimiter detection, flexible column mapping,
// and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/avetrov/parkcut/internal/model"
)

// Row is one imported line: a material with a board length (0 for fasteners)
// and a quantity.
type Row struct {
	Material string
	Length   float64
	Quantity float64
}

// Result holds the rows of an import operation along with any per-line
// problems encountered. Errors describe rows that were skipped; Warnings
// describe rows that were imported with assumptions.
type Result struct {
	Rows     []Row
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Material int
	Length   int
	Quantity int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"material": {"material", "name", "item", "board", "timber"},
	"length":   {"length", "len", "l", "meters", "m", "size"},
	"quantity": {"quantity", "qty", "count", "num", "amount", "pcs", "pieces"},
}

// ImportFile reads rows from a CSV or Excel file, chosen by extension.
func ImportFile(path string) (Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ImportExcel(path)
	default:
		return ImportCSV(path)
	}
}

// ImportCSV reads rows from a CSV file with automatic delimiter detection.
func ImportCSV(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = DetectCSVDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return parseRecords(records), nil
}

// ImportExcel reads rows from the first sheet of an Excel workbook.
func ImportExcel(path string) (Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Result{}, fmt.Errorf("workbook has no sheets")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return Result{}, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return parseRecords(records), nil
}

// DetectCSVDelimiter determines the most likely CSV delimiter by trying
// comma, semicolon, tab, and pipe. The delimiter producing the most
// consistent multi-column row count wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping. Matching
// is case-insensitive against known aliases. Returns the mapping and true if
// a header was detected, or a positional mapping (material, length, quantity)
// and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Material: -1, Length: -1, Quantity: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "material":
					if mapping.Material == -1 {
						mapping.Material = i
					}
				case "length":
					if mapping.Length == -1 {
						mapping.Length = i
					}
				case "quantity":
					if mapping.Quantity == -1 {
						mapping.Quantity = i
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Material: 0, Length: 1, Quantity: 2}, false
	}
	return mapping, true
}

// parseRecords converts raw rows into a Result using the detected mapping.
func parseRecords(records [][]string) Result {
	var result Result
	if len(records) == 0 {
		result.Errors = append(result.Errors, "file contains no rows")
		return result
	}

	mapping, hasHeader := DetectColumns(records[0])
	start := 0
	if hasHeader {
		start = 1
	}
	if mapping.Material == -1 {
		result.Errors = append(result.Errors, "no material column found")
		return result
	}

	for i := start; i < len(records); i++ {
		row := records[i]
		lineNo := i + 1

		material := cellAt(row, mapping.Material)
		if material == "" {
			continue // blank line
		}

		length := 0.0
		if v := cellAt(row, mapping.Length); v != "" {
			parsed, err := parseNumber(v)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("line %d: invalid length %q", lineNo, v))
				continue
			}
			length = parsed
		}

		quantity := 1.0
		if v := cellAt(row, mapping.Quantity); v != "" {
			parsed, err := parseNumber(v)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("line %d: invalid quantity %q", lineNo, v))
				continue
			}
			quantity = parsed
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: missing quantity, assuming 1", lineNo))
		}

		if length < 0 || quantity <= 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: non-positive dimensions", lineNo))
			continue
		}

		result.Rows = append(result.Rows, Row{Material: material, Length: length, Quantity: quantity})
	}

	return result
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseNumber accepts both decimal point and decimal comma.
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}

// ToStockEntries converts imported rows into warehouse stock entries.
func ToStockEntries(rows []Row) []model.StockEntry {
	entries := make([]model.StockEntry, len(rows))
	for i, r := range rows {
		entries[i] = model.StockEntry{Material: r.Material, Length: r.Length, Quantity: r.Quantity}
	}
	return entries
}

// ToRequirements converts imported rows into a requirements map: rows with a
// length become one cut entry per quantity unit; rows without a length become
// a single counted entry.
func ToRequirements(rows []Row, origin string) model.Requirements {
	req := make(model.Requirements)
	for _, r := range rows {
		if r.Length > 0 {
			n := int(r.Quantity)
			for i := 0; i < n; i++ {
				req.Add(r.Material, model.Requirement{Value: r.Length, Origin: origin})
			}
		} else {
			req.Add(r.Material, model.Requirement{Value: r.Quantity, Origin: origin})
		}
	}
	return req
}
