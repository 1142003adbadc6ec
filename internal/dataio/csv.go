// Package dataio loads and writes sample-set CSV files for the command-line
// tools.
package dataio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadColumns reads two numeric columns from a CSV file. Columns are located
// by header name; a column spec that parses as an integer is treated as a
// zero-based column index instead, which also covers headerless files.
func LoadColumns(path, xcol, ycol string) (x, y []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load samples: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("load samples: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("load samples: %s is empty", path)
	}

	xi, yi, skipHeader, err := locateColumns(records[0], xcol, ycol)
	if err != nil {
		return nil, nil, err
	}

	rows := records
	if skipHeader {
		rows = records[1:]
	}
	x = make([]float64, 0, len(rows))
	y = make([]float64, 0, len(rows))
	for i, rec := range rows {
		if xi >= len(rec) || yi >= len(rec) {
			return nil, nil, fmt.Errorf("load samples: row %d has %d fields, need columns %d and %d",
				i+1, len(rec), xi, yi)
		}
		xv, err := strconv.ParseFloat(rec[xi], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("load samples: row %d column %d: %w", i+1, xi, err)
		}
		yv, err := strconv.ParseFloat(rec[yi], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("load samples: row %d column %d: %w", i+1, yi, err)
		}
		x = append(x, xv)
		y = append(y, yv)
	}
	return x, y, nil
}

// locateColumns resolves the two column specs against the first record.
// skipHeader reports whether that record was a header row.
func locateColumns(header []string, xcol, ycol string) (xi, yi int, skipHeader bool, err error) {
	xi, xByName, err := locate(header, xcol)
	if err != nil {
		return 0, 0, false, err
	}
	yi, yByName, err := locate(header, ycol)
	if err != nil {
		return 0, 0, false, err
	}
	return xi, yi, xByName || yByName, nil
}

func locate(header []string, col string) (idx int, byName bool, err error) {
	for i, name := range header {
		if name == col {
			return i, true, nil
		}
	}
	idx, convErr := strconv.Atoi(col)
	if convErr != nil || idx < 0 {
		return 0, false, fmt.Errorf("column %q not found and not a valid index", col)
	}
	return idx, false, nil
}

// WriteColumns writes two equal-length columns to a CSV file with a header
// row.
func WriteColumns(path string, xname, yname string, x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("write samples: x and y must have the same length: %d vs %d", len(x), len(y))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write samples: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{xname, yname}); err != nil {
		return fmt.Errorf("write samples: %w", err)
	}
	for i := range x {
		rec := []string{
			strconv.FormatFloat(x[i], 'g', -1, 64),
			strconv.FormatFloat(y[i], 'g', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write samples: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write samples: %w", err)
	}
	return nil
}
