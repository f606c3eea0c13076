package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/hoverline/errs"
	"github.com/arloliu/hoverline/index"
)

// seriesFromRows converts a header row plus data rows into series.
//
// Column 0 holds x, every other column one series. Rows with an empty x are
// skipped, empty y cells leave a gap. A non-numeric cell is an error
// reporting its 1-based row and column.
func seriesFromRows(rows [][]string) ([]index.Series, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty table", errs.ErrInvalidDataset)
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: need an x column and at least one series column", errs.ErrInvalidDataset)
	}

	series := make([]index.Series, len(header)-1)
	for i, name := range header[1:] {
		name = strings.TrimSpace(name)
		if name == "" {
			name = "series" + strconv.Itoa(i+1)
		}
		series[i] = index.Series{
			Name:   name,
			Points: make([]index.DataPoint, 0, len(rows)-1),
		}
	}

	for r, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		x, err := parseCell(row[0], r+2, 1)
		if err != nil {
			return nil, err
		}

		for c := 1; c < len(row) && c < len(header); c++ {
			if strings.TrimSpace(row[c]) == "" {
				continue
			}
			y, err := parseCell(row[c], r+2, c+1)
			if err != nil {
				return nil, err
			}
			series[c-1].Points = append(series[c-1].Points, index.DataPoint{X: x, Y: y})
		}
	}

	return series, nil
}

func parseCell(s string, row, col int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d column %d: %q is not a number", errs.ErrInvalidDataset, row, col, s)
	}

	return v, nil
}
