package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/arloliu/hoverline/errs"
	"github.com/arloliu/hoverline/index"
)

// DecodeCSV parses CSV content with a header row.
func DecodeCSV(data []byte) ([]index.Series, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comment = '#'

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidDataset, err)
	}

	return seriesFromRows(rows)
}
