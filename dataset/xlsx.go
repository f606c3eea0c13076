package dataset

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/arloliu/hoverline/errs"
	"github.com/arloliu/hoverline/index"
)

// DecodeXLSX parses the first sheet of an Excel workbook.
func DecodeXLSX(data []byte) ([]index.Series, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidDataset, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", errs.ErrInvalidDataset)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %w", errs.ErrInvalidDataset, sheets[0], err)
	}

	return seriesFromRows(rows)
}
