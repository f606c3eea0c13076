package dataset

import (
	"cmp"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/arloliu/hoverline/compress"
	"github.com/arloliu/hoverline/format"
	"github.com/arloliu/hoverline/index"
	"github.com/arloliu/hoverline/internal/pool"
)

// EncodeCSV writes series as a CSV table to w.
//
// Rows are the sorted union of all x values. A series without a point at a
// row's x gets an empty cell.
func EncodeCSV(w io.Writer, series []index.Series) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(series)+1)
	header = append(header, "x")
	for _, s := range series {
		header = append(header, s.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	lookup := make([]map[float64]float64, len(series))
	var xs []float64
	for i, s := range series {
		lookup[i] = make(map[float64]float64, len(s.Points))
		for _, p := range s.Points {
			if _, dup := lookup[i][p.X]; !dup {
				xs = append(xs, p.X)
			}
			lookup[i][p.X] = p.Y
		}
	}
	slices.SortFunc(xs, cmp.Compare[float64])
	xs = slices.Compact(xs)

	row := make([]string, len(series)+1)
	for _, x := range xs {
		row[0] = formatValue(x)
		for i := range series {
			if y, ok := lookup[i][x]; ok {
				row[i+1] = formatValue(y)
			} else {
				row[i+1] = ""
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// Export writes series as CSV compressed with ct.
//
// The CSV table is assembled in a pooled buffer and compressed in one piece.
func Export(w io.Writer, series []index.Series, ct format.CompressionType) error {
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return err
	}

	buf := pool.GetExportBuffer()
	defer pool.PutExportBuffer(buf)

	if err := EncodeCSV(buf, series); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}

	packed, err := codec.Compress(buf.Bytes())
	if err != nil {
		return fmt.Errorf("compress %s: %w", ct, err)
	}

	_, err = w.Write(packed)

	return err
}

// ExportName returns the file name Export output should be stored under.
func ExportName(name string, ct format.CompressionType) string {
	return name + ".csv" + compress.Extension(ct)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
