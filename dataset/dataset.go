package dataset

import (
	"cmp"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"

	"github.com/arloliu/hoverline/compress"
	"github.com/arloliu/hoverline/errs"
	"github.com/arloliu/hoverline/format"
	"github.com/arloliu/hoverline/index"
	"github.com/arloliu/hoverline/internal/collision"
	"github.com/arloliu/hoverline/internal/hash"
)

// Dataset is a named collection of series loaded from one file.
type Dataset struct {
	// Name is the base file name without extensions.
	Name string
	// Series are the loaded series in column (or document) order.
	Series []index.Series
}

// Extent is the bounding box of all points of a dataset in data space.
type Extent struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Load reads a data file, decompressing it according to its extension.
//
// Parameters:
//   - path: file path such as "cpu.csv", "cpu.xlsx" or "cpu.yaml.zst"
//
// Returns:
//   - *Dataset: the loaded series
//   - error: errs.ErrUnsupportedFormat for unknown extensions,
//     errs.ErrInvalidDataset for files without any usable series,
//     or the underlying I/O and decode error
func Load(path string) (*Dataset, error) {
	ct, base := compress.FromExtension(path)
	df, ok := format.ParseDatasetFormat(filepath.Ext(base))
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedFormat, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	data, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	series, err := Decode(data, df)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	name := filepath.Base(base)
	name = name[:len(name)-len(filepath.Ext(name))]

	return &Dataset{Name: name, Series: series}, nil
}

// Decode parses uncompressed file content in the given format.
func Decode(data []byte, df format.DatasetFormat) ([]index.Series, error) {
	var (
		series []index.Series
		err    error
	)

	switch df {
	case format.DatasetCSV:
		series, err = DecodeCSV(data)
	case format.DatasetXLSX:
		series, err = DecodeXLSX(data)
	case format.DatasetYAML:
		series, err = DecodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedFormat, df)
	}
	if err != nil {
		return nil, err
	}

	if len(series) == 0 {
		return nil, fmt.Errorf("%w: no series", errs.ErrInvalidDataset)
	}

	names := collision.NewTracker()
	for i := range series {
		if err := names.Track(series[i].Name, hash.ID(series[i].Name)); err != nil {
			return nil, fmt.Errorf("%w: series %q: %w", errs.ErrInvalidDataset, series[i].Name, err)
		}
		sortPoints(series[i].Points)
	}

	return series, nil
}

// Extent returns the bounding box of all points.
// The second return value is false when the dataset has no points.
func (d *Dataset) Extent() (Extent, bool) {
	e := Extent{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	found := false
	for _, s := range d.Series {
		for _, p := range s.Points {
			e.MinX, e.MaxX = min(e.MinX, p.X), max(e.MaxX, p.X)
			e.MinY, e.MaxY = min(e.MinY, p.Y), max(e.MaxY, p.Y)
			found = true
		}
	}
	if !found {
		return Extent{}, false
	}

	return e, true
}

// Names returns the series names in order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.Series))
	for i, s := range d.Series {
		names[i] = s.Name
	}

	return names
}

func sortPoints(points []index.DataPoint) {
	slices.SortStableFunc(points, func(a, b index.DataPoint) int {
		return cmp.Compare(a.X, b.X)
	})
}
