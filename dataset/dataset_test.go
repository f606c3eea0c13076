package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/arloliu/hoverline/compress"
	"github.com/arloliu/hoverline/errs"
	"github.com/arloliu/hoverline/format"
	"github.com/arloliu/hoverline/index"
)

const sampleCSV = `x,cpu,mem
# sampled every 10s
0,10,50
10,20,40
20,,30
30,40,20
`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func requireSample(t *testing.T, series []index.Series) {
	t.Helper()

	require.Len(t, series, 2)
	require.Equal(t, "cpu", series[0].Name)
	require.Equal(t, []index.DataPoint{{X: 0, Y: 10}, {X: 10, Y: 20}, {X: 30, Y: 40}}, series[0].Points)
	require.Equal(t, "mem", series[1].Name)
	require.Len(t, series[1].Points, 4)
}

// ==============================================================================
// Decoding
// ==============================================================================

func TestDecodeCSV(t *testing.T) {
	series, err := DecodeCSV([]byte(sampleCSV))
	require.NoError(t, err)
	requireSample(t, series)
}

func TestDecodeCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"x only", "x\n1\n"},
		{"bad number", "x,cpu\n1,abc\n"},
		{"bad x", "x,cpu\nfoo,1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCSV([]byte(tt.data))
			require.ErrorIs(t, err, errs.ErrInvalidDataset)
		})
	}
}

func TestDecodeCSV_UnnamedColumn(t *testing.T) {
	series, err := DecodeCSV([]byte("x,,mem\n1,2,3\n"))
	require.NoError(t, err)
	require.Equal(t, "series1", series[0].Name)
	require.Equal(t, "mem", series[1].Name)
}

func TestDecodeXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"x", "cpu", "mem"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{0, 10, 50}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{10, 20, 40}))
	require.NoError(t, f.SetCellValue(sheet, "A4", 20))
	require.NoError(t, f.SetCellValue(sheet, "C4", 30))
	require.NoError(t, f.SetSheetRow(sheet, "A5", &[]any{30, 40, 20}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	series, err := DecodeXLSX(buf.Bytes())
	require.NoError(t, err)
	requireSample(t, series)
}

func TestDecodeXLSX_NotAWorkbook(t *testing.T) {
	_, err := DecodeXLSX([]byte(sampleCSV))
	require.ErrorIs(t, err, errs.ErrInvalidDataset)
}

func TestDecodeYAML(t *testing.T) {
	doc := `
series:
  - name: cpu
    points: [[10, 20], [0, 10], [30, 40]]
  - name: mem
    points: [[0, 50], [10, 40], [20, 30], [30, 20]]
`
	series, err := Decode([]byte(doc), format.DatasetYAML)
	require.NoError(t, err)
	requireSample(t, series)
}

func TestDecodeYAML_Errors(t *testing.T) {
	_, err := DecodeYAML([]byte("series:\n  - points: [[1, 2]]\n"))
	require.ErrorIs(t, err, errs.ErrInvalidDataset)

	_, err = DecodeYAML([]byte("series:\n  - name: a\n    points: [[1, 2, 3]]\n"))
	require.ErrorIs(t, err, errs.ErrInvalidDataset)

	_, err = DecodeYAML([]byte("series: [unterminated"))
	require.ErrorIs(t, err, errs.ErrInvalidDataset)
}

func TestDecode_DuplicateSeries(t *testing.T) {
	_, err := Decode([]byte("x,cpu,cpu\n1,2,3\n"), format.DatasetCSV)
	require.ErrorIs(t, err, errs.ErrInvalidDataset)
	require.ErrorIs(t, err, errs.ErrDuplicateSeries)
}

func TestDecode_NoSeries(t *testing.T) {
	_, err := Decode([]byte("series: []\n"), format.DatasetYAML)
	require.ErrorIs(t, err, errs.ErrInvalidDataset)

	_, err = Decode(nil, format.DatasetFormat(0))
	require.ErrorIs(t, err, errs.ErrUnsupportedFormat)
}

// ==============================================================================
// Loading from files
// ==============================================================================

func TestLoad_Compressed(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := compress.GetCodec(ct)
			require.NoError(t, err)

			packed, err := codec.Compress([]byte(sampleCSV))
			require.NoError(t, err)

			path := writeFile(t, "host1.csv"+compress.Extension(ct), packed)
			ds, err := Load(path)
			require.NoError(t, err)
			require.Equal(t, "host1", ds.Name)
			requireSample(t, ds.Series)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeFile(t, "data.json", []byte("{}")))
	require.ErrorIs(t, err, errs.ErrUnsupportedFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "broken.csv.zst", []byte("not zstd")))
	require.Error(t, err)
}

func TestDataset_Extent(t *testing.T) {
	series, err := DecodeCSV([]byte(sampleCSV))
	require.NoError(t, err)

	ds := &Dataset{Series: series}
	e, ok := ds.Extent()
	require.True(t, ok)
	require.Equal(t, Extent{MinX: 0, MaxX: 30, MinY: 10, MaxY: 50}, e)
	require.Equal(t, []string{"cpu", "mem"}, ds.Names())

	_, ok = (&Dataset{Series: []index.Series{{Name: "empty"}}}).Extent()
	require.False(t, ok)
}

// ==============================================================================
// Export
// ==============================================================================

func TestEncodeCSV_UnionOfX(t *testing.T) {
	series := []index.Series{
		{Name: "a", Points: []index.DataPoint{{X: 0, Y: 1}, {X: 2, Y: 3}}},
		{Name: "b", Points: []index.DataPoint{{X: 1, Y: 0.5}, {X: 2, Y: 4}}},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, series))
	require.Equal(t, "x,a,b\n0,1,\n1,,0.5\n2,3,4\n", buf.String())
}

func TestExport_RoundTrip(t *testing.T) {
	series, err := DecodeCSV([]byte(sampleCSV))
	require.NoError(t, err)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Export(&buf, series, ct))

			path := writeFile(t, ExportName("host1", ct), buf.Bytes())
			ds, err := Load(path)
			require.NoError(t, err)
			require.Equal(t, series, ds.Series)
		})
	}
}

func TestExport_UnknownCompression(t *testing.T) {
	var buf bytes.Buffer
	err := Export(&buf, nil, format.CompressionType(42))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestEncodeYAML_RoundTrip(t *testing.T) {
	series, err := DecodeCSV([]byte(sampleCSV))
	require.NoError(t, err)

	data, err := EncodeYAML(series)
	require.NoError(t, err)

	back, err := Decode(data, format.DatasetYAML)
	require.NoError(t, err)
	require.Equal(t, series, back)
}
