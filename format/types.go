package format

import "strings"

type (
	MergeType       uint8
	State           uint8
	CompressionType uint8
	DatasetFormat   uint8
)

const (
	MergeLeft        MergeType = 0x1 // MergeLeft reports the left point of a bracketing pair.
	MergeRight       MergeType = 0x2 // MergeRight reports the right point of a bracketing pair.
	MergeNearest     MergeType = 0x3 // MergeNearest reports the point closest to the query x.
	MergeInterpolate MergeType = 0x4 // MergeInterpolate synthesizes a linearly interpolated point.

	StateIdle   State = 0x0 // StateIdle means the pointer is outside the chart.
	StateArmed  State = 0x1 // StateArmed means the pointer is inside but the chart isn't rendered yet.
	StateActive State = 0x2 // StateActive means the tooltip is visible and tracking.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	DatasetCSV  DatasetFormat = 0x1 // DatasetCSV is comma separated text with a header row.
	DatasetXLSX DatasetFormat = 0x2 // DatasetXLSX is an Excel workbook, first sheet.
	DatasetYAML DatasetFormat = 0x3 // DatasetYAML is a YAML document listing named series.
)

func (m MergeType) String() string {
	switch m {
	case MergeLeft:
		return "left"
	case MergeRight:
		return "right"
	case MergeNearest:
		return "nearest"
	case MergeInterpolate:
		return "interpolate"
	default:
		return "unknown"
	}
}

// ParseMergeType returns the merge type for a policy name.
// The second return value is false for unknown names.
func ParseMergeType(name string) (MergeType, bool) {
	switch name {
	case "left":
		return MergeLeft, true
	case "right":
		return MergeRight, true
	case "nearest":
		return MergeNearest, true
	case "interpolate":
		return MergeInterpolate, true
	default:
		return 0, false
	}
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateArmed:
		return "Armed"
	case StateActive:
		return "Active"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType returns the compression type for a lower-case name
// ("none", "zstd", "s2", "lz4").
func ParseCompressionType(name string) (CompressionType, bool) {
	switch name {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

func (f DatasetFormat) String() string {
	switch f {
	case DatasetCSV:
		return "CSV"
	case DatasetXLSX:
		return "XLSX"
	case DatasetYAML:
		return "YAML"
	default:
		return "Unknown"
	}
}

// ParseDatasetFormat returns the dataset format for a file extension,
// with or without the leading dot. Matching is case-insensitive.
func ParseDatasetFormat(ext string) (DatasetFormat, bool) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "csv":
		return DatasetCSV, true
	case "xlsx":
		return DatasetXLSX, true
	case "yaml", "yml":
		return DatasetYAML, true
	default:
		return 0, false
	}
}
