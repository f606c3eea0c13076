// Package errs defines the sentinel errors returned by hoverline packages.
//
// Callers should compare with errors.Is since most errors are wrapped with
// additional context before being returned.
package errs

import "errors"

// Configuration errors.
var (
	// ErrUnknownMergePolicy is returned when a merge policy name is not one of
	// left, right, nearest or interpolate.
	ErrUnknownMergePolicy = errors.New("unknown merge policy")
	// ErrNilMergeFunc is returned when a custom merge function is nil.
	ErrNilMergeFunc = errors.New("merge function is nil")
	// ErrNilDisplayFunc is returned when a display function is nil.
	ErrNilDisplayFunc = errors.New("display function is nil")
	// ErrNilFormatter is returned when a value or name formatter is nil.
	ErrNilFormatter = errors.New("formatter is nil")
	// ErrNilHost is returned when a driver is created without a host surface.
	ErrNilHost = errors.New("host surface is nil")
	// ErrNilScheduler is returned when a driver is created without a frame scheduler.
	ErrNilScheduler = errors.New("frame scheduler is nil")
	// ErrInvalidConfig is returned when a configuration file can't be applied.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Geometry errors.
var (
	// ErrZeroAxisRange is returned when an axis has max == min, or a non-finite range.
	ErrZeroAxisRange = errors.New("axis range is zero")
	// ErrInvalidAxisLength is returned when an axis render length is negative or non-finite.
	ErrInvalidAxisLength = errors.New("invalid axis render length")
	// ErrSingularTransform is returned when a screen transform can't be inverted.
	ErrSingularTransform = errors.New("screen transform is not invertible")
)

// Dataset errors.
var (
	// ErrUnsupportedFormat is returned for data files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	// ErrInvalidDataset is returned when a data file has no usable series.
	ErrInvalidDataset = errors.New("invalid dataset")
	// ErrDuplicateSeries is returned when two series share a name.
	ErrDuplicateSeries = errors.New("duplicate series name")
	// ErrInvalidSeriesName is returned when a series name is empty.
	ErrInvalidSeriesName = errors.New("invalid series name")
)
