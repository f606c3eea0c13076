// Package config reads the hoverline command line configuration file.
//
// The file is YAML. Every key is optional:
//
//	logLevel: debug
//	tooltip:
//	  offset: {x: 0, y: -1}
//	  mergeFnc: interpolate
//	  highlightPoint: true
//	  markerY: true
//	  followMaxLine: false
//	  precision: 2
//	  classes:
//	    tooltip: tip
//	    marker: cross
//	    highlight: hit
//	view:
//	  width: 100
//	  height: 24
//	  fps: 30
//	export:
//	  compression: zstd
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/hoverline/errs"
	"github.com/arloliu/hoverline/format"
	"github.com/arloliu/hoverline/tooltip"
)

const (
	DefaultWidth     = 80
	DefaultHeight    = 20
	DefaultFrameRate = 30
	maxFrameRate     = 240
)

// File is the parsed configuration file.
type File struct {
	LogLevel string  `yaml:"logLevel"`
	Tooltip  Tooltip `yaml:"tooltip"`
	View     View    `yaml:"view"`
	Export   Export  `yaml:"export"`
}

// Tooltip configures the tooltip driver.
type Tooltip struct {
	Offset         *Offset `yaml:"offset"`
	MergeFnc       string  `yaml:"mergeFnc"`
	HighlightPoint *bool   `yaml:"highlightPoint"`
	MarkerY        bool    `yaml:"markerY"`
	FollowMaxLine  bool    `yaml:"followMaxLine"`
	// Precision is the number of decimals of y values, -1 for shortest.
	Precision *int    `yaml:"precision"`
	Classes   Classes `yaml:"classes"`
}

// Offset is the tooltip offset from the pointer.
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Classes are the style class names of the tooltip parts.
type Classes struct {
	Tooltip   string `yaml:"tooltip"`
	Marker    string `yaml:"marker"`
	Highlight string `yaml:"highlight"`
}

// View configures the interactive terminal view.
type View struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// Export configures dataset export.
type Export struct {
	Compression string `yaml:"compression"`
}

// Default returns the configuration used when no file is given.
func Default() *File {
	return &File{
		LogLevel: "info",
		View: View{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFrameRate,
		},
		Export: Export{Compression: "zstd"},
	}
}

// Load reads and validates a configuration file.
// An empty path returns Default().
func Load(path string) (*File, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes configuration content over the defaults and validates it.
//
// Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges and names.
func (f *File) Validate() error {
	var errList []error

	if _, err := f.Level(); err != nil {
		errList = append(errList, err)
	}
	if f.Tooltip.MergeFnc != "" {
		if _, ok := format.ParseMergeType(f.Tooltip.MergeFnc); !ok {
			errList = append(errList, fmt.Errorf("%w: tooltip.mergeFnc: %w %q",
				errs.ErrInvalidConfig, errs.ErrUnknownMergePolicy, f.Tooltip.MergeFnc))
		}
	}
	if p := f.Tooltip.Precision; p != nil && (*p < -1 || *p > 17) {
		errList = append(errList, fmt.Errorf("%w: tooltip.precision %d out of range [-1, 17]", errs.ErrInvalidConfig, *p))
	}
	if f.View.Width <= 0 || f.View.Height <= 0 {
		errList = append(errList, fmt.Errorf("%w: view size %dx%d must be positive", errs.ErrInvalidConfig, f.View.Width, f.View.Height))
	}
	if f.View.FPS <= 0 || f.View.FPS > maxFrameRate {
		errList = append(errList, fmt.Errorf("%w: view.fps %d out of range [1, %d]", errs.ErrInvalidConfig, f.View.FPS, maxFrameRate))
	}
	if _, err := f.Compression(); err != nil {
		errList = append(errList, err)
	}

	return errors.Join(errList...)
}

// Level returns the parsed log level.
func (f *File) Level() (slog.Level, error) {
	var level slog.Level
	if f.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(f.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: logLevel: %w", errs.ErrInvalidConfig, err)
	}

	return level, nil
}

// Compression returns the export compression type.
func (f *File) Compression() (format.CompressionType, error) {
	ct, ok := format.ParseCompressionType(f.Export.Compression)
	if !ok {
		return 0, fmt.Errorf("%w: export.compression: %w %q",
			errs.ErrInvalidConfig, errs.ErrUnsupportedCompression, f.Export.Compression)
	}

	return ct, nil
}

// Options converts the tooltip section into driver options.
//
// Settings left out of the file produce no option, so the driver defaults
// apply.
func (t Tooltip) Options() []tooltip.Option {
	var opts []tooltip.Option

	if t.Offset != nil {
		opts = append(opts, tooltip.WithTooltipOffset(t.Offset.X, t.Offset.Y))
	}
	if t.MergeFnc != "" {
		opts = append(opts, tooltip.WithMergeName(t.MergeFnc))
	}
	if t.HighlightPoint != nil {
		opts = append(opts, tooltip.WithHighlightPoint(*t.HighlightPoint))
	}
	if t.MarkerY {
		opts = append(opts, tooltip.WithMarkerY(true))
	}
	if t.FollowMaxLine {
		opts = append(opts, tooltip.WithFollowMaxLine(true))
	}
	if t.Precision != nil {
		prec := *t.Precision
		opts = append(opts, tooltip.WithFormatY(func(v float64) string {
			return strconv.FormatFloat(v, 'f', prec, 64)
		}))
	}
	opts = append(opts, tooltip.WithClasses(t.Classes.Tooltip, t.Classes.Marker, t.Classes.Highlight))

	return opts
}
