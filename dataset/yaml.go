package dataset

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/hoverline/errs"
	"github.com/arloliu/hoverline/index"
)

// yamlDocument is the YAML dataset layout:
//
//	series:
//	  - name: cpu
//	    points: [[0, 10], [10, 20]]
type yamlDocument struct {
	Series []yamlSeries `yaml:"series"`
}

type yamlSeries struct {
	Name   string      `yaml:"name"`
	Points [][]float64 `yaml:"points"`
}

// DecodeYAML parses a YAML dataset document.
func DecodeYAML(data []byte) ([]index.Series, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidDataset, err)
	}

	series := make([]index.Series, 0, len(doc.Series))
	for i, ys := range doc.Series {
		if ys.Name == "" {
			return nil, fmt.Errorf("%w: series %d has no name", errs.ErrInvalidDataset, i)
		}

		points := make([]index.DataPoint, len(ys.Points))
		for j, p := range ys.Points {
			if len(p) != 2 {
				return nil, fmt.Errorf("%w: series %q point %d: want [x, y], got %d values",
					errs.ErrInvalidDataset, ys.Name, j, len(p))
			}
			points[j] = index.DataPoint{X: p[0], Y: p[1]}
		}
		series = append(series, index.Series{Name: ys.Name, Points: points})
	}

	return series, nil
}

// EncodeYAML renders series in the YAML dataset layout.
func EncodeYAML(series []index.Series) ([]byte, error) {
	doc := yamlDocument{Series: make([]yamlSeries, len(series))}
	for i, s := range series {
		points := make([][]float64, len(s.Points))
		for j, p := range s.Points {
			points[j] = []float64{p.X, p.Y}
		}
		doc.Series[i] = yamlSeries{Name: s.Name, Points: points}
	}

	return yaml.Marshal(&doc)
}
