package viewer

import (
	"github.com/arloliu/hoverline/dataset"
	"github.com/arloliu/hoverline/geom"
	"github.com/arloliu/hoverline/tooltip"
)

// Probe renders ds off-screen, hovers the exact position of data x and
// returns the resulting tooltip text.
func Probe(ds *dataset.Dataset, dataX float64, cfg Config) (string, error) {
	m, err := New(ds, cfg)
	if err != nil {
		return "", err
	}
	defer m.driver.Close()

	screen := m.surface.ScreenTransform().Apply(geom.Point{X: m.xAxis.ToRenderX(dataX), Y: 0})

	m.driver.PointerEnter()
	m.driver.PointerMove(tooltip.Pointer{X: screen.X, Y: screen.Y})
	m.sched.Flush()

	return m.driver.Tooltip().Text, nil
}
