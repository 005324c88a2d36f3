package netxml

import (
	"encoding/xml"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Net is the benchmark document spec.md §6 defines: a square grid size, an
// advisory pin count, and the pin points themselves.
type Net struct {
	XMLName  xml.Name   `xml:"net"`
	GridSize int        `xml:"grid_size,attr"`
	PinCount int        `xml:"pin_count,attr"`
	Points   []NetPoint `xml:"point"`
}

// NetPoint is one `<point type="pin" x=".." y=".."/>` benchmark entry.
type NetPoint struct {
	Type string `xml:"type,attr"`
	X    int    `xml:"x,attr"`
	Y    int    `xml:"y,attr"`
}

// Pins extracts the (x, y) pairs in document order, ready to feed to
// smt.Instance.AddPin.
func (n *Net) Pins() [][2]int {
	pins := make([][2]int, len(n.Points))
	for i, p := range n.Points {
		pins[i] = [2]int{p.X, p.Y}
	}
	return pins
}

// ReadNet decodes a benchmark document from r. If logger is non-nil, it
// warns (but does not fail) when pin_count disagrees with the actual number
// of <point> children — spec.md §6 explicitly says the core does not
// enforce this, so a disagreement here is a malformed-but-tolerated
// benchmark, not a parse error.
func ReadNet(r io.Reader, logger *zap.Logger) (*Net, error) {
	var net Net
	if err := xml.NewDecoder(r).Decode(&net); err != nil {
		return nil, fmt.Errorf("ReadNet: %w", err)
	}

	if logger != nil && net.PinCount != len(net.Points) {
		logger.Warn("pin_count attribute disagrees with <point> child count",
			zap.Int("pin_count", net.PinCount),
			zap.Int("actual_points", len(net.Points)),
		)
	}

	return &net, nil
}
