// Package geo holds the static demo detections shown on the satellite map.
package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"petra/pkg/types"
)

var demoPoints = []types.DemoPoint{
	{Name: "Detection #1", Lat: 26.315, Lon: 50.103, Confidence: 0.91},
	{Name: "Detection #2", Lat: 26.420, Lon: 49.978, Confidence: 0.78},
	{Name: "Detection #3", Lat: 26.230, Lon: 50.205, Confidence: 0.62},
}

// DefaultView centers the map over the demo points in the Arabian Gulf.
var DefaultView = types.ViewState{Lat: 26.35, Lon: 50.05, Zoom: 6.5, Pitch: 30, Bearing: 0}

// MarkerRadiusMeters is the drawn radius of each detection marker.
const MarkerRadiusMeters = 2500

// DemoPoints returns a copy of the hardcoded detections.
func DemoPoints() []types.DemoPoint {
	out := make([]types.DemoPoint, len(demoPoints))
	copy(out, demoPoints)
	return out
}

// FillColor shades a marker from red (low confidence) to green (high).
func FillColor(conf float64) [4]uint8 {
	c := math.Max(0, math.Min(1, conf))
	return [4]uint8{uint8(math.Round(255 * (1 - c))), uint8(math.Round(255 * c)), 30, 200}
}

// CSSColor renders FillColor as an rgba() value.
func CSSColor(conf float64) string {
	c := FillColor(conf)
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", c[0], c[1], c[2], float64(c[3])/255)
}

// FormatCoordinates lists one "(lat, lon)  conf=x" line per point.
func FormatCoordinates(points []types.DemoPoint) string {
	lines := make([]string, 0, len(points))
	for _, p := range points {
		lines = append(lines, fmt.Sprintf("(%s, %s)  conf=%s", num(p.Lat), num(p.Lon), num(p.Confidence)))
	}
	return strings.Join(lines, "\n")
}

// num prints the shortest decimal form, keeping at least one fractional digit.
func num(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
