package geo

import "petra/pkg/types"

// FeatureCollection is a minimal GeoJSON document.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a GeoJSON Point feature.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// Geometry holds [lon, lat] coordinates.
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// ToFeatureCollection converts points to GeoJSON.
func ToFeatureCollection(points []types.DemoPoint) FeatureCollection {
	fc := FeatureCollection{Type: "FeatureCollection", Features: make([]Feature, 0, len(points))}
	for _, p := range points {
		c := FillColor(p.Confidence)
		fc.Features = append(fc.Features, Feature{
			Type:     "Feature",
			Geometry: Geometry{Type: "Point", Coordinates: [2]float64{p.Lon, p.Lat}},
			Properties: map[string]any{
				"name":       p.Name,
				"conf":       p.Confidence,
				"fill_color": []int{int(c[0]), int(c[1]), int(c[2]), int(c[3])},
				"radius_m":   MarkerRadiusMeters,
			},
		})
	}
	return fc
}
