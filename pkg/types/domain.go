package types

// DemoPoint is a hardcoded map marker used to illustrate detections.
// It is not derived from any real detection run.
type DemoPoint struct {
	// Display name shown in the map tooltip.
	// example: Detection #1
	Name string `json:"name" example:"Detection #1"`
	// Latitude in decimal degrees.
	// example: 26.315
	Lat float64 `json:"lat" example:"26.315"`
	// Longitude in decimal degrees.
	// example: 50.103
	Lon float64 `json:"lon" example:"50.103"`
	// Confidence of the illustrated detection in [0,1].
	// example: 0.91
	Confidence float64 `json:"conf" example:"0.91"`
}

// ViewState is the initial camera of the satellite map.
type ViewState struct {
	Lat     float64 `json:"latitude" example:"26.35"`
	Lon     float64 `json:"longitude" example:"50.05"`
	Zoom    float64 `json:"zoom" example:"6.5"`
	Pitch   float64 `json:"pitch" example:"30"`
	Bearing float64 `json:"bearing" example:"0"`
}
