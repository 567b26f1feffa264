// Package content carries the static copy of the dashboard: the project
// overview, the model architecture notes and the validation metrics.
package content

// Tab identifies one dashboard tab.
type Tab struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Tabs lists the dashboard tabs in display order.
var Tabs = []Tab{
	{ID: "intro", Title: "Intro"},
	{ID: "satellite", Title: "Satellite"},
	{ID: "evaluation", Title: "Evaluation"},
	{ID: "test", Title: "Test Model"},
}

// DefaultTab is shown when no tab or an unknown tab is requested.
const DefaultTab = "intro"

// LookupTab resolves id, falling back to DefaultTab.
func LookupTab(id string) Tab {
	for _, t := range Tabs {
		if t.ID == id {
			return t
		}
	}
	return Tabs[0]
}

// Section is a titled block of paragraphs and bullet points.
type Section struct {
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs,omitempty"`
	Bullets    []string `json:"bullets,omitempty"`
}

const (
	Brand    = "Petra"
	Tagline  = "Oil Spill Detection From World Sea"
	Headline = "AI-Powered Oil Spill Detection from Satellite Imagery"
	Subtitle = "Cinematic journey from orbit to ocean"
)

// Overview is the body of the Intro tab.
var Overview = []Section{
	{
		Title: "Overview",
		Paragraphs: []string{
			"Petra (a blend of Petroleum and Terra, meaning Oil + Earth) is a Computer Vision project designed to detect oil spills in our oceans using satellite imagery.",
			"Our mission is to support environmental protection and marine safety through advanced deep learning techniques and real-time monitoring.",
		},
	},
	{
		Title: "Core Idea",
		Bullets: []string{
			"Petra uses Convolutional Neural Networks (CNNs) trained on real SAR and optical satellite images.",
			"The model can detect oil slick patterns across large water surfaces.",
			"It integrates with an inference API backend and this dashboard for real-time monitoring.",
		},
	},
	{
		Title: "Technical Highlights",
		Bullets: []string{
			"Image Preprocessing: images are enhanced, normalized, and resized for CNN input.",
			"Data Augmentation: improves generalization across different lighting, angles, and resolutions.",
			"Model Architecture: multi-layer CNN with convolution, pooling, batch normalization, and dense layers.",
			"Deployment: inference API backend for prediction and a dashboard with a satellite map view.",
		},
	},
	{
		Title: "Why It Matters",
		Bullets: []string{
			"Oil spills threaten marine ecosystems and coastal economies.",
			"Early detection can help authorities react faster and reduce damage.",
			"Petra provides a scalable and automated solution for continuous satellite monitoring.",
		},
	},
	{
		Title: "Future Goals",
		Bullets: []string{
			"Expand dataset with real-time Sentinel-1 SAR imagery",
			"Add geolocation-based detection on global map",
			"Provide API endpoints for integration with maritime authorities",
		},
	},
}

// OverviewHint closes the Intro tab.
const OverviewHint = "Scroll to the next tabs to explore the Satellite demo and run your own predictions."
