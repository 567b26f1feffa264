package content

// Layer describes one stage of the CNN.
type Layer struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Example is a labelled training image served from the assets directory.
type Example struct {
	Label   string `json:"label"`
	Asset   string `json:"asset"`
	Caption string `json:"caption"`
}

// Metric is a named validation score.
type Metric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Evaluation is the body of the Evaluation tab.
type Evaluation struct {
	Architecture []Layer   `json:"architecture"`
	TrainingNote string    `json:"training_note"`
	Examples     []Example `json:"examples"`
	Metrics      []Metric  `json:"metrics"`
	Summary      string    `json:"summary"`
	Highlight    string    `json:"highlight"`
}

// ModelEvaluation returns a fresh copy of the evaluation copy.
func ModelEvaluation() Evaluation {
	return Evaluation{
		Architecture: []Layer{
			{"Input Layer", "Accepts RGB satellite images (resized to 128x128 pixels)."},
			{"Convolution Layers", "Extract spatial features using 3x3 kernels and ReLU activation."},
			{"Pooling Layers (MaxPooling)", "Reduce spatial dimensions to focus on the most important patterns."},
			{"Batch Normalization + Dropout", "Improve training stability and prevent overfitting."},
			{"Flatten + Dense Layers", "Combine extracted features and learn class-specific patterns."},
			{"Output Layer (Sigmoid)", "Outputs a probability between 0 (clean sea) and 1 (oil spill)."},
		},
		TrainingNote: "This model was trained on real satellite images labeled manually as Oil Spill or Gas Spill.",
		Examples: []Example{
			{Label: "Real Oil Spill", Asset: "oil_1.jpg", Caption: "Oil Spill Example 1"},
			{Label: "Train Oil Spill", Asset: "train_oil.jpg", Caption: "Oil Spill Training Example"},
			{Label: "Gas Spill", Asset: "gas_1.jpg", Caption: "Gas Spill Example 1"},
			{Label: "Train Gas Spill", Asset: "train_gas.jpg", Caption: "Gas Spill Training Example"},
		},
		Metrics: []Metric{
			{"Accuracy", 0.93},
			{"Precision", 0.91},
			{"Recall", 0.89},
			{"F1-score", 0.90},
			{"Loss", 0.18},
		},
		Summary:   "These metrics show that Petra performs reliably in identifying oil spill patterns while minimizing false positives on clean ocean images.",
		Highlight: "Petra achieved over 93% accuracy distinguishing oil spills from clean sea surfaces.",
	}
}

// Shell assets referenced by the page layout and splash.
const (
	BackgroundAsset = "background.png"
	SplashVideo     = "earth_zoom.mp4"
)

// AssetNames lists every file the pages load from the assets directory.
func AssetNames() []string {
	names := []string{BackgroundAsset, SplashVideo}
	for _, ex := range ModelEvaluation().Examples {
		names = append(names, ex.Asset)
	}
	return names
}
