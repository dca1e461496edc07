package ml

import "fmt"

// Artifact kinds understood by the loader.
const (
	KindGradientBoosting = "gradient_boosting"
	KindDecisionTree     = "decision_tree"
	KindRandomForest     = "random_forest"
	KindLinear           = "linear"
)

// Model is the single contract every loaded artifact satisfies: a batch of
// feature rows in, one numeric output per row. Classifiers return the class
// as a float (1 = phishing), the regressor returns the estimate itself.
// Implementations are immutable after construction and safe for concurrent
// reads.
type Model interface {
	Predict(rows [][]float64) ([]float64, error)
	NumFeatures() int
	Kind() string
}

// ImportanceProvider is the optional capability carried by artifacts that
// store per-feature importances. Callers discover it with a type assertion;
// there is no inheritance relationship between model kinds.
type ImportanceProvider interface {
	FeatureImportances() []float64
}

func checkRow(row []float64, want int) error {
	if len(row) != want {
		return fmt.Errorf("row has %d features, model expects %d", len(row), want)
	}
	return nil
}
