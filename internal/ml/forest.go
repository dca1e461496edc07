package ml

import (
	"errors"
	"fmt"
)

// RandomForest is a bagged set of classification trees decided by majority
// vote. This is the one artifact kind that also stores the per-feature
// importances computed at training time.
type RandomForest struct {
	numFeatures int
	trees       []tree
	importances []float64
}

func newRandomForest(a artifact) (*RandomForest, error) {
	if a.NumFeatures <= 0 {
		return nil, errors.New("artifact declares no feature count")
	}
	if len(a.Trees) == 0 {
		return nil, errors.New("forest artifact has no trees")
	}
	for _, t := range a.Trees {
		if err := t.validate(a.NumFeatures); err != nil {
			return nil, err
		}
	}
	if len(a.FeatureImportances) != 0 && len(a.FeatureImportances) != a.NumFeatures {
		return nil, fmt.Errorf("artifact stores %d importances for %d features",
			len(a.FeatureImportances), a.NumFeatures)
	}
	return &RandomForest{
		numFeatures: a.NumFeatures,
		trees:       a.Trees,
		importances: a.FeatureImportances,
	}, nil
}

func (m *RandomForest) Predict(rows [][]float64) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		if err := checkRow(row, m.numFeatures); err != nil {
			return nil, err
		}

		votes := 0
		for ti := range m.trees {
			v, err := m.trees[ti].value(row)
			if err != nil {
				return nil, err
			}
			if v == 1 {
				votes++
			}
		}
		if votes*2 > len(m.trees) {
			out[i] = 1
		}
	}
	return out, nil
}

func (m *RandomForest) NumFeatures() int { return m.numFeatures }

func (m *RandomForest) Kind() string { return KindRandomForest }

// FeatureImportances returns a copy of the stored importances, or nil when
// the artifact carried none.
func (m *RandomForest) FeatureImportances() []float64 {
	if m.importances == nil {
		return nil
	}
	out := make([]float64, len(m.importances))
	copy(out, m.importances)
	return out
}
