package ml

import (
	"errors"
	"math"
)

// GradientBoosted is a boosted tree ensemble in the usual binary-logistic
// form: leaf values are log-odds increments summed over all trees on top of
// the base score, squashed through a sigmoid. Predict returns the class, not
// the probability, matching the single predict contract of the artifacts.
type GradientBoosted struct {
	numFeatures int
	baseScore   float64
	trees       []tree
}

func newGradientBoosted(a artifact) (*GradientBoosted, error) {
	if a.NumFeatures <= 0 {
		return nil, errors.New("artifact declares no feature count")
	}
	if len(a.Trees) == 0 {
		return nil, errors.New("ensemble artifact has no trees")
	}
	for _, t := range a.Trees {
		if err := t.validate(a.NumFeatures); err != nil {
			return nil, err
		}
	}
	return &GradientBoosted{
		numFeatures: a.NumFeatures,
		baseScore:   a.BaseScore,
		trees:       a.Trees,
	}, nil
}

func (m *GradientBoosted) Predict(rows [][]float64) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		if err := checkRow(row, m.numFeatures); err != nil {
			return nil, err
		}

		logOdds := m.baseScore
		for ti := range m.trees {
			v, err := m.trees[ti].value(row)
			if err != nil {
				return nil, err
			}
			logOdds += v
		}

		prob := 1.0 / (1.0 + math.Exp(-logOdds))
		if prob >= 0.5 {
			out[i] = 1
		}
	}
	return out, nil
}

func (m *GradientBoosted) NumFeatures() int { return m.numFeatures }

func (m *GradientBoosted) Kind() string { return KindGradientBoosting }
