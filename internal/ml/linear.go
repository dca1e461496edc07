package ml

import "errors"

// LinearRegressor is a plain linear model: intercept plus the dot product of
// coefficients and the input row. Used for the domain-age estimate, which
// takes a 4-feature subvector rather than the full ten.
type LinearRegressor struct {
	coefficients []float64
	intercept    float64
}

func newLinearRegressor(a artifact) (*LinearRegressor, error) {
	if len(a.Coefficients) == 0 {
		return nil, errors.New("linear artifact has no coefficients")
	}
	if a.NumFeatures > 0 && a.NumFeatures != len(a.Coefficients) {
		return nil, errors.New("linear artifact feature count does not match coefficients")
	}
	return &LinearRegressor{coefficients: a.Coefficients, intercept: a.Intercept}, nil
}

func (m *LinearRegressor) Predict(rows [][]float64) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		if err := checkRow(row, len(m.coefficients)); err != nil {
			return nil, err
		}

		sum := m.intercept
		for j, c := range m.coefficients {
			sum += c * row[j]
		}
		out[i] = sum
	}
	return out, nil
}

func (m *LinearRegressor) NumFeatures() int { return len(m.coefficients) }

func (m *LinearRegressor) Kind() string { return KindLinear }
