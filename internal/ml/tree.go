package ml

import (
	"errors"
	"fmt"
)

// treeNode is one node of a stored decision tree. Interior nodes route on a
// feature index against a threshold; leaves carry a value (a class for
// classifiers, a log-odds increment for boosted ensembles).
type treeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Leaf      bool    `json:"leaf,omitempty"`
	Value     float64 `json:"value"`
}

// tree is a flat node array; index 0 is the root.
type tree struct {
	Nodes []treeNode `json:"nodes"`
}

// value walks the tree for one row. Goes left when the feature value is at
// or below the threshold. Bounds and step counts are checked so a corrupt
// artifact surfaces as an error instead of a panic or an endless walk.
func (t *tree) value(row []float64) (float64, error) {
	if len(t.Nodes) == 0 {
		return 0, errors.New("tree has no nodes")
	}

	i := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		n := t.Nodes[i]
		if n.Leaf {
			return n.Value, nil
		}
		if n.Feature < 0 || n.Feature >= len(row) {
			return 0, fmt.Errorf("node %d splits on feature %d, row has %d", i, n.Feature, len(row))
		}

		if row[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
		if i < 0 || i >= len(t.Nodes) {
			return 0, fmt.Errorf("node index %d out of range", i)
		}
	}
	return 0, errors.New("tree walk exceeded node count without reaching a leaf")
}

// validate checks structural sanity against the declared feature width.
func (t *tree) validate(numFeatures int) error {
	if len(t.Nodes) == 0 {
		return errors.New("tree has no nodes")
	}
	for i, n := range t.Nodes {
		if n.Leaf {
			continue
		}
		if n.Feature < 0 || n.Feature >= numFeatures {
			return fmt.Errorf("node %d splits on feature %d, artifact declares %d features", i, n.Feature, numFeatures)
		}
		if n.Left < 0 || n.Left >= len(t.Nodes) || n.Right < 0 || n.Right >= len(t.Nodes) {
			return fmt.Errorf("node %d has child index out of range", i)
		}
	}
	return nil
}

// DecisionTree is a single stored classification tree. Its leaves hold the
// predicted class directly, which keeps the artifact readable as a rule set.
type DecisionTree struct {
	numFeatures int
	root        tree
}

func newDecisionTree(a artifact) (*DecisionTree, error) {
	if a.NumFeatures <= 0 {
		return nil, errors.New("artifact declares no feature count")
	}
	root := tree{Nodes: a.Nodes}
	if err := root.validate(a.NumFeatures); err != nil {
		return nil, err
	}
	return &DecisionTree{numFeatures: a.NumFeatures, root: root}, nil
}

func (m *DecisionTree) Predict(rows [][]float64) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		if err := checkRow(row, m.numFeatures); err != nil {
			return nil, err
		}
		v, err := m.root.value(row)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (m *DecisionTree) NumFeatures() int { return m.numFeatures }

func (m *DecisionTree) Kind() string { return KindDecisionTree }
