package ml

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/kabirajrana/phishing-website-detection/internal/models"
)

// Fixed artifact file names, one per use case. The detector selects models
// by use case only; file layout is a loader concern.
const (
	phishingFile   = "phishing_classifier.json"
	rulesFile      = "rule_classifier.json"
	importanceFile = "importance_classifier.json"
	domainAgeFile  = "domain_age_regressor.json"
)

var bindings = []struct {
	useCase models.UseCase
	file    string
	width   int
}{
	{models.UseCasePhishing, phishingFile, models.FeatureCount},
	{models.UseCaseRules, rulesFile, models.FeatureCount},
	{models.UseCaseImportance, importanceFile, models.FeatureCount},
	{models.UseCaseDomainAge, domainAgeFile, models.DomainAgeFeatureCount},
}

// artifact is the on-disk envelope shared by all model kinds. Unused fields
// stay at their zero values for kinds that do not need them.
type artifact struct {
	Type               string     `json:"type"`
	NumFeatures        int        `json:"num_features"`
	BaseScore          float64    `json:"base_score"`
	Trees              []tree     `json:"trees,omitempty"`
	Nodes              []treeNode `json:"nodes,omitempty"`
	Coefficients       []float64  `json:"coefficients,omitempty"`
	Intercept          float64    `json:"intercept"`
	FeatureImportances []float64  `json:"feature_importances,omitempty"`
}

// Registry holds the four models loaded at startup. It is constructed once,
// never mutated afterwards, and handed to the detector explicitly; there is
// no package-level model state.
type Registry struct {
	byUseCase map[models.UseCase]Model
	files     map[models.UseCase]string
}

// LoadRegistry reads every artifact under dir in parallel. All four files
// must load; a missing or corrupt artifact fails the whole registry, which
// callers treat as fatal at startup.
func LoadRegistry(dir string) (*Registry, error) {
	loaded := make([]Model, len(bindings))

	g := new(errgroup.Group)
	for i, b := range bindings {
		i, b := i, b
		g.Go(func() error {
			m, err := LoadModel(filepath.Join(dir, b.file))
			if err != nil {
				return fmt.Errorf("loading %s model: %w", b.useCase, err)
			}
			if m.NumFeatures() != b.width {
				return fmt.Errorf("loading %s model: artifact takes %d features, binding expects %d",
					b.useCase, m.NumFeatures(), b.width)
			}
			loaded[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := &Registry{
		byUseCase: make(map[models.UseCase]Model, len(bindings)),
		files:     make(map[models.UseCase]string, len(bindings)),
	}
	for i, b := range bindings {
		r.byUseCase[b.useCase] = loaded[i]
		r.files[b.useCase] = b.file
	}
	return r, nil
}

// LoadModel reads and validates a single artifact file.
func LoadModel(path string) (Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	m, err := newModel(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return m, nil
}

func newModel(a artifact) (Model, error) {
	switch a.Type {
	case KindGradientBoosting:
		return newGradientBoosted(a)
	case KindDecisionTree:
		return newDecisionTree(a)
	case KindRandomForest:
		return newRandomForest(a)
	case KindLinear:
		return newLinearRegressor(a)
	default:
		return nil, fmt.Errorf("unknown model type %q", a.Type)
	}
}

// Model returns the model bound to the use case.
func (r *Registry) Model(uc models.UseCase) (Model, bool) {
	m, ok := r.byUseCase[uc]
	return m, ok
}

// Importances returns the stored per-feature importances of the first model
// that carries them, walking use cases in display order.
func (r *Registry) Importances() ([]float64, bool) {
	for _, uc := range models.UseCases {
		provider, ok := r.byUseCase[uc].(ImportanceProvider)
		if !ok {
			continue
		}
		if vals := provider.FeatureImportances(); len(vals) > 0 {
			return vals, true
		}
	}
	return nil, false
}

// Infos describes the loaded models in display order.
func (r *Registry) Infos() []models.ModelInfo {
	infos := make([]models.ModelInfo, 0, len(bindings))
	for _, b := range bindings {
		m := r.byUseCase[b.useCase]
		hasImportances := false
		if provider, ok := m.(ImportanceProvider); ok {
			hasImportances = len(provider.FeatureImportances()) > 0
		}
		infos = append(infos, models.ModelInfo{
			UseCase:        b.useCase,
			Kind:           m.Kind(),
			NumFeatures:    m.NumFeatures(),
			HasImportances: hasImportances,
			File:           b.file,
		})
	}
	return infos
}
