package detector

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kabirajrana/phishing-website-detection/internal/features"
	"github.com/kabirajrana/phishing-website-detection/internal/ml"
	"github.com/kabirajrana/phishing-website-detection/internal/models"
)

type registryI interface {
	Model(uc models.UseCase) (ml.Model, bool)
	Importances() ([]float64, bool)
}

type storeI interface {
	Store(sub *models.Submission)
}

type publisherI interface {
	Publish(topic string, msg *models.Submission) bool
}

// Detector runs one submission end to end: input to vector, vector to model,
// model output to a stored and published Submission. Model calls are
// serialized behind a single mutex, so submissions get total order and the
// models never see concurrent Predict calls.
type Detector struct {
	mu        sync.Mutex
	registry  registryI
	extractor *features.Extractor
	store     storeI
	events    publisherI
	rng       *rand.Rand
}

func NewDetector(registry registryI, store storeI, events publisherI) *Detector {
	return &Detector{
		registry:  registry,
		extractor: features.NewExtractor(),
		store:     store,
		events:    events,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// AnalyzeURL extracts a feature vector from the raw URL and runs it through
// the model bound to the use case.
func (d *Detector) AnalyzeURL(rawURL string, useCase models.UseCase) (*models.Submission, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, &models.ValidationError{Reason: "url must not be empty"}
	}

	vector, err := d.extractor.Extract(trimmed)
	if err != nil {
		return nil, err
	}
	return d.run(useCase, models.InputURL, trimmed, vector)
}

// AnalyzeManual runs a caller-assembled feature vector through the model
// bound to the use case. The vector is taken as given; no URL is involved.
func (d *Detector) AnalyzeManual(vector models.FeatureVector, useCase models.UseCase) (*models.Submission, error) {
	return d.run(useCase, models.InputManual, "", vector)
}

func (d *Detector) run(useCase models.UseCase, input, url string, vector models.FeatureVector) (*models.Submission, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	model, ok := d.registry.Model(useCase)
	if !ok {
		return nil, &models.ValidationError{Reason: fmt.Sprintf("unknown use case %q", useCase)}
	}

	row := vector.Values()
	if useCase == models.UseCaseDomainAge {
		row = vector.DomainAgeInputs()
	}

	out, err := model.Predict([][]float64{row})
	if err != nil {
		return nil, &models.PredictionError{UseCase: useCase, Err: err}
	}
	if len(out) != 1 {
		return nil, &models.PredictionError{
			UseCase: useCase,
			Err:     fmt.Errorf("model returned %d outputs for one row", len(out)),
		}
	}

	prediction := models.Prediction{UseCase: useCase, RawOutput: out[0]}
	if useCase == models.UseCaseDomainAge {
		value := out[0]
		prediction.Value = &value
	} else if out[0] == 1 {
		prediction.Label = models.LabelPhishing
	} else {
		prediction.Label = models.LabelLegitimate
	}

	sub := &models.Submission{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		Input:         input,
		URL:           url,
		Features:      vector,
		Prediction:    prediction,
		Contributions: d.contributions(),
	}

	d.store.Store(sub)
	d.events.Publish(models.SubmissionTopic, sub)
	return sub, nil
}

// contributions fakes the per-feature contribution series shown under each
// prediction. Values are uniform in [-1, 1) and redrawn every submission;
// only the importance ranking is real model output.
func (d *Detector) contributions() []models.SeriesEntry {
	entries := make([]models.SeriesEntry, len(models.FeatureNames))
	for i, name := range models.FeatureNames {
		entries[i] = models.SeriesEntry{Feature: name, Value: d.rng.Float64()*2 - 1}
	}
	return entries
}

// ImportanceRanking pairs the stored per-feature importances with their
// feature names, highest first. Same input, same ranking; nothing here is
// mocked.
func (d *Detector) ImportanceRanking() ([]models.SeriesEntry, error) {
	vals, ok := d.registry.Importances()
	if !ok {
		return nil, &models.PredictionError{
			UseCase: models.UseCaseImportance,
			Err:     errors.New("no loaded model stores feature importances"),
		}
	}

	entries := make([]models.SeriesEntry, len(vals))
	for i, v := range vals {
		entries[i] = models.SeriesEntry{Feature: models.FeatureNames[i], Value: v}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Value > entries[j].Value })
	return entries, nil
}
