package detector

import (
	"errors"
	"math"
	"math/rand"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/kabirajrana/phishing-website-detection/internal/features"
	"github.com/kabirajrana/phishing-website-detection/internal/ml"
	"github.com/kabirajrana/phishing-website-detection/internal/models"
)

type fakeModel struct {
	out  []float64
	err  error
	rows [][]float64
}

func (f *fakeModel) Predict(rows [][]float64) ([]float64, error) {
	f.rows = append(f.rows, rows...)
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func (f *fakeModel) NumFeatures() int { return models.FeatureCount }
func (f *fakeModel) Kind() string     { return "fake" }

type fakeRegistry struct {
	models      map[models.UseCase]ml.Model
	importances []float64
}

func (f *fakeRegistry) Model(uc models.UseCase) (ml.Model, bool) {
	m, ok := f.models[uc]
	return m, ok
}

func (f *fakeRegistry) Importances() ([]float64, bool) {
	if f.importances == nil {
		return nil, false
	}
	return f.importances, true
}

type fakeStore struct {
	stored []*models.Submission
}

func (f *fakeStore) Store(sub *models.Submission) {
	f.stored = append(f.stored, sub)
}

type fakePublisher struct {
	topics    []string
	published []*models.Submission
}

func (f *fakePublisher) Publish(topic string, msg *models.Submission) bool {
	f.topics = append(f.topics, topic)
	f.published = append(f.published, msg)
	return true
}

func newTestDetector(m ml.Model) (*Detector, *fakeStore, *fakePublisher) {
	registry := &fakeRegistry{models: map[models.UseCase]ml.Model{
		models.UseCasePhishing:  m,
		models.UseCaseRules:     m,
		models.UseCaseDomainAge: m,
	}}
	store := &fakeStore{}
	events := &fakePublisher{}
	return NewDetector(registry, store, events), store, events
}

func TestAnalyzeURLLabels(t *testing.T) {
	testCases := []struct {
		output   float64
		expected string
		desc     string
	}{
		{
			output:   1,
			expected: models.LabelPhishing,
			desc:     "Output 1 labels phishing",
		},
		{
			output:   0,
			expected: models.LabelLegitimate,
			desc:     "Output 0 labels legitimate",
		},
		{
			output:   2,
			expected: models.LabelLegitimate,
			desc:     "Anything but 1 labels legitimate",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			det, _, _ := newTestDetector(&fakeModel{out: []float64{tc.output}})

			sub, err := det.AnalyzeURL("https://example.com", models.UseCasePhishing)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if sub.Prediction.Label != tc.expected {
				t.Errorf("Output: %v\nExpected: %s\nGot:      %s", tc.output, tc.expected, sub.Prediction.Label)
			}
			if sub.Prediction.RawOutput != tc.output {
				t.Errorf("RawOutput should be %v, got %v", tc.output, sub.Prediction.RawOutput)
			}
			if sub.Prediction.Value != nil {
				t.Error("Classifier submissions should not carry a numeric value")
			}
		})
	}
}

func TestAnalyzeURLBuildsSubmission(t *testing.T) {
	det, store, events := newTestDetector(&fakeModel{out: []float64{1}})

	sub, err := det.AnalyzeURL("  https://example.com  ", models.UseCasePhishing)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if sub.ID == "" {
		t.Error("Submission should get an ID")
	}
	if sub.CreatedAt.IsZero() {
		t.Error("Submission should get a timestamp")
	}
	if sub.Input != models.InputURL {
		t.Errorf("Expected input kind %q, got %q", models.InputURL, sub.Input)
	}
	if sub.URL != "https://example.com" {
		t.Errorf("URL should be trimmed, got %q", sub.URL)
	}
	if sub.Features.URLLength != 19 {
		t.Errorf("Expected url_length 19, got %v", sub.Features.URLLength)
	}

	if len(store.stored) != 1 || store.stored[0].ID != sub.ID {
		t.Error("Submission was not stored")
	}
	if len(events.published) != 1 || events.published[0].ID != sub.ID {
		t.Error("Submission was not published")
	}
	if len(events.topics) != 1 || events.topics[0] != models.SubmissionTopic {
		t.Errorf("Expected topic %q, got %v", models.SubmissionTopic, events.topics)
	}
}

func TestAnalyzeURLEmptyInput(t *testing.T) {
	det, store, _ := newTestDetector(&fakeModel{out: []float64{1}})

	for _, raw := range []string{"", "   "} {
		_, err := det.AnalyzeURL(raw, models.UseCasePhishing)
		var vErr *models.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("Input: %q\nExpected a validation error, got: %v", raw, err)
		}
	}
	if len(store.stored) != 0 {
		t.Error("Rejected input must not be stored")
	}
}

func TestAnalyzeURLMalformedURL(t *testing.T) {
	det, store, _ := newTestDetector(&fakeModel{out: []float64{1}})

	_, err := det.AnalyzeURL("http://a b.com/", models.UseCasePhishing)
	var eErr *models.ExtractionError
	if !errors.As(err, &eErr) {
		t.Fatalf("Expected an extraction error, got: %v", err)
	}
	if len(store.stored) != 0 {
		t.Error("Failed extraction must not be stored")
	}
}

func TestAnalyzeUnknownUseCase(t *testing.T) {
	det, _, _ := newTestDetector(&fakeModel{out: []float64{1}})

	_, err := det.AnalyzeURL("https://example.com", models.UseCase("svm"))
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected a validation error, got: %v", err)
	}
}

func TestAnalyzeManualUsesProvidedVector(t *testing.T) {
	model := &fakeModel{out: []float64{0}}
	det, _, _ := newTestDetector(model)

	vector := models.FeatureVector{
		URLLength:       100,
		DomainAge:       2,
		Redirects:       1,
		SubdomainsCount: 2,
	}
	sub, err := det.AnalyzeManual(vector, models.UseCaseRules)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if sub.Input != models.InputManual {
		t.Errorf("Expected input kind %q, got %q", models.InputManual, sub.Input)
	}
	if sub.URL != "" {
		t.Errorf("Manual submissions carry no URL, got %q", sub.URL)
	}
	if !reflect.DeepEqual(model.rows[0], vector.Values()) {
		t.Errorf("Expected row: %v\nGot:          %v", vector.Values(), model.rows[0])
	}
}

func TestURLAndManualSeeTheSameRow(t *testing.T) {
	model := &fakeModel{out: []float64{1}}
	det, _, _ := newTestDetector(model)

	rawURL := "http://a@b-c.example.com//x//y"
	if _, err := det.AnalyzeURL(rawURL, models.UseCasePhishing); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	vector, err := features.NewExtractor().Extract(rawURL)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := det.AnalyzeManual(vector, models.UseCasePhishing); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !reflect.DeepEqual(model.rows[0], model.rows[1]) {
		t.Errorf("URL row:    %v\nManual row: %v", model.rows[0], model.rows[1])
	}
}

func TestDomainAgeUsesSubvector(t *testing.T) {
	model := &fakeModel{out: []float64{12.5}}
	det, _, _ := newTestDetector(model)

	sub, err := det.AnalyzeURL("https://example.com", models.UseCaseDomainAge)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []float64{19, 0, 0, 1}
	if !reflect.DeepEqual(model.rows[0], expected) {
		t.Errorf("Expected row: %v\nGot:          %v", expected, model.rows[0])
	}
	if sub.Prediction.Value == nil || *sub.Prediction.Value != 12.5 {
		t.Errorf("Expected value 12.5, got %v", sub.Prediction.Value)
	}
	if sub.Prediction.Label != "" {
		t.Errorf("Regression submissions carry no label, got %q", sub.Prediction.Label)
	}
}

func TestPredictionFailureIsWrapped(t *testing.T) {
	cause := errors.New("matrix on fire")
	det, store, events := newTestDetector(&fakeModel{err: cause})

	_, err := det.AnalyzeURL("https://example.com", models.UseCasePhishing)
	var pErr *models.PredictionError
	if !errors.As(err, &pErr) {
		t.Fatalf("Expected a prediction error, got: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("Wrapped error should keep the cause")
	}
	if pErr.UseCase != models.UseCasePhishing {
		t.Errorf("Expected use case %q, got %q", models.UseCasePhishing, pErr.UseCase)
	}
	if len(store.stored) != 0 || len(events.published) != 0 {
		t.Error("Failed predictions must not be stored or published")
	}
}

func TestWrongOutputShapeIsWrapped(t *testing.T) {
	det, _, _ := newTestDetector(&fakeModel{out: []float64{}})

	_, err := det.AnalyzeURL("https://example.com", models.UseCasePhishing)
	var pErr *models.PredictionError
	if !errors.As(err, &pErr) {
		t.Fatalf("Expected a prediction error, got: %v", err)
	}
}

func TestContributionsVaryPerSubmission(t *testing.T) {
	det, _, _ := newTestDetector(&fakeModel{out: []float64{1}})

	first, err := det.AnalyzeManual(models.FeatureVector{}, models.UseCasePhishing)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := det.AnalyzeManual(models.FeatureVector{}, models.UseCasePhishing)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, sub := range []*models.Submission{first, second} {
		if len(sub.Contributions) != models.FeatureCount {
			t.Fatalf("Expected %d contributions, got %d", models.FeatureCount, len(sub.Contributions))
		}
		for i, entry := range sub.Contributions {
			if entry.Feature != models.FeatureNames[i] {
				t.Errorf("Entry %d named %q, expected %q", i, entry.Feature, models.FeatureNames[i])
			}
			if entry.Value < -1 || entry.Value >= 1 {
				t.Errorf("Contribution %v outside [-1, 1)", entry.Value)
			}
		}
	}

	same := true
	for i := range first.Contributions {
		if first.Contributions[i].Value != second.Contributions[i].Value {
			same = false
			break
		}
	}
	if same {
		t.Error("Two submissions drew identical contribution series")
	}
}

func TestContributionsReproducibleWithSeededSource(t *testing.T) {
	det, _, _ := newTestDetector(&fakeModel{out: []float64{1}})

	det.rng = rand.New(rand.NewSource(7))
	first, err := det.AnalyzeManual(models.FeatureVector{}, models.UseCasePhishing)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	det.rng = rand.New(rand.NewSource(7))
	second, err := det.AnalyzeManual(models.FeatureVector{}, models.UseCasePhishing)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first.Contributions, second.Contributions) {
		t.Errorf("Same seed should reproduce the series\nExpected: %v\nGot:      %v",
			first.Contributions, second.Contributions)
	}
}

func TestImportanceRankingSortedDescending(t *testing.T) {
	registry := &fakeRegistry{
		importances: []float64{0.12, 0.16, 0.18, 0.03, 0.08, 0.04, 0.10, 0.22, 0.06, 0.01},
	}
	det := NewDetector(registry, &fakeStore{}, &fakePublisher{})

	ranking, err := det.ImportanceRanking()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(ranking) != models.FeatureCount {
		t.Fatalf("Expected %d entries, got %d", models.FeatureCount, len(ranking))
	}
	if ranking[0].Feature != "sfh" || ranking[0].Value != 0.22 {
		t.Errorf("Expected sfh at 0.22 first, got %+v", ranking[0])
	}
	if ranking[len(ranking)-1].Feature != "popup_window" {
		t.Errorf("Expected popup_window last, got %+v", ranking[len(ranking)-1])
	}
	for i := 1; i < len(ranking); i++ {
		if ranking[i].Value > ranking[i-1].Value {
			t.Errorf("Ranking not descending at %d: %v after %v", i, ranking[i].Value, ranking[i-1].Value)
		}
	}

	again, err := det.ImportanceRanking()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(ranking, again) {
		t.Error("Ranking should be deterministic across calls")
	}
}

func TestImportanceRankingWithoutProvider(t *testing.T) {
	det := NewDetector(&fakeRegistry{}, &fakeStore{}, &fakePublisher{})

	_, err := det.ImportanceRanking()
	var pErr *models.PredictionError
	if !errors.As(err, &pErr) {
		t.Fatalf("Expected a prediction error, got: %v", err)
	}
	if pErr.UseCase != models.UseCaseImportance {
		t.Errorf("Expected use case %q, got %q", models.UseCaseImportance, pErr.UseCase)
	}
}

func shippedDetector(t *testing.T) *Detector {
	t.Helper()
	registry, err := ml.LoadRegistry(filepath.Join("..", "..", "artifacts"))
	if err != nil {
		t.Fatalf("Loading shipped artifacts: %v", err)
	}
	return NewDetector(registry, &fakeStore{}, &fakePublisher{})
}

func TestShippedArtifactVerdicts(t *testing.T) {
	det := shippedDetector(t)

	testCases := []struct {
		url      string
		useCase  models.UseCase
		expected string
		desc     string
	}{
		{
			url:      "https://example.com",
			useCase:  models.UseCasePhishing,
			expected: models.LabelLegitimate,
			desc:     "Ensemble passes a plain https site",
		},
		{
			url:      "http://192.168.1.1/login",
			useCase:  models.UseCasePhishing,
			expected: models.LabelPhishing,
			desc:     "Ensemble flags a bare IP with a login path",
		},
		{
			url:      "http://secure-login-update-paypal.com/verify",
			useCase:  models.UseCasePhishing,
			expected: models.LabelPhishing,
			desc:     "Ensemble flags a keyword-stuffed host",
		},
		{
			url:      "http://a@b-c.example.com//x//y",
			useCase:  models.UseCasePhishing,
			expected: models.LabelPhishing,
			desc:     "Ensemble flags the userinfo trick",
		},
		{
			url:      "https://example.com",
			useCase:  models.UseCaseRules,
			expected: models.LabelLegitimate,
			desc:     "Rule tree passes a plain https site",
		},
		{
			url:      "http://192.168.1.1/login",
			useCase:  models.UseCaseRules,
			expected: models.LabelPhishing,
			desc:     "Rule tree flags a bare IP",
		},
		{
			url:      "http://a@b-c.example.com//x//y",
			useCase:  models.UseCaseRules,
			expected: models.LabelPhishing,
			desc:     "Rule tree flags the userinfo trick",
		},
		{
			url:      "https://example.com",
			useCase:  models.UseCaseImportance,
			expected: models.LabelLegitimate,
			desc:     "Forest passes a plain https site",
		},
		{
			url:      "http://192.168.1.1/login",
			useCase:  models.UseCaseImportance,
			expected: models.LabelPhishing,
			desc:     "Forest flags a bare IP",
		},
		{
			url:      "http://secure-login-update-paypal.com/verify",
			useCase:  models.UseCaseImportance,
			expected: models.LabelPhishing,
			desc:     "Forest flags a keyword-stuffed host",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			sub, err := det.AnalyzeURL(tc.url, tc.useCase)
			if err != nil {
				t.Fatalf("Input: %s\nUnexpected error: %v", tc.url, err)
			}
			if sub.Prediction.Label != tc.expected {
				t.Errorf("Input: %s\nExpected: %s\nGot:      %s", tc.url, tc.expected, sub.Prediction.Label)
			}
		})
	}
}

func TestShippedArtifactManualDefaults(t *testing.T) {
	det := shippedDetector(t)

	// The form's starting values describe a long, redirecting, http-only
	// URL; the ensemble leans phishing on them.
	defaults := models.FeatureVector{
		URLLength:       100,
		DomainAge:       2,
		Redirects:       1,
		SubdomainsCount: 2,
	}
	sub, err := det.AnalyzeManual(defaults, models.UseCasePhishing)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sub.Prediction.Label != models.LabelPhishing {
		t.Errorf("Expected: %s\nGot:      %s", models.LabelPhishing, sub.Prediction.Label)
	}
}

func TestShippedArtifactDomainAge(t *testing.T) {
	det := shippedDetector(t)

	sub, err := det.AnalyzeURL("https://example.com", models.UseCaseDomainAge)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sub.Prediction.Value == nil {
		t.Fatal("Expected a numeric estimate")
	}
	// intercept 10 - 0.1*19 + 8 for https
	if math.Abs(*sub.Prediction.Value-16.1) > 1e-9 {
		t.Errorf("Expected: 16.1\nGot:      %v", *sub.Prediction.Value)
	}
}

func TestShippedArtifactImportances(t *testing.T) {
	det := shippedDetector(t)

	ranking, err := det.ImportanceRanking()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(ranking) != models.FeatureCount {
		t.Fatalf("Expected %d entries, got %d", models.FeatureCount, len(ranking))
	}
	if ranking[0].Feature != "sfh" {
		t.Errorf("Expected sfh ranked first, got %s", ranking[0].Feature)
	}

	sum := 0.0
	for _, entry := range ranking {
		sum += entry.Value
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("Importances should sum to 1, got %v", sum)
	}
}
