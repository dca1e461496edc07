package models

import "time"

// UseCase selects which loaded model handles a submission.
type UseCase string

const (
	UseCasePhishing   UseCase = "phishing"
	UseCaseRules      UseCase = "rules"
	UseCaseImportance UseCase = "importance"
	UseCaseDomainAge  UseCase = "domain-age"
)

// UseCases lists the four model bindings in display order.
var UseCases = []UseCase{UseCasePhishing, UseCaseRules, UseCaseImportance, UseCaseDomainAge}

// Classifier labels shown to the user. A raw model output of 1 means
// phishing, anything else legitimate.
const (
	LabelPhishing   = "Phishing"
	LabelLegitimate = "Legitimate"
)

// Input kinds for a submission.
const (
	InputURL    = "url"
	InputManual = "manual"
)

// SubmissionTopic is the broker topic completed submissions are published on.
const SubmissionTopic = "submissions"

// Prediction is the interpreted result of one model call. Classifier use
// cases fill Label; the domain-age use case fills Value. RawOutput is always
// the first element of the model's output row.
type Prediction struct {
	UseCase   UseCase  `json:"use_case"`
	Label     string   `json:"label,omitempty"`
	Value     *float64 `json:"value,omitempty"`
	RawOutput float64  `json:"raw_output"`
}

// SeriesEntry is one named value in a chart series, used for both the real
// importance ranking and the mock contribution bars.
type SeriesEntry struct {
	Feature string  `json:"feature"`
	Value   float64 `json:"value"`
}

// Submission is one completed prediction cycle, kept in memory for the
// dashboard history and pushed to websocket clients. Failed predictions
// never produce a Submission.
type Submission struct {
	ID            string        `json:"id"`
	CreatedAt     time.Time     `json:"created_at"`
	Input         string        `json:"input"`
	URL           string        `json:"url,omitempty"`
	Features      FeatureVector `json:"features"`
	Prediction    Prediction    `json:"prediction"`
	Contributions []SeriesEntry `json:"contributions,omitempty"`
}
