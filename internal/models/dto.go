package models

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	URL     string  `json:"url"`
	UseCase UseCase `json:"use_case"`
}

// ManualRequest is the body of POST /api/manual. Features arrive as ten
// independently supplied scalars; anything that is not a JSON number fails
// type coercion and aborts the submission.
type ManualRequest struct {
	Features FeatureVector `json:"features"`
	UseCase  UseCase       `json:"use_case"`
}

// PredictionResponse is returned by both prediction endpoints. The assembled
// vector is echoed back so the page can show the user what the model saw.
// IsPhishing is set for classifier use cases only.
type PredictionResponse struct {
	SubmissionID  string        `json:"submission_id"`
	UseCase       UseCase       `json:"use_case"`
	Label         string        `json:"label,omitempty"`
	IsPhishing    *bool         `json:"is_phishing,omitempty"`
	Value         *float64      `json:"value,omitempty"`
	RawOutput     float64       `json:"raw_output"`
	Features      FeatureVector `json:"features"`
	Contributions []SeriesEntry `json:"contributions,omitempty"`
}

// ModelInfo describes one loaded artifact for GET /api/models.
type ModelInfo struct {
	UseCase        UseCase `json:"use_case"`
	Kind           string  `json:"kind"`
	NumFeatures    int     `json:"num_features"`
	HasImportances bool    `json:"has_importances"`
	File           string  `json:"file"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
