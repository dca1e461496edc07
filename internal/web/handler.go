package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/kabirajrana/phishing-website-detection/internal/models"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	// The root pattern catches everything unrouted.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(dashboardHTML))
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &models.ValidationError{Reason: "malformed JSON body"})
		return
	}

	sub, err := s.detector.AnalyzeURL(req.URL, useCaseOrDefault(req.UseCase))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, predictionResponse(sub))
}

func (s *Server) handleManual(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.ManualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &models.ValidationError{Reason: "malformed JSON body"})
		return
	}

	sub, err := s.detector.AnalyzeManual(req.Features, useCaseOrDefault(req.UseCase))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, predictionResponse(sub))
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, s.infos)
}

func (s *Server) handleImportance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ranking, err := s.detector.ImportanceRanking()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ranking)
}

func (s *Server) handleSubmissions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, s.storage.All())
}

func (s *Server) handleSubmission(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Path[len("/api/submissions/"):]
	if id == "" {
		http.Error(w, "Submission not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		sub, ok := s.storage.Get(id)
		if !ok {
			http.Error(w, "Submission not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, sub)

	case http.MethodDelete:
		if !s.storage.Delete(id) {
			http.Error(w, "Submission not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// useCaseOrDefault keeps the single-input dashboard simple: an omitted use
// case means the main phishing classifier.
func useCaseOrDefault(uc models.UseCase) models.UseCase {
	if uc == "" {
		return models.UseCasePhishing
	}
	return uc
}

func predictionResponse(sub *models.Submission) models.PredictionResponse {
	resp := models.PredictionResponse{
		SubmissionID:  sub.ID,
		UseCase:       sub.Prediction.UseCase,
		Label:         sub.Prediction.Label,
		Value:         sub.Prediction.Value,
		RawOutput:     sub.Prediction.RawOutput,
		Features:      sub.Features,
		Contributions: sub.Contributions,
	}
	if sub.Prediction.Label != "" {
		verdict := sub.Prediction.Label == models.LabelPhishing
		resp.IsPhishing = &verdict
	}
	return resp
}

// writeError maps the three failure families onto HTTP statuses: rejected
// input is the client's fault, failed extraction is unprocessable input,
// and a failed model call is a bad upstream.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var vErr *models.ValidationError
	var eErr *models.ExtractionError
	var pErr *models.PredictionError
	switch {
	case errors.As(err, &vErr):
		status = http.StatusBadRequest
	case errors.As(err, &eErr):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &pErr):
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		log.Printf("Request failed: %v", err)
	}
	writeJSON(w, status, models.ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
