package web

import (
	"context"
	"net/http"
	"time"

	"github.com/kabirajrana/phishing-website-detection/internal/config"
	"github.com/kabirajrana/phishing-website-detection/internal/middlewares"
	"github.com/kabirajrana/phishing-website-detection/internal/models"
	"github.com/kabirajrana/phishing-website-detection/internal/websocket"
)

type detectorI interface {
	AnalyzeURL(rawURL string, useCase models.UseCase) (*models.Submission, error)
	AnalyzeManual(vector models.FeatureVector, useCase models.UseCase) (*models.Submission, error)
	ImportanceRanking() ([]models.SeriesEntry, error)
}

type storageI interface {
	Get(id string) (*models.Submission, bool)
	All() []*models.Submission
	Delete(id string) bool
}

type Server struct {
	config   *config.Config
	storage  storageI
	detector detectorI
	infos    []models.ModelInfo
	server   *http.Server
	hub      *websocket.Hub
}

// NewServer wires the HTTP surface. events carries completed submissions
// from the detector; each one is pushed to websocket clients. A nil events
// channel disables live pushes but leaves the rest of the API working.
func NewServer(cfg *config.Config, store storageI, det detectorI, infos []models.ModelInfo, events <-chan *models.Submission) *Server {
	hub := websocket.NewHub()
	go hub.Run()

	s := &Server{
		config:   cfg,
		storage:  store,
		detector: det,
		infos:    infos,
		hub:      hub,
	}
	if events != nil {
		go s.forward(events)
	}
	return s
}

// forward bridges the submission topic to websocket clients. Ends when the
// topic channel is closed.
func (s *Server) forward(events <-chan *models.Submission) {
	for sub := range events {
		s.hub.Broadcast(sub)
	}
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// Dashboard
	mux.HandleFunc("/", s.handleIndex)

	// API endpoints
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/manual", s.handleManual)
	mux.HandleFunc("/api/models", s.handleModels)
	mux.HandleFunc("/api/importance", s.handleImportance)
	mux.HandleFunc("/api/submissions", s.handleSubmissions)
	mux.HandleFunc("/api/submissions/", s.handleSubmission)

	// WebSocket endpoint
	mux.HandleFunc("/ws", s.hub.ServeWS)

	// Health check
	mux.HandleFunc(
		"/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		},
	)

	return middlewares.CORS(mux)
}

func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.config.Web.ListenAddr,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return s.server.ListenAndServe()
}

func (s *Server) Stop() error {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}
