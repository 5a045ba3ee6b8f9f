// Package api exposes stored pipeline results and on-demand model
// inference over a small JSON HTTP API.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
)

// DefaultAddr is the listen address when none is configured.
const DefaultAddr = ":8080"

// defaultPageSize bounds unpaginated document listings.
const defaultPageSize = 50

// Server wires the HTTP routes to the stores and the model client.
type Server struct {
	documents   driven.DocumentStore
	evaluations driven.EvaluationStore
	model       driven.AspectModel
	engine      *gin.Engine
}

// New creates the API server. The model client may be nil, in which
// case the analyze endpoints respond 503.
func New(documents driven.DocumentStore, evaluations driven.EvaluationStore, model driven.AspectModel) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		documents:   documents,
		evaluations: evaluations,
		model:       model,
		engine:      gin.New(),
	}
	s.engine.Use(gin.Recovery())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/health", s.health)
	s.engine.GET("/documents", s.listDocuments)
	s.engine.GET("/documents/:id", s.getDocument)
	s.engine.GET("/topics", s.listTopics)
	s.engine.GET("/evaluations", s.listEvaluations)
	s.engine.GET("/evaluations/:name", s.getEvaluation)
	s.engine.POST("/analyze", s.analyze)
	s.engine.POST("/analyze/batch", s.analyzeBatch)
}

// Handler returns the HTTP handler, used directly by tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	return s.engine.Run(addr)
}

func (s *Server) health(c *gin.Context) {
	count, err := s.documents.CountDocuments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "documents": count})
}

func (s *Server) listDocuments(c *gin.Context) {
	limit := intQuery(c, "limit", defaultPageSize)
	offset := intQuery(c, "offset", 0)

	docs, err := s.documents.ListDocuments(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	total, err := s.documents.CountDocuments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"documents": toDocumentViews(docs),
		"total":     total,
		"limit":     limit,
		"offset":    offset,
	})
}

func (s *Server) getDocument(c *gin.Context) {
	doc, err := s.documents.GetDocument(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toDocumentView(*doc))
}

func (s *Server) listTopics(c *gin.Context) {
	topics, err := s.documents.ListTopics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]topicView, len(topics))
	for i, topic := range topics {
		views[i] = topicView{
			ID:            topic.ID,
			Terms:         topic.Terms,
			DocumentCount: topic.DocumentCount,
		}
	}
	c.JSON(http.StatusOK, gin.H{"topics": views})
}

func (s *Server) listEvaluations(c *gin.Context) {
	runs, err := s.evaluations.ListEvaluations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]evaluationRunView, len(runs))
	for i, run := range runs {
		views[i] = evaluationRunView{
			Name:       run.Name,
			Checkpoint: run.Checkpoint,
			CreatedAt:  run.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"evaluations": views})
}

func (s *Server) getEvaluation(c *gin.Context) {
	report, err := s.evaluations.GetEvaluation(c.Request.Context(), c.Param("name"))
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "evaluation not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// analyzeRequest is the POST /analyze body.
type analyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

func (s *Server) analyze(c *gin.Context) {
	if s.model == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model service not configured"})
		return
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no text provided"})
		return
	}

	prediction, err := s.model.Predict(c.Request.Context(), req.Text)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prediction)
}

// analyzeBatchRequest is the POST /analyze/batch body.
type analyzeBatchRequest struct {
	Texts []string `json:"texts" binding:"required"`
}

func (s *Server) analyzeBatch(c *gin.Context) {
	if s.model == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model service not configured"})
		return
	}

	var req analyzeBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Texts) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no texts provided"})
		return
	}

	predictions, err := s.model.BatchPredict(c.Request.Context(), req.Texts)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": predictions})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return fallback
	}
	return val
}
