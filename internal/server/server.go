package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ArticlesRate/internal/usecase"
)

// Server exposes the article pipeline over HTTP.
type Server struct {
	pipeline *usecase.Pipeline
	maxURLs  int
	logger   *slog.Logger
}

// New wires the pipeline into an HTTP facade; maxURLs caps one request.
func New(pipeline *usecase.Pipeline, maxURLs int, logger *slog.Logger) *Server {
	if maxURLs <= 0 {
		maxURLs = 10
	}
	return &Server{pipeline: pipeline, maxURLs: maxURLs, logger: logger}
}

// Router constructs a Gin engine with registered routes.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", s.handleAnalyze)
	r.GET("/healthz", handleHealthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

// handleAnalyze serves GET /?urls=u1,u2 and responds with one outcome per URL.
func (s *Server) handleAnalyze(c *gin.Context) {
	urls := ParseURLList(c.Query("urls"))
	if len(urls) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no urls provided"})
		return
	}
	if len(urls) > s.maxURLs {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("too many urls in request, should be %d or less", s.maxURLs),
		})
		return
	}

	if s.logger != nil {
		s.logger.Debug("batch request", "urls", len(urls))
	}

	results := s.pipeline.HandleURLs(c.Request.Context(), urls)
	c.JSON(http.StatusOK, results)
}

func handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ParseURLList splits a comma-separated url query value, trimming blanks.
func ParseURLList(raw string) []string {
	var urls []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}
