package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"covidlens/domain/table"
	"covidlens/internal"
	"covidlens/pipeline"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*
var templatesFS embed.FS

// Server is the dashboard web server. It holds the immutable loaded table
// and re-runs the aggregation pipeline on every request with the request's
// metric and top-N parameters; no derived frame survives between requests.
type Server struct {
	router       *gin.Engine
	runner       *pipeline.Runner
	tbl          *table.Table
	logger       *internal.Logger
	explanations map[string]template.HTML
}

// NewServer creates the dashboard server over an already-loaded table.
func NewServer(tbl *table.Table, runner *pipeline.Runner, logger *internal.Logger) (*Server, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	s := &Server{
		router:       gin.Default(),
		runner:       runner,
		tbl:          tbl,
		logger:       logger,
		explanations: renderExplanations(),
	}

	funcMap := template.FuncMap{
		"fmtCount":  func(v int64) string { return pipeline.FormatCount(v) },
		"fmtCountF": func(v float64) string { return pipeline.FormatCount(int64(v)) },
		"fmtFloat":  func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}
	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	s.router.SetHTMLTemplate(tmpl)

	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	s.router.GET("/", s.handleDashboard)

	api := s.router.Group("/api")
	{
		api.GET("/overview", s.handleOverview)
		api.GET("/summary", s.handleSummary)
		api.GET("/regions", s.handleRegions)
		api.GET("/rates", s.handleRates)
		api.GET("/top", s.handleTop)
		api.GET("/distribution", s.handleDistribution)
		api.GET("/correlation", s.handleCorrelation)
	}
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server on the given address
func (s *Server) Run(addr string) error {
	s.logger.Info("[ui] dashboard listening on %s", addr)
	return s.router.Run(addr)
}
