package ui

import (
	"math"
	"net/http"
	"strconv"

	"covidlens/domain/table"
	"covidlens/pipeline"

	"github.com/gin-gonic/gin"
)

// paramsFromQuery reads the user-adjustable parameters. Clamping happens in
// the pipeline; a garbage n falls back to the default rather than erroring.
func paramsFromQuery(c *gin.Context) pipeline.Params {
	params := pipeline.Params{Metric: c.Query("metric")}
	if raw := c.Query("n"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			params.TopN = n
		}
	}
	return params
}

// run executes one full render pass for this request.
func (s *Server) run(c *gin.Context) *table.RenderPass {
	return s.runner.Run(s.tbl, paramsFromQuery(c))
}

// floatOrNil keeps NaN and infinities out of JSON payloads.
func floatOrNil(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

// stageWarning finds the warning recorded for one stage, if any.
func stageWarning(pass *table.RenderPass, stage string) *table.Warning {
	for i := range pass.Warnings {
		if pass.Warnings[i].Stage == stage {
			return &pass.Warnings[i]
		}
	}
	return nil
}

// skippedResponse is the inline message served in place of a skipped
// visualization. Still HTTP 200: the dashboard stays interactive.
func skippedResponse(c *gin.Context, w *table.Warning) {
	if w == nil {
		c.JSON(http.StatusOK, gin.H{"skipped": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"skipped": true,
		"stage":   w.Stage,
		"warning": w.Message,
	})
}

func (s *Server) handleSummary(c *gin.Context) {
	pass := s.run(c)
	c.JSON(http.StatusOK, gin.H{
		"rows":        pass.Summary.Rows,
		"explanation": s.explanations["summary"],
	})
}

func (s *Server) handleRegions(c *gin.Context) {
	pass := s.run(c)
	if pass.Regions == nil {
		skippedResponse(c, stageWarning(pass, "regions"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"wide":        pass.Regions.Wide,
		"melted":      pass.Regions.Melted,
		"explanation": s.explanations["regions"],
	})
}

func (s *Server) handleRates(c *gin.Context) {
	pass := s.run(c)
	if len(pass.Rates) == 0 {
		skippedResponse(c, stageWarning(pass, "rates"))
		return
	}
	rankings := make([]gin.H, 0, len(pass.Rates))
	for _, ranking := range pass.Rates {
		rows := make([]gin.H, 0, len(ranking.Rows))
		for _, row := range ranking.Rows {
			rows = append(rows, gin.H{
				"country": row.Country,
				"region":  row.Region,
				"rate":    floatOrNil(row.Rate),
			})
		}
		rankings = append(rankings, gin.H{"column": ranking.Column, "rows": rows})
	}
	c.JSON(http.StatusOK, gin.H{
		"rankings":    rankings,
		"explanation": s.explanations["rates"],
	})
}

func (s *Server) handleTop(c *gin.Context) {
	pass := s.run(c)
	if pass.Top == nil {
		skippedResponse(c, stageWarning(pass, "top"))
		return
	}
	rows := make([]gin.H, 0, len(pass.Top.Rows))
	for _, row := range pass.Top.Rows {
		rows = append(rows, gin.H{"country": row.Country, "value": floatOrNil(row.Value)})
	}
	c.JSON(http.StatusOK, gin.H{
		"metric":      pass.Top.Metric,
		"n":           pass.Top.N,
		"rows":        rows,
		"explanation": s.explanations["top"],
	})
}

func (s *Server) handleDistribution(c *gin.Context) {
	pass := s.run(c)
	if pass.Boxes == nil {
		skippedResponse(c, stageWarning(pass, "distribution"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"boxes":       pass.Boxes.Rows,
		"explanation": s.explanations["distribution"],
	})
}

func (s *Server) handleCorrelation(c *gin.Context) {
	pass := s.run(c)
	if pass.Correlation == nil {
		skippedResponse(c, stageWarning(pass, "correlation"))
		return
	}
	values := make([][]interface{}, len(pass.Correlation.Values))
	for i, row := range pass.Correlation.Values {
		values[i] = make([]interface{}, len(row))
		for j, v := range row {
			values[i][j] = floatOrNil(v)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"columns":     pass.Correlation.Columns,
		"values":      values,
		"explanation": s.explanations["correlation"],
	})
}

func (s *Server) handleOverview(c *gin.Context) {
	pass := s.run(c)
	c.JSON(http.StatusOK, gin.H{
		"id":       pass.ID,
		"metric":   pass.Metric,
		"top_n":    pass.TopN,
		"warnings": pass.Warnings,
		"summary":  pass.Summary.Rows,
		"rowCount": s.tbl.RowCount(),
	})
}

func (s *Server) handleDashboard(c *gin.Context) {
	pass := s.run(c)
	data := gin.H{
		"Title":        "COVID-19 Data Visualization Dashboard",
		"Pass":         pass,
		"RowCount":     s.tbl.RowCount(),
		"Metrics":      table.CoreMetrics(),
		"MinTopN":      pipeline.MinTopN,
		"MaxTopN":      pipeline.MaxTopN,
		"Explanations": s.explanations,
	}
	c.HTML(http.StatusOK, "dashboard.html", data)
}
