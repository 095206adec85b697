package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	miner "github.com/Raavan18/b2b-data-miner"
)

// DefaultRunListLimit caps GET /runs listings when no limit is given.
const DefaultRunListLimit = 20

// listRunsRequest holds the query parameters of GET /runs.
type listRunsRequest struct {
	Domain string `form:"domain"`
	Offset int    `form:"offset"`
	Limit  int    `form:"limit"`
}

// handleRunList handles GET /runs. Reports are omitted from the
// listing; fetch a single run for the full report.
func (s *Server) handleRunList(c *gin.Context) {
	var req listRunsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if req.Limit <= 0 {
		req.Limit = DefaultRunListLimit
	}

	filter := miner.RunFilter{Offset: req.Offset, Limit: req.Limit}
	if req.Domain != "" {
		filter.Domain = &req.Domain
	}

	runs, err := s.ReportService.FindRuns(c.Request.Context(), filter)
	if err != nil {
		c.JSON(errStatus(err), errorResponse{Error: miner.ErrorMessage(err)})
		return
	}
	if runs == nil {
		runs = []*miner.Run{}
	}

	c.JSON(http.StatusOK, runs)
}

// handleRunShow handles GET /runs/:id.
func (s *Server) handleRunShow(c *gin.Context) {
	run, err := s.ReportService.FindRunByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(errStatus(err), errorResponse{Error: miner.ErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, run)
}

// handleRunDelete handles DELETE /runs/:id.
func (s *Server) handleRunDelete(c *gin.Context) {
	if err := s.ReportService.DeleteRun(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(errStatus(err), errorResponse{Error: miner.ErrorMessage(err)})
		return
	}

	c.Status(http.StatusNoContent)
}
