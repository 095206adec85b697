package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	miner "github.com/Raavan18/b2b-data-miner"
)

// mineRequest is the body of a POST /mine request.
type mineRequest struct {
	Domain      string `json:"domain"`
	CompanyName string `json:"company_name"`
}

// mineError mirrors the report shape with an added error message so
// callers can decode success and failure responses the same way.
type mineError struct {
	miner.Report
	Error string `json:"error"`
}

// handleMine handles POST /mine. It runs the full mining pipeline for
// the requested domain and returns the final report.
func (s *Server) handleMine(c *gin.Context) {
	var req mineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newMineError(req, err.Error()))
		return
	}

	report, err := s.MiningService.Mine(c.Request.Context(), req.Domain, req.CompanyName)
	if err != nil {
		c.JSON(errStatus(err), newMineError(req, miner.ErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, report)
}

// newMineError builds the empty-report failure payload for a request.
func newMineError(req mineRequest, msg string) mineError {
	return mineError{
		Report: miner.Report{
			CompanyName:   req.CompanyName,
			CompanyDomain: req.Domain,
			Contacts:      []*miner.MergedContact{},
			Meta: miner.Meta{
				DiscoveryURLs: []string{},
				FetchURLs:     []string{},
			},
		},
		Error: msg,
	}
}
