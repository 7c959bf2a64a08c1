package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"climate-srv/internal/analysis"
)

func (h *handler) processStartRequest(c *gin.Context) (analysis.Filters, error) {
	var req startReq

	// an absent or empty body means "analyze everything, last 30 days"
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return analysis.Filters{}, err
		}
	}

	filters := analysis.Filters{
		Departments: req.Departments,
		Countries:   req.Countries,
	}

	var err error
	if filters.DateFrom, err = parseDate(req.DateFrom); err != nil {
		return analysis.Filters{}, fmt.Errorf("dateFrom: %w", err)
	}
	if filters.DateTo, err = parseDate(req.DateTo); err != nil {
		return analysis.Filters{}, fmt.Errorf("dateTo: %w", err)
	}
	return filters, nil
}

// parseDate accepts RFC3339 timestamps and bare dates.
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q", raw)
}
