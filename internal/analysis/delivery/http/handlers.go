package http

import (
	"github.com/gin-gonic/gin"

	"climate-srv/pkg/response"
)

// GetProgress - Current analysis job state
// @Summary Get analysis progress
// @Description Returns the latest analysis job's progress record, or idle defaults when no job has run
// @Tags Analysis
// @Produce json
// @Success 200 {object} progressResp
// @Failure 500 {object} response.ErrorBody
// @Router /api/analysis/progress [get]
func (h *handler) GetProgress(c *gin.Context) {
	ctx := c.Request.Context()

	progress, err := h.uc.GetProgress(ctx)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.GetProgress: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newProgressResp(progress))
}

// Start - Launch an analysis job
// @Summary Start analysis
// @Description Starts a new background analysis job over the filtered communications
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body startReq false "Analysis filters"
// @Success 200 {object} startResp
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/analysis/start [post]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	filters, err := h.processStartRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.Start: processStartRequest failed: %v", err)
		response.Error(c, errInvalidFilters, h.discord)
		return
	}

	output, err := h.uc.Start(ctx, filters)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Start: usecase Start failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, startResp{
		Message:    "Analysis started",
		ProgressID: output.ProgressID,
	})
}

// Stop - Cancel the running analysis job
// @Summary Stop analysis
// @Description Requests cancellation of the running analysis job
// @Tags Analysis
// @Produce json
// @Success 200 {object} messageResp
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/analysis/stop [post]
func (h *handler) Stop(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Stop(ctx); err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Stop: usecase Stop failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, messageResp{Message: "Analysis stopped"})
}

// GetResults - Latest analysis result
// @Summary Get active analysis result
// @Description Returns the most recent completed analysis result
// @Tags Analysis
// @Produce json
// @Success 200 {object} resultResp
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/analysis/results [get]
func (h *handler) GetResults(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.uc.GetActiveResult(ctx)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.GetResults: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newResultResp(result))
}

// GetResultHistory - All analysis results
// @Summary Get analysis history
// @Description Returns every stored analysis result, newest first
// @Tags Analysis
// @Produce json
// @Success 200 {array} resultResp
// @Failure 500 {object} response.ErrorBody
// @Router /api/analysis/results/history [get]
func (h *handler) GetResultHistory(c *gin.Context) {
	ctx := c.Request.Context()

	results, err := h.uc.GetResultHistory(ctx)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.GetResultHistory: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newResultHistoryResp(results))
}
