package http

import (
	"github.com/gin-gonic/gin"

	"timeplanner/internal/middleware"
	"timeplanner/pkg/response"
)

// Line godoc
// @Summary     Line chart dataset
// @Description Task-start counts bucketed over the cursor's period, optionally for one color.
// @Tags        Analytics
// @Produce     json
// @Param       X-User-Name header string true  "Caller display name"
// @Param       color       query  string false "Palette label"
// @Success     200 {object} lineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/analytics/line [GET]
func (h *handler) Line(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Line(ctx, sc, c.Query("color"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Line: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLineResp(output))
}

// Pie godoc
// @Summary     Pie chart dataset
// @Description Task counts per palette color.
// @Tags        Analytics
// @Produce     json
// @Param       X-User-Name header string true "Caller display name"
// @Success     200 {object} pieResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/analytics/pie [GET]
func (h *handler) Pie(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Pie(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Pie: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPieResp(output))
}

// Upcoming godoc
// @Summary     Upcoming timeline
// @Description The next tasks starting after now, soonest first.
// @Tags        Analytics
// @Produce     json
// @Param       X-User-Name header string true "Caller display name"
// @Success     200 {object} upcomingResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/analytics/upcoming [GET]
func (h *handler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Upcoming(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Upcoming: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpcomingResp(output))
}

// TimeRange godoc
// @Summary     Per-day totals over the cursor's period
// @Tags        Analytics
// @Produce     json
// @Param       X-User-Name header string true "Caller display name"
// @Success     200 {object} timeRangeResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/analytics/timerange [GET]
func (h *handler) TimeRange(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.TimeRange(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.TimeRange: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTimeRangeResp(output))
}
