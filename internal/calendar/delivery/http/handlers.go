package http

import (
	"github.com/gin-gonic/gin"

	"timeplanner/internal/middleware"
	"timeplanner/internal/model"
	"timeplanner/internal/store"
	"timeplanner/pkg/response"
)

// Cursor godoc
// @Summary     Get the calendar cursor
// @Tags        Calendar
// @Produce     json
// @Param       X-User-Name header string true "Caller display name"
// @Success     200 {object} cursorResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar/cursor [GET]
func (h *handler) Cursor(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Cursor(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Cursor: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCursorResp(output))
}

// Grid godoc
// @Summary     Build the time grid for the current view
// @Description Day views yield 24 hour slots, week views a 24x7 matrix, month views a weekday-aligned day sequence.
// @Tags        Calendar
// @Produce     json
// @Param       X-User-Name header string true "Caller display name"
// @Success     200 {object} gridResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar/grid [GET]
func (h *handler) Grid(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Grid(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Grid: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGridResp(output))
}

// SetFormat godoc
// @Summary     Switch the view granularity
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       X-User-Name header string    true "Caller display name"
// @Param       body        body   formatReq true "day, week or month"
// @Success     200 {object} cursorResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar/format [PUT]
func (h *handler) SetFormat(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req formatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SetFormat(ctx, sc, model.Format(req.Format))
	if err != nil {
		h.l.Errorf(ctx, "uc.SetFormat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCursorResp(output))
}

// Navigate godoc
// @Summary     Move the cursor
// @Description Steps one period back or forward in the current format, or resets to today.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       X-User-Name header string      true "Caller display name"
// @Param       body        body   navigateReq true "prev, next or today"
// @Success     200 {object} cursorResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar/navigate [POST]
func (h *handler) Navigate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req navigateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Navigate(ctx, sc, store.Action(req.Action))
	if err != nil {
		h.l.Errorf(ctx, "uc.Navigate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCursorResp(output))
}

// SetFilter godoc
// @Summary     Set the task list ordering key
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       X-User-Name header string    true "Caller display name"
// @Param       body        body   filterReq true "date, tag, invitations or empty to clear"
// @Success     200 {object} cursorResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar/filter [PUT]
func (h *handler) SetFilter(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req filterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SetFilter(ctx, sc, model.SortKey(req.Filter))
	if err != nil {
		h.l.Errorf(ctx, "uc.SetFilter: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCursorResp(output))
}

// SetColor godoc
// @Summary     Set the analytics color selection
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       X-User-Name header string   true "Caller display name"
// @Param       body        body   colorReq true "palette label or empty to clear"
// @Success     200 {object} cursorResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar/color [PUT]
func (h *handler) SetColor(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req colorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SetColor(ctx, sc, req.Color)
	if err != nil {
		h.l.Errorf(ctx, "uc.SetColor: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCursorResp(output))
}
