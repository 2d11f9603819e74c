package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timeplanner/internal/feed"
	"timeplanner/internal/middleware"
	"timeplanner/pkg/response"
)

// Calendar godoc
// @Summary     iCalendar feed
// @Description The caller's tasks as a subscribable ICS calendar.
// @Tags        Feed
// @Produce     text/calendar
// @Param       X-User-Name header string true "Caller display name"
// @Success     200 {string} string "VCALENDAR"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/feed/calendar.ics [GET]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.tasks.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c, err)
		return
	}

	cal := feed.BuildCalendar(sc.DisplayName, output.Tasks)
	c.Header("Content-Disposition", `attachment; filename="calendar.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal.Serialize()))
}
