package http

import (
	"github.com/gin-gonic/gin"

	"timeplanner/internal/middleware"
	"timeplanner/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task and fans copies out to every invitee.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-User-Name header string    true "Caller display name"
// @Param       body        body   createReq true "Task data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Edit godoc
// @Summary     Edit a task
// @Description Overwrites an owned task and reconciles invitee copies.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-User-Name header string  true "Caller display name"
// @Param       id          path   string  true "Task ID"
// @Param       body        body   editReq true "Task data"
// @Success     200 {object} editResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden - received task"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processEditReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Edit(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Edit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEditResp(output))
}

// Delete godoc
// @Summary     Delete or decline a task
// @Description Owners cascade the delete to every copy; invitees decline the invitation.
// @Tags        Task
// @Produce     json
// @Param       X-User-Name header string true "Caller display name"
// @Param       id          path   string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks, ordered by the cursor's filter key when set.
// @Tags        Task
// @Produce     json
// @Param       X-User-Name header string true "Caller display name"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}
