package http

import (
	"github.com/gin-gonic/gin"

	"timeplanner/internal/middleware"
	"timeplanner/pkg/response"
)

// Register godoc
// @Summary     Register or sign in a user
// @Description Creates a directory entry for the name pair, or returns the existing one.
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "User name"
// @Success     200 {object} registerResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRegisterResp(output))
}

// List godoc
// @Summary     List users
// @Description Returns every registered user, for invitation pickers.
// @Tags        User
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// SignOut godoc
// @Summary     Sign out
// @Description Releases the caller's in-memory task state.
// @Tags        User
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/signout [POST]
func (h *handler) SignOut(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.SignOut(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.SignOut: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
