package middleware

import (
	"github.com/gin-gonic/gin"

	"timeplanner/internal/model"
	"timeplanner/pkg/response"
)

// HeaderUserName carries the caller's display name, "Name Surname".
const HeaderUserName = "X-User-Name"

const scopeKey = "scope"

// Auth resolves the caller against the user directory and attaches
// their scope to the request. Unknown callers get 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		displayName := c.GetHeader(HeaderUserName)
		if displayName == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, found, err := m.userUC.Resolve(ctx, model.UserFromDisplayName(displayName))
		if err != nil {
			m.l.Errorf(ctx, "middleware: resolve %q: %v", displayName, err)
			response.InternalError(c, err)
			c.Abort()
			return
		}
		if !found {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, sc)
		c.Next()
	}
}

// GetScope returns the scope attached by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
