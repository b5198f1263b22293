package middlewares

import (
	"marketplace/entity"
	"marketplace/pkg/apperr"
	"marketplace/pkg/resp"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
)

// Allow passes only principals holding one of roles.
func Allow(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := utils.CurrentPrincipal(c)
		if !ok {
			resp.Abort(c, apperr.Unauthorized("authentication required"))
			return
		}
		if !p.HasRole(roles...) {
			resp.Abort(c, apperr.Forbidden("forbidden"))
			return
		}
		c.Next()
	}
}
