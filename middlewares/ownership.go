package middlewares

import (
	"context"
	"strconv"

	"marketplace/entity"
	"marketplace/pkg/apperr"
	"marketplace/pkg/resp"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
)

// OwnershipChecker is implemented by every service whose resources have
// an owning user. A missing resource is reported as an error.
type OwnershipChecker interface {
	BelongsTo(ctx context.Context, resourceID, userID uint) (bool, error)
}

type OwnershipOptions struct {
	// Param is the route parameter holding the resource id ("id" if empty).
	Param string
	// AdminBypass lets admins through without owning the resource.
	AdminBypass bool
}

// OwnsResource stops the chain with 403 unless the principal owns the
// resource named by the route parameter.
func OwnsResource(checker OwnershipChecker, opts OwnershipOptions) gin.HandlerFunc {
	param := opts.Param
	if param == "" {
		param = "id"
	}

	return func(c *gin.Context) {
		p, ok := utils.CurrentPrincipal(c)
		if !ok {
			resp.Abort(c, apperr.Unauthorized("authentication required"))
			return
		}

		id, err := strconv.ParseUint(c.Param(param), 10, 64)
		if err != nil || id == 0 {
			resp.Abort(c, apperr.BadRequest("invalid "+param))
			return
		}

		if opts.AdminBypass && p.Role() == entity.RoleAdmin {
			c.Next()
			return
		}

		owns, err := checker.BelongsTo(c.Request.Context(), uint(id), p.UserID())
		if err != nil {
			resp.Abort(c, err)
			return
		}
		if !owns {
			resp.Abort(c, apperr.Forbidden("you do not own this resource"))
			return
		}
		c.Next()
	}
}
