package utils

import (
	"marketplace/entity"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Principal is the authenticated caller. It only exists on the context
// after the auth middleware resolved a live user.
type Principal struct {
	User *entity.User
}

func (p Principal) UserID() uint      { return p.User.ID }
func (p Principal) Role() entity.Role { return p.User.Role }

func (p Principal) HasRole(roles ...entity.Role) bool {
	for _, r := range roles {
		if p.User.Role == r {
			return true
		}
	}
	return false
}

func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	if !ok || p.User == nil {
		return Principal{}, false
	}
	return p, true
}
