package controllers

import (
	"marketplace/pkg/apperr"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
)

// requirePrincipal is the guard every authenticated handler runs before
// using the caller. Auth middleware normally guarantees the principal;
// a missing one is answered with 400 as the API always has.
func requirePrincipal(c *gin.Context) (utils.Principal, error) {
	p, ok := utils.CurrentPrincipal(c)
	if !ok {
		return utils.Principal{}, apperr.BadRequest("no user specified")
	}
	return p, nil
}
