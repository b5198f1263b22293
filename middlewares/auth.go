package middlewares

import (
	"context"
	"errors"
	"strings"

	"marketplace/entity"
	"marketplace/pkg/apperr"
	"marketplace/pkg/resp"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
)

// UserFinder loads the account behind a token.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// Authenticator turns a bearer JWT into a utils.Principal on the context.
type Authenticator struct {
	secret string
	users  UserFinder
}

func NewAuthenticator(secret string, users UserFinder) *Authenticator {
	return &Authenticator{secret: secret, users: users}
}

// Require accepts only the Authorization header.
func (a *Authenticator) Require() gin.HandlerFunc {
	return a.handler(false)
}

// RequireWS also accepts ?token= since browsers cannot set headers on
// a websocket handshake.
func (a *Authenticator) RequireWS() gin.HandlerFunc {
	return a.handler(true)
}

func (a *Authenticator) handler(allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok && allowQuery {
			tokenStr = c.Query("token")
			ok = tokenStr != ""
		}
		if !ok {
			resp.Abort(c, apperr.Unauthorized("missing or invalid token"))
			return
		}

		claims, err := utils.ParseToken(tokenStr, a.secret, utils.AccessToken)
		if err != nil {
			resp.Abort(c, apperr.Unauthorized("invalid token"))
			return
		}

		user, err := a.users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			var ae *apperr.Error
			if errors.As(err, &ae) {
				resp.Abort(c, apperr.Unauthorized("user no longer exists"))
				return
			}
			resp.Abort(c, err)
			return
		}

		utils.SetPrincipal(c, utils.Principal{User: user})
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	return token, ok && token != ""
}
