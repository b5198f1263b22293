package middlewares

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/dto"
	"marketplace/pkg/apperr"
	"marketplace/pkg/resp"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Segment names the part of the request a schema applies to.
type Segment string

const (
	Params Segment = "params"
	Query  Segment = "query"
	Body   Segment = "body"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, ok := dto.ParseDate(fl.Field().String())
			return ok
		})
	}
}

// Validate binds segment into a T, checks its binding tags and stores
// it for Validated. Any failure ends the request with 400.
func Validate[T any](seg Segment) gin.HandlerFunc {
	return func(c *gin.Context) {
		var v T
		if err := bindSegment(c, seg, &v); err != nil {
			resp.Abort(c, apperr.BadRequest(describe(seg, err)))
			return
		}
		c.Set(validatedKey(seg), v)
		c.Next()
	}
}

// Validated returns what Validate stored, or the zero T.
func Validated[T any](c *gin.Context, seg Segment) T {
	var zero T
	v, ok := c.Get(validatedKey(seg))
	if !ok {
		return zero
	}
	t, ok := v.(T)
	if !ok {
		return zero
	}
	return t
}

func bindSegment(c *gin.Context, seg Segment, obj any) error {
	switch seg {
	case Params:
		return c.ShouldBindUri(obj)
	case Query:
		return c.ShouldBindQuery(obj)
	case Body:
		return c.ShouldBind(obj)
	}
	return fmt.Errorf("unknown request segment %q", seg)
}

func validatedKey(seg Segment) string { return "validated." + string(seg) }

func describe(seg Segment, err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Sprintf("invalid %s: %v", seg, err)
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
	}
	return fmt.Sprintf("invalid %s: %s", seg, strings.Join(parts, "; "))
}
