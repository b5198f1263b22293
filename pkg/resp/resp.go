package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes {key: data} with 200.
func OK(c *gin.Context, key string, data any) {
	c.JSON(http.StatusOK, gin.H{key: data})
}

// Created writes {key: data} with 201.
func Created(c *gin.Context, key string, data any) {
	c.JSON(http.StatusCreated, gin.H{key: data})
}

// Fail records err for the error middleware, which renders it.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
}

// Abort records err and stops the middleware chain.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
