// Package api defines the uniform response envelope and HATEOAS link shapes
// shared by every endpoint.
package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/apperr"
)

// Response is the envelope every endpoint returns:
// {code, message, data?, links?, pagination?, errors?}.
type Response struct {
	Code       int               `json:"code"`
	Message    string            `json:"message,omitempty"`
	Data       any               `json:"data,omitempty"`
	Links      any               `json:"links,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
}

// Pagination describes the position of a list response within the full
// result set. Next and Prev are omitted at the edges.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Next       int   `json:"next,omitempty"`
	Prev       int   `json:"prev,omitempty"`
	TotalItems int64 `json:"totalItems"`
	TotalPage  int   `json:"totalPage"`
}

// OK writes a success envelope with the given status code.
func OK(c *gin.Context, code int, message string, data any, links any) {
	c.JSON(code, Response{Code: code, Message: message, Data: data, Links: links})
}

// Fail maps a classified error to its status code and envelope. Unclassified
// errors surface as a generic 500; the cause is logged, never returned.
func Fail(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := kind.HTTPStatus()
	if kind == apperr.Internal {
		slog.Error("request failed", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
	}
	c.JSON(status, Response{
		Code:    status,
		Message: apperr.MessageOf(err),
		Errors:  apperr.FieldsOf(err),
	})
}

// AbortUnauthorized writes the single 401 body used by the authorization
// gate. Missing and invalid credentials are deliberately indistinguishable.
func AbortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(401, Response{Code: 401, Message: "Unauthorized"})
}
