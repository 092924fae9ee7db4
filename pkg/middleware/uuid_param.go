package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-summarizer/errors"
)

// RequireUUIDParam rejects requests whose path parameter is not a UUID.
func RequireUUIDParam(name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, err := uuid.Parse(c.Param(name)); err != nil {
				return c.JSON(http.StatusBadRequest, map[string]interface{}{
					"code":    errors.ErrorCode_INVALID_ARGUMENT,
					"message": name + " must be a valid UUID",
				})
			}
			return next(c)
		}
	}
}
