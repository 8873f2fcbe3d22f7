package middleware

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Eursukkul/travel-booking/internal/dto"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error in the response envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			detail = m
		} else {
			detail = fmt.Sprint(he.Message)
		}
	}
	if code >= http.StatusInternalServerError {
		log.Printf("[HTTP] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, dto.Fail(http.StatusText(code), detail))
	}
	if writeErr != nil {
		log.Printf("[HTTP] failed to write error response: %v", writeErr)
	}
}
