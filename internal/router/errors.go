package router

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperrors "dailyfood/internal/errors"
)

var codes = map[int]string{
	http.StatusBadRequest:            "VALIDATION_ERROR",
	http.StatusUnauthorized:          "UNAUTHENTICATED",
	http.StatusForbidden:             "FORBIDDEN",
	http.StatusNotFound:              "NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "BODY_TOO_LARGE",
	http.StatusInternalServerError:   "INTERNAL_ERROR",
}

func unauthenticated(cause error) error {
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: "invalid or expired token",
		Code:  "UNAUTHENTICATED",
	}).SetInternal(cause)
}

// ErrorHandler renders every error as an errors.ErrorResponse. Server errors are
// logged with their cause and reported without detail.
func ErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := render(err)
		if status >= http.StatusInternalServerError {
			log.WithError(err).WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"uri":        c.Request().RequestURI,
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			}).Error("request failed")
			body = apperrors.ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"}
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			log.WithError(writeErr).Warn("write error response")
		}
	}
}

func render(err error) (int, apperrors.ErrorResponse) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		mapped := apperrors.MapErrorToHTTP(err)
		return mapped.StatusCode, mapped.ToErrorResponse()
	}

	switch msg := he.Message.(type) {
	case apperrors.ErrorResponse:
		return he.Code, msg
	case string:
		return he.Code, apperrors.ErrorResponse{Error: msg, Code: codeFor(he.Code)}
	case error:
		return he.Code, apperrors.ErrorResponse{Error: msg.Error(), Code: codeFor(he.Code)}
	default:
		return he.Code, apperrors.ErrorResponse{Error: http.StatusText(he.Code), Code: codeFor(he.Code)}
	}
}

func codeFor(status int) string {
	if code, ok := codes[status]; ok {
		return code
	}
	return "HTTP_" + strconv.Itoa(status)
}
