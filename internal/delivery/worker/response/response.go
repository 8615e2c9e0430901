package response

import (
	"net/http"

	deliverycontext "athan/internal/delivery/context"
	domainerrors "athan/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Data  any        `json:"data,omitempty"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
	TickID    string `json:"tick_id,omitempty"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
		TickID:    deliverycontext.GetTickID(c.Request().Context()),
	}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response, optionally carrying the partial result
func Error(c echo.Context, statusCode int, errorCode, message string, data any) error {
	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
		},
		Data: data,
		Meta: meta(c),
	})
}

// HandleAppError converts domain errors to their HTTP response; anything else is a 500
func HandleAppError(c echo.Context, err error, data any) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), data)
	}

	return Error(c, http.StatusInternalServerError,
		domainerrors.ErrInternalServer.ErrorCode(), domainerrors.ErrInternalServer.Message(), data)
}
