package handlers

import (
	"net/http"

	"delivery-finance/internal/errors"
	"delivery-finance/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and business rule rejections (4xx responses)
//    Use cases:
//    - Malformed input: SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("..."))
//    - Upload problems: SendError(c, errors.UploadMissingColumn)
//    - Rejected periods: SendError(c, errors.ReportInvalidPeriod)
//
// 2. SendValidationError - For struct validation failures on bound requests
//
// 3. SendSystemError - For system/internal errors (500 responses)
//    Use cases:
//    - Service layer internal errors
//    - Unexpected errors that should not expose internal details to client
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions
//    - return err without wrapping - Use SendSystemError to protect internal details

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
// Used for successful API responses with data, messages, and metadata
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
// Used for backward compatibility in tests
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendValidationError converts validator failures into a VALIDATION_001
// response with one detail per field. Other errors become system errors.
func SendValidationError(c echo.Context, err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return SendSystemError(c, err)
	}

	fieldErrors := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrors[fe.Field()] = validation.FormatFieldError(fe)
	}
	errorResponse := errors.NewValidationError(fieldErrors, getTraceID(c))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
