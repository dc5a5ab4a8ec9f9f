package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_007"
)

// Upload error codes (UPLOAD_*)
const (
	UploadMissingFile   ErrorCode = "UPLOAD_001"
	UploadTooLarge      ErrorCode = "UPLOAD_002"
	UploadUnreadable    ErrorCode = "UPLOAD_003"
	UploadMissingColumn ErrorCode = "UPLOAD_004"
)

// Report error codes (REPORT_*)
const (
	ReportInvalidPeriod   ErrorCode = "REPORT_001"
	ReportTooManyPeriods  ErrorCode = "REPORT_002"
	ReportGenerationAbort ErrorCode = "REPORT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Upload errors
	UploadMissingFile:   "A delivery export file is required",
	UploadTooLarge:      "Uploaded file exceeds the maximum allowed size",
	UploadUnreadable:    "Uploaded file could not be read as a delivery table",
	UploadMissingColumn: "Uploaded table is missing a required column",

	// Report errors
	ReportInvalidPeriod:   "Invalid report period",
	ReportTooManyPeriods:  "Too many periods requested",
	ReportGenerationAbort: "Report generation was cancelled",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
