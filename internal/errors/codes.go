package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral           ErrorCode = "VALIDATION_001"
	ValidationRequiredField     ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat     ErrorCode = "VALIDATION_003"
	ValidationInvalidAdviceKind ErrorCode = "VALIDATION_005"
	ValidationInvalidQuery      ErrorCode = "VALIDATION_006"
)

// Advice error codes (ADVICE_*)
const (
	AdviceSnapshotRequired ErrorCode = "ADVICE_001"
	AdviceQueryRequired    ErrorCode = "ADVICE_002"
	AdviceCategoryNotFound ErrorCode = "ADVICE_003"
	AdviceResourceNotFound ErrorCode = "ADVICE_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:           "Validation failed",
	ValidationRequiredField:     "Required field is missing",
	ValidationInvalidFormat:     "Invalid field format",
	ValidationInvalidAdviceKind: "Please select a valid advice type.",
	ValidationInvalidQuery:      "Query must be between 1 and 500 characters",

	// Advice errors
	AdviceSnapshotRequired: "Please provide your financial data to receive personalized advice.",
	AdviceQueryRequired:    "Please provide both a query and your financial data.",
	AdviceCategoryNotFound: "Category not found in the provided financial data",
	AdviceResourceNotFound: "Requested resource not found",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}
