package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo pairs an error code with a user-facing message
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts a persistence error into a code and message safe to show
// to a client, hiding driver-level detail.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "An internal error occurred",
		}
	}

	errStrLower := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: notFoundMessage(context),
		}
	}

	// PostgreSQL unique violation (23505); the renewal composite key relies on
	// this as the authoritative duplicate guard
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		return duplicateKeyInfo(context)
	}

	// Foreign key violation (23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "A related record is missing or still referenced",
		}
	}

	// Not-null violation (23502)
	if strings.Contains(errStrLower, "violates not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "A required value was missing",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: "An internal error occurred",
	}
}

func notFoundMessage(context string) string {
	switch context {
	case "company":
		return "Company not found"
	case "questionnaire":
		return "Questionnaire not found"
	case "renewal":
		return "Renewal not found"
	case "reward":
		return "Reward not found"
	case "issue":
		return "Issue not found"
	case "campaign":
		return "Campaign not found"
	default:
		return "Resource not found"
	}
}

// ParseAndRespond parses the error and writes the standard error payload
func ParseAndRespond(c interface{ JSON(int, interface{}) }, statusCode int, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(statusCode, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}

func duplicateKeyInfo(context string) ErrorInfo {
	if context == "renewal" {
		return ErrorInfo{
			Code:    RenewalDuplicate,
			Message: "A renewal already exists for this company and year",
		}
	}
	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "The record already exists",
	}
}
