package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeIntegrity    ErrorType = "INTEGRITY_ERROR"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidDate      ErrorCode = "INVALID_DATE"
	ErrCodeInvalidBody      ErrorCode = "INVALID_BODY"
	ErrCodeBodyTooLarge     ErrorCode = "BODY_TOO_LARGE"
	ErrCodeInvalidSection   ErrorCode = "INVALID_SECTION"
	ErrCodePasswordMismatch ErrorCode = "PASSWORD_MISMATCH"
	ErrCodeMissingFields    ErrorCode = "MISSING_FIELDS"

	ErrCodeConstraintViolated ErrorCode = "CONSTRAINT_VIOLATED"
	ErrCodeDepartmentRejected ErrorCode = "DEPARTMENT_REJECTED"
	ErrCodeEmployeeRejected   ErrorCode = "EMPLOYEE_REJECTED"
	ErrCodeSalaryRejected     ErrorCode = "SALARY_REJECTED"
	ErrCodeAttendanceRejected ErrorCode = "ATTENDANCE_REJECTED"
	ErrCodeLeaveRejected      ErrorCode = "LEAVE_REJECTED"
	ErrCodeRuleRejected       ErrorCode = "RULE_REJECTED"
	ErrCodeDeleteRejected     ErrorCode = "DELETE_REJECTED"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	ErrCodeSessionEnded       ErrorCode = "SESSION_ENDED"
)

type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Details != nil {
		if validationErrors, ok := e.Details.(ValidationErrors); ok && len(validationErrors.Errors) > 0 {
			return validationErrors.Errors[0].Message
		}
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches on type and code so that sentinel AppErrors work with errors.Is
// even after WithCause has been applied to a copy.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Code == t.Code
}

func (e *AppError) WithCause(cause error) *AppError {
	cp := *e
	cp.Cause = cause
	return &cp
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewValidationFieldError(field, message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeValidationFailed,
		Message:    "Validation failed",
		StatusCode: http.StatusBadRequest,
		Details: ValidationErrors{
			Errors: []ValidationError{
				{Field: field, Message: message, Code: string(code)},
			},
		},
	}
}

// NewIntegrityError reports a write rejected by a primary-key, unique,
// foreign-key, check or not-null constraint. Nothing was written.
func NewIntegrityError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeIntegrity,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrInvalidCredentials = NewUnauthorizedError("Invalid username or password.", ErrCodeInvalidCredentials)
	ErrInvalidToken       = NewUnauthorizedError("Invalid token", ErrCodeInvalidToken)
	ErrTokenExpired       = NewUnauthorizedError("Token has expired", ErrCodeTokenExpired)
	ErrSessionEnded       = NewUnauthorizedError("Session has ended", ErrCodeSessionEnded)

	ErrPasswordMismatch = NewValidationError("Passwords do not match.", ErrCodePasswordMismatch)
	ErrMissingFields    = NewValidationError("Please fill all fields.", ErrCodeMissingFields)

	ErrBodyTooLarge = &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeBodyTooLarge,
		Message:    "request body is too large",
		StatusCode: http.StatusRequestEntityTooLarge,
	}
)

func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsIntegrityError reports whether err carries an integrity violation.
func IsIntegrityError(err error) bool {
	appErr, ok := IsAppError(err)
	return ok && appErr.Type == ErrorTypeIntegrity
}

// RejectIntegrity rewrites an integrity violation into the message shown for
// the section that caused it. Other errors pass through unchanged.
func RejectIntegrity(err error, message string, code ErrorCode) error {
	appErr, ok := IsAppError(err)
	if !ok || appErr.Type != ErrorTypeIntegrity {
		return err
	}
	return NewIntegrityError(message, code).WithCause(err).WithDetails(appErr.Details)
}

func IsValidationError(err error) bool {
	appErr, ok := IsAppError(err)
	return ok && appErr.Type == ErrorTypeValidation
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
