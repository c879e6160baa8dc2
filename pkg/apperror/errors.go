package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a class of application error.
type Code int

const (
	CodeValidation Code = iota + 1000
	CodeNotFound
	CodeInvalidCredential
	CodeUnauthorized
	CodeInvalidQuantity
	CodeInsufficientStock
	CodeDrugNotFound
	CodeAlreadyConfirmed
	CodeDuplicate
	CodeStore
)

// AppError carries a domain error code and a user-facing message.
type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status maps the error code to an HTTP status.
func (e *AppError) Status() int {
	switch e.Code {
	case CodeValidation, CodeInvalidQuantity, CodeInsufficientStock:
		return http.StatusBadRequest
	case CodeInvalidCredential:
		return http.StatusUnauthorized
	case CodeUnauthorized:
		return http.StatusForbidden
	case CodeNotFound, CodeDrugNotFound:
		return http.StatusNotFound
	case CodeAlreadyConfirmed, CodeDuplicate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Validation(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func NotFound(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func NotFoundMsg(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

func InvalidCredential(message string) *AppError {
	return &AppError{Code: CodeInvalidCredential, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

func InvalidQuantity(message string) *AppError {
	return &AppError{Code: CodeInvalidQuantity, Message: message}
}

func InsufficientStock(drug string) *AppError {
	return &AppError{Code: CodeInsufficientStock, Message: fmt.Sprintf("not enough stock for %s", drug)}
}

func DrugNotFound(drug string) *AppError {
	return &AppError{Code: CodeDrugNotFound, Message: fmt.Sprintf("drug %s not found in inventory", drug)}
}

func AlreadyConfirmed(message string) *AppError {
	return &AppError{Code: CodeAlreadyConfirmed, Message: message}
}

func Duplicate(message string) *AppError {
	return &AppError{Code: CodeDuplicate, Message: message}
}

func Store(err error) *AppError {
	return &AppError{Code: CodeStore, Message: "internal server error", Err: err}
}

// As extracts an *AppError from an error chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}
