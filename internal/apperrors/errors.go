package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ResultCode is the machine readable reason attached to an application error.
type ResultCode string

const (
	CartNotFound        ResultCode = "CART_NOT_FOUND"
	CartProductNotFound ResultCode = "CART_PRODUCT_NOT_FOUND"
	UserNotFound        ResultCode = "USER_NOT_FOUND"
	OrderNotFound       ResultCode = "ORDER_NOT_FOUND"
	InvalidOrderProduct ResultCode = "INVALID_ORDER_PRODUCT"
	InvalidRequest      ResultCode = "INVALID_REQUEST"
	Unauthorized        ResultCode = "UNAUTHORIZED"
	InternalServerError ResultCode = "INTERNAL_SERVER_ERROR"
)

// Error is the single error kind surfaced by the service layer. Status is an
// HTTP status code the boundary layer responds with.
type Error struct {
	Status  int
	Code    ResultCode
	Message string
	Err     error
}

// Sentinel errors, compared with errors.Is by result code.
var (
	ErrCartNotFound        = New(http.StatusBadRequest, CartNotFound, "cart not found")
	ErrCartProductNotFound = New(http.StatusBadRequest, CartProductNotFound, "cart product not found")
	ErrUserNotFound        = New(http.StatusNotFound, UserNotFound, "user not found")
	ErrOrderNotFound       = New(http.StatusNotFound, OrderNotFound, "order not found")
	ErrInvalidOrderProduct = New(http.StatusBadRequest, InvalidOrderProduct, "invalid order product")
	ErrInvalidRequest      = New(http.StatusBadRequest, InvalidRequest, "invalid request")
	ErrUnauthorized        = New(http.StatusUnauthorized, Unauthorized, "unauthorized")
)

// New creates an application error without a cause.
func New(status int, code ResultCode, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an application error with the same result code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithMessage returns a copy of e carrying a more specific message.
func (e *Error) WithMessage(format string, args ...any) *Error {
	cp := *e
	cp.Message = fmt.Sprintf(format, args...)
	return &cp
}

// Wrap returns a copy of e with err attached as its cause.
func (e *Error) Wrap(err error) *Error {
	cp := *e
	cp.Err = err
	return &cp
}

// From extracts an application error from err. Errors of any other kind are
// reported as INTERNAL_SERVER_ERROR.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{
		Status:  http.StatusInternalServerError,
		Code:    InternalServerError,
		Message: "internal server error",
		Err:     err,
	}
}
