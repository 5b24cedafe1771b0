package services

import (
	"errors"
	"fmt"
)

type BookingErrorType string

const (
	ErrInvalidInput       BookingErrorType = "INVALID_INPUT"
	ErrEventNotFound      BookingErrorType = "EVENT_NOT_FOUND"
	ErrUserNotFound       BookingErrorType = "USER_NOT_FOUND"
	ErrSlotConflict       BookingErrorType = "SLOT_CONFLICT"
	ErrAlreadyRegistered  BookingErrorType = "ALREADY_REGISTERED"
	ErrNotRegistered      BookingErrorType = "NOT_REGISTERED"
	ErrInvalidStatus      BookingErrorType = "INVALID_STATUS"
	ErrPermissionDenied   BookingErrorType = "PERMISSION_DENIED"
	ErrPaymentFailed      BookingErrorType = "PAYMENT_FAILED"
	ErrUsernameTaken      BookingErrorType = "USERNAME_TAKEN"
	ErrInvalidCredentials BookingErrorType = "INVALID_CREDENTIALS"
	ErrStorage            BookingErrorType = "STORAGE_ERROR"
)

// BookingError is a business-rule violation. State is left untouched
// whenever one is returned.
type BookingError struct {
	Message string           `json:"message"`
	Code    BookingErrorType `json:"code"`
	Details error            `json:"details,omitempty"`
}

func (e *BookingError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s [%s]: %v", e.Message, e.Code, e.Details)
	}
	return fmt.Sprintf("%s [%s]", e.Message, e.Code)
}

func (e *BookingError) Unwrap() error {
	return e.Details
}

// Is matches any BookingError carrying the same code, so callers can write
// errors.Is(err, &BookingError{Code: ErrSlotConflict}).
func (e *BookingError) Is(target error) bool {
	t, ok := target.(*BookingError)
	return ok && t.Code == e.Code
}

func NewBookingError(message string, code BookingErrorType, details error) *BookingError {
	return &BookingError{
		Message: message,
		Code:    code,
		Details: details,
	}
}

func IsBookingError(err error) bool {
	var berr *BookingError
	return errors.As(err, &berr)
}

func GetBookingErrorCode(err error) BookingErrorType {
	var berr *BookingError
	if errors.As(err, &berr) {
		return berr.Code
	}
	return ""
}

// ErrorMessage returns the operator-facing part of err.
func ErrorMessage(err error) string {
	var berr *BookingError
	if errors.As(err, &berr) {
		return berr.Message
	}
	return err.Error()
}
