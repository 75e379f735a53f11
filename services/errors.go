package services

type ErrorCode string

const (
	ErrorCodeValidation   ErrorCode = "VALIDATION"
	ErrorCodeConflict     ErrorCode = "CONFLICT"
	ErrorCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrorCodeUnauthorized ErrorCode = "UNAUTHORIZED"
)

// Error is a failure the caller can act on. Anything else coming out of a
// service is an infrastructure error.
type Error struct {
	Code    ErrorCode
	Message string
}

var (
	ErrValidation         = &Error{Code: ErrorCodeValidation}
	ErrConflict           = &Error{Code: ErrorCodeConflict}
	ErrNotFound           = &Error{Code: ErrorCodeNotFound}
	ErrInvalidCredentials = &Error{Code: ErrorCodeUnauthorized}
)

func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

// Is matches any *Error with the same code when target carries no message,
// so errors.Is(err, ErrNotFound) works for every not-found error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Message == "" || t.Message == e.Message)
}

func validationError(message string) error {
	return NewError(ErrorCodeValidation, message)
}
