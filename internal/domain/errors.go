package domain

import "errors"

// Error kinds. Every error returned by the use cases wraps exactly one of them,
// the transport layer maps kinds to HTTP statuses.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUpstream     = errors.New("upstream failure")
)

var (
	ErrUserNotFound       = NewError(ErrNotFound, "User not found")
	ErrUserAlreadyExists  = NewError(ErrConflict, "Email or username already in use.")
	ErrInvalidCredentials = NewError(ErrUnauthorized, "Invalid credentials.")
	ErrOAuthOnlyAccount   = NewError(ErrUnauthorized, "This account was created with Google OAuth. Please use Google login.")
	ErrNotAuthenticated   = NewError(ErrUnauthorized, "Not authenticated")

	ErrCartNotFound     = NewError(ErrNotFound, "Cart not found")
	ErrItemNotFound     = NewError(ErrNotFound, "Item not found in cart")
	ErrWishlistNotFound = NewError(ErrNotFound, "Wishlist not found")
	ErrOrderNotFound    = NewError(ErrNotFound, "Order not found")

	ErrMissingCourseID = NewError(ErrBadRequest, "Missing courseId")
	ErrMissingUserID   = NewError(ErrBadRequest, "Missing userId")
	ErrNoFile          = NewError(ErrBadRequest, "No file uploaded")
)

// Error carries a client-facing message on top of an error kind.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError keeps the cause for logs while exposing only message to clients.
func WrapError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error { return e.Err }
