package models

// Service-level errors. The HTTP helper picks the status code from the type.

type ErrorBadRequest struct {
	Message string
}

func (e *ErrorBadRequest) Error() string { return e.Message }

type ErrorUnauthorized struct {
	Message string
}

func (e *ErrorUnauthorized) Error() string { return e.Message }

type ErrorForbidden struct {
	Message string
}

func (e *ErrorForbidden) Error() string { return e.Message }

type ErrorNotFound struct {
	Message string
}

func (e *ErrorNotFound) Error() string { return e.Message }

type ErrorConflict struct {
	Message string
}

func (e *ErrorConflict) Error() string { return e.Message }

// ErrorInternalServer hides Cause from clients; it is only logged.
type ErrorInternalServer struct {
	Message string
	Cause   error
}

func (e *ErrorInternalServer) Error() string { return e.Message }

func (e *ErrorInternalServer) Unwrap() error { return e.Cause }

// Internal wraps an unexpected failure.
func Internal(cause error) error {
	return &ErrorInternalServer{Message: "internal server error", Cause: cause}
}

var (
	ErrNoSuchAccount   = &ErrorUnauthorized{Message: "no such account"}
	ErrBadCredentials  = &ErrorUnauthorized{Message: "bad credentials"}
	ErrInactiveAccount = &ErrorUnauthorized{Message: "inactive account"}
	ErrInvalidToken    = &ErrorBadRequest{Message: "invalid token"}
	ErrTokenRejected   = &ErrorUnauthorized{Message: "invalid token"}

	ErrEmailTaken    = &ErrorConflict{Message: "user with this email already exists"}
	ErrUsernameTaken = &ErrorConflict{Message: "username already taken"}
	ErrUserExists    = &ErrorConflict{Message: "user with this username or email already exists"}

	ErrAlreadyFavorited = &ErrorConflict{Message: "course already in favorites"}
	ErrAlreadyPurchased = &ErrorConflict{Message: "course already purchased"}
	ErrAlreadyReviewed  = &ErrorConflict{Message: "review already exists"}

	ErrUserNotFound     = &ErrorNotFound{Message: "user not found"}
	ErrCourseNotFound   = &ErrorNotFound{Message: "course not found"}
	ErrLessonNotFound   = &ErrorNotFound{Message: "lesson not found"}
	ErrFavoriteNotFound = &ErrorNotFound{Message: "favorite not found"}
	ErrReviewNotFound   = &ErrorNotFound{Message: "review not found"}
	ErrPageNotFound     = &ErrorNotFound{Message: "page not found"}

	ErrUnknownCategory   = &ErrorBadRequest{Message: "category does not exist"}
	ErrAvatarUnsupported = &ErrorBadRequest{Message: "avatar uploads are not configured"}
	ErrReviewTarget      = &ErrorBadRequest{Message: "a review targets exactly one of course or lesson"}
)
