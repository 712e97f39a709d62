package handlers

const (
	ErrInvalidJSON         = "Invalid request body"
	ErrUnauthorized        = "Unauthorized"
	ErrForbidden           = "Forbidden"
	ErrInvalidCSRFToken    = "Invalid or missing CSRF token"
	ErrInternalServerError = "Internal server error"
	ErrServiceUnavailable  = "Something went wrong. Please try again in a moment."
	ErrGuestNotFound       = "We couldn't find your invitation. Please check the spelling of your name or contact us."
	ErrNotFound            = "Not found"
	ErrConflict            = "That action isn't possible right now. Please refresh and try again."

	// maxBodyBytes bounds JSON request bodies
	maxBodyBytes = 64 << 10
)
