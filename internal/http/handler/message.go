package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

const (
	msgMissingCredentials = "username and password are required"
	msgInvalidPayload     = "invalid reminder payload"
	msgUnexpected         = "unexpected error occurred"
)

// ErrorResponse is the shape of every failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}
