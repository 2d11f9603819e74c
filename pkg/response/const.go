package response

// Envelope constants used by the standard response helpers.
const (
	// MessageSuccess is the message on successful responses.
	MessageSuccess = "Success"

	// InternalServerErrorCode is the error_code for 500 responses.
	InternalServerErrorCode = 500

	// DefaultErrorMessage is the message for unexpected server errors.
	DefaultErrorMessage = "internal server error"

	// DateFormat is the layout Date marshals with.
	DateFormat = "2006-01-02"

	// DateTimeFormat is the layout DateTime marshals with.
	DateTimeFormat = "2006-01-02 15:04:05"
)
