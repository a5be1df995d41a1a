package domain

type ErrorCode string

const (
	ErrorCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrorCodeBadRequest ErrorCode = "BAD_REQUEST"
	ErrorCodeUpstream   ErrorCode = "UPSTREAM_ERROR"
	ErrorCodeValidation ErrorCode = "VALIDATION_ERROR"
)

// DomainError carries an error code and the HTTP status the handler
// should respond with. Errors that are not DomainError map to 500.
type DomainError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
}

func (e *DomainError) Error() string {
	return e.Message
}
