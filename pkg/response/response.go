package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "productivity-tracker/pkg/errors"
)

// OK sends 200 with data as the body. Success bodies are not enveloped so that
// list and entity payloads match the documented REST contract.
func OK(c *gin.Context, data any) {
	if data == nil {
		data = MessageResp{Message: MessageSuccess}
	}
	c.JSON(http.StatusOK, data)
}

// Message sends 200 with a {"message": msg} body.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageResp{Message: msg})
}

// Error sends an error response. An *errors.HTTPError anywhere in the chain
// decides the status; binding and validation errors map to 400; everything
// else is reported as an opaque 500.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.AbortWithStatusJSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   validationErr.Error(),
		})
		return
	}

	InternalError(c, err)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}

// ValidationError marks request validation failures.
type ValidationError struct {
	Err error
}

// NewValidationError wraps err as a 400-class failure.
func NewValidationError(err error) ValidationError {
	return ValidationError{Err: err}
}

func (e ValidationError) Error() string { return e.Err.Error() }

func (e ValidationError) Unwrap() error { return e.Err }
