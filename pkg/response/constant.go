package response

const (
	MessageSuccess          = "success"
	DefaultErrorMessage     = "something went wrong"
	InternalServerErrorCode = 500
	ValidationErrorCode     = 400
)
