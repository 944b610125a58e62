package response

// Resp is the JSON body of every error response.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Errors    any    `json:"errors,omitempty"`
}

// MessageResp is returned by endpoints that only acknowledge an action.
type MessageResp struct {
	Message string `json:"message"`
}
