package model

// Response is the uniform envelope for success and error bodies.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Detail  string      `json:"detail,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse builds a success envelope with an optional payload.
func NewSuccessResponse(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// NewErrorResponse builds an error envelope. Detail carries the underlying
// cause when it is safe to expose.
func NewErrorResponse(message, detail string) Response {
	return Response{Success: false, Message: message, Detail: detail}
}

// SessionUser is the minimal profile snapshot stored in the session record
// and echoed back on login.
type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
