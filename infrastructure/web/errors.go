package web

import "encoding/json"

// ErrorResponse is the framework level error type that implements Encoder.
// Application errors carry their own encoder; this exists for failures inside
// the web package itself.
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewError(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

func (e ErrorResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	return data, "application/json", err
}

func (e ErrorResponse) HTTPStatus() int {
	return 500
}
