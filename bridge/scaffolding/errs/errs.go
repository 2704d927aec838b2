// Package errs provides types and support related to web error functionality.
package errs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
)

// ErrCode represents an error kind in the taxonomy.
type ErrCode int

const (
	OK ErrCode = iota
	InvalidArgument
	NotFound
	Internal
	InternalOnlyLog
	Unavailable
)

var codeNames = map[ErrCode]string{
	OK:              "ok",
	InvalidArgument: "invalid_argument",
	NotFound:        "not_found",
	Internal:        "internal",
	InternalOnlyLog: "internal_only_log",
	Unavailable:     "unavailable",
}

func (c ErrCode) String() string {
	name, ok := codeNames[c]
	if !ok {
		return "unknown"
	}
	return name
}

var httpStatus = map[ErrCode]int{
	OK:              http.StatusOK,
	InvalidArgument: http.StatusBadRequest,
	NotFound:        http.StatusNotFound,
	Internal:        http.StatusInternalServerError,
	InternalOnlyLog: http.StatusInternalServerError,
	Unavailable:     http.StatusServiceUnavailable,
}

// Error represents an error in the system. It carries the source location of
// the call site so the error middleware can log where a failure originated.
type Error struct {
	Code     ErrCode `json:"-"`
	Message  string  `json:"error"`
	FuncName string  `json:"-"`
	FileName string  `json:"-"`
}

// New constructs an error based on an app error.
func New(code ErrCode, err error) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  err.Error(),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Newf constructs an error based on an error format string.
func Newf(code ErrCode, format string, v ...any) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  fmt.Sprintf(format, v...),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Encode implements the web Encoder interface, producing the structured
// {"error": ...} payload every failure is reported with.
func (e *Error) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	return data, "application/json", err
}

// HTTPStatus implements the web HTTPStatus interface.
func (e *Error) HTTPStatus() int {
	status, ok := httpStatus[e.Code]
	if !ok {
		return http.StatusInternalServerError
	}
	return status
}
