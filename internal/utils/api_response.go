package utils

import "time"

// The back-office API speaks one envelope: a success flag plus either a data
// payload or an error with a stable code the front office can switch on
// (NOT_FOUND, STATE_CONFLICT, VALIDATION_FAILED, ...). Both shapes carry a
// response timestamp in meta.

type SuccessResponse struct {
	Success bool  `json:"success"`
	Data    any   `json:"data"`
	Meta    *Meta `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
	Meta    *Meta    `json:"meta,omitempty"`
}

// APIError pairs a machine-readable code with an operator-readable message.
// Codes are part of the API contract; messages are not.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Meta struct {
	Timestamp time.Time `json:"timestamp"`
}

func newMeta() *Meta {
	return &Meta{Timestamp: time.Now()}
}

func CreateSuccessResponse(data any) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    newMeta(),
	}
}

func CreateErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error: APIError{
			Code:    code,
			Message: message,
		},
		Meta: newMeta(),
	}
}
