package controller

import "earnings/model"

// NewResponse creates a success response with the given data and message.
func NewResponse(data any, message string) model.Response {
	return model.Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates a failure response. message carries the cause
// when one can be shown to the client.
func NewErrorResponse(err, message string) model.Response {
	return model.Response{
		Success: false,
		Error:   err,
		Message: message,
	}
}
