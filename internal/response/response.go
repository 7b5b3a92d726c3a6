// Package response provides shared JSON response helpers for HTTP handlers.
package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the body of every error response.
//
// Successful responses are written bare (an upload result, a list page) so
// clients decode the resource directly. Errors keep the envelope so a client
// can always check success and read a message regardless of the endpoint.
type Envelope struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error,omitempty" example:"image not found"`
}

const internalErrorMessage = "internal server error"

// JSON encodes payload as the response body with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes payload with status 200.
func OK(w http.ResponseWriter, payload any) {
	JSON(w, http.StatusOK, payload)
}

// Created writes payload with status 201.
func Created(w http.ResponseWriter, payload any) {
	JSON(w, http.StatusCreated, payload)
}

// NoContent writes an empty 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error writes an Envelope carrying message. An empty message falls back to
// the standard status text.
func Error(w http.ResponseWriter, status int, message string) {
	if message == "" {
		message = http.StatusText(status)
	}
	JSON(w, status, Envelope{Error: message})
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

func RequestTooLarge(w http.ResponseWriter, message string) {
	Error(w, http.StatusRequestEntityTooLarge, message)
}

// InternalError writes a 500 without any detail; the cause belongs in the log.
func InternalError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, internalErrorMessage)
}
