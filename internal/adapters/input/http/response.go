package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// Forbidden response
	Forbidden = Status{Code: http.StatusForbidden, Message: []string{"Sorry, Permission denied"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

// ResultResponse struct - HTTP response DTO for a stored assessment result
type ResultResponse struct {
	ID        *uuid.UUID      `json:"id,omitempty"`
	SenderID  string          `json:"sender_id"`
	Severity  string          `json:"severity"`
	Answers   json.RawMessage `json:"answers,omitempty"`
	CreatedAt *time.Time      `json:"created_at,omitempty"`
}
