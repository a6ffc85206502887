package model

import "time"

// Common Response structure for all API calls
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BatchResponse carries per-symbol outcomes; it is successful even when
// individual symbols failed.
type BatchResponse struct {
	Success bool          `json:"success"`
	Results []BatchResult `json:"results"`
}

type HealthResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
	Apis      map[string]bool `json:"apis,omitempty"`
}
