package model

// BatchRequest is the body of POST /api/earnings/batch
type BatchRequest struct {
	Symbols []string `json:"symbols"`
}
