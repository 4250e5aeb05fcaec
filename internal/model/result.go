package model

import "time"

// OperationResult is the envelope returned by every non-list endpoint.
type OperationResult struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	Timestamp     DateTime `json:"timestamp"`
	OperationType *string  `json:"operation_type"`
	Data          any      `json:"data"`
}

// NewSuccess builds a successful envelope.
func NewSuccess(operationType, message string, data any) OperationResult {
	return OperationResult{
		Success:       true,
		Message:       message,
		Timestamp:     NewDateTime(time.Now()),
		OperationType: &operationType,
		Data:          data,
	}
}

// NewFailure builds a failed envelope without data.
func NewFailure(operationType, message string) OperationResult {
	return OperationResult{
		Success:       false,
		Message:       message,
		Timestamp:     NewDateTime(time.Now()),
		OperationType: &operationType,
	}
}
