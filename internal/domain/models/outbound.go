package models

// OutboundMessageRequest represents requests to send a message manually via the API.
type OutboundMessageRequest struct {
	To         string `json:"to" binding:"required"`
	Message    string `json:"message" binding:"required"`
	PreviewURL bool   `json:"preview_url"`
}

// QueryRequest is the body of an advisor question.
type QueryRequest struct {
	Question string `json:"question" binding:"required"`
}
