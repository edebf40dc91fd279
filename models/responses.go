package models

// MessageResponse is the uniform success envelope returned by every write
// operation of the HTTP API.
type MessageResponse struct {
	Message string `json:"message"`
}
