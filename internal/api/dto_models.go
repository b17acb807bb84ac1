package api

// ErrorResponse is the generic error shape returned by every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is the shape for simple success acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// MediaResponse carries the public URL of an uploaded media object.
type MediaResponse struct {
	URL string `json:"url"`
}
