package server

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error         string   `json:"error"`
	Details       string   `json:"details,omitempty"`
	MissingFields []string `json:"missing_fields,omitempty"`
}
