package response

// StandardApiResponse is the envelope every JSON endpoint replies with.
// Data carries the payload on success; Errors carries validation or
// failure details and is omitted otherwise.
type StandardApiResponse struct {
	Status     string      `json:"status"` // "success" or "error"
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
}
