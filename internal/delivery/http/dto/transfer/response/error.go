package response

// ErrorResponse is the envelope every failed request gets: a stable
// machine-readable kind in Error plus a human-readable message. Internal
// detail never crosses this boundary.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}
