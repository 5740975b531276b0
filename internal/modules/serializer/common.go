package serializer

// ErrorResponse is the uniform error payload of the JSON API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse confirms a successful mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

// Err builds an error payload; when err is non-nil its text is embedded after
// the prefix, matching what API consumers already parse.
func Err(prefix string, err error) ErrorResponse {
	if err != nil {
		return ErrorResponse{Error: prefix + ": " + err.Error()}
	}
	return ErrorResponse{Error: prefix}
}
