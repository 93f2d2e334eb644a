package request

// InitRequest is the request body for initializing a device identity
type InitRequest struct {
	DeviceID string `json:"device_id"`
	Username string `json:"username"`
}

// SubmitScoreRequest is the request body for submitting a score
type SubmitScoreRequest struct {
	Score int `json:"score"`
}
