package ops

type sendConfirmationRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type sendPitchConfirmationRequest struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	PitchTitle string `json:"pitchTitle"`
}

type sendResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId,omitempty"`
}

type dedupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Total   int    `json:"total"`
	Deleted int    `json:"deleted"`
	Errors  int    `json:"errors"`
	Final   int    `json:"final"`
}
