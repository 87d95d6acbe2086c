package models

// RecentTimesResponse is returned by /getRecentTimes.
type RecentTimesResponse struct {
	Result []TeeTime `json:"result"`
}

// StatusResponse is the generic {success, message} envelope.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ValidateLinkResponse carries either the resolved email or an error message.
type ValidateLinkResponse struct {
	Email        string `json:"email,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// UserConfigResponse is returned by /getUserConfig.
type UserConfigResponse struct {
	Success bool                      `json:"success"`
	Result  NotificationConfiguration `json:"result"`
}

type EmailRequest struct {
	Email string `json:"email"`
}

type GuidRequest struct {
	GUID string `json:"guid"`
}
