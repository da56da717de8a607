package response_models

type JoinState struct {
	EventID string `json:"eventId"`
	UserID  string `json:"userId"`
	Joined  bool   `json:"joined"`
}
