package request_models

// JoinEventRequest is optional; the event id comes from the path.
type JoinEventRequest struct {
	UserID string `json:"userId" binding:"omitempty,max=200"`
}
