package request_models

type CheckInRequest struct {
	PinID   string `json:"pinId" binding:"required,max=200"`
	PinType string `json:"pinType" binding:"required,oneof=place activity event"`
	// UserID lets an admin check in on behalf of another user.
	UserID string `json:"userId" binding:"omitempty,max=200"`
}
