package request_models

import "time"

// UpsertCurationRequest patches only the fields that are present.
type UpsertCurationRequest struct {
	PinID    string     `json:"pinId" binding:"required,max=200"`
	PinType  *string    `json:"pinType" binding:"omitempty,oneof=place activity event"`
	Priority *int       `json:"priority"`
	Active   *bool      `json:"active"`
	StartsAt *time.Time `json:"startsAt"`
	EndsAt   *time.Time `json:"endsAt"`
}
