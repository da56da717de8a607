package response_models

import "vivuconnect/internal/models/db_models"

type LiveVenue struct {
	PinID       string            `json:"pinId"`
	PinType     db_models.PinType `json:"pinType"`
	PinTitle    *string           `json:"pinTitle"`
	Region      *string           `json:"region"`
	Latitude    *float64          `json:"latitude"`
	Longitude   *float64          `json:"longitude"`
	ActiveCount int               `json:"activeCount"`
}
