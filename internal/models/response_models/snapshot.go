package response_models

// PinSnapshot is the denormalized view of a place or event.
type PinSnapshot struct {
	Title     *string  `json:"title"`
	Region    *string  `json:"region"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// UserSnapshot is the denormalized view of a user.
type UserSnapshot struct {
	DisplayName *string `json:"displayName"`
	PhotoURL    *string `json:"photoUrl"`
}
