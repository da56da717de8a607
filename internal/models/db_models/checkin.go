package db_models

import (
	"time"
)

type PinType string

const (
	PinTypePlace    PinType = "place"
	PinTypeActivity PinType = "activity"
	PinTypeEvent    PinType = "event"
)

func (p PinType) Valid() bool {
	switch p {
	case PinTypePlace, PinTypeActivity, PinTypeEvent:
		return true
	}
	return false
}

// CheckIn marks a user as present at a pin until ExpiresAt.
// ID is CheckInKey(UserID, PinType, PinID).
type CheckIn struct {
	ID        string   `gorm:"primaryKey;size:512" json:"id"`
	UserID    string   `gorm:"index;not null" json:"userId"`
	UserName  *string  `json:"userName"`
	UserPhoto *string  `json:"userPhoto"`
	PinID     string   `gorm:"not null" json:"pinId"`
	PinType   PinType  `gorm:"size:16;not null" json:"pinType"`
	PinTitle  *string  `json:"pinTitle"`
	Region    *string  `gorm:"index" json:"region"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	ExpiresAt time.Time `gorm:"index;not null" json:"expiresAt"`
	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (CheckIn) TableName() string { return "connect_checkins" }

func CheckInKey(userID string, pinType PinType, pinID string) string {
	return userID + "_" + string(pinType) + "_" + pinID
}
