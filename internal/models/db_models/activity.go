package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityType string

const (
	ActivityCheckIn ActivityType = "checkin"
	ActivityJoin    ActivityType = "join"
	ActivityLeave   ActivityType = "leave"
)

// UserActivity is an append-only feed entry. Never updated after insert.
type UserActivity struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Type      ActivityType `gorm:"size:16;not null" json:"type"`
	UserID    string       `gorm:"index;not null" json:"userId"`
	UserName  *string      `json:"userName"`
	UserPhoto *string      `json:"userPhoto"`
	PinID     *string      `json:"pinId"`
	PinType   *PinType     `gorm:"size:16" json:"pinType"`
	PinTitle  *string      `json:"pinTitle"`
	Region    *string      `gorm:"index" json:"region"`
	Latitude  *float64     `json:"latitude"`
	Longitude *float64     `json:"longitude"`
	RefID     string       `gorm:"not null" json:"refId"`
	ExpiresAt *time.Time   `json:"expiresAt"`
	CreatedAt time.Time    `gorm:"index;autoCreateTime:false" json:"createdAt"`
}

func (UserActivity) TableName() string { return "user_activities" }

func (a *UserActivity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// VisibleAt reports whether the row belongs in the live feed at now. Only
// check-in rows expire; join and leave rows are historical facts.
func (a *UserActivity) VisibleAt(now time.Time) bool {
	if a.Type != ActivityCheckIn || a.ExpiresAt == nil {
		return true
	}
	return a.ExpiresAt.After(now)
}
