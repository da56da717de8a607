package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConnectCurationItem is an admin highlight. One row per PinID.
type ConnectCurationItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PinID     string     `gorm:"uniqueIndex;not null" json:"pinId"`
	PinType   PinType    `gorm:"size:16;not null" json:"pinType"`
	Title     *string    `json:"title"`
	Region    *string    `json:"region"`
	Latitude  *float64   `json:"latitude"`
	Longitude *float64   `json:"longitude"`
	Priority  int        `gorm:"index:idx_curation_active_priority,priority:2;not null;default:0" json:"priority"`
	Active    bool       `gorm:"index:idx_curation_active_priority,priority:1;not null" json:"active"`
	StartsAt  *time.Time `json:"startsAt"`
	EndsAt    *time.Time `json:"endsAt"`
	CreatedBy string     `gorm:"not null" json:"createdBy"`
	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (ConnectCurationItem) TableName() string { return "connect_curation_items" }

func (c *ConnectCurationItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// WithinWindow applies the optional [StartsAt, EndsAt] window.
func (c *ConnectCurationItem) WithinWindow(now time.Time) bool {
	if c.StartsAt != nil && c.StartsAt.After(now) {
		return false
	}
	if c.EndsAt != nil && c.EndsAt.Before(now) {
		return false
	}
	return true
}
