package db_models

import "time"

type JoinStatus string

const (
	JoinStatusJoined JoinStatus = "joined"
	JoinStatusLeft   JoinStatus = "left"
)

// Join is the single participation record for a (user, event) pair.
type Join struct {
	ID         string     `gorm:"primaryKey;size:512" json:"id"`
	UserID     string     `gorm:"index;not null" json:"userId"`
	UserName   *string    `json:"userName"`
	UserPhoto  *string    `json:"userPhoto"`
	EventID    string     `gorm:"index:idx_join_event_status;not null" json:"eventId"`
	EventTitle *string    `json:"eventTitle"`
	Region     *string    `json:"region"`
	Status     JoinStatus `gorm:"index:idx_join_event_status;size:16;not null" json:"status"`
	CreatedAt  time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (Join) TableName() string { return "connect_joins" }

func (j *Join) IsJoined() bool {
	return j != nil && j.Status == JoinStatusJoined
}

func JoinKey(userID, eventID string) string {
	return userID + "_" + eventID
}
