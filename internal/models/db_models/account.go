package db_models

// Account is owned by the identity service; only the display fields are read.
type Account struct {
	BaseModel
	Name      string
	Email     string `gorm:"unique"`
	AvatarURL *string
	Role      string
}
