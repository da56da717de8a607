package db_models

// POI is a catalog place. Owned by the catalog service; read-only here.
type POI struct {
	BaseModel
	Name      string
	Latitude  float64
	Longitude float64
	Region    string `gorm:"index"`
	Category  string
	Status    string
}

// Event is a catalog event. Owned by the catalog service; read-only here.
type Event struct {
	BaseModel
	Title     string
	Latitude  *float64
	Longitude *float64
	Region    string `gorm:"index"`
}
