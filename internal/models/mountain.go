package models

// Mountain is a catalogue entry.
type Mountain struct {
	Base
	Name        string `json:"name"        gorm:"size:255;not null;index"`
	Elevation   int    `json:"elevation"   gorm:"default:0"`
	Province    string `json:"province"    gorm:"size:255;not null;index"`
	Photo       string `json:"photo"       gorm:"size:500"`
	Description string `json:"description" gorm:"type:text"`
}

func (Mountain) TableName() string { return "mountains" }
