package models

import "time"

// HikeLog is one user's record of one trip. The (owner, mountain, start_date)
// unique index rejects duplicate logs for the same trip at commit time.
type HikeLog struct {
	Base
	UserID        string      `json:"user_id"     gorm:"uniqueIndex:idx_hike_log_trip;size:36;not null;index"`
	MountainID    string      `json:"mountain_id" gorm:"uniqueIndex:idx_hike_log_trip;size:36;not null;index"`
	Mountain      *Mountain   `json:"mountain,omitempty" gorm:"foreignKey:MountainID"`
	StartDate     time.Time   `json:"start_date"  gorm:"uniqueIndex:idx_hike_log_trip;not null"`
	EndDate       *time.Time  `json:"end_date"`
	Notes         string      `json:"notes"       gorm:"type:text"`
	SummitReached bool        `json:"summit_reached"`
	TeamSize      *int        `json:"team_size"`
	Rating        *int        `json:"rating"`
}

func (HikeLog) TableName() string { return "hike_logs" }

// DurationDays is the inclusive trip length, or 0 while the trip is open.
func (l HikeLog) DurationDays() int {
	if l.EndDate == nil {
		return 0
	}
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}
