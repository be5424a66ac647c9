package hikelog

import (
	"time"

	"github.com/gundex/core/internal/models"
)

const dateLayout = "2006-01-02"

// CreateHikeLogDTO is the request body for recording a trip. Dates use the
// YYYY-MM-DD layout.
type CreateHikeLogDTO struct {
	MountainID    string `json:"mountain_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Notes         string `json:"notes"`
	SummitReached *bool  `json:"summit_reached"`
	TeamSize      *int   `json:"team_size"`
	Rating        *int   `json:"rating"`
}

// UpdateHikeLogDTO is the request body for editing a trip (all fields
// optional; an empty end_date string clears it).
type UpdateHikeLogDTO struct {
	MountainID    *string `json:"mountain_id"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	Notes         *string `json:"notes"`
	SummitReached *bool   `json:"summit_reached"`
	TeamSize      *int    `json:"team_size"`
	Rating        *int    `json:"rating"`
}

type hikeLogResponse struct {
	ID            string `json:"id"`
	MountainID    string `json:"mountain_id"`
	MountainName  string `json:"mountain_name,omitempty"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date,omitempty"`
	Notes         string `json:"notes"`
	SummitReached bool   `json:"summit_reached"`
	TeamSize      *int   `json:"team_size,omitempty"`
	Rating        *int   `json:"rating,omitempty"`
	DurationDays  int    `json:"duration_days,omitempty"`
	Created       string `json:"created_at"`
}

func toResponse(l *models.HikeLog) hikeLogResponse {
	resp := hikeLogResponse{
		ID:            l.ID,
		MountainID:    l.MountainID,
		StartDate:     l.StartDate.Format(dateLayout),
		Notes:         l.Notes,
		SummitReached: l.SummitReached,
		TeamSize:      l.TeamSize,
		Rating:        l.Rating,
		DurationDays:  l.DurationDays(),
		Created:       l.CreatedAt.Format(time.RFC3339),
	}
	if l.EndDate != nil {
		resp.EndDate = l.EndDate.Format(dateLayout)
	}
	if l.Mountain != nil {
		resp.MountainName = l.Mountain.Name
	}
	return resp
}
