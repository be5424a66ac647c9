package mountain

import "github.com/gundex/core/internal/models"

// CreateMountainDTO is the request body for adding a catalogue entry.
type CreateMountainDTO struct {
	Name        string `json:"name"`
	Elevation   int    `json:"elevation"`
	Province    string `json:"province"`
	Photo       string `json:"photo"`
	Description string `json:"description"`
}

// UpdateMountainDTO is the request body for editing an entry (all fields
// optional).
type UpdateMountainDTO struct {
	Name        *string `json:"name"`
	Elevation   *int    `json:"elevation"`
	Province    *string `json:"province"`
	Photo       *string `json:"photo"`
	Description *string `json:"description"`
}

// ListQuery holds the catalogue search parameters.
type ListQuery struct {
	Q string `form:"q"`
}

// mountainResponse is the catalogue projection exposed over the API.
type mountainResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Elevation   int    `json:"elevation"`
	Province    string `json:"province"`
	Photo       string `json:"photo"`
	Description string `json:"description"`
}

func toResponse(m *models.Mountain) mountainResponse {
	return mountainResponse{
		ID:          m.ID,
		Name:        m.Name,
		Elevation:   m.Elevation,
		Province:    m.Province,
		Photo:       m.Photo,
		Description: m.Description,
	}
}
