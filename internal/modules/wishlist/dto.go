package wishlist

import (
	"time"

	"github.com/gundex/core/internal/models"
)

// AddWishlistDTO is the request body for bookmarking a mountain.
type AddWishlistDTO struct {
	MountainID string `json:"mountain_id"`
}

type wishlistResponse struct {
	ID         string    `json:"id"`
	MountainID string    `json:"mountain_id"`
	Name       string    `json:"name,omitempty"`
	Province   string    `json:"province,omitempty"`
	Elevation  int       `json:"elevation,omitempty"`
	Photo      string    `json:"photo,omitempty"`
	AddedAt    time.Time `json:"added_at"`
}

func toResponse(w *models.WishlistItem) wishlistResponse {
	resp := wishlistResponse{
		ID:         w.ID,
		MountainID: w.MountainID,
		AddedAt:    w.CreatedAt,
	}
	if w.Mountain != nil {
		resp.Name = w.Mountain.Name
		resp.Province = w.Mountain.Province
		resp.Elevation = w.Mountain.Elevation
		resp.Photo = w.Mountain.Photo
	}
	return resp
}
