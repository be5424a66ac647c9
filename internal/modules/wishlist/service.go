package wishlist

import (
	"errors"

	"github.com/gundex/core/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errUnknownMountain = errors.New("mountain not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns the caller's bookmarks, newest first.
func (s *Service) List(userID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := s.db.Preload("Mountain").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// Add bookmarks a mountain for the caller. The unique (user, mountain) pair
// turns a repeat add into a no-op; added reports whether a new row was
// written.
func (s *Service) Add(userID, mountainID string) (added bool, err error) {
	var count int64
	if err := s.db.Model(&models.Mountain{}).Where("id = ?", mountainID).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, errUnknownMountain
	}

	item := models.WishlistItem{UserID: userID, MountainID: mountainID}
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&item)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Remove drops one of the caller's bookmarks. Reports whether a row went
// away so removing twice maps to not-found.
func (s *Service) Remove(userID, id string) (bool, error) {
	res := s.db.Delete(&models.WishlistItem{}, "id = ? AND user_id = ?", id, userID)
	return res.RowsAffected > 0, res.Error
}
