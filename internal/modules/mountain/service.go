package mountain

import (
	"errors"
	"strings"

	"github.com/gundex/core/internal/models"
	"github.com/gundex/core/internal/pkg/pagination"
	"github.com/gundex/core/internal/pkg/sanitize"
	"gorm.io/gorm"
)

var errMountainInUse = errors.New("mountain still has hike logs")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns one window of the catalogue plus whether more rows remain.
// The free-text query matches name OR province, case-insensitively; an empty
// query returns the unfiltered catalogue in insertion order.
func (s *Service) List(q pagination.Query, search string) ([]models.Mountain, bool, error) {
	tx := s.db.Model(&models.Mountain{})

	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(province) LIKE ?", pattern, pattern)
	}

	var mountains []models.Mountain
	hasMore, err := pagination.Window(tx, q, &mountains)
	return mountains, hasMore, err
}

// GetByID fetches a single entry or nil when unknown.
func (s *Service) GetByID(id string) (*models.Mountain, error) {
	var m models.Mountain
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// Create inserts a catalogue entry with sanitized text fields.
func (s *Service) Create(dto *CreateMountainDTO) (*models.Mountain, error) {
	m := models.Mountain{
		Name:        sanitize.Text(dto.Name),
		Elevation:   dto.Elevation,
		Province:    sanitize.Text(dto.Province),
		Photo:       strings.TrimSpace(dto.Photo),
		Description: sanitize.Text(dto.Description),
	}
	if err := s.db.Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Update patches an entry by ID.
func (s *Service) Update(id string, dto *UpdateMountainDTO) (*models.Mountain, error) {
	m, err := s.GetByID(id)
	if err != nil || m == nil {
		return m, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = sanitize.Text(*dto.Name)
	}
	if dto.Elevation != nil {
		updates["elevation"] = *dto.Elevation
	}
	if dto.Province != nil {
		updates["province"] = sanitize.Text(*dto.Province)
	}
	if dto.Photo != nil {
		updates["photo"] = strings.TrimSpace(*dto.Photo)
	}
	if dto.Description != nil {
		updates["description"] = sanitize.Text(*dto.Description)
	}

	if len(updates) == 0 {
		return m, nil
	}
	if err := s.db.Model(m).Updates(updates).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes an entry. Deletion is blocked while hike logs reference it;
// wishlist rows cascade inside the same transaction.
func (s *Service) Delete(id string) (bool, error) {
	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var logs int64
		if err := tx.Model(&models.HikeLog{}).Where("mountain_id = ?", id).Count(&logs).Error; err != nil {
			return err
		}
		if logs > 0 {
			return errMountainInUse
		}

		if err := tx.Where("mountain_id = ?", id).Delete(&models.WishlistItem{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Mountain{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}
