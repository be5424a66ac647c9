package user

import (
	"errors"

	"github.com/gundex/core/internal/models"
	"github.com/gundex/core/internal/pkg/sanitize"
	"gorm.io/gorm"
)

var errUsernameTaken = errors.New("username already taken")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// GetByID fetches an account or nil when unknown.
func (s *Service) GetByID(id string) (*models.UserAccount, error) {
	var u models.UserAccount
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// UpdateProfile patches the caller's own username and bio, stripped of
// markup. A nil field means "leave unchanged".
func (s *Service) UpdateProfile(id string, dto *UpdateProfileDTO) (*models.UserAccount, error) {
	u, err := s.GetByID(id)
	if err != nil || u == nil {
		return u, err
	}

	updates := map[string]interface{}{}
	if dto.Username != nil {
		username := sanitize.Text(*dto.Username)
		if username == "" {
			return nil, errors.New("username is required")
		}
		if username != u.Username {
			var count int64
			if err := s.db.Model(&models.UserAccount{}).Where("username = ? AND id <> ?", username, id).Count(&count).Error; err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, errUsernameTaken
			}
			updates["username"] = username
		}
	}
	if dto.Bio != nil {
		updates["bio"] = sanitize.Text(*dto.Bio)
	}

	if len(updates) == 0 {
		return u, nil
	}
	if err := s.db.Model(u).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errUsernameTaken
		}
		return nil, err
	}
	return u, nil
}
