package hikelog

import (
	"errors"
	"time"

	"github.com/gundex/core/internal/models"
	"github.com/gundex/core/internal/pkg/sanitize"
	"gorm.io/gorm"
)

var (
	errDuplicateTrip   = errors.New("a log for this mountain and start date already exists")
	errUnknownMountain = errors.New("mountain not found")
	errDateOrder       = errors.New("end_date must not be before start_date")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns the caller's logs, most recent trip first.
func (s *Service) List(userID string) ([]models.HikeLog, error) {
	var logs []models.HikeLog
	err := s.db.Preload("Mountain").
		Where("user_id = ?", userID).
		Order("start_date DESC, created_at DESC").
		Find(&logs).Error
	return logs, err
}

// GetByID fetches one of the caller's logs. Rows owned by other users are
// indistinguishable from missing rows.
func (s *Service) GetByID(userID, id string) (*models.HikeLog, error) {
	var l models.HikeLog
	err := s.db.Preload("Mountain").
		First(&l, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

// Create records a trip for the caller. The (user, mountain, start_date)
// pair is unique; a repeat submission surfaces errDuplicateTrip and leaves
// exactly one row behind.
func (s *Service) Create(userID string, dto *CreateHikeLogDTO, start time.Time, end *time.Time) (*models.HikeLog, error) {
	l := models.HikeLog{
		UserID:        userID,
		MountainID:    dto.MountainID,
		StartDate:     start,
		EndDate:       end,
		Notes:         sanitize.Text(dto.Notes),
		SummitReached: true,
		TeamSize:      dto.TeamSize,
		Rating:        dto.Rating,
	}
	if dto.SummitReached != nil {
		l.SummitReached = *dto.SummitReached
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Mountain{}).Where("id = ?", dto.MountainID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errUnknownMountain
		}
		if err := tx.Create(&l).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errDuplicateTrip
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(userID, l.ID)
}

// Update patches one of the caller's logs. The date pair is validated
// against the stored row, so patching one side cannot invert the trip.
func (s *Service) Update(userID, id string, updates map[string]interface{}) (*models.HikeLog, error) {
	l, err := s.GetByID(userID, id)
	if err != nil || l == nil {
		return l, err
	}
	if len(updates) == 0 {
		return l, nil
	}

	start := l.StartDate
	if v, ok := updates["start_date"].(time.Time); ok {
		start = v
	}
	end := l.EndDate
	if v, ok := updates["end_date"]; ok {
		if t, isTime := v.(time.Time); isTime {
			end = &t
		} else {
			end = nil
		}
	}
	if end != nil && end.Before(start) {
		return nil, errDateOrder
	}

	if mid, ok := updates["mountain_id"].(string); ok {
		var count int64
		if err := s.db.Model(&models.Mountain{}).Where("id = ?", mid).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, errUnknownMountain
		}
	}

	if err := s.db.Model(&models.HikeLog{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errDuplicateTrip
		}
		return nil, err
	}
	return s.GetByID(userID, id)
}

// Delete removes one of the caller's logs. Reports whether a row went away
// so the second delete of the same id maps to not-found.
func (s *Service) Delete(userID, id string) (bool, error) {
	res := s.db.Delete(&models.HikeLog{}, "id = ? AND user_id = ?", id, userID)
	return res.RowsAffected > 0, res.Error
}
