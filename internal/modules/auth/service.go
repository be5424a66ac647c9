package auth

import (
	"errors"
	"time"

	"github.com/gundex/core/internal/models"
	"github.com/gundex/core/internal/pkg/sanitize"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionTTL = 7 * 24 * time.Hour

var (
	errUserNotFound     = errors.New("user not found")
	errWrongPassword    = errors.New("wrong password")
	errUsernameTaken    = errors.New("username already taken")
	errPasswordMismatch = errors.New("passwords don't match")
	errUsernameEmpty    = errors.New("username is required")
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Login verifies credentials and returns the account for token issuance.
func (s *Service) Login(username, password string) (*models.UserAccount, error) {
	var u models.UserAccount
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			time.Sleep(3 * time.Second)
			return nil, errUserNotFound
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		time.Sleep(3 * time.Second)
		return nil, errWrongPassword
	}
	return &u, nil
}

// Register creates an account. Username and bio are stripped of markup
// before they are stored.
func (s *Service) Register(dto *RegisterDTO) (*models.UserAccount, error) {
	if dto.Password != dto.ConfirmPassword {
		return nil, errPasswordMismatch
	}

	username := sanitize.Text(dto.Username)
	if username == "" {
		return nil, errUsernameEmpty
	}

	var count int64
	if err := s.db.Model(&models.UserAccount{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := models.UserAccount{
		Username: username,
		Email:    dto.Email,
		Password: string(hash),
		Bio:      sanitize.Text(dto.Bio),
		IsAdmin:  dto.RegisterAsAdmin,
	}
	if err := s.db.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errUsernameTaken
		}
		return nil, err
	}
	return &u, nil
}

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
