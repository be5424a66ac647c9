package models

// UserAccount is a registered member. Password is the bcrypt hash and is
// never serialized.
type UserAccount struct {
	Base
	Username string `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Email    string `json:"email"    gorm:"size:254"`
	Password string `json:"-"        gorm:"not null"`
	Bio      string `json:"bio"      gorm:"type:text"`
	IsAdmin  bool   `json:"is_admin" gorm:"default:false"`
}

func (UserAccount) TableName() string { return "user_accounts" }
