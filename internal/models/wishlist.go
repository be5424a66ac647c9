package models

// WishlistItem marks a mountain a user wants to climb. One row per
// (owner, mountain) pair.
type WishlistItem struct {
	Base
	UserID     string    `json:"user_id"     gorm:"uniqueIndex:idx_wishlist_pair;size:36;not null;index"`
	MountainID string    `json:"mountain_id" gorm:"uniqueIndex:idx_wishlist_pair;size:36;not null;index"`
	Mountain   *Mountain `json:"mountain,omitempty" gorm:"foreignKey:MountainID;constraint:OnDelete:CASCADE"`
}

func (WishlistItem) TableName() string { return "wishlist_items" }
