package models

// Article is an editorial piece about a mountain or trip. LikeCount mirrors
// the number of ArticleLike rows and is adjusted in the same transaction as
// the membership change, so feed ordering never needs a join.
type Article struct {
	Base
	Title       string `json:"title"       gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	Image       string `json:"image"       gorm:"size:500"`
	ViewCount   int    `json:"views"       gorm:"column:view_count;default:0"`
	LikeCount   int    `json:"total_likes" gorm:"column:like_count;default:0"`
}

func (Article) TableName() string { return "articles" }

// ArticleLike is the (user, article) likes membership. The unique pair index
// turns double-toggle races into benign conflicts.
type ArticleLike struct {
	Base
	UserID    string `json:"user_id"    gorm:"uniqueIndex:idx_article_like_pair;size:36;not null"`
	ArticleID string `json:"article_id" gorm:"uniqueIndex:idx_article_like_pair;size:36;not null;index"`
}

func (ArticleLike) TableName() string { return "article_likes" }
