package domain

import "time"

// Post 短文本帖子，自增主键保证同一时间戳下可按插入序排序
type Post struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:varchar(32);not null;index:idx_post_user_created" json:"userId"`
	Content   string    `gorm:"size:140;not null" json:"content"`
	CreatedAt time.Time `gorm:"index:idx_post_user_created" json:"createdAt"`
}

func (Post) TableName() string { return "posts" }

type PostRepository interface {
	Create(p *Post) error
	FindByID(id uint64) (*Post, error)
	Delete(id uint64) error
	// ListByUser 按时间倒序返回某个用户的帖子
	ListByUser(userID string, limit int) ([]Post, error)
	// Feed 自己 + 关注对象的帖子，单条子查询，newest-first，
	// 时间戳相同时按 id 倒序
	Feed(userID string, limit int) ([]Post, error)
	CountByUser(userID string) (int64, error)
}
