package repo

import (
	"errors"

	"gorm.io/gorm"

	"go-micropost/internal/domain"
)

type PostRepo struct{ db *gorm.DB }

func NewPostRepo(db *gorm.DB) *PostRepo { return &PostRepo{db: db} }

func (r *PostRepo) Create(p *domain.Post) error {
	return r.db.Create(p).Error
}

func (r *PostRepo) FindByID(id uint64) (*domain.Post, error) {
	var p domain.Post
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepo) Delete(id uint64) error {
	res := r.db.Where("id = ?", id).Delete(&domain.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostRepo) ListByUser(userID string, limit int) ([]domain.Post, error) {
	var posts []domain.Post
	q := r.db.Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&posts).Error
	return posts, err
}

// Feed 自己和关注对象的帖子，用一条子查询在存储引擎内完成合并，
// 每次调用都反映关注图的当前状态；时间相同按 id 倒序保证确定性
func (r *PostRepo) Feed(userID string, limit int) ([]domain.Post, error) {
	following := r.db.Model(&domain.Follow{}).
		Select("followed_id").
		Where("follower_id = ?", userID)

	var posts []domain.Post
	q := r.db.
		Where("user_id = ? OR user_id IN (?)", userID, following).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&posts).Error
	return posts, err
}

func (r *PostRepo) CountByUser(userID string) (int64, error) {
	var cnt int64
	err := r.db.Model(&domain.Post{}).Where("user_id = ?", userID).Count(&cnt).Error
	return cnt, err
}
