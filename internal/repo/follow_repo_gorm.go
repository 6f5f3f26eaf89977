package repo

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-micropost/internal/domain"
)

type FollowRepo struct{ db *gorm.DB }

func NewFollowRepo(db *gorm.DB) *FollowRepo { return &FollowRepo{db: db} }

func (r *FollowRepo) Create(followerID, followedID string) error {
	f := &domain.Follow{FollowerID: followerID, FollowedID: followedID}
	// 幂等：重复关注不报错
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error
}

func (r *FollowRepo) Delete(followerID, followedID string) error {
	return r.db.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&domain.Follow{}).Error
}

func (r *FollowRepo) Exists(followerID, followedID string) (bool, error) {
	var cnt int64
	err := r.db.Model(&domain.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *FollowRepo) FollowerIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&domain.Follow{}).
		Where("followed_id = ?", userID).
		Order("created_at").
		Pluck("follower_id", &ids).Error
	return ids, err
}

func (r *FollowRepo) FollowingIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&domain.Follow{}).
		Where("follower_id = ?", userID).
		Order("created_at").
		Pluck("followed_id", &ids).Error
	return ids, err
}

func (r *FollowRepo) CountFollowers(userID string) (int64, error) {
	var cnt int64
	err := r.db.Model(&domain.Follow{}).Where("followed_id = ?", userID).Count(&cnt).Error
	return cnt, err
}

func (r *FollowRepo) CountFollowing(userID string) (int64, error) {
	var cnt int64
	err := r.db.Model(&domain.Follow{}).Where("follower_id = ?", userID).Count(&cnt).Error
	return cnt, err
}
