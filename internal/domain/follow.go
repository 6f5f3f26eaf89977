package domain

import "time"

// Follow 关注关系（follower 关注 followed），复合主键避免重复关注
type Follow struct {
	FollowerID string    `gorm:"primaryKey;type:varchar(32)" json:"followerId"`
	FollowedID string    `gorm:"primaryKey;type:varchar(32);index:idx_follow_followed" json:"followedId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Follow) TableName() string { return "follows" }

type FollowRepository interface {
	// Create 幂等：重复关注不报错
	Create(followerID, followedID string) error
	Delete(followerID, followedID string) error
	Exists(followerID, followedID string) (bool, error)
	// FollowerIDs 谁在关注 userID
	FollowerIDs(userID string) ([]string, error)
	// FollowingIDs userID 关注了谁
	FollowingIDs(userID string) ([]string, error)
	CountFollowers(userID string) (int64, error)
	CountFollowing(userID string) (int64, error)
}
