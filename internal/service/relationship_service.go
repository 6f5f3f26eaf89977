package service

import (
	"context"

	"go-micropost/internal/core/cache"
	"go-micropost/internal/domain"
)

type RelationshipService struct {
	follows domain.FollowRepository
	users   domain.UserRepository
	cache   *cache.Cache // 可为 nil
}

func NewRelationshipService(follows domain.FollowRepository, users domain.UserRepository, c *cache.Cache) *RelationshipService {
	return &RelationshipService{follows: follows, users: users, cache: c}
}

// Follow 自关注静默忽略；重复关注由存储层 OnConflict 吸收，同样是 no-op
func (s *RelationshipService) Follow(fromID, toID string) error {
	if fromID == toID {
		return nil
	}
	if _, err := s.users.FindByID(toID); err != nil {
		return err
	}
	if err := s.follows.Create(fromID, toID); err != nil {
		return err
	}
	s.invalidate(fromID, toID)
	return nil
}

// Unfollow 边不存在时也是 no-op
func (s *RelationshipService) Unfollow(fromID, toID string) error {
	if err := s.follows.Delete(fromID, toID); err != nil {
		return err
	}
	s.invalidate(fromID, toID)
	return nil
}

func (s *RelationshipService) IsFollowing(fromID, toID string) (bool, error) {
	return s.follows.Exists(fromID, toID)
}

func (s *RelationshipService) Followers(userID string) ([]string, error) {
	if _, err := s.users.FindByID(userID); err != nil {
		return nil, err
	}
	return s.follows.FollowerIDs(userID)
}

func (s *RelationshipService) Following(userID string) ([]string, error) {
	if _, err := s.users.FindByID(userID); err != nil {
		return nil, err
	}
	return s.follows.FollowingIDs(userID)
}

func (s *RelationshipService) invalidate(ids ...string) {
	if s.cache == nil {
		return
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = profileKey(id)
	}
	s.cache.Invalidate(context.Background(), keys...)
}
