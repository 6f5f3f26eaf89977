package service

import (
	"context"

	"go-micropost/internal/core/cache"
	"go-micropost/internal/domain"
)

type PostService struct {
	posts domain.PostRepository
	cache *cache.Cache // 可为 nil
}

func NewPostService(posts domain.PostRepository, c *cache.Cache) *PostService {
	return &PostService{posts: posts, cache: c}
}

func (s *PostService) Create(userID, content string) (*domain.Post, error) {
	if errs := ValidateContent(content); len(errs) > 0 {
		return nil, errs
	}
	p := &domain.Post{UserID: userID, Content: content}
	if err := s.posts.Create(p); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(context.Background(), profileKey(userID))
	}
	return p, nil
}

// Delete 只允许删自己的帖子；非本人视同不存在
func (s *PostService) Delete(postID uint64, actorID string) error {
	p, err := s.posts.FindByID(postID)
	if err != nil {
		return err
	}
	if p.UserID != actorID {
		return domain.ErrNotFound
	}
	if err := s.posts.Delete(postID); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(context.Background(), profileKey(actorID))
	}
	return nil
}

func (s *PostService) ListByUser(userID string, limit int) ([]domain.Post, error) {
	return s.posts.ListByUser(userID, limit)
}

// Feed 每次直查存储，反映关注图当下的状态
func (s *PostService) Feed(userID string, limit int) ([]domain.Post, error) {
	return s.posts.Feed(userID, limit)
}
